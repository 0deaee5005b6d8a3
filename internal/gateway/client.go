package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
)

const maxResponseBody = 10 << 20

// IdentityCache - короткоживущий кеш профиля текущего пользователя
type IdentityCache interface {
	GetIdentity(ctx context.Context) (*models.User, error)
	SetIdentity(ctx context.Context, user *models.User, ttl time.Duration) error
	InvalidateIdentity(ctx context.Context) error
}

// Client - HTTP-клиент внешнего бэкенда SIGO. Сессия хранится в cookie.
type Client struct {
	baseURL     string
	timeout     time.Duration
	logger      *logrus.Logger
	identity    IdentityCache
	identityTTL time.Duration

	mu         sync.RWMutex
	httpClient *http.Client
}

// Option настраивает Client
type Option func(*Client)

// WithIdentityCache включает кеширование профиля на ttl. ttl <= 0 отключает кеш.
func WithIdentityCache(cache IdentityCache, ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.identity = cache
			c.identityTTL = ttl
		}
	}
}

// NewClient создает клиент бэкенда
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	httpClient, err := c.newHTTPClient()
	if err != nil {
		return nil, err
	}
	c.httpClient = httpClient
	return c, nil
}

func (c *Client) newHTTPClient() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &http.Client{Jar: jar, Timeout: c.timeout}, nil
}

func (c *Client) client() *http.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

func (r response) message() string {
	msg := strings.TrimSpace(string(r.body))
	if msg == "" {
		return http.StatusText(r.status)
	}
	return msg
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	log := c.logger.WithFields(logrus.Fields{"component": "gateway", "method": method, "path": path})
	log.Debug("Sending request to backend")

	resp, err := c.client().Do(req)
	if err != nil {
		log.WithError(err).Warn("Backend request failed")
		return response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return response{}, fmt.Errorf("failed to read response body: %w", err)
	}
	log.WithField("status", resp.StatusCode).Debug("Backend responded")
	return response{status: resp.StatusCode, body: data}, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (response, error) {
	if payload == nil {
		return c.do(ctx, method, path, nil, "")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return response{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json")
}

// Login открывает сессию (form-urlencoded matricula/senha)
func (c *Client) Login(ctx context.Context, matricula, password string) error {
	form := url.Values{}
	form.Set("matricula", matricula)
	form.Set("senha", password)

	resp, err := c.do(ctx, http.MethodPost, "/user/login", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return &LoginError{Err: err}
	}
	if !resp.ok() {
		return &LoginError{StatusCode: resp.status, ServerMessage: resp.message()}
	}
	c.invalidateIdentity(ctx)
	return nil
}

// Logout сбрасывает cookie сессии
func (c *Client) Logout(ctx context.Context) error {
	httpClient, err := c.newHTTPClient()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.httpClient = httpClient
	c.mu.Unlock()
	c.invalidateIdentity(ctx)
	return nil
}

func (c *Client) invalidateIdentity(ctx context.Context) {
	if c.identity == nil {
		return
	}
	if err := c.identity.InvalidateIdentity(ctx); err != nil {
		c.logger.WithError(err).Warn("Failed to invalidate identity cache")
	}
}

// CurrentUser определяет текущего пользователя через GET /user/profile.
// Любая неудача сводится к ErrUnauthenticated.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	if c.identity != nil {
		user, err := c.identity.GetIdentity(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("Failed to read identity cache")
		}
		if user != nil && user.ID != "" {
			return user, nil
		}
	}

	resp, err := c.do(ctx, http.MethodGet, "/user/profile", nil, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !resp.ok() {
		return nil, fmt.Errorf("%w: profile status %d", ErrUnauthenticated, resp.status)
	}
	var dto userDTO
	if err := json.Unmarshal(resp.body, &dto); err != nil {
		return nil, fmt.Errorf("%w: invalid profile: %v", ErrUnauthenticated, err)
	}
	user := dto.toModel()
	if user.ID == "" {
		return nil, fmt.Errorf("%w: profile without id", ErrUnauthenticated)
	}

	if c.identity != nil {
		if err := c.identity.SetIdentity(ctx, user, c.identityTTL); err != nil {
			c.logger.WithError(err).Warn("Failed to store identity in cache")
		}
	}
	return user, nil
}

// ListForCurrentUser возвращает ocorrências текущего пользователя
func (c *Client) ListForCurrentUser(ctx context.Context) ([]models.Incident, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, &FetchError{Reason: ReasonUnauthenticated, Err: err}
	}

	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%s/occurrences", url.PathEscape(user.ID)), nil, "")
	if err != nil {
		return nil, &FetchError{Reason: ReasonNetwork, Err: err}
	}
	if !resp.ok() {
		return nil, &FetchError{Reason: ReasonBackend, StatusCode: resp.status, ServerMessage: resp.message()}
	}

	var dtos []incidentDTO
	if err := json.Unmarshal(resp.body, &dtos); err != nil {
		return nil, &FetchError{Reason: ReasonDecode, Err: err}
	}
	incidents := make([]models.Incident, 0, len(dtos))
	for _, d := range dtos {
		incidents = append(incidents, d.toModel())
	}
	return incidents, nil
}

// Create регистрирует ocorrência. payload должен пройти локальную валидацию.
func (c *Client) Create(ctx context.Context, payload CreatePayload) (*models.Incident, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	payload.UserID = user.ID
	if payload.TeamIDs == nil {
		payload.TeamIDs = []string{}
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/occurrence/new", payload)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	if !resp.ok() {
		return nil, &SubmissionError{StatusCode: resp.status, ServerMessage: resp.message()}
	}

	// бэкенд может ответить пустым телом, текстом или подтверждением вида {"message": ...}
	var dto incidentDTO
	if err := json.Unmarshal(resp.body, &dto); err != nil {
		return incidentFromPayload(payload), nil
	}
	if dto.Category != "" {
		inc := dto.toModel()
		return &inc, nil
	}
	inc := incidentFromPayload(payload)
	inc.ID = decodeID(dto.ID)
	inc.Protocol = dto.Protocol
	inc.CreatedAt = parseTime(dto.CreatedAt)
	return inc, nil
}

// SetStatus меняет статус ocorrência
func (c *Client) SetStatus(ctx context.Context, id string, status models.Status) (*models.Incident, error) {
	if !status.Valid() {
		return nil, &UpdateError{ID: id, Err: fmt.Errorf("unknown status %q", status)}
	}
	resp, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/occurrence/%s/status", url.PathEscape(id)), statusRequest{Status: string(status)})
	if err != nil {
		return nil, &UpdateError{ID: id, Err: err}
	}
	if !resp.ok() {
		return nil, &UpdateError{ID: id, StatusCode: resp.status, ServerMessage: resp.message()}
	}
	return decodeIncident(resp.body, id, func(inc *models.Incident) { inc.Status = status }), nil
}

// Update отправляет частичное изменение полей
func (c *Client) Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/occurrence/%s", url.PathEscape(id)), patchBody(patch))
	if err != nil {
		return nil, &UpdateError{ID: id, Err: err}
	}
	if !resp.ok() {
		return nil, &UpdateError{ID: id, StatusCode: resp.status, ServerMessage: resp.message()}
	}
	return decodeIncident(resp.body, id, nil), nil
}

// Delete удаляет ocorrência
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/occurrence/%s", url.PathEscape(id)), nil, "")
	if err != nil {
		return &DeleteError{ID: id, Err: err}
	}
	if !resp.ok() {
		return &DeleteError{ID: id, StatusCode: resp.status, ServerMessage: resp.message()}
	}
	return nil
}

// decodeIncident разбирает ответ; если в теле нет ocorrência, возвращает заготовку с id
func decodeIncident(body []byte, id string, fill func(*models.Incident)) *models.Incident {
	var dto incidentDTO
	if err := json.Unmarshal(body, &dto); err == nil && dto.described() {
		inc := dto.toModel()
		if inc.ID == "" {
			inc.ID = id
		}
		if dto.Status == "" && fill != nil {
			fill(&inc)
		}
		return &inc
	}
	inc := &models.Incident{ID: id}
	if fill != nil {
		fill(inc)
	}
	return inc
}

// IsUnauthenticated - ошибка связана с определением пользователя
func IsUnauthenticated(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Reason == ReasonUnauthenticated {
		return true
	}
	return errors.Is(err, ErrUnauthenticated)
}
