package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend - минимальная имитация бэкенда SIGO с cookie-сессией
type fakeBackend struct {
	mu          sync.Mutex
	incidents   map[string]map[string]any
	nextID      int
	profileHits int
	listHits    int
	lastCreate  map[string]any
	failCreate  int
	failStatus  int
	emptyCreate bool
	ackMessage  string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{incidents: make(map[string]map[string]any), nextID: 1}
}

func (b *fakeBackend) authorized(r *http.Request) bool {
	c, err := r.Cookie("session")
	return err == nil && c.Value == "ok"
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/user/login":
		_ = r.ParseForm()
		if r.PostForm.Get("matricula") != "2023.1.0045" || r.PostForm.Get("senha") != "secret" {
			http.Error(w, "Matrícula ou senha inválida", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet && r.URL.Path == "/user/profile":
		b.profileHits++
		if !b.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"id": 42, "name": "Carlos Ferreira", "role": "Oficial", "matricula": "2023.1.0045"}`)

	case r.Method == http.MethodGet && r.URL.Path == "/user/42/occurrences":
		b.listHits++
		list := make([]map[string]any, 0, len(b.incidents))
		for i := 1; i < b.nextID; i++ {
			if inc, ok := b.incidents[fmt.Sprint(i)]; ok {
				list = append(list, inc)
			}
		}
		_ = json.NewEncoder(w).Encode(list)

	case r.Method == http.MethodPost && r.URL.Path == "/occurrence/new":
		if b.failCreate != 0 {
			http.Error(w, "backend unavailable", b.failCreate)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.lastCreate = body
		if b.emptyCreate {
			w.WriteHeader(http.StatusCreated)
			return
		}
		if b.ackMessage != "" {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": b.ackMessage})
			return
		}
		id := b.nextID
		b.nextID++
		body["id"] = id
		body["status"] = "Aberta"
		body["createdAt"] = "2026-10-15T10:00:00Z"
		b.incidents[fmt.Sprint(id)] = body
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)

	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/status"):
		if b.failStatus != 0 {
			http.Error(w, "status rejected", b.failStatus)
			return
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/occurrence/"), "/status")
		inc, ok := b.incidents[id]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var body statusRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		inc["status"] = body.Status
		if b.ackMessage != "" {
			_ = json.NewEncoder(w).Encode(map[string]string{"message": b.ackMessage})
			return
		}
		_ = json.NewEncoder(w).Encode(inc)

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/occurrence/"):
		id := strings.TrimPrefix(r.URL.Path, "/occurrence/")
		inc, ok := b.incidents[id]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body {
			inc[k] = v
		}
		_ = json.NewEncoder(w).Encode(inc)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/occurrence/"):
		id := strings.TrimPrefix(r.URL.Path, "/occurrence/")
		if _, ok := b.incidents[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		delete(b.incidents, id)
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *fakeBackend) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	client, err := NewClient(srv.URL, 5*time.Second, logger, opts...)
	require.NoError(t, err)
	return client, backend
}

func login(t *testing.T, c *Client) {
	require.NoError(t, c.Login(context.Background(), "2023.1.0045", "secret"))
}

func fireDraft() *models.Draft {
	return &models.Draft{
		Address:     "Rua A, 10",
		Category:    models.CategoryFire,
		Subcategory: "residential",
		Priority:    models.PriorityHigh,
		VehicleCode: "ABT-12",
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.Login(context.Background(), "2023.1.0045", "wrong")

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, http.StatusUnauthorized, loginErr.StatusCode)
	assert.Contains(t, loginErr.ServerMessage, "inválida")
}

func TestCurrentUser_NumericID(t *testing.T) {
	client, _ := newTestClient(t)
	login(t, client)

	user, err := client.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "Carlos Ferreira", user.Name)
}

func TestListForCurrentUser_Unauthenticated(t *testing.T) {
	client, backend := newTestClient(t)

	incidents, err := client.ListForCurrentUser(context.Background())

	require.Error(t, err)
	assert.Nil(t, incidents)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, ReasonUnauthenticated, fetchErr.Reason)
	assert.True(t, IsUnauthenticated(err))
	assert.Equal(t, 0, backend.listHits, "list endpoint must not be called without identity")
}

func TestCreate_EndToEnd(t *testing.T) {
	client, backend := newTestClient(t)
	login(t, client)

	inc, err := client.Create(context.Background(), PayloadFromDraft(fireDraft()))

	require.NoError(t, err)
	assert.Equal(t, "1", inc.ID)
	assert.Equal(t, "Rua A, 10", inc.Address)
	assert.Equal(t, models.CategoryFire, inc.Category)
	assert.Equal(t, "residential", inc.Subcategory)
	assert.Equal(t, models.PriorityHigh, inc.Priority)
	assert.Equal(t, "ABT-12", inc.VehicleCode)
	assert.Equal(t, models.StatusOpen, inc.Status)
	assert.False(t, inc.CreatedAt.IsZero())

	assert.Equal(t, "42", backend.lastCreate["userId"])
	assert.Equal(t, []any{}, backend.lastCreate["id_equipes"])
	assert.Equal(t, []any{0.0, 0.0}, backend.lastCreate["gps"])
}

func TestCreate_EmptyAckBody(t *testing.T) {
	client, backend := newTestClient(t)
	backend.emptyCreate = true
	login(t, client)

	inc, err := client.Create(context.Background(), PayloadFromDraft(fireDraft()))

	require.NoError(t, err)
	assert.Empty(t, inc.ID)
	assert.Equal(t, "Rua A, 10", inc.Address)
	assert.Equal(t, models.StatusOpen, inc.Status)
}

func TestCreate_AckObjectBody(t *testing.T) {
	client, backend := newTestClient(t)
	backend.ackMessage = "Ocorrência registrada"
	login(t, client)

	inc, err := client.Create(context.Background(), PayloadFromDraft(fireDraft()))

	require.NoError(t, err)
	assert.Empty(t, inc.ID)
	assert.Equal(t, "Rua A, 10", inc.Address)
	assert.Equal(t, models.CategoryFire, inc.Category)
	assert.Equal(t, "residential", inc.Subcategory)
	assert.Equal(t, models.PriorityHigh, inc.Priority)
	assert.Equal(t, models.StatusOpen, inc.Status)
}

func TestCreate_BackendError(t *testing.T) {
	client, backend := newTestClient(t)
	backend.failCreate = http.StatusServiceUnavailable
	login(t, client)

	inc, err := client.Create(context.Background(), PayloadFromDraft(fireDraft()))

	assert.Nil(t, inc)
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusServiceUnavailable, subErr.StatusCode)
	assert.Equal(t, "backend unavailable", subErr.ServerMessage)
}

func TestCreate_Unauthenticated(t *testing.T) {
	client, backend := newTestClient(t)

	_, err := client.Create(context.Background(), PayloadFromDraft(fireDraft()))

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.True(t, errors.Is(err, ErrUnauthenticated))
	assert.Nil(t, backend.lastCreate)
}

func TestSetStatus_Success(t *testing.T) {
	client, _ := newTestClient(t)
	login(t, client)
	ctx := context.Background()
	created, err := client.Create(ctx, PayloadFromDraft(fireDraft()))
	require.NoError(t, err)

	updated, err := client.SetStatus(ctx, created.ID, models.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
}

func TestSetStatus_AckObjectBody(t *testing.T) {
	client, backend := newTestClient(t)
	login(t, client)
	ctx := context.Background()
	created, err := client.Create(ctx, PayloadFromDraft(fireDraft()))
	require.NoError(t, err)
	backend.mu.Lock()
	backend.ackMessage = "Status atualizado"
	backend.mu.Unlock()

	updated, err := client.SetStatus(ctx, created.ID, models.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Empty(t, updated.Address)
}

func TestSetStatus_Failure(t *testing.T) {
	client, backend := newTestClient(t)
	backend.failStatus = http.StatusInternalServerError
	login(t, client)

	_, err := client.SetStatus(context.Background(), "1", models.StatusFinished)

	var updErr *UpdateError
	require.ErrorAs(t, err, &updErr)
	assert.Equal(t, "1", updErr.ID)
	assert.Equal(t, http.StatusInternalServerError, updErr.StatusCode)
}

func TestUpdate_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	login(t, client)
	ctx := context.Background()
	created, err := client.Create(ctx, PayloadFromDraft(fireDraft()))
	require.NoError(t, err)

	desc := "X"
	_, err = client.Update(ctx, created.ID, models.IncidentPatch{Description: &desc})
	require.NoError(t, err)

	incidents, err := client.ListForCurrentUser(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "X", incidents[0].Description)
}

func TestDelete(t *testing.T) {
	client, _ := newTestClient(t)
	login(t, client)
	ctx := context.Background()
	created, err := client.Create(ctx, PayloadFromDraft(fireDraft()))
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, created.ID))

	err = client.Delete(ctx, created.ID)
	var delErr *DeleteError
	require.ErrorAs(t, err, &delErr)
	assert.Equal(t, http.StatusNotFound, delErr.StatusCode)
}

func TestLogout_DropsSession(t *testing.T) {
	client, _ := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	require.NoError(t, client.Logout(ctx))

	_, err := client.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

type memoryIdentityCache struct {
	user        *models.User
	invalidated int
}

func (m *memoryIdentityCache) GetIdentity(context.Context) (*models.User, error) { return m.user, nil }

func (m *memoryIdentityCache) SetIdentity(_ context.Context, u *models.User, _ time.Duration) error {
	m.user = u
	return nil
}

func (m *memoryIdentityCache) InvalidateIdentity(context.Context) error {
	m.user = nil
	m.invalidated++
	return nil
}

func TestIdentityCache(t *testing.T) {
	t.Run("disabled by default, identity resolved on every call", func(t *testing.T) {
		client, backend := newTestClient(t)
		login(t, client)
		ctx := context.Background()

		_, err := client.ListForCurrentUser(ctx)
		require.NoError(t, err)
		_, err = client.ListForCurrentUser(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, backend.profileHits)
	})

	t.Run("enabled with ttl", func(t *testing.T) {
		cache := &memoryIdentityCache{}
		client, backend := newTestClient(t, WithIdentityCache(cache, time.Minute))
		login(t, client)
		ctx := context.Background()

		_, err := client.ListForCurrentUser(ctx)
		require.NoError(t, err)
		_, err = client.ListForCurrentUser(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, backend.profileHits)
		assert.Equal(t, 1, cache.invalidated, "login invalidates cached identity")
	})
}
