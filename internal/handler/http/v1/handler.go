package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/config"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/theme"
	"github.com/sirupsen/logrus"
)

// Services - сервисы, которые обслуживает API
type Services struct {
	Drafts    service.DraftService
	Capture   service.CaptureService
	Offline   service.OfflineService
	Lifecycle service.LifecycleService
	Session   service.SessionService
}

type Handler struct {
	drafts    service.DraftService
	capture   service.CaptureService
	offline   service.OfflineService
	lifecycle service.LifecycleService
	session   service.SessionService
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		drafts:    services.Drafts,
		capture:   services.Capture,
		offline:   services.Offline,
		lifecycle: services.Lifecycle,
		session:   services.Session,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// bind читает JSON и проверяет теги validate
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит ошибки сервисов в HTTP-ответы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		verr   *service.ValidationError
		perr   *capture.PermissionError
		submit *service.SubmitFailedError
		status int
		body   = gin.H{"error": err.Error()}
	)

	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body["missing_fields"] = verr.MissingFields
		body["invalid_fields"] = verr.InvalidFields
	case errors.As(err, &perr):
		status = http.StatusForbidden
		body["capability"] = perr.Capability
	case errors.Is(err, capture.ErrEmptySignature), errors.Is(err, capture.ErrPadClosed),
		errors.Is(err, capture.ErrSignatureTooLarge):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrDraftNotFound), errors.Is(err, service.ErrIncidentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEditCancelled), errors.Is(err, service.ErrStatusChangeInProgress):
		status = http.StatusConflict
	case gateway.IsUnauthenticated(err):
		status = http.StatusUnauthorized
		body["error"] = "session expired, please log in again"
	case isLoginRejected(err):
		status = http.StatusUnauthorized
		body["error"] = "invalid credentials"
	case isBackendError(err), errors.As(err, &submit):
		status = http.StatusBadGateway
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if errors.As(err, &submit) {
		body["offline_available"] = submit.OfflineAvailable()
		body["draft_id"] = submit.DraftID
	}
	if code, msg, ok := backendDetails(err); ok {
		body["backend_status"] = code
		body["backend_message"] = msg
	}
	log.WithError(err).WithField("status", status).Warn("Request failed")
	c.JSON(status, body)
}

func isLoginRejected(err error) bool {
	var le *gateway.LoginError
	return errors.As(err, &le) && le.StatusCode >= 400 && le.StatusCode < 500
}

func isBackendError(err error) bool {
	var (
		se *gateway.SubmissionError
		fe *gateway.FetchError
		ue *gateway.UpdateError
		de *gateway.DeleteError
		le *gateway.LoginError
	)
	return errors.As(err, &se) || errors.As(err, &fe) || errors.As(err, &ue) || errors.As(err, &de) || errors.As(err, &le)
}

func backendDetails(err error) (int, string, bool) {
	var (
		se *gateway.SubmissionError
		fe *gateway.FetchError
		ue *gateway.UpdateError
		de *gateway.DeleteError
	)
	switch {
	case errors.As(err, &se) && se.StatusCode != 0:
		return se.StatusCode, se.ServerMessage, true
	case errors.As(err, &fe) && fe.StatusCode != 0:
		return fe.StatusCode, fe.ServerMessage, true
	case errors.As(err, &ue) && ue.StatusCode != 0:
		return ue.StatusCode, ue.ServerMessage, true
	case errors.As(err, &de) && de.StatusCode != 0:
		return de.StatusCode, de.ServerMessage, true
	}
	return 0, "", false
}

// @Summary Get active incidents counter
// @Description Number of incidents not yet Finalizada. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	n, err := h.lifecycle.ActiveCount(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{ActiveIncidents: n})
}

// @Summary Resolve theme tokens
// @Description Colors and font scale for the accessibility preferences
// @Tags System
// @Produce json
// @Param dark_mode query bool false "Dark mode"
// @Param high_contrast query bool false "High contrast (overrides dark mode)"
// @Param font_scale query number false "Font scale" default(1)
// @Success 200 {object} theme.Tokens
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /theme [get]
func (h *Handler) getTheme(c *gin.Context) {
	var q ThemeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid theme preferences"})
		return
	}
	c.JSON(http.StatusOK, theme.Resolve(theme.Preferences{
		DarkMode:     q.DarkMode,
		HighContrast: q.HighContrast,
		FontScale:    q.FontScale,
	}))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
