package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Log in to the SIGO backend
// @Description Opens a backend session for the employee
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param credentials body LoginRequest true "Matricula and password"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /session/login [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var req LoginRequest
	if !h.bind(c, log, &req) {
		return
	}

	user, err := h.session.Login(c.Request.Context(), req.Matricula, req.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Log out
// @Description Drops the backend session cookie
// @Tags Session
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.session.Logout(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current employee
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Session expired"
// @Router /session/me [get]
func (h *Handler) me(c *gin.Context) {
	log := h.logger.WithField("method", "me")

	user, err := h.session.Me(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
