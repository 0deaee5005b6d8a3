package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary List my incidents
// @Description Returns the cached list, loading it from the backend on first use
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Session expired"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.lifecycle.Incidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Reload my incidents
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /incidents/reload [post]
func (h *Handler) reloadIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "reloadIncidents")

	incidents, err := h.lifecycle.Reload(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Change incident status
// @Description Applied optimistically and rolled back if the backend rejects it
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body ChangeStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Previous status change still pending"
// @Failure 502 {object} map[string]string "Backend rejected the change"
// @Router /incidents/{id}/status [patch]
func (h *Handler) changeStatus(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "changeStatus", "id": c.Param("id")})

	var req ChangeStatusRequest
	if !h.bind(c, log, &req) {
		return
	}
	inc, err := h.lifecycle.ChangeStatus(c.Request.Context(), c.Param("id"), models.Status(req.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(inc))
}

// @Summary Edit an incident
// @Description Only changed fields are sent to the backend
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Fields to change"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]string "Backend rejected the change"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "updateIncident", "id": c.Param("id")})

	var req UpdateIncidentRequest
	if !h.bind(c, log, &req) {
		return
	}
	session, err := h.lifecycle.BeginEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	ApplyIncidentEdit(req, session)

	inc, err := h.lifecycle.SaveEdit(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(inc))
}

// @Summary Delete an incident
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]string "Backend rejected the deletion"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "deleteIncident", "id": c.Param("id")})

	if err := h.lifecycle.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
