package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Create a new draft
// @Description Opens an empty registration form
// @Tags Drafts
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} DraftResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /drafts [post]
func (h *Handler) createDraft(c *gin.Context) {
	log := h.logger.WithField("method", "createDraft")

	draft, err := h.drafts.NewDraft(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDraftResponse(draft))
}

// @Summary Get a draft
// @Tags Drafts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid draft ID"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [get]
func (h *Handler) getDraft(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "getDraft", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	draft, err := h.drafts.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Update draft fields
// @Description Only fields present in the body are changed
// @Tags Drafts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param draft body UpdateDraftRequest true "Fields to change"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [patch]
func (h *Handler) updateDraft(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "updateDraft", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	var req UpdateDraftRequest
	if !h.bind(c, log, &req) {
		return
	}
	draft, err := h.drafts.UpdateFields(c.Request.Context(), id, DTOToDraftFields(req))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Discard a draft
// @Tags Drafts
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [delete]
func (h *Handler) discardDraft(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "discardDraft", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	if err := h.drafts.Discard(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Select the draft category
// @Description Changing the category clears the subcategory
// @Tags Drafts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param category body SelectCategoryRequest true "Category"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/category [put]
func (h *Handler) selectCategory(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "selectCategory", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	var req SelectCategoryRequest
	if !h.bind(c, log, &req) {
		return
	}
	draft, err := h.drafts.SelectCategory(c.Request.Context(), id, models.Category(req.Category))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary List subcategories
// @Tags Catalog
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} models.Option
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /catalog/categories/{category}/subcategories [get]
func (h *Handler) listSubcategories(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "listSubcategories", "category": c.Param("category")})

	options, err := h.drafts.SubcategoryOptions(models.Category(c.Param("category")))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Option
// @Router /catalog/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories())
}

// @Summary Capture the GPS position
// @Description Stores coordinates reported by the device and fills the address when empty
// @Tags Capture
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param report body LocationReportRequest true "Device report"
// @Success 200 {object} DraftResponse
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/location [post]
func (h *Handler) captureLocation(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "captureLocation", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	var req LocationReportRequest
	if !h.bind(c, log, &req) {
		return
	}
	draft, err := h.capture.CaptureLocation(c.Request.Context(), id, deviceFromLocation(req))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Attach a photo
// @Description The image is resized and re-encoded as JPEG before being stored
// @Tags Capture
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param photo body PhotoReportRequest true "Photo"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid image"
// @Failure 403 {object} map[string]string "Permission denied"
// @Router /drafts/{id}/photos [post]
func (h *Handler) capturePhoto(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "capturePhoto", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	var req PhotoReportRequest
	if !h.bind(c, log, &req) {
		return
	}
	device, err := deviceFromPhoto(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image data"})
		return
	}
	draft, err := h.capture.CapturePhoto(c.Request.Context(), id, device, capture.ImageSource(req.Source))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Remove a photo
// @Tags Capture
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param index path int true "Photo index"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid index"
// @Router /drafts/{id}/photos/{index} [delete]
func (h *Handler) removePhoto(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "removePhoto", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo index"})
		return
	}
	draft, err := h.drafts.RemovePhoto(c.Request.Context(), id, index)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Confirm the signature
// @Description Strokes are rasterized to a PNG on a white background
// @Tags Capture
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Param signature body SignatureRequest true "Strokes"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Empty signature"
// @Router /drafts/{id}/signature [post]
func (h *Handler) captureSignature(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "captureSignature", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	var req SignatureRequest
	if !h.bind(c, log, &req) {
		return
	}
	pad := capture.NewSignaturePad(req.Width, req.Height)
	for _, s := range req.Strokes {
		if err := pad.AddStroke(s); err != nil {
			h.respondError(c, log, err)
			return
		}
	}
	draft, err := h.capture.CaptureSignature(c.Request.Context(), id, pad)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Clear the signature
// @Tags Capture
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Router /drafts/{id}/signature [delete]
func (h *Handler) clearSignature(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "clearSignature", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	draft, err := h.drafts.ClearSignature(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Submit the draft
// @Description Registers the incident on the backend. On failure the draft is kept and can be exported offline.
// @Tags Drafts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} ReceiptResponse
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 502 {object} map[string]string "Backend rejected the incident"
// @Router /drafts/{id}/submit [post]
func (h *Handler) submitDraft(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "submitDraft", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	receipt, err := h.drafts.Submit(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ReceiptToResponse(receipt))
}

// @Summary Export the draft offline
// @Description Renders the draft to PDF and hands it to the share target
// @Tags Drafts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} share.Result
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/offline [post]
func (h *Handler) exportOffline(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"method": "exportOffline", "id": c.Param("id")})

	id, ok := draftID(c)
	if !ok {
		return
	}
	result, err := h.offline.Export(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
