package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.GET("/system/health", h.healthCheck)
	api.GET("/theme", h.getTheme)

	catalog := api.Group("/catalog")
	{
		catalog.GET("/categories", h.listCategories)
		catalog.GET("/categories/:category/subcategories", h.listSubcategories)
	}

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	session := protected.Group("/session")
	{
		session.POST("/login", h.login)
		session.POST("/logout", h.logout)
		session.GET("/me", h.me)
	}

	drafts := protected.Group("/drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("/:id", h.getDraft)
		drafts.PATCH("/:id", h.updateDraft)
		drafts.DELETE("/:id", h.discardDraft)
		drafts.PUT("/:id/category", h.selectCategory)
		drafts.POST("/:id/location", h.captureLocation)
		drafts.POST("/:id/photos", h.capturePhoto)
		drafts.DELETE("/:id/photos/:index", h.removePhoto)
		drafts.POST("/:id/signature", h.captureSignature)
		drafts.DELETE("/:id/signature", h.clearSignature)
		drafts.POST("/:id/submit", h.submitDraft)
		drafts.POST("/:id/offline", h.exportOffline)
	}

	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("/reload", h.reloadIncidents)
		incidents.PATCH("/:id/status", h.changeStatus)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	protected.GET("/stats", h.getStats)
}
