package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with recovery, request ids and access logging.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/background", h.background)

		users := api.Group("/users/:username")
		users.GET("", h.userPage)
		users.GET("/certificates", h.certificates)
		users.GET("/certificates/:id/image", h.certificateImage)
		users.GET("/certificates/:id/download", h.certificateDownload)
		users.GET("/certificates/:id/qr", h.certificateQR)
		users.GET("/download", h.download)
	}
}
