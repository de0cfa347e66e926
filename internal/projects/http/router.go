package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/recent", h.recent)
	rg.GET("/stats/overview", h.stats)
	rg.GET("/name/:name", h.getByName)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id/status", h.updateStatus)
	rg.DELETE("/:id", h.delete)
}
