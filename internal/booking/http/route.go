package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/booking-requests")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id/approve", h.Approve)
		group.PATCH("/:id/reject", h.Reject)
	}
}
