package routes

import (
	"espaco_vista/internal/adapter/http/handlers"
	"espaco_vista/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathEvents = "/events"

func addEventRoutes(rg *gin.RouterGroup, h *handlers.EventHandler) {
	events := rg.Group(PathEvents, middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff))
	{
		events.POST("", h.CreateEvent)
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
		events.POST("/:id/installments/:number/pay", h.PayInstallment)
	}
}
