package routes

import (
	"espaco_vista/internal/adapter/http/handlers"
	"espaco_vista/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathServices    = "/services"
	PathPriceTables = "/price-tables"
	PathMenus       = "/menus"
)

// Reads are open to every role; writes are admin only.
func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	admin := middleware.RequireRole(middleware.RoleAdmin)

	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)
		services.POST("", admin, h.CreateService)
		services.PUT("/:id", admin, h.UpdateService)
		services.DELETE("/:id", admin, h.DeleteService)
	}

	tables := rg.Group(PathPriceTables)
	{
		tables.GET("", h.ListPriceTables)
		tables.GET("/:id", h.GetPriceTable)
		tables.GET("/:id/prices", h.ListServicePrices)
		tables.POST("", admin, h.CreatePriceTable)
		tables.PUT("/:id", admin, h.UpdatePriceTable)
		tables.DELETE("/:id", admin, h.DeletePriceTable)
		tables.PUT("/:id/prices/:service_id", admin, h.SetServicePrice)
		tables.DELETE("/:id/prices/:service_id", admin, h.DeleteServicePrice)
	}

	menus := rg.Group(PathMenus)
	{
		menus.GET("", h.ListMenus)
		menus.GET("/:id", h.GetMenu)
		menus.POST("", admin, h.CreateMenu)
		menus.PUT("/:id", admin, h.UpdateMenu)
		menus.DELETE("/:id", admin, h.DeleteMenu)
	}
}
