package routes

import (
	"espaco_vista/internal/adapter/http/handlers"
	"espaco_vista/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

// addQuoteRoutes mounts the quote editor. Listing every quote, relabelling
// the status and deleting are staff operations; the rest is open to clients
// holding a quote id.
func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	staff := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleStaff)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", staff, h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.PATCH("/:id/status", staff, h.UpdateQuoteStatus)
		quotes.DELETE("/:id", staff, h.DeleteQuote)

		quotes.POST("/:id/items", h.AddItem)
		quotes.POST("/:id/items/:item_id/duplicate", h.DuplicateItem)
		quotes.PATCH("/:id/items/:item_id", h.UpdateItem)
		quotes.DELETE("/:id/items/:item_id", h.RemoveItem)
		quotes.POST("/:id/menus/:menu_id", h.ApplyMenu)
	}
}
