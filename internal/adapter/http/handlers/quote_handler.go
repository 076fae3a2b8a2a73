package handlers

import (
	"errors"
	"net/http"

	request "espaco_vista/internal/adapter/http/dto/request"
	response "espaco_vista/internal/adapter/http/dto/response"
	"espaco_vista/internal/adapter/http/middleware"
	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase"
	"espaco_vista/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves quotes and their items. Every response is priced with
// the caller's visibility.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary Create a quote
// @Tags quotes
// @Param body body request.QuoteRequest true "Quote header"
// @Success 201 {object} response.QuoteResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), v)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteView(view, v.HasPricing()))
}

// ListQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Success 200 {array} response.QuoteSummaryResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteSummaries(list, middleware.ViewerFromContext(c).HasPricing()))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"), v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.UpdateHeader(c.Request.Context(), c.Param("id"), payload.ToInput(), v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": q.ID, "status": q.Status})
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary Add a service to a quote
// @Description event_date defaults to the first event date of the quote.
// @Tags quotes
// @Param id path string true "Quote id"
// @Param body body request.AddItemRequest true "Item"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ServiceID, payload.EventDate, v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) DuplicateItem(c *gin.Context) {
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.DuplicateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Field, payload.Value, v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), v)
	h.respondView(c, view, v.HasPricing(), err)
}

// ApplyMenu adds every service of a menu on one event date. The body is
// optional.
func (h *QuoteHandler) ApplyMenu(c *gin.Context) {
	var payload request.ApplyMenuRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidRequest)
			return
		}
	}
	v := middleware.ViewerFromContext(c)
	view, err := h.usecase.ApplyMenu(c.Request.Context(), c.Param("id"), c.Param("menu_id"), payload.EventDate, v)
	h.respondView(c, view, v.HasPricing(), err)
}

func (h *QuoteHandler) respondView(c *gin.Context, view usecase.QuoteView, pricingVisible bool, err error) {
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(view, pricingVisible))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidMenuID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote input", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemField):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_FIELD", "Invalid item field or value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Quote item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoEventDates):
		return pkg.NewDomainErrorSimple("NO_EVENT_DATES", "Quote has no event dates", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownEventDate):
		return pkg.NewDomainErrorSimple("UNKNOWN_EVENT_DATE", "Event date not found on quote", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicateItem):
		return pkg.NewDomainErrorSimple("DUPLICATE_ITEM", "Service already on this event date", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was changed by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrPricingForbidden):
		return pkg.NewDomainErrorSimple("PRICING_FORBIDDEN", "Pricing fields require a staff role", http.StatusForbidden)
	default:
		return internalError(err)
	}
}
