package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "espaco_vista/internal/adapter/http/dto/request"
	response "espaco_vista/internal/adapter/http/dto/response"
	"espaco_vista/internal/usecase"
	"espaco_vista/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventHandler serves events created from won quotes and the payment of
// their installments.
type EventHandler struct {
	usecase  usecase.IEventUseCase
	mockMode bool
}

// NewEventHandler builds the handler. With mockMode set, an unreadable payment
// payload falls back to an empty one instead of failing the request.
func NewEventHandler(uc usecase.IEventUseCase, mockMode bool) *EventHandler {
	return &EventHandler{usecase: uc, mockMode: mockMode}
}

// CreateEvent godoc
// @Summary Convert a won quote into an event
// @Tags events
// @Security Bearer
// @Param body body request.CreateEventRequest true "Event"
// @Success 201 {object} response.EventResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var payload request.CreateEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	e, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.QuoteID, payload.ToInput())
	if err != nil {
		respondError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEvent(e))
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvents(list))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvent(e))
}

// PayInstallment godoc
// @Summary Pay one installment through Mercado Pago
// @Description The body is a Mercado Pago payment request, optionally wrapped in {"mp_payload": ...}. transaction_amount is always taken from the schedule.
// @Tags events
// @Security Bearer
// @Param id path string true "Event id"
// @Param number path int true "Installment number"
// @Success 200 {object} response.EventResponse
// @Router /events/{id}/installments/{number}/pay [post]
func (h *EventHandler) PayInstallment(c *gin.Context) {
	log := zerolog.Ctx(c.Request.Context())
	eventID := c.Param("id")

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		respondError(c, errInvalidRequest)
		return
	}

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Str("event_id", eventID).Msg("invalid payment payload")
			respondError(c, errInvalidRequest)
			return
		}
		log.Debug().Err(err).Str("event_id", eventID).Msg("payload invalid in mock mode, using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	e, err := h.usecase.PayInstallment(c.Request.Context(), eventID, number, mpPayload)
	if err != nil {
		respondError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvent(e))
}

// readMPPayload accepts either a bare payment request or one wrapped in an
// "mp_payload" envelope. An empty body is an empty request.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientLegal):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Legal name and document are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallmentPlan):
		return pkg.NewDomainError("INVALID_INSTALLMENT_PLAN", "Invalid installment plan", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotWon):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_WON", "Quote not won", http.StatusConflict)
	case errors.Is(err, usecase.ErrEventAlreadyExists):
		return pkg.NewDomainErrorSimple("EVENT_ALREADY_EXISTS", "Event already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
