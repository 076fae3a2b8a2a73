package handlers

import (
	"errors"
	"net/http"

	request "espaco_vista/internal/adapter/http/dto/request"
	response "espaco_vista/internal/adapter/http/dto/response"
	"espaco_vista/internal/usecase"
	"espaco_vista/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves services, price tables, prices and menus.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary List services
// @Tags catalog
// @Param category query string false "space, food_beverage, equipment or other"
// @Success 200 {array} response.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.usecase.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(list))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// CreateService godoc
// @Summary Create a service
// @Tags catalog
// @Security Bearer
// @Param body body request.ServiceRequest true "Service"
// @Success 201 {object} response.ServiceResponse
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.CreateService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListPriceTables(c *gin.Context) {
	list, err := h.usecase.ListPriceTables(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTables(list))
}

func (h *CatalogHandler) GetPriceTable(c *gin.Context) {
	t, err := h.usecase.GetPriceTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

func (h *CatalogHandler) CreatePriceTable(c *gin.Context) {
	var payload request.PriceTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	t, err := h.usecase.CreatePriceTable(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPriceTable(t))
}

func (h *CatalogHandler) UpdatePriceTable(c *gin.Context) {
	var payload request.PriceTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	t, err := h.usecase.UpdatePriceTable(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPriceTable(t))
}

// DeletePriceTable also removes every price recorded on the table.
func (h *CatalogHandler) DeletePriceTable(c *gin.Context) {
	if err := h.usecase.DeletePriceTable(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListServicePrices(c *gin.Context) {
	list, err := h.usecase.ListServicePrices(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServicePrices(list))
}

// SetServicePrice godoc
// @Summary Set the price of a service on a price table
// @Tags catalog
// @Security Bearer
// @Param id path string true "Price table id"
// @Param service_id path string true "Service id"
// @Param body body request.ServicePriceRequest true "Price"
// @Success 200 {object} response.ServicePriceResponse
// @Router /price-tables/{id}/prices/{service_id} [put]
func (h *CatalogHandler) SetServicePrice(c *gin.Context) {
	var payload request.ServicePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.SetServicePrice(c.Request.Context(), c.Param("id"), c.Param("service_id"), *payload.Price)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.ServicePriceResponse(p))
}

func (h *CatalogHandler) DeleteServicePrice(c *gin.Context) {
	if err := h.usecase.DeleteServicePrice(c.Request.Context(), c.Param("id"), c.Param("service_id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListMenus(c *gin.Context) {
	list, err := h.usecase.ListMenus(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMenus(list))
}

func (h *CatalogHandler) GetMenu(c *gin.Context) {
	m, err := h.usecase.GetMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMenu(m))
}

func (h *CatalogHandler) CreateMenu(c *gin.Context) {
	var payload request.MenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	m, err := h.usecase.CreateMenu(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMenu(m))
}

func (h *CatalogHandler) UpdateMenu(c *gin.Context) {
	var payload request.MenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	m, err := h.usecase.UpdateMenu(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMenu(m))
}

func (h *CatalogHandler) DeleteMenu(c *gin.Context) {
	if err := h.usecase.DeleteMenu(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidPriceTableID), errors.Is(err, usecase.ErrInvalidMenuID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCatalogInput), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainError("INVALID_CATALOG_INPUT", "Invalid catalog input", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceTableNotFound):
		return pkg.NewDomainErrorSimple("PRICE_TABLE_NOT_FOUND", "Price table not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Service price not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
