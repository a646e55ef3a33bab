package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rotulos/internal/delivery/http/response"
	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/domain/repository"
	"rotulos/internal/errors"
	"rotulos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order management handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateOrderRequest carries the editable fields of a partial order update.
// Absent fields leave the stored value untouched.
type UpdateOrderRequest struct {
	Name       *string `json:"name"`
	NationalID *string `json:"national_id"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	CityRegion *string `json:"city_region"`
	Product    *string `json:"product"`
	Quantity   *int    `json:"quantity" validate:"omitempty,min=0"`
	Notes      *string `json:"notes"`
	Price      *int64  `json:"price" validate:"omitempty,min=0"`
	Selected   *bool   `json:"selected"`
}

// SetSelectedRequest toggles the print selection of an order.
type SetSelectedRequest struct {
	Selected *bool `json:"selected" validate:"required"`
}

// List handles the request to list the orders of a calendar date.
func (h *OrderHandler) List(c echo.Context) error {
	date := c.QueryParam("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return response.BadRequest(c, "INVALID_DATE", "La fecha debe tener formato YYYY-MM-DD")
	}

	orders, err := h.uc.ListOrdersByDate(c.Request().Context(), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get handles the request to fetch a single order.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Update handles the partial edit of a stored order.
func (h *OrderHandler) Update(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de pedido inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := &repository.OrderUpdate{
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Address:    req.Address,
		CityRegion: req.CityRegion,
		Product:    req.Product,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
		Price:      req.Price,
		Selected:   req.Selected,
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Pedido actualizado")
}

// SetSelected handles the print-selection toggle of a stored order.
func (h *OrderHandler) SetSelected(c echo.Context) error {
	var req SetSelectedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de selección inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.SetSelected(c.Request().Context(), c.Param("id"), *req.Selected)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Selección actualizada")
}

// Delete handles the removal of a stored order.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pedido eliminado")
}

// Suggestions handles the catalog price suggestion lookup for a product text.
func (h *OrderHandler) Suggestions(c echo.Context) error {
	product := c.QueryParam("product")
	if product == "" {
		return response.BadRequest(c, "INVALID_INPUT", "El parámetro product es obligatorio")
	}

	return response.Success(c, http.StatusOK, h.uc.PriceSuggestions(product), "")
}
