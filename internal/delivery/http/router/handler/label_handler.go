package handler

import (
	"log/slog"
	"net/http"

	"rotulos/internal/delivery/http/response"
	"rotulos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LabelHandler holds dependencies for label sheet handlers.
type LabelHandler struct {
	uc     usecase.LabelUsecase
	logger *slog.Logger
}

// NewLabelHandler is the constructor for LabelHandler, injected by Fx.
func NewLabelHandler(uc usecase.LabelUsecase, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{
		uc:     uc,
		logger: logger,
	}
}

// BuildSheetRequest selects the orders to print. Either an explicit ID list
// or a calendar date whose selected orders are printed.
type BuildSheetRequest struct {
	OrderIDs []string `json:"order_ids"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Build handles the label sheet generation request and streams the PDF inline.
func (h *LabelHandler) Build(c echo.Context) error {
	var req BuildSheetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de impresión inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if len(req.OrderIDs) == 0 && req.Date == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Debe indicar order_ids o date")
	}

	var (
		sheet []byte
		err   error
	)
	if len(req.OrderIDs) > 0 {
		sheet, err = h.uc.BuildSheet(c.Request().Context(), req.OrderIDs)
	} else {
		sheet, err = h.uc.BuildSheetForDate(c.Request().Context(), req.Date)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("label sheet rendered",
		slog.Int("orders", len(req.OrderIDs)),
		slog.String("date", req.Date),
		slog.Int("bytes", len(sheet)),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="rotulos.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", sheet)
}
