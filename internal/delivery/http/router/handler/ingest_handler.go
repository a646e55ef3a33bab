// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"rotulos/internal/delivery/http/response"
	domainerrors "rotulos/internal/domain/errors"
	"rotulos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngestHandler holds dependencies for chat-export ingestion handlers.
type IngestHandler struct {
	uc     usecase.IngestUsecase
	logger *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler, injected by Fx.
func NewIngestHandler(uc usecase.IngestUsecase, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		uc:     uc,
		logger: logger,
	}
}

// Ingest handles the chat-export upload request. The export arrives either as
// a multipart "file" part or as the raw request body. With ?preview=true the
// export is parsed and returned without persisting anything.
func (h *IngestHandler) Ingest(c echo.Context) error {
	filename, content, err := readExport(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "No se pudo leer el archivo")
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return domainerrors.ErrEmptyExport
	}

	preview := c.QueryParam("preview") == "true"

	if preview {
		orders, err := h.uc.PreviewExport(c.Request().Context(), content)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, orders, "Vista previa generada")
	}

	orders, err := h.uc.IngestExport(c.Request().Context(), filename, content)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("export ingested",
		slog.String("filename", filename),
		slog.Int("orders", len(orders)),
	)

	return response.Success(c, http.StatusCreated, orders, "Pedidos registrados")
}

// readExport pulls the export text from a multipart upload or the raw body.
func readExport(c echo.Context) (string, []byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to open uploaded file")
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to read uploaded file")
		}

		return fileHeader.Filename, content, nil
	}

	content, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to read request body")
	}

	return "export.txt", content, nil
}
