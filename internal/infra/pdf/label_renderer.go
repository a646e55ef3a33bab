// Package pdf renders order label sheets with a grid layout for printing.
package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"

	"rotulos/config"
	"rotulos/internal/domain/entity"
	"rotulos/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pageWidthMM  = 210.0 // A4 portrait
	pageHeightMM = 297.0
	cellPadMM    = 3.0
	lineHeightMM = 4.2
	qrSideMM     = 14.0
)

type labelRenderer struct {
	columns  int
	rows     int
	marginMM float64
	fontSize float64
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewLabelRenderer builds the PDF label sheet renderer. A nil qrcode service
// disables the per-label QR stamp.
func NewLabelRenderer(cfg *config.Config, qrcodeSvc service.QRCodeService, logger *slog.Logger) service.LabelRenderer {
	r := &labelRenderer{
		columns:  3,
		rows:     3,
		marginMM: 7,
		fontSize: 9,
		qrcode:   qrcodeSvc,
		logger:   logger,
	}

	if cfg.Labels != nil {
		if cfg.Labels.Columns > 0 {
			r.columns = cfg.Labels.Columns
		}
		if cfg.Labels.Rows > 0 {
			r.rows = cfg.Labels.Rows
		}
		if cfg.Labels.MarginMM > 0 {
			r.marginMM = cfg.Labels.MarginMM
		}
		if cfg.Labels.FontSize > 0 {
			r.fontSize = cfg.Labels.FontSize
		}
	}

	return r
}

// RenderLabels lays the orders out on grid-paged A4, one order per cell,
// preserving input order.
func (r *labelRenderer) RenderLabels(orders []*entity.Order) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", r.fontSize)
	doc.SetLineWidth(0.2)
	translate := doc.UnicodeTranslatorFromDescriptor("")

	perPage := r.columns * r.rows
	cellW := (pageWidthMM - r.marginMM*2) / float64(r.columns)
	cellH := (pageHeightMM - r.marginMM*2) / float64(r.rows)

	if len(orders) == 0 {
		// Still a valid, printable document.
		doc.AddPage()
	}

	for i, order := range orders {
		slot := i % perPage
		if slot == 0 {
			doc.AddPage()
		}

		col := slot % r.columns
		row := slot / r.columns
		x := r.marginMM + float64(col)*cellW
		y := r.marginMM + float64(row)*cellH

		doc.Rect(x, y, cellW, cellH, "D")
		r.renderCell(doc, translate, order, x, y, cellW, cellH)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write label sheet")
	}

	return buf.Bytes(), nil
}

func (r *labelRenderer) renderCell(doc *fpdf.Fpdf, translate func(string) string, order *entity.Order, x, y, cellW, cellH float64) {
	lines := labelLines(order)

	textW := cellW - cellPadMM*2
	textY := y + cellPadMM + lineHeightMM
	maxY := y + cellH - cellPadMM

	for _, line := range lines {
		// Translate before wrapping: SplitLines is byte-oriented, so the
		// cp1252 bytes produced for accented text measure correctly.
		for _, wrapped := range doc.SplitLines([]byte(translate(line)), textW) {
			if textY > maxY {
				break
			}
			doc.Text(x+cellPadMM, textY, string(wrapped))
			textY += lineHeightMM
		}
	}

	r.stampQR(doc, order, x, y, cellW, cellH)
}

// stampQR draws the order's QR code in the bottom-right corner of the cell.
// Failures degrade to a label without a code.
func (r *labelRenderer) stampQR(doc *fpdf.Fpdf, order *entity.Order, x, y, cellW, cellH float64) {
	if r.qrcode == nil {
		return
	}

	png, err := r.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("QR stamp skipped", slog.String("orderID", order.ID), slog.Any("error", err))
		}

		return
	}

	name := "qr-" + order.ID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	doc.ImageOptions(name,
		x+cellW-qrSideMM-cellPadMM,
		y+cellH-qrSideMM-cellPadMM,
		qrSideMM, qrSideMM, false, opts, 0, "")
}

func labelLines(order *entity.Order) []string {
	lines := []string{
		"Nombre: " + order.Name,
		"Tel: " + order.Phone,
	}
	if order.NationalID != "" {
		lines = append(lines, "C.C.: "+order.NationalID)
	}
	lines = append(lines,
		"Dir: "+order.Address,
		"Ciudad: "+order.CityRegion,
		"Prod: "+order.Product,
	)
	if order.Quantity > 0 {
		lines = append(lines, "Cant: "+strconv.Itoa(order.Quantity))
	}
	if order.Price != nil {
		lines = append(lines, fmt.Sprintf("Precio: $%d", *order.Price))
	}
	if order.Notes != "" {
		lines = append(lines, "Obs: "+order.Notes)
	}

	return lines
}
