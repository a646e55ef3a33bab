package usecase

import "context"

// LabelUsecase defines the interface for label sheet generation use cases.
type LabelUsecase interface {
	// BuildSheet renders the label sheet PDF for the given order IDs,
	// preserving the given order.
	BuildSheet(ctx context.Context, orderIDs []string) ([]byte, error)

	// BuildSheetForDate renders the label sheet PDF for all selected
	// orders of a calendar date.
	BuildSheetForDate(ctx context.Context, date string) ([]byte, error)
}
