package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateOrderQR encodes an order's derived key as a PNG QR code,
	// stamped on its printed label for scanning at dispatch.
	GenerateOrderQR(orderID string) ([]byte, error)
}
