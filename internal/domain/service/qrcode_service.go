package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateLinkQR renders the given deep-link URL as a PNG image.
	GenerateLinkQR(url string) ([]byte, error)
}
