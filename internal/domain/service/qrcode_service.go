package service

// QRCodeService defines the interface for generating share codes for cafe pages
type QRCodeService interface {
	// GenerateCafeQR generates a PNG QR code pointing at the public page of the cafe
	GenerateCafeQR(slug string) ([]byte, error)
}
