package service

// QRCodeService renders QR codes for public link pages.
type QRCodeService interface {
	// GenerateProfileQR returns a PNG QR code encoding the page URL.
	GenerateProfileQR(pageURL string) ([]byte, error)
}
