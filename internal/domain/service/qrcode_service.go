package service

// QRCodeService renders the "call to block" QR shown next to a card.
type QRCodeService interface {
	// GeneratePhoneQR returns a PNG that dials phone when scanned.
	GeneratePhoneQR(phone string) ([]byte, error)
}
