// Package qrcode renders support phone numbers as scannable tel: QR codes.
package qrcode

import (
	"strings"

	"safewallet/config"
	"safewallet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ErrInvalidPhone is returned for numbers with no dialable digits.
var ErrInvalidPhone = errors.New("invalid phone number")

// recoveryLevels maps the configured letter to the go-qrcode level.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates the renderer; unknown levels fall back to M and
// sizes below the readable minimum are raised to it.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(cfg.ErrorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:  max(cfg.Size, minSize),
		level: level,
	}
}

// minSize keeps a tel: URI readable by phone cameras at arm's length.
const minSize = 128

func (s *qrcodeService) GeneratePhoneQR(phone string) ([]byte, error) {
	uri, err := telURI(phone)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(uri, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode support phone QR")
	}

	return png, nil
}

// telURI builds an RFC 3966 URI keeping a leading plus and the digits.
// Spaces, dashes, dots, slashes and brackets are dropped.
func telURI(phone string) (string, error) {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	b.WriteString("tel:")
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case strings.ContainsRune(" -.()/", r):
		default:
			return "", errors.Wrapf(ErrInvalidPhone, "unexpected character %q", r)
		}
	}

	if digits == 0 {
		return "", ErrInvalidPhone
	}

	return b.String(), nil
}
