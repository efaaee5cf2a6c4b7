package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"safewallet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.QRCodeConfig
		wantSize int
	}{
		{name: "configured", cfg: config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "H"}, wantSize: 256},
		{name: "lower case level", cfg: config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "q"}, wantSize: 300},
		{name: "unknown level", cfg: config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "X"}, wantSize: 256},
		{name: "too small", cfg: config.QRCodeConfig{Size: 32, ErrorCorrectionLevel: "M"}, wantSize: minSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.wantSize, svc.size)
		})
	}
}

func TestQRCodeService_GeneratePhoneQR(t *testing.T) {
	svc := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	qrBytes, err := svc.GeneratePhoneQR("+41 44 828 33 00")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePhoneQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	for _, phone := range []string{"", "   ", "+", "call me", "+41 44 x"} {
		_, err := svc.GeneratePhoneQR(phone)
		assert.ErrorIs(t, err, ErrInvalidPhone, phone)
	}
}

func TestTelURI(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{phone: "+41448283300", want: "tel:+41448283300"},
		{phone: " 0800 800 800 ", want: "tel:0800800800"},
		{phone: "+41 (44) 828-33-00", want: "tel:+41448283300"},
		{phone: "02.123/456", want: "tel:02123456"},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			got, err := telURI(tt.phone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
