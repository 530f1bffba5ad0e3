package imagepkg

import (
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/hackerrank"
)

const (
	MinQRSize     = 64
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, apperr.InvalidArgument("qr text cannot be empty")
	}
	return qrcode.Encode(text, qrcode.Medium, clampQRSize(size))
}

// ShareQR encodes the public view URL of cert.
func ShareQR(cert hackerrank.Certificate, size int) ([]byte, error) {
	return GenerateQRPNG(cert.ViewURL(), size)
}

func clampQRSize(size int) int {
	switch {
	case size <= 0:
		return DefaultQRSize
	case size < MinQRSize:
		return MinQRSize
	case size > MaxQRSize:
		return MaxQRSize
	}
	return size
}
