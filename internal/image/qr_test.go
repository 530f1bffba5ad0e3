package imagepkg

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/hackerrank"
)

func TestShareQR(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{name: "default", size: 0, expected: DefaultQRSize},
		{name: "custom", size: 300, expected: 300},
		{name: "too_small", size: 10, expected: MinQRSize},
		{name: "too_large", size: 5000, expected: MaxQRSize},
	}

	cert := hackerrank.Certificate{ID: "ab12cd34ef56"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ShareQR(cert, tt.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, img.Bounds().Dx())
		})
	}
}

func TestGenerateQRPNGEmptyText(t *testing.T) {
	_, err := GenerateQRPNG("", 100)
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument), "got %v", err)
}
