package imagepkg

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
)

// Fetcher downloads raw bytes for an absolute URL.
type Fetcher interface {
	FetchRawImage(ctx context.Context, url string) ([]byte, error)
}

func decodeImage(body []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
}
