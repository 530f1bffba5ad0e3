package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/hackerrank"
)

type Encoding string

const (
	EncodingBinary Encoding = "binary"
	EncodingBase64 Encoding = "base64"
)

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

const canvasDateLayout = "02 Jan 2006"

type RenderOptions struct {
	Quality  int
	Encoding Encoding
	Format   Format
	// Width downsizes the output, keeping the aspect ratio. Zero keeps the template size.
	Width int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Encoding == "" {
		o.Encoding = EncodingBinary
	}
	if o.Format == "" {
		o.Format = FormatJPEG
	}
	return o
}

func (o RenderOptions) validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return apperr.InvalidArgument("quality must be between 0 and 100, got %d", o.Quality)
	}
	switch o.Encoding {
	case EncodingBinary, EncodingBase64:
	default:
		return apperr.InvalidArgument("unsupported encoding %q", o.Encoding)
	}
	switch o.Format {
	case FormatJPEG, FormatPNG:
	default:
		return apperr.InvalidArgument("unsupported format %q", o.Format)
	}
	if o.Width < 0 {
		return apperr.InvalidArgument("width must be non-negative, got %d", o.Width)
	}
	return nil
}

// Validate checks opts as Render would, without touching any asset.
func (o RenderOptions) Validate() error {
	return o.withDefaults().validate()
}

func (f Format) MIME() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Compositor prints a certificate's fields onto the shared template.
type Compositor struct {
	assets *Assets
}

func NewCompositor(assets *Assets) *Compositor {
	return &Compositor{assets: assets}
}

// Render draws cert for recipient and encodes it. Identical inputs give
// byte-identical output.
func (c *Compositor) Render(ctx context.Context, cert hackerrank.Certificate, recipient string, opts RenderOptions) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	img, err := c.Compose(ctx, cert, recipient)
	if err != nil {
		return nil, err
	}

	var out image.Image = img
	if opts.Width > 0 && opts.Width < img.Bounds().Dx() {
		out = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if opts.Format == FormatPNG {
		err = imaging.Encode(&buf, out, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	} else {
		err = imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	}
	if err != nil {
		return nil, fmt.Errorf("encode certificate %s: %w", cert.ID, err)
	}

	if opts.Encoding == EncodingBase64 {
		return []byte(DataURI(opts.Format, buf.Bytes())), nil
	}
	return buf.Bytes(), nil
}

// Compose returns the flattened raster without encoding it.
func (c *Compositor) Compose(ctx context.Context, cert hackerrank.Certificate, recipient string) (*image.NRGBA, error) {
	completed, err := cert.CompletedTime()
	if err != nil {
		return nil, apperr.InvalidArgument("%v", err)
	}

	assets, err := c.assets.get(ctx)
	if err != nil {
		return nil, err
	}

	canvas := imaging.Clone(assets.template)
	texts := []struct {
		field field
		text  string
	}{
		{idField, strings.ToUpper(cert.ID)},
		{nameField, recipient},
		{titleField, cert.DisplayTitle()},
		{dateField, completed.Format(canvasDateLayout)},
	}

	for _, t := range texts {
		if t.text == "" {
			continue
		}
		if err := drawField(canvas, assets.fonts, t.field, t.text); err != nil {
			return nil, apperr.AssetUnavailable(err, "draw %s", t.field.name)
		}
	}
	return canvas, nil
}

func drawField(dst *image.NRGBA, fonts *fontSet, f field, text string) error {
	face, err := fonts.face(f.font)
	if err != nil {
		return err
	}
	defer face.Close()

	size := Measure(face, text)
	top := f.place(dst.Bounds(), size)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(top.X, top.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return nil
}

func DataURI(f Format, data []byte) string {
	return "data:" + f.MIME() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
