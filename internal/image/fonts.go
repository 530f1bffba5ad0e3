package imagepkg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds parsed fonts. Parsed fonts are shared; faces are not and
// must be created per render.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

func loadFontSet(regularPath, boldPath string) (*fontSet, error) {
	regular, err := loadFont(regularPath, goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := loadFont(boldPath, gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

// loadFont parses the TTF/OTF at path, or the embedded fallback when path is empty.
func loadFont(path string, fallback []byte) (*opentype.Font, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return f, nil
}

func (fs *fontSet) face(spec FontSpec) (font.Face, error) {
	f := fs.regular
	if spec.Weight == Bold {
		f = fs.bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at %.0fpx: %w", spec.Size, err)
	}
	return face, nil
}
