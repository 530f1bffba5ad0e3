package imagepkg

import (
	"golang.org/x/image/font"
)

type Weight int

const (
	Regular Weight = iota
	Bold
)

// FontSpec selects a face from the loaded font set. Size is in pixels.
type FontSpec struct {
	Weight Weight
	Size   float64
}

type Size struct {
	Width  int
	Height int
}

// Measure returns the advance width of text and the line height of face.
// It never wraps or truncates.
func Measure(face font.Face, text string) Size {
	m := face.Metrics()
	return Size{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}
}

func CenterX(canvasWidth, textWidth int) int {
	return (canvasWidth - textWidth) / 2
}

// RightAlignX places text so that it ends at edge.
func RightAlignX(edge, textWidth int) int {
	return edge - textWidth
}
