package imagepkg

import (
	"image"
	"image/color"
)

var textColor = color.NRGBA{R: 0x0e, G: 0x14, B: 0x1e, A: 0xff}

// placement returns the top-left corner of a text box of size s on canvas.
type placement func(canvas image.Rectangle, s Size) image.Point

type field struct {
	name  string
	font  FontSpec
	place placement
}

var (
	idField = field{
		name: "id",
		font: FontSpec{Weight: Regular, Size: 24},
		place: func(c image.Rectangle, s Size) image.Point {
			return image.Pt(RightAlignX(c.Dx()-190, s.Width), 130)
		},
	}
	nameField = field{
		name: "recipient",
		font: FontSpec{Weight: Bold, Size: 72},
		place: func(c image.Rectangle, s Size) image.Point {
			return image.Pt(CenterX(c.Dx(), s.Width), c.Dy()/2-(s.Height-10))
		},
	}
	titleField = field{
		name: "title",
		font: FontSpec{Weight: Bold, Size: 36},
		place: func(c image.Rectangle, s Size) image.Point {
			return image.Pt(CenterX(c.Dx(), s.Width), c.Dy()/2+100)
		},
	}
	dateField = field{
		name: "date",
		font: FontSpec{Weight: Bold, Size: 32},
		place: func(c image.Rectangle, s Size) image.Point {
			return image.Pt(RightAlignX(592, s.Width), c.Dy()-s.Height-225)
		},
	}
)
