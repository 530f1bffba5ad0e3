package imagepkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	fonts, err := loadFontSet("", "")
	require.NoError(t, err)

	small, err := fonts.face(FontSpec{Weight: Regular, Size: 24})
	require.NoError(t, err)
	defer small.Close()
	large, err := fonts.face(FontSpec{Weight: Bold, Size: 72})
	require.NoError(t, err)
	defer large.Close()

	empty := Measure(small, "")
	assert.Zero(t, empty.Width)
	assert.Positive(t, empty.Height)

	short := Measure(small, "SQL")
	long := Measure(small, "SQL (Advanced)")
	assert.Positive(t, short.Width)
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, short.Height, long.Height, "height does not depend on the text")

	big := Measure(large, "SQL")
	assert.Greater(t, big.Width, short.Width)
	assert.Greater(t, big.Height, short.Height)
}

func TestPlacementRules(t *testing.T) {
	assert.Equal(t, 700, CenterX(1600, 200))
	assert.Equal(t, -50, CenterX(100, 200), "text wider than the canvas starts off-canvas")
	assert.Equal(t, 392, RightAlignX(592, 200))
	assert.Equal(t, 592, RightAlignX(592, 0))
}
