package logo

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		w, h       int
		size       int
		offX, offY int
	}{
		{name: "已是正方形", w: 5, h: 5, size: 5},
		{name: "横向", w: 6, h: 4, size: 6, offY: 1},
		{name: "纵向", w: 3, h: 8, size: 8, offX: 2},
		{name: "差值为奇数时向左上取整", w: 4, h: 7, size: 7, offX: 1},
		{name: "单像素宽", w: 1, h: 2, size: 2},
		{name: "大差距", w: 101, h: 10, size: 101, offY: 45},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := PadSquare(filled(tt.w, tt.h, red))
			require.NoError(t, err)

			assert.Equal(t, image.Rect(0, 0, tt.size, tt.size), got.Bounds())
			assert.Equal(t, max(tt.w, tt.h), got.Bounds().Dx())

			content, err := BoundingBox(got)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(tt.offX, tt.offY, tt.offX+tt.w, tt.offY+tt.h), content)

			// 两侧留白最多相差 1 像素，且多出的一像素在右/下
			left, right := content.Min.X, tt.size-content.Max.X
			top, bottom := content.Min.Y, tt.size-content.Max.Y
			assert.LessOrEqual(t, right-left, 1)
			assert.GreaterOrEqual(t, right-left, 0)
			assert.LessOrEqual(t, bottom-top, 1)
			assert.GreaterOrEqual(t, bottom-top, 0)

			if tt.offX > 0 {
				assert.Equal(t, transparent, got.NRGBAAt(0, 0))
			}
			assert.Equal(t, red, got.NRGBAAt(tt.offX, tt.offY))
		})
	}
}

func TestPadSquare_KeepsKeyedPixels(t *testing.T) {
	t.Parallel()

	src := filled(2, 1, keyedWhite)
	src.SetNRGBA(1, 0, red)

	got, err := PadSquare(src)
	require.NoError(t, err)

	assert.Equal(t, transparent, got.NRGBAAt(0, 1))
	assert.Equal(t, keyedWhite, got.NRGBAAt(0, 0))
	assert.Equal(t, red, got.NRGBAAt(1, 0))
}

func TestPadSquare_Degenerate(t *testing.T) {
	t.Parallel()

	for _, r := range []image.Rectangle{image.Rect(0, 0, 0, 5), image.Rect(0, 0, 5, 0), {}} {
		_, err := PadSquare(image.NewNRGBA(r))

		var geomErr *GeometryError
		require.True(t, errors.As(err, &geomErr), "rect %v", r)
		assert.Equal(t, r.Dx(), geomErr.Width)
		assert.Equal(t, r.Dy(), geomErr.Height)
	}
}
