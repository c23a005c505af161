package logo

import (
	"image"
	"image/color"
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red         = color.NRGBA{R: 200, A: 255}
	keyedWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	transparent = color.NRGBA{}
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// framed 返回 w×h 的白底图，r 内为 c
func framed(w, h int, r image.Rectangle, c color.NRGBA) *image.NRGBA {
	img := filled(w, h, white)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func clone(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Rect)
	copy(dst.Pix, img.Pix)
	return dst
}
