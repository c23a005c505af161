package logo

import (
	"image"

	"golang.org/x/image/draw"
)

// PadSquare 以较长边为边长生成透明正方形画布，把 img 贴在中间。
// 偏移量向下取整，差值为奇数时多出的一列/一行留在右侧/底部。
func PadSquare(img *image.NRGBA) (*image.NRGBA, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, &GeometryError{Width: w, Height: h}
	}

	size := max(w, h)
	pasteX := (size - w) / 2
	pasteY := (size - h) / 2

	// 新画布每个像素都是 (0,0,0,0)，直接复制源像素即等同于 alpha 合成
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := image.Rect(pasteX, pasteY, pasteX+w, pasteY+h)
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
	return dst, nil
}
