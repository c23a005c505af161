package logo

import (
	"image"

	"golang.org/x/image/draw"
)

// BoundingBox 返回包含所有 alpha 非零像素的最小矩形。
// 全透明时返回 ErrNoContent。
func BoundingBox(img *image.NRGBA) (image.Rectangle, error) {
	return alphaBBox(img, 0)
}

// alphaBBox 从 alpha 通道计算主体 bounding box
// 把 alpha > threshold 的像素当作“主体”，找所有主体像素的坐标
func alphaBBox(img *image.NRGBA, threshold uint8) (image.Rectangle, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := 0, 0
	found := false

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			a := img.Pix[row+x*4+3]
			if a > threshold {
				found = true
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if !found {
		return image.Rectangle{}, ErrNoContent
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), nil
}

// Crop 把 r 范围内的像素复制到新的 NRGBA，r 为相对 img 原点的坐标
func Crop(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	r = r.Add(img.Bounds().Min).Intersect(img.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
