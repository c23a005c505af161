package icon

import (
	"image"

	"github.com/nfnt/resize"
)

// DefaultFilter 放大和缩小都使用 Lanczos3；缩小时核宽随比例放大，相当于按面积加权
var DefaultFilter = resize.Lanczos3

// resizeSquare 把 img 缩放到 size×size，size 为 0 时原样返回
func resizeSquare(img image.Image, size int, filter resize.InterpolationFunction) image.Image {
	if size == 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	return toClampedNRGBA(resize.Resize(uint(size), uint(size), img, filter))
}

// toClampedNRGBA 把预乘 alpha 的结果转回 NRGBA。
// Lanczos 在透明边缘会过冲，颜色分量可能大于 alpha，先截到 alpha 再反预乘，
// 否则 PNG 编码时除以 alpha 会溢出回绕。
func toClampedNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+b.Dx()*4]
			row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
			for i := 0; i < len(src); i += 4 {
				a := src[i+3]
				if a == 0 {
					continue
				}
				for c := 0; c < 3; c++ {
					row[i+c] = unpremultiply(min(src[i+c], a), a)
				}
				row[i+3] = a
			}
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = uint8(min(r, a) * 0xffff / a >> 8)
			dst.Pix[i+1] = uint8(min(g, a) * 0xffff / a >> 8)
			dst.Pix[i+2] = uint8(min(bl, a) * 0xffff / a >> 8)
			dst.Pix[i+3] = uint8(a >> 8)
		}
	}
	return dst
}

func unpremultiply(c, a uint8) uint8 {
	return uint8(uint32(c) * 255 / uint32(a))
}
