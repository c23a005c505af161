package logo

import (
	"image"
	"io"

	"golang.org/x/image/draw"

	"github.com/chaos-io/logoforge/util"
)

// Load 读取 path 指定的图片并转为以 (0,0) 为原点的 NRGBA。
// 没有 alpha 通道的源图转换后完全不透明。
func Load(path string) (*image.NRGBA, error) {
	img, err := util.OpenImage(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return toNRGBA(img), nil
}

// LoadImage 同 Load，从 r 读取
func LoadImage(r io.Reader) (*image.NRGBA, error) {
	img, err := util.DecodeImage(r)
	if err != nil {
		return nil, &LoadError{Path: "-", Err: err}
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nrgba
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
