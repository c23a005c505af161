package icon

import (
	"image"
	"io"

	"github.com/nfnt/resize"
	"github.com/samber/lo"
	ico "github.com/sergeymakinen/go-ico"
)

// encodeFavicon 每个尺寸都从 master 独立缩放，再写入同一个 ICO
func encodeFavicon(w io.Writer, master image.Image, sizes []int, filter resize.InterpolationFunction) error {
	frames := lo.Map(sizes, func(size int, _ int) image.Image {
		return resizeSquare(master, size, filter)
	})
	return ico.EncodeAll(w, frames)
}
