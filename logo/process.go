package logo

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
)

type Processor struct {
	// Out 进度信息输出，默认 os.Stdout
	Out io.Writer
}

func NewProcessor() *Processor {
	return &Processor{
		Out: os.Stdout,
	}
}

// Process 把任意输入图片变成
//
//	白色背景被抠成透明
//	裁掉四周的透明区域
//	居中贴到正方形透明画布上
//
// 输入已经是原点为 (0,0) 的 *image.NRGBA 时会被原地修改。
func (p *Processor) Process(input image.Image) (*image.NRGBA, error) {
	src := toNRGBA(input)

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, &GeometryError{Width: w, Height: h}
	}

	// 1. 白色转透明
	keyed := ColorKey(src, WhiteThreshold)
	slog.Debug("color keyed", "pixels", keyed, "total", w*h)

	// 2. 裁剪到主体
	bbox, err := BoundingBox(src)
	switch {
	case errors.Is(err, ErrNoContent):
		// 全透明时保持原尺寸继续
		slog.Warn("image is fully transparent after color keying, skipping crop", "width", w, "height", h)
	case err != nil:
		return nil, err
	default:
		src = Crop(src, bbox)
	}

	// 3. 补成正方形
	cw, ch := src.Bounds().Dx(), src.Bounds().Dy()
	size := max(cw, ch)
	_, _ = fmt.Fprintf(p.out(), "Original Size: %dx%d, New Square Size: %dx%d\n", cw, ch, size, size)

	return PadSquare(src)
}

func (p *Processor) out() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}
