package logo

import (
	"errors"
	"fmt"
)

// ErrNoContent 图片中没有任何 alpha 非零的像素
var ErrNoContent = errors.New("no non-transparent content")

// LoadError 源文件不存在、不可读或无法解码
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// GeometryError 图片宽或高为 0
type GeometryError struct {
	Width, Height int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("degenerate image %dx%d", e.Width, e.Height)
}
