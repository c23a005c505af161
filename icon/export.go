package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/chaos-io/logoforge/util"
)

type Exporter struct {
	// Dir 输出目录，必须已存在
	Dir     string
	Targets []Target
	Filter  resize.InterpolationFunction
	// Out 进度信息输出，默认 os.Stdout
	Out io.Writer
}

func NewExporter(dir string) *Exporter {
	return &Exporter{
		Dir:     dir,
		Targets: Manifest,
		Filter:  DefaultFilter,
		Out:     os.Stdout,
	}
}

// Export 依次生成所有产物。某个产物失败不影响其余产物，
// 所有失败以 *EncodeError 合并返回，已写出的文件不回滚。
func (e *Exporter) Export(master image.Image) error {
	defer util.Trace("export")()

	var errs []error
	for _, t := range e.Targets {
		path := filepath.Join(e.Dir, t.Name)
		if err := e.write(master, t, path); err != nil {
			slog.Warn("failed to export", "name", t.Name, "path", path, "error", err)
			errs = append(errs, &EncodeError{Name: t.Name, Path: path, Err: err})
			continue
		}
		_, _ = fmt.Fprintf(e.out(), "Saved %s to %s\n", t.Name, path)
	}
	return errors.Join(errs...)
}

func (e *Exporter) write(master image.Image, t Target, path string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return util.WriteFile(path, func(w io.Writer) error {
		return e.Encode(w, master, t)
	})
}

// Encode 把 master 按 t 的要求编码到 w
func (e *Exporter) Encode(w io.Writer, master image.Image, t Target) error {
	switch t.Format {
	case PNG:
		img := resizeSquare(master, t.Size, e.Filter)
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case ICO:
		return encodeFavicon(w, master, t.Sizes, e.Filter)
	default:
		return fmt.Errorf("unknown format %v", t.Format)
	}
}

func (e *Exporter) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}
