package icon

import (
	"fmt"

	"github.com/samber/lo"
)

type Format int

const (
	PNG Format = iota
	ICO
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case ICO:
		return "ico"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// maxICOSize ICO 目录项宽高字段的上限
const maxICOSize = 256

// Target 描述一个导出产物
type Target struct {
	Name string
	// Size 输出边长，0 表示不缩放
	Size int
	// Sizes ICO 内嵌的各个尺寸
	Sizes  []int
	Format Format
}

// FaviconSizes favicon.ico 内嵌的尺寸
var FaviconSizes = []int{16, 32, 48, 64}

// Manifest 默认导出的五个产物
var Manifest = []Target{
	{Name: "logo_transparent.png", Format: PNG},
	{Name: "favicon.ico", Sizes: FaviconSizes, Format: ICO},
	{Name: "icon.png", Size: 192, Format: PNG},             // Android / PWA
	{Name: "apple-touch-icon.png", Size: 180, Format: PNG}, // iOS，保留透明
	{Name: "icon-512.png", Size: 512, Format: PNG},         // OG image
}

func (t Target) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("empty target name")
	}
	switch t.Format {
	case PNG:
		if t.Size < 0 {
			return fmt.Errorf("invalid size %d", t.Size)
		}
	case ICO:
		if len(t.Sizes) == 0 {
			return fmt.Errorf("no icon sizes")
		}
		if bad, ok := lo.Find(t.Sizes, func(s int) bool { return s < 1 || s > maxICOSize }); ok {
			return fmt.Errorf("unsupported icon size %d, must be within 1..%d", bad, maxICOSize)
		}
		if dup := lo.FindDuplicates(t.Sizes); len(dup) > 0 {
			return fmt.Errorf("duplicate icon sizes %v", dup)
		}
	default:
		return fmt.Errorf("unknown format %v", t.Format)
	}
	return nil
}

// Names 返回 targets 的文件名
func Names(targets []Target) []string {
	return lo.Map(targets, func(t Target, _ int) string { return t.Name })
}
