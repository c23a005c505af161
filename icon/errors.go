package icon

import "fmt"

// EncodeError 某个产物无法编码或无法写入
type EncodeError struct {
	Name string
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
