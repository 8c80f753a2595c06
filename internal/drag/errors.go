package drag

import "errors"

var (
	ErrUnsupported    = errors.New("native drag not supported on this platform")
	ErrInvalidWindow  = errors.New("invalid native window handle")
	ErrNoPaths        = errors.New("no file paths given")
	ErrRelativePath   = errors.New("file path is not absolute")
	ErrNotRegularFile = errors.New("path is not a regular file")
)
