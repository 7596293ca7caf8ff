package shell

import "errors"

// Route table and shell errors.
var (
	ErrEmptyPattern     = errors.New("route pattern is empty")
	ErrDuplicatePattern = errors.New("route pattern already registered")
	ErrNilView          = errors.New("route has no view factory")
	ErrMounted          = errors.New("shell already mounted")
)
