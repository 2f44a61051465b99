package samples

import "errors"

// ErrNotDirectory is returned when the sample path exists but is not a directory.
var ErrNotDirectory = errors.New("sample path is not a directory")
