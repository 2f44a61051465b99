package preset

import "errors"

// ErrNotFound is returned when no preset matches a name or query.
var ErrNotFound = errors.New("preset not found")
