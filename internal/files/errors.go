package files

import "errors"

// ErrLineOutOfRange is returned when a caller addresses a line the document does not have.
var ErrLineOutOfRange = errors.New("line out of range")
