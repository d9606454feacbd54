package outline

import "errors"

// ErrHeadingNotFound is returned when no heading sits at or above the targeted line.
var ErrHeadingNotFound = errors.New("no heading found")

// ErrLineOutOfRange indicates the caller referenced a line outside the document.
var ErrLineOutOfRange = errors.New("line out of range")

// ErrMaintainPathUnset is returned by Promote when no maintain file is configured.
var ErrMaintainPathUnset = errors.New("maintain file path is not configured")
