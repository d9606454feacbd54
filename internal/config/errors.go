package config

import "errors"

// ErrUnknownTag is returned when the active tag names no configured file tag.
var ErrUnknownTag = errors.New("unknown file tag")
