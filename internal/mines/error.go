package mines

import "errors"

// ErrInvalidParameters is returned when a tile map cannot be generated from
// the requested dimensions and bomb count. It is always wrapped with the
// offending values; test for it with [errors.Is].
var ErrInvalidParameters = errors.New("invalid board parameters")
