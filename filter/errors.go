package filter

import "errors"

// ErrOutOfRange is wrapped by Params.Validate when a field lies outside its
// declared range.
var ErrOutOfRange = errors.New("filter: parameter out of range")
