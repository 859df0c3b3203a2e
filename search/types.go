package search

import "errors"

// NotFound is returned when the target does not occur within the searched bounds.
const NotFound = -1

// ErrIndexOutOfRange indicates search bounds that fall outside the slice.
var ErrIndexOutOfRange = errors.New("search: bounds out of range")
