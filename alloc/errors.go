package alloc

import "errors"

var (
	// ErrNoSpace indicates that the heap cannot hand out another object.
	ErrNoSpace = errors.New("alloc: heap exhausted")

	// ErrBadRef indicates a nil, foreign, or already freed object.
	ErrBadRef = errors.New("alloc: bad object reference")
)
