package index

import "errors"

var (
	// ErrInput indicates that the membership input violates its declared
	// dense-id contract. The index fails fast before building anything.
	ErrInput = errors.New("invalid membership input")
)
