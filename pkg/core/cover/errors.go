package cover

import "errors"

var (
	ErrSolveComplete = errors.New("solve is already complete")
	ErrOptions       = errors.New("invalid solver options")
)
