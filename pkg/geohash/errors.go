package geohash

import "errors"

var (
	ErrInvalidArgument     = errors.New("division count must be a multiple of 2")
	ErrDegenerateDivision  = errors.New("division count must be at least 4")
	ErrPrecisionOutOfRange = errors.New("precision must be between 1 and 12")
	ErrUnknownAxisMode     = errors.New("unknown axis mode")
)
