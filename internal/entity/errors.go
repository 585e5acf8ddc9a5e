package entity

import "errors"

var (
	ErrInvalidMinDimension = errors.New("min dimension must be positive")
	ErrInvalidDimensions   = errors.New("image has invalid dimensions")
	ErrUnsupportedFormat   = errors.New("unsupported image format")
)
