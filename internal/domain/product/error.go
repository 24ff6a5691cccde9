package product

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrInvalidData = errors.New("invalid product data")
)
