package cart

import "errors"

var (
	ErrNotFound     = errors.New("cart not found")
	ErrInvalidInput = errors.New("invalid input")
)
