package recipes

import "errors"

var (
	ErrNotFound     = errors.New("recipe not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrClipFailed   = errors.New("could not extract a recipe from the page")
)
