package movies

import "errors"

var (
	ErrDuplicate    = errors.New("reaction already exists")
	ErrNotFound     = errors.New("reaction not found")
	ErrInvalidValue = errors.New("vote value not on the half-star scale")
)
