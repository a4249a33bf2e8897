package wishlist

import "errors"

var (
	ErrAlreadySaved = errors.New("product already in wishlist")
	ErrNotSaved     = errors.New("product not in wishlist")
)
