package pokemon

import "errors"

var (
	ErrNotFound         = errors.New("pokémon not found")
	ErrDuplicateID      = errors.New("a pokémon with this id already exists")
	ErrMissingImage     = errors.New("image is required")
	ErrInvalidImageType = errors.New("only jpg, jpeg and png images are allowed")
	ErrNameRequired     = errors.New("english name is required")
)
