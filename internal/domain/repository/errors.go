package repository

import "hazardmap/internal/errors"

// Sentinel errors returned by repository implementations.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateDevice      = errors.New("device already bound to another account")
	ErrFavoriteNotFound     = errors.New("favorite not found")
	ErrInvalidOwnerScope    = errors.New("owner scope is empty")
	ErrDuplicateHazardPoint = errors.New("hazard record already exists at this coordinate")
	ErrDuplicateShelter     = errors.New("shelter already exists")
)
