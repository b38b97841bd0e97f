package utils

import "errors"

var (
	ErrPOINotFound     = errors.New("poi not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidWindow   = errors.New("start time must be before end time")
	ErrCatalogUnloaded = errors.New("poi catalog not loaded")
	ErrDatabaseError   = errors.New("database error")
)
