package repository

import "errors"

// Sentinel errors shared by the postgres and in-memory implementations so
// services stay backend-agnostic.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)
