package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., postgres) inside this directory.

import "errors"

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
// Implementations translate their driver-specific error into this sentinel.
var ErrDuplicate = errors.New("duplicate row")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
