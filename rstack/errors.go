package rstack

import "errors"

var (
	// ErrDuplicateNet indicates a net was registered twice on the same Stack.
	ErrDuplicateNet = errors.New("rstack: net already registered on this stack")

	// ErrNilNet indicates a nil net reference was supplied.
	ErrNilNet = errors.New("rstack: net is nil")

	// ErrOutOfRange indicates a matrix coordinate fell outside the matrix shape.
	ErrOutOfRange = errors.New("rstack: coordinate out of range")

	// ErrEdgeNotFound indicates a requested edge does not exist between the
	// given source and destination.
	ErrEdgeNotFound = errors.New("rstack: edge not found")
)
