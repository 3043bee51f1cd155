package router

import "errors"

var (
	// ErrNoPath indicates the open set was exhausted before reaching the goal.
	ErrNoPath = errors.New("router: no path to goal")

	// ErrEmptyTerminals indicates fewer than two terminals were supplied.
	ErrEmptyTerminals = errors.New("router: need at least two terminals")
)
