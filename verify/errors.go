package verify

import "errors"

var (
	// ErrEmptyBatch indicates Check was called with no batch entries.
	ErrEmptyBatch = errors.New("verify: empty batch")

	// ErrRaggedMatrix indicates a net's path matrix rows have inconsistent width.
	ErrRaggedMatrix = errors.New("verify: ragged path matrix")

	// ErrTerminalMismatch indicates a Batch's Nets and Terminals slices
	// disagree in shape (batch count or net count per batch entry).
	ErrTerminalMismatch = errors.New("verify: nets/terminals shape mismatch")
)
