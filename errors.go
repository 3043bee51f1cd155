package routecore

import "errors"

var (
	// ErrEmptyGCellGrid indicates design.Data.GridX/GridY describe no cells.
	ErrEmptyGCellGrid = errors.New("routecore: empty gcell grid")

	// ErrUnknownNet indicates a guide or net reference names a net absent
	// from design.Data.Nets.
	ErrUnknownNet = errors.New("routecore: unknown net")

	// ErrStageOrder indicates a Pipeline method ran before its predecessor
	// in the §2 control-flow order.
	ErrStageOrder = errors.New("routecore: pipeline stage out of order")
)
