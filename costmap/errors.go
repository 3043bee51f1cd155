package costmap

import "errors"

// ErrNoTerminals indicates DistanceCostMap was called with zero sources.
var ErrNoTerminals = errors.New("costmap: no terminal sources")
