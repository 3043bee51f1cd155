package gcell

import "errors"

// ErrStateOrder indicates an orchestration method was invoked out of the
// sequential CREATED -> ... -> ENCODED state progression spec §4.4 requires.
var ErrStateOrder = errors.New("gcell: setup method invoked out of order")
