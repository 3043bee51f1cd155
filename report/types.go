package report

import "github.com/vlsirt/routecore/gcell"

// StackResult records one stack's routing/verification outcome within a
// single GCell, for the totals section of the summary.
type StackResult struct {
	GCellX, GCellY int
	Bottom, Top    int // geom.Metal values, stored as int
	NetsRouted     int
	NetsUnrouted   int
	VerifierScore  float64 // overall connectivity score for this stack's batch, per verify.Result.Overall
	Perfect        bool    // every net in this stack's batch scored perfectly, per verify.Result.General
}

// Summary accumulates every recoverable failure and stack result produced
// over one pipeline run, in the order they were recorded.
type Summary struct {
	Failures []gcell.Failure
	Stacks   []StackResult
}

// New returns an empty Summary ready for incremental recording.
func New() *Summary {
	return &Summary{}
}

// AddFailures appends one GCell's recoverable placement/routing failures.
func (s *Summary) AddFailures(failures []gcell.Failure) {
	s.Failures = append(s.Failures, failures...)
}

// AddStackResult records one stack's outcome.
func (s *Summary) AddStackResult(r StackResult) {
	s.Stacks = append(s.Stacks, r)
}

// OK reports whether the run completed with zero recoverable failures.
// It does not reflect fatal errors, which abort the pipeline before a
// Summary can be rendered at all.
func (s *Summary) OK() bool {
	return len(s.Failures) == 0
}
