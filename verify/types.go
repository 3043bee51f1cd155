package verify

// Terminal is one net's committed grid point, as (x, y, layer) — the
// same coordinate system the routed path matrix indexes. Grounded on
// net_connectivity.cpp's Netlist: a net's BFS starts at its first
// terminal and is connected only if it reaches every other one.
type Terminal struct {
	X, Y, Layer int
}

// Batch is a set of independent verification passes (one per routed
// stack in this module's usage). Nets and Terminals are parallel over
// both dimensions: Nets[b][n] is net n's path matrix for batch entry b,
// shaped (y, x); Terminals[b][n] is that net's terminal list, the same
// list traverseAndCheck must prove fully reachable.
type Batch struct {
	Nets      [][][][]float64
	Terminals [][][]Terminal
}

// NetResult is one net's connectivity/cycle verdict.
type NetResult struct {
	Batch, Net int
	Connected  bool
	Acyclic    bool
	Cells      int
}

// Result collects every net's verdict plus the two scalar aggregates
// spec §4.7 defines over a batch: Overall is the mean, across batch
// entries, of that entry's fraction of nets both connected and acyclic;
// General is the fraction of batch entries where every net scored
// perfectly. Grounded on check_connectivity's
// (overall_result/batch, general_result/batch) return pair.
type Result struct {
	Nets    []NetResult
	Overall float64
	General float64
}

// AllOK reports whether every net in the result is both connected and
// acyclic, per spec §8's connectivity testable property.
func (r Result) AllOK() bool {
	for _, n := range r.Nets {
		if !n.Connected || !n.Acyclic {
			return false
		}
	}
	return true
}
