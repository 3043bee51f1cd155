package verify

import "testing"

func TestTraverseAndCheckSimplePath(t *testing.T) {
	// Layer 0 moves along y at fixed x=0: a 3-row, 1-column run.
	m := [][]float64{
		{1},
		{1},
		{1},
	}
	terms := []Terminal{{X: 0, Y: 0, Layer: 0}, {X: 0, Y: 2, Layer: 0}}
	r, err := traverseAndCheck(terms, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Connected || !r.Acyclic {
		t.Fatalf("result = %+v; want connected+acyclic", r)
	}
	if r.Cells != 3 {
		t.Fatalf("Cells = %d; want 3", r.Cells)
	}
}

func TestTraverseAndCheckDetectsCycle(t *testing.T) {
	// Every cell valued 2: a 2x2 block where every (x,y) is present on
	// both layers and via-linked, producing a single 8-node cycle
	// through the layer-0 columns, the layer-1 rows, and the four vias.
	m := [][]float64{
		{2, 2},
		{2, 2},
	}
	terms := []Terminal{{X: 0, Y: 0, Layer: 0}, {X: 1, Y: 1, Layer: 1}}
	r, err := traverseAndCheck(terms, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Connected {
		t.Fatalf("expected connected component")
	}
	if r.Acyclic {
		t.Fatalf("expected a cycle in the fully-vias 2x2 block")
	}
}

func TestTraverseAndCheckDetectsDisconnection(t *testing.T) {
	// Layer 0 only moves along y; the second terminal's cell is unmarked,
	// so the BFS from the first terminal cannot reach it.
	m := [][]float64{
		{1},
		{0},
	}
	terms := []Terminal{{X: 0, Y: 0, Layer: 0}, {X: 0, Y: 1, Layer: 0}}
	r, err := traverseAndCheck(terms, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Connected {
		t.Fatalf("expected disconnected result: second terminal is unreachable")
	}
}

// trivialNet builds a single-terminal net on a 1x1 matrix: a net with
// only one terminal is vacuously connected (its BFS starts there) and
// acyclic (no traversal ever happens), so it always scores perfectly.
func trivialNet(layer int) ([][]float64, []Terminal) {
	return [][]float64{{1}}, []Terminal{{X: 0, Y: 0, Layer: layer}}
}

func TestCheckComputesOverallAndGeneralScores(t *testing.T) {
	// Batch entry 0: one trivially-perfect single-terminal net, one
	// disconnected two-terminal net -> tmp=1, result=0.5.
	m0, t0 := trivialNet(0)
	disconnected, disconnectedTerms := [][]float64{{1}, {0}}, []Terminal{{X: 0, Y: 0, Layer: 0}, {X: 0, Y: 1, Layer: 0}}
	// Batch entry 1: two trivially-perfect single-terminal nets -> result=1.0.
	m1, t1 := trivialNet(1)
	m2, t2 := trivialNet(0)

	b := Batch{
		Nets:      [][][][]float64{{m0, disconnected}, {m1, m2}},
		Terminals: [][][]Terminal{{t0, disconnectedTerms}, {t1, t2}},
	}

	res, err := Check(b, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Nets) != 4 {
		t.Fatalf("Nets = %d; want 4", len(res.Nets))
	}
	if res.Overall != 0.75 {
		t.Fatalf("Overall = %v; want 0.75", res.Overall)
	}
	if res.General != 0.5 {
		t.Fatalf("General = %v; want 0.5", res.General)
	}
}

func TestCheckRejectsEmptyBatch(t *testing.T) {
	if _, err := Check(Batch{}, 2); err != ErrEmptyBatch {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestCheckRejectsTerminalMismatch(t *testing.T) {
	b := Batch{
		Nets:      [][][][]float64{{{{1}}}},
		Terminals: [][][]Terminal{},
	}
	if _, err := Check(b, 2); err != ErrTerminalMismatch {
		t.Fatalf("expected ErrTerminalMismatch, got %v", err)
	}
}
