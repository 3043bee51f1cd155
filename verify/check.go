package verify

import "sync"

// Check verifies every net of every batch entry independently, bounded by
// workers concurrent goroutines (workers <= 0 runs serially). Grounded on
// check_connectivity's per-batch parallel-for, parallelized across the
// batch dimension per spec §5's "embarrassingly parallel once per-GCell
// work is independent" scheduling note.
func Check(b Batch, workers int) (Result, error) {
	if len(b.Nets) == 0 {
		return Result{}, ErrEmptyBatch
	}
	if len(b.Nets) != len(b.Terminals) {
		return Result{}, ErrTerminalMismatch
	}

	type job struct{ bi, ni int }
	var jobs []job
	batchStart := make([]int, len(b.Nets)+1)
	for bi := range b.Nets {
		if len(b.Nets[bi]) != len(b.Terminals[bi]) {
			return Result{}, ErrTerminalMismatch
		}
		batchStart[bi+1] = batchStart[bi] + len(b.Nets[bi])
		for ni := range b.Nets[bi] {
			jobs = append(jobs, job{bi, ni})
		}
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return Result{}, nil
	}

	results := make([]NetResult, len(jobs))
	errs := make([]error, len(jobs))
	jobCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				j := jobs[idx]
				r, err := traverseAndCheck(b.Terminals[j.bi][j.ni], b.Nets[j.bi][j.ni])
				r.Batch, r.Net = j.bi, j.ni
				results[idx] = r
				errs[idx] = err
			}
		}()
	}
	for idx := range jobs {
		jobCh <- idx
	}
	close(jobCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}

	// Two-scalar batch score, per spec §4.7: tmp sums the per-net
	// connected-and-acyclic indicator, overall averages tmp/nets_per_batch
	// across batch entries, general averages the "every net in this
	// entry scored perfectly" indicator.
	var overall, general float64
	for bi := range b.Nets {
		netsInBatch := batchStart[bi+1] - batchStart[bi]
		if netsInBatch == 0 {
			continue
		}
		var tmp float64
		for i := batchStart[bi]; i < batchStart[bi+1]; i++ {
			if results[i].Connected && results[i].Acyclic {
				tmp++
			}
		}
		result := tmp / float64(netsInBatch)
		overall += result
		if result == 1.0 {
			general++
		}
	}
	overall /= float64(len(b.Nets))
	general /= float64(len(b.Nets))

	return Result{Nets: results, Overall: overall, General: general}, nil
}

// point is a matrix coordinate plus its layer, the traversal unit
// traverse_and_check's parent map keys on.
type point struct{ x, y, layer int }

// neighbors returns p's valid traversal neighbors under this matrix's
// layer-parity adjacency: layer 0 moves along y (x fixed), layer 1 moves
// along x (y fixed) — this module's established Stack.CreateGraph axis
// convention (z=0 routes along Y, z=1 along X; see rstack/stack.go),
// not net_connectivity.cpp's literal x/y labels, which assume the
// opposite layer/axis pairing. A cell valued 2 is a via: it additionally
// connects p to the same (x, y) on the other layer, per
// net_connectivity.cpp's get_neighbors.
func neighbors(p point, m [][]float64) []point {
	rows := len(m)
	cols := len(m[0])
	within := func(x, y int) bool { return x >= 0 && x < cols && y >= 0 && y < rows }

	var out []point
	if p.layer == 0 {
		if within(p.x, p.y-1) && m[p.y-1][p.x] != 0 {
			out = append(out, point{p.x, p.y - 1, 0})
		}
		if within(p.x, p.y+1) && m[p.y+1][p.x] != 0 {
			out = append(out, point{p.x, p.y + 1, 0})
		}
	} else {
		if within(p.x-1, p.y) && m[p.y][p.x-1] != 0 {
			out = append(out, point{p.x - 1, p.y, 1})
		}
		if within(p.x+1, p.y) && m[p.y][p.x+1] != 0 {
			out = append(out, point{p.x + 1, p.y, 1})
		}
	}
	if m[p.y][p.x] == 2 {
		out = append(out, point{p.x, p.y, 1 - p.layer})
	}
	return out
}

// traverseAndCheck runs a parent-tracking BFS from terms[0] over m's
// layer-parity adjacency, grounded line-for-line on
// net_connectivity.cpp's traverse_and_check: Connected holds when every
// terminal in terms was reached; Acyclic holds when no already-visited
// neighbor other than the current node's own parent was encountered
// during the traversal.
func traverseAndCheck(terms []Terminal, m [][]float64) (NetResult, error) {
	if len(terms) == 0 {
		// No terminals to connect: the original scores this net 0
		// unconditionally, which Connected=false reproduces regardless
		// of Acyclic.
		return NetResult{Connected: false, Acyclic: true}, nil
	}
	rows := len(m)
	if rows == 0 {
		// An empty matrix cannot reach any terminal.
		return NetResult{Connected: false, Acyclic: true}, nil
	}
	cols := len(m[0])
	for _, row := range m {
		if len(row) != cols {
			return NetResult{}, ErrRaggedMatrix
		}
	}

	start := point{terms[0].X, terms[0].Y, terms[0].Layer}
	sentinel := point{-1, -1, -1}
	parent := map[point]point{start: sentinel}
	queue := []point{start}
	cycleFound := false

	for len(queue) > 0 && !cycleFound {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(cur, m) {
			if _, ok := parent[n]; !ok {
				parent[n] = cur
				queue = append(queue, n)
			} else if n != parent[cur] {
				cycleFound = true
				break
			}
		}
	}

	connected := true
	for _, t := range terms {
		if _, ok := parent[point{t.X, t.Y, t.Layer}]; !ok {
			connected = false
			break
		}
	}

	return NetResult{
		Connected: connected,
		Acyclic:   !cycleFound,
		Cells:     len(parent),
	}, nil
}
