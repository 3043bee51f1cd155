package costmap

import "github.com/vlsirt/routecore/rstack"

// DistanceCostMap encodes stack's matrix into a CostMap, per spec §4.8:
// unreached cells are 0.0, reached non-terminal cells are normalized into
// [0, 0.9] by distance to the nearest terminal (the farthest reached
// distance maps to 0.0, the same value as an unreached cell), and terminal
// cells are pinned at 1.0 regardless of their own distance.
func DistanceCostMap(stack *rstack.Stack, sources []rstack.Point3, opts ...Option) (CostMap, error) {
	if len(sources) == 0 {
		return CostMap{}, ErrNoTerminals
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	dist := multiSourceDijkstra(stack.Graph, sources, cfg)

	min, max := minMaxReached(dist)

	shape := stack.Matrix.Shape
	out := CostMap{
		Bottom: Layer{X: shape.X, Y: shape.Y, Data: make([]float64, shape.X*shape.Y)},
		Top:    Layer{X: shape.X, Y: shape.Y, Data: make([]float64, shape.X*shape.Y)},
	}

	for x := 0; x < shape.X; x++ {
		for y := 0; y < shape.Y; y++ {
			out.Bottom.set(x, y, encodeCell(stack, dist, min, max, x, y, 0))
			out.Top.set(x, y, encodeCell(stack, dist, min, max, x, y, 1))
		}
	}
	return out, nil
}

func encodeCell(stack *rstack.Stack, dist map[string]float64, min, max float64, x, y, z int) float64 {
	if stack.Matrix.GetAt(x, y, z) == rstack.Terminal {
		return 1.0
	}
	id := rstack.VertexID(rstack.Point3{X: x, Y: y, Z: z})
	d, ok := dist[id]
	if !ok {
		return 0.0
	}
	if max <= min {
		return 0.9
	}
	return 0.9 * (1 - (d-min)/(max-min))
}

func minMaxReached(dist map[string]float64) (min, max float64) {
	first := true
	for _, d := range dist {
		if first {
			min, max = d, d
			first = false
			continue
		}
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
