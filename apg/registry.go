package apg

// Registry owns every AccessPointGrid belonging to one design, addressed
// by Ref (its index). This is the arena DESIGN NOTES §9 calls for in
// place of the original's raw, destructor-unlinked neighbor pointers.
type Registry struct {
	grids []*AccessPointGrid
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add inserts g into the registry and returns its Ref.
func (r *Registry) Add(g *AccessPointGrid) Ref {
	r.grids = append(r.grids, g)
	return Ref(len(r.grids) - 1)
}

// Get returns the grid addressed by ref, or nil with ErrInvalidRef.
func (r *Registry) Get(ref Ref) (*AccessPointGrid, error) {
	if ref == NoRef {
		return nil, nil
	}
	if int(ref) < 0 || int(ref) >= len(r.grids) {
		return nil, ErrInvalidRef
	}
	return r.grids[ref], nil
}

// LinkHorizontal records that left and right are horizontal neighbors
// (left.Right, right.Left), mirroring GCell.hpp's `connect` static;
// LinkVertical does the same for top/bottom adjacency.
func (r *Registry) LinkHorizontal(left, right Ref) error {
	lg, err := r.Get(left)
	if err != nil {
		return err
	}
	rg, err := r.Get(right)
	if err != nil {
		return err
	}
	lg.Right = right
	rg.Left = left
	return nil
}

// LinkVertical records top/bottom adjacency.
func (r *Registry) LinkVertical(top, bottom Ref) error {
	tg, err := r.Get(top)
	if err != nil {
		return err
	}
	bg, err := r.Get(bottom)
	if err != nil {
		return err
	}
	tg.Bottom = bottom
	bg.Top = top
	return nil
}
