package app

import (
	img "image"

	"github.com/tidwall/btree"
)

// Surface is a registered 2D drawing area inside the app's content
// container. The chart window gets placed on its rect.
type Surface struct {
	ID   string
	Rect img.Rectangle
}

// SurfaceRegistry resolves surface ids. Unknown ids are reported
// through the bool, never an error.
type SurfaceRegistry struct {
	surfaces *btree.Map[string, *Surface]
}

func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{
		surfaces: btree.NewMap[string, *Surface](0),
	}
}

func (r *SurfaceRegistry) Add(id string, rect img.Rectangle) *Surface {
	s := &Surface{ID: id, Rect: rect}
	r.surfaces.Set(id, s)
	return s
}

func (r *SurfaceRegistry) Resolve(id string) (*Surface, bool) {
	return r.surfaces.Get(id)
}
