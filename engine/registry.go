package engine

import (
	"github.com/automoto/bombarena/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Register links obj to e and adds it to the collision space. The object's
// resolv tags are the registry categories the entity belongs to.
func (s *Simulation) Register(e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	s.Space.Add(obj)
	obj.Update()
}

// Unregister schedules e for removal at the end of the tick. Calling it again
// for the same entity, or for one that is already gone, does nothing.
func (s *Simulation) Unregister(e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	ent := e.Entity()
	if _, ok := s.pending[ent]; ok {
		return
	}
	s.pending[ent] = struct{}{}
	s.order = append(s.order, ent)
}

// IsPending reports whether e is scheduled for removal.
func (s *Simulation) IsPending(e *donburi.Entry) bool {
	_, ok := s.pending[e.Entity()]
	return ok
}

// Flush removes every scheduled entity from the space and the world.
func (s *Simulation) Flush() int {
	removed := 0
	for _, ent := range s.order {
		if !s.World.Valid(ent) {
			continue
		}
		e := s.World.Entry(ent)
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				s.Space.Remove(obj.Object)
			}
		}
		s.World.Remove(ent)
		removed++
	}
	clear(s.pending)
	s.order = s.order[:0]
	return removed
}

// Overlapping returns the live members of category whose bounding boxes
// overlap obj, excluding obj itself.
func (s *Simulation) Overlapping(obj *resolv.Object, category string) []*donburi.Entry {
	var out []*donburi.Entry
	s.eachOverlap(obj.X, obj.Y, obj.W, obj.H, obj, category, func(e *donburi.Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// FirstOverlap returns the first live member of category overlapping obj.
func (s *Simulation) FirstOverlap(obj *resolv.Object, category string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	s.eachOverlap(obj.X, obj.Y, obj.W, obj.H, obj, category, func(e *donburi.Entry) bool {
		found = e
		return false
	})
	return found, found != nil
}

// AnyOverlap reports whether obj overlaps any live member of category.
func (s *Simulation) AnyOverlap(obj *resolv.Object, category string) bool {
	_, ok := s.FirstOverlap(obj, category)
	return ok
}

// AnyOverlapRect is AnyOverlap for an area that has no entity of its own.
func (s *Simulation) AnyOverlapRect(x, y, w, h float64, category string) bool {
	found := false
	s.eachOverlap(x, y, w, h, nil, category, func(*donburi.Entry) bool {
		found = true
		return false
	})
	return found
}

// eachOverlap uses the space cells as a broad phase and the strict box test
// as the narrow phase. The probe is padded by a pixel so objects on a cell
// boundary are never missed by the cell lookup.
func (s *Simulation) eachOverlap(x, y, w, h float64, self *resolv.Object, category string, fn func(*donburi.Entry) bool) {
	probe := resolv.NewObject(x-1, y-1, w+2, h+2)
	s.Space.Add(probe)
	probe.Update()
	check := probe.Check(0, 0, category)
	s.Space.Remove(probe)
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(category) {
		if o == self || !overlapsRect(x, y, w, h, o) {
			continue
		}
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() || s.IsPending(e) {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Overlaps is the strict axis-aligned box test. Boxes that only share an
// edge do not overlap.
func Overlaps(a, b *resolv.Object) bool {
	return overlapsRect(a.X, a.Y, a.W, a.H, b)
}

func overlapsRect(x, y, w, h float64, b *resolv.Object) bool {
	return x < b.X+b.W && b.X < x+w && y < b.Y+b.H && b.Y < y+h
}
