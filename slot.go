// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import (
	"sort"

	"github.com/pkg/errors"
)

// A Sector is a named axis-aligned sub-region of a Slot, reusable as a
// connection endpoint.
//
type Sector struct {
	Pos  Point
	Size Bounds
	Kind string
}

// A Slot is the addressable interface surface of a Scheme: a 3D grid of
// abstract points, each mapping to any number of unit indices, plus a flat
// namespace of named sectors. The sector name "" is reserved and denotes
// the slot itself.
//
type Slot struct {
	name    string
	kind    string
	size    Bounds
	points  *Map3D[[]int]
	sectors map[string]Sector
}

// NewSlot builds a slot over a point map. points may be nil, in which case
// an empty map of the given size is allocated.
//
func NewSlot(name, kind string, size Bounds, points *Map3D[[]int]) *Slot {
	if points == nil {
		points = NewMap3D[[]int](size)
	}
	return &Slot{
		name:    name,
		kind:    kind,
		size:    size,
		points:  points,
		sectors: make(map[string]Sector),
	}
}

// Name returns the slot name.
//
func (s *Slot) Name() string { return s.name }

// Kind returns the free-form semantic tag of the slot.
//
func (s *Slot) Kind() string { return s.kind }

// Bounds returns the abstract addressable size.
//
func (s *Slot) Bounds() Bounds { return s.size }

// Point returns the unit indices mapped at p. Out-of-range and unconnected
// points both yield an empty list.
//
func (s *Slot) Point(p Point) []int {
	ids, _ := s.points.At(p)
	return ids
}

// Sector returns the named sector. The reserved name "" always resolves to
// the whole slot.
//
func (s *Slot) Sector(name string) (Sector, bool) {
	if name == WholeSlot {
		return Sector{Pos: Point{}, Size: s.size, Kind: s.kind}, true
	}
	sec, ok := s.sectors[name]
	return sec, ok
}

// SectorNames returns the declared sector names in sorted order.
//
func (s *Slot) SectorNames() []string {
	names := make([]string, 0, len(s.sectors))
	for n := range s.sectors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BindSector declares a named sector. The name "" is reserved for the slot
// itself and the sector box must lie entirely inside the slot.
//
func (s *Slot) BindSector(name string, sec Sector) error {
	if name == WholeSlot {
		return errors.Errorf("slot %q: sector name \"\" is reserved for the slot itself", s.name)
	}
	if _, taken := s.sectors[name]; taken {
		return errors.Errorf("slot %q: sector name %q is already taken", s.name, name)
	}
	end := sec.Pos.Add(sec.Size)
	if sec.Pos.X < 0 || sec.Pos.Y < 0 || sec.Pos.Z < 0 ||
		end.X > s.size.X || end.Y > s.size.Y || end.Z > s.size.Z {
		return errors.Errorf("slot %q: sector %q at %v size %v is out of the slot bounds %v",
			s.name, name, sec.Pos, sec.Size, s.size)
	}
	s.sectors[name] = sec
	return nil
}

// appendAt appends unit indices to the point list at p. Out-of-range
// points are ignored.
func (s *Slot) appendAt(p Point, ids []int) {
	if cell := s.points.Mut(p); cell != nil {
		*cell = append(*cell, ids...)
	}
}

// shapeRemoved renumbers the whole point map after the unit at index was
// removed from the owning scheme: every recorded index above it shifts by
// offset, every reference to it is dropped. Indices are dense, so every
// point list has to be rescanned.
func (s *Slot) shapeRemoved(index, offset int) {
	for i, ids := range s.points.Raw() {
		out := ids[:0]
		for _, id := range ids {
			switch {
			case id == index:
				// dropped
			case id > index:
				out = append(out, id+offset)
			default:
				out = append(out, id)
			}
		}
		s.points.Raw()[i] = out
	}
}

// clone deep-copies the slot.
func (s *Slot) clone() *Slot {
	points := NewMap3D[[]int](s.size)
	raw := points.Raw()
	for i, ids := range s.points.Raw() {
		if len(ids) > 0 {
			raw[i] = append([]int(nil), ids...)
		}
	}
	c := NewSlot(s.name, s.kind, s.size, points)
	for n, sec := range s.sectors {
		c.sectors[n] = sec
	}
	return c
}

// findSlot returns the named slot, nil if absent.
func findSlot(name string, slots []*Slot) *Slot {
	for _, s := range slots {
		if s.name == name {
			return s
		}
	}
	return nil
}
