// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import "github.com/veligor/smlogic/blueprint"

// A Unit is one placed shape inside a scheme.
//
type Unit struct {
	Pos   Point
	Rot   Rot
	Shape *Shape
}

// A Scheme is a compiled, self-contained circuit fragment: an ordered unit
// list plus named input and output slots. Schemes behave as values —
// embedding one into a Combiner deep-copies it, so a template used many
// times never aliases unit identities.
//
type Scheme struct {
	units   []Unit
	inputs  []*Slot
	outputs []*Slot
	bounds  Bounds
}

// NewScheme builds a scheme and computes its bounding box.
//
func NewScheme(units []Unit, inputs, outputs []*Slot) *Scheme {
	s := &Scheme{units: units, inputs: inputs, outputs: outputs}
	_, s.bounds = s.calcBounds()
	return s
}

// SchemeFromShape wraps one shape into a scheme with the unit at the
// origin. The shape's capabilities decide which sides get the 1×1×1
// default slot.
//
func SchemeFromShape(sh *Shape) *Scheme {
	var inputs, outputs []*Slot
	if sh.HasInput() {
		inputs = append(inputs, singleUnitSlot())
	}
	if sh.HasOutput() {
		outputs = append(outputs, singleUnitSlot())
	}
	return NewScheme(
		[]Unit{{Pos: Point{}, Rot: Identity(), Shape: sh}},
		inputs, outputs,
	)
}

func singleUnitSlot() *Slot {
	points := NewMap3D[[]int](V(1, 1, 1))
	points.Set(Point{}, []int{0})
	return NewSlot(DefaultSlot, "logic", V(1, 1, 1), points)
}

// Units returns the unit list. Callers must treat it as read-only.
//
func (s *Scheme) Units() []Unit { return s.units }

// UnitCount returns the number of units.
//
func (s *Scheme) UnitCount() int { return len(s.units) }

// Inputs returns the input slots.
//
func (s *Scheme) Inputs() []*Slot { return s.inputs }

// Outputs returns the output slots.
//
func (s *Scheme) Outputs() []*Slot { return s.outputs }

// Input returns the named input slot, nil if absent.
//
func (s *Scheme) Input(name string) *Slot { return findSlot(name, s.inputs) }

// Output returns the named output slot, nil if absent.
//
func (s *Scheme) Output(name string) *Slot { return findSlot(name, s.outputs) }

// Bounds returns the cached bounding box size.
//
func (s *Scheme) Bounds() Bounds { return s.bounds }

// Rotate applies rot to the whole scheme: every unit position and every
// unit rotation, with rot composed after the unit's own rotation. The
// bounding box is recomputed.
//
func (s *Scheme) Rotate(rot Rot) {
	for i := range s.units {
		s.units[i].Pos = rot.Apply(s.units[i].Pos)
		s.units[i].Rot = rot.Compose(s.units[i].Rot)
	}
	_, s.bounds = s.calcBounds()
}

// Clone deep-copies the scheme: units, their connection lists and all
// slots.
//
func (s *Scheme) Clone() *Scheme {
	units := make([]Unit, len(s.units))
	for i, u := range s.units {
		units[i] = Unit{Pos: u.Pos, Rot: u.Rot, Shape: u.Shape.clone()}
	}
	inputs := make([]*Slot, len(s.inputs))
	for i, sl := range s.inputs {
		inputs[i] = sl.clone()
	}
	outputs := make([]*Slot, len(s.outputs))
	for i, sl := range s.outputs {
		outputs[i] = sl.clone()
	}
	c := &Scheme{units: units, inputs: inputs, outputs: outputs, bounds: s.bounds}
	return c
}

// calcBounds returns the minimal box containing every unit's rotated
// volume and its anchor corner. Each unit rotates around the center of its
// first cell, so the rotated diagonal may point backwards; the fold over
// both corners normalizes that.
func (s *Scheme) calcBounds() (Point, Bounds) {
	if len(s.units) == 0 {
		return Point{}, Bounds{}
	}
	min := s.units[0].Pos
	max := s.units[0].Pos
	for _, u := range s.units {
		start := u.Pos
		end := u.Pos.Add(u.Rot.Apply(u.Shape.Size()))
		min = minv(min, minv(start, end))
		max = maxv(max, maxv(start, end))
	}
	return min, max.Sub(min)
}

// disassemble relocates the scheme for embedding: positions become
// origin-relative, the placement rotation and offset are applied, and
// every unit's existing connection indices shift by the global offset. The
// returned slots still hold scheme-local unit indices; the caller tracks
// the offset alongside them.
func (s *Scheme) disassemble(offset int, at Point, rot Rot) ([]Unit, []*Slot, []*Slot) {
	origin, _ := s.calcBounds()
	units := s.units
	for i := range units {
		units[i].Pos = rot.Apply(units[i].Pos.Sub(origin)).Add(at)
		units[i].Rot = rot.Compose(units[i].Rot)
		conns := units[i].Shape.conns
		for j := range conns {
			conns[j] += offset
		}
	}
	return units, s.inputs, s.outputs
}

// usedUnits computes the reachability set for dead-code elimination: a
// unit is used if it is retained, addressed by any output slot point, or
// connects into a used unit. Runs to a fixed point.
func (s *Scheme) usedUnits() []bool {
	used := make([]bool, len(s.units))
	for i, u := range s.units {
		if u.Shape.Retained() {
			used[i] = true
		}
	}
	for _, slot := range s.outputs {
		for _, ids := range slot.points.Raw() {
			for _, id := range ids {
				if id >= 0 && id < len(used) {
					used[id] = true
				}
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for i, u := range s.units {
			if used[i] {
				continue
			}
			for _, c := range u.Shape.Conns() {
				if c >= 0 && c < len(used) && used[c] {
					used[i] = true
					changed = true
					break
				}
			}
		}
	}
	return used
}

// RemoveUnused deletes every unit not reachable from an output slot (and
// not retained), renumbering all connection indices and slot point maps.
// Composition tends to leave logically dead filler behind, and dead units
// materially change the exported artifact.
//
func (s *Scheme) RemoveUnused() {
	used := s.usedUnits()
	for i := len(used) - 1; i >= 0; i-- {
		if !used[i] {
			s.removeUnit(i)
		}
	}
	_, s.bounds = s.calcBounds()
}

// ReplaceUnused swaps the content of every unused unit for base in place,
// keeping position, color and the retained flag. Connections of replaced
// units are cleared — an inert part has no controller to carry them.
//
func (s *Scheme) ReplaceUnused(base ShapeBase) {
	used := s.usedUnits()
	for i, u := range used {
		if u {
			continue
		}
		old := s.units[i].Shape
		sh := NewShape(base)
		sh.color = old.color
		sh.keep = old.keep
		s.units[i].Shape = sh
	}
}

// removeUnit deletes the unit at index i and renumbers every connection
// list and every slot point map.
func (s *Scheme) removeUnit(i int) {
	s.units = append(s.units[:i], s.units[i+1:]...)
	for _, u := range s.units {
		u.Shape.removeConn(i, -1)
	}
	for _, slot := range s.inputs {
		slot.shapeRemoved(i, -1)
	}
	for _, slot := range s.outputs {
		slot.shapeRemoved(i, -1)
	}
}

// Blueprint serializes the scheme. Units reached by input slots are
// painted with the input palette, units reached by output slots with the
// output palette (outputs win), explicit shape colors win over both; every
// unit then emits its own record, in unit-list order, so controller ids
// reference positions in the emitted list.
//
func (s *Scheme) Blueprint() *blueprint.Blueprint {
	colors := make([]string, len(s.units))
	for si, slot := range s.inputs {
		s.paint(colors, slot, si, InputColor)
	}
	for si, slot := range s.outputs {
		s.paint(colors, slot, si, OutputColor)
	}

	childs := make([]blueprint.Child, len(s.units))
	for i, u := range s.units {
		color := u.Shape.Color()
		if color == "" {
			color = colors[i]
		}
		childs[i] = u.Shape.Build(u.Pos, u.Rot, i, color)
	}
	return blueprint.New(childs)
}

func (s *Scheme) paint(colors []string, slot *Slot, slotID int, palette func(id int, p Point) string) {
	b := slot.Bounds()
	for z := 0; z < b.Z; z++ {
		for y := 0; y < b.Y; y++ {
			for x := 0; x < b.X; x++ {
				p := Point{x, y, z}
				for _, id := range slot.Point(p) {
					if id >= 0 && id < len(colors) {
						colors[id] = palette(slotID, p)
					}
				}
			}
		}
	}
}
