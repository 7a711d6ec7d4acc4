// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import "github.com/veligor/smlogic/blueprint"

// BuildData is everything a ShapeBase needs to emit its wire-format record.
//
type BuildData struct {
	// Outgoing connections, as ids into the emitted child list.
	Conns []int
	// Resolved hex color, "" for the kind's default.
	Color string
	Pos   Point
	Rot   Rot
	// Id of the shape itself in the emitted child list.
	ID int
}

// A ShapeBase describes an atomic part kind: its physical size, whether it
// can take and emit logic connections, and how it serializes.
//
// Implementations must be immutable; one ShapeBase value may back any
// number of Shapes.
//
type ShapeBase interface {
	Build(d BuildData) blueprint.Child
	Size() Bounds
	HasInput() bool
	HasOutput() bool
}

// A Shape is one placed part: an immutable kind plus the mutable state the
// compiler attaches to it (outgoing connections, color override, the
// keep-alive flag for dead-code elimination).
//
type Shape struct {
	base  ShapeBase
	conns []int
	color string
	keep  bool
}

// NewShape wraps base into a fresh Shape with no connections.
//
func NewShape(base ShapeBase) *Shape {
	return &Shape{base: base}
}

// PushConn appends one outgoing connection by global id.
//
func (s *Shape) PushConn(id int) {
	s.conns = append(s.conns, id)
}

// ExtendConns appends outgoing connections by global id, preserving order.
//
func (s *Shape) ExtendConns(ids []int) {
	s.conns = append(s.conns, ids...)
}

// Conns returns the outgoing connection list.
//
func (s *Shape) Conns() []int {
	return s.conns
}

// SetColor overrides the kind's default color with a hex RRGGBB string.
// Overrides win over slot palette painting.
//
func (s *Shape) SetColor(hex string) {
	s.color = hex
}

// Color returns the override color, "" if unset.
//
func (s *Shape) Color() string {
	return s.color
}

// Retain exempts the shape from RemoveUnused/ReplaceUnused.
//
func (s *Shape) Retain() {
	s.keep = true
}

// Retained reports whether the shape is exempt from dead-code elimination.
//
func (s *Shape) Retained() bool {
	return s.keep
}

// Size returns the physical size of the shape.
//
func (s *Shape) Size() Bounds {
	return s.base.Size()
}

// HasInput reports whether the shape accepts connections.
//
func (s *Shape) HasInput() bool {
	return s.base.HasInput()
}

// HasOutput reports whether the shape emits connections.
//
func (s *Shape) HasOutput() bool {
	return s.base.HasOutput()
}

// Build emits the shape's wire-format record. color is the final resolved
// color ("" lets the kind pick its default).
//
func (s *Shape) Build(pos Point, rot Rot, id int, color string) blueprint.Child {
	return s.base.Build(BuildData{
		Conns: s.conns,
		Color: color,
		Pos:   pos,
		Rot:   rot,
		ID:    id,
	})
}

// clone deep-copies the mutable state; the base is shared.
func (s *Shape) clone() *Shape {
	c := &Shape{base: s.base, color: s.color, keep: s.keep}
	if len(s.conns) > 0 {
		c.conns = append([]int(nil), s.conns...)
	}
	return c
}

// removeConn drops connections to the removed unit and renumbers the rest:
// ids above index shift by offset, ids equal to index are dropped.
func (s *Shape) removeConn(index, offset int) {
	out := s.conns[:0]
	for _, id := range s.conns {
		switch {
		case id == index:
			// dropped
		case id > index:
			out = append(out, id+offset)
		default:
			out = append(out, id)
		}
	}
	s.conns = out
}
