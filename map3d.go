// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

// A Map3D is a dense fixed-size 3D array addressed by Point.
//
type Map3D[T any] struct {
	sx, sy, sz int
	data       []T
}

// NewMap3D returns a zero-filled map of the given size.
//
func NewMap3D[T any](size Bounds) *Map3D[T] {
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		panic("negative Map3D size")
	}
	return &Map3D[T]{
		sx:   size.X,
		sy:   size.Y,
		sz:   size.Z,
		data: make([]T, size.X*size.Y*size.Z),
	}
}

// Bounds returns the map size.
//
func (m *Map3D[T]) Bounds() Bounds {
	return Bounds{X: m.sx, Y: m.sy, Z: m.sz}
}

// At returns the cell at p. ok is false when p is out of range.
//
func (m *Map3D[T]) At(p Point) (v T, ok bool) {
	i, ok := m.index(p)
	if !ok {
		return v, false
	}
	return m.data[i], true
}

// Mut returns a pointer to the cell at p, or nil when p is out of range.
//
func (m *Map3D[T]) Mut(p Point) *T {
	i, ok := m.index(p)
	if !ok {
		return nil
	}
	return &m.data[i]
}

// Set stores v at p and reports whether p was in range.
//
func (m *Map3D[T]) Set(p Point, v T) bool {
	i, ok := m.index(p)
	if !ok {
		return false
	}
	m.data[i] = v
	return true
}

// Raw returns the backing slice in x-fastest order.
//
func (m *Map3D[T]) Raw() []T {
	return m.data
}

func (m *Map3D[T]) index(p Point) (int, bool) {
	if !InBounds(p, m.Bounds()) {
		return 0, false
	}
	return p.X + p.Y*m.sx + p.Z*m.sx*m.sy, true
}
