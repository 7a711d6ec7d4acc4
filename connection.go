// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import "sort"

// A Pair is one point-to-point connection proposed by a Connection.
//
type Pair struct {
	From, To Point
}

// A Connection maps the points of one box onto the points of another,
// looking only at the two box sizes. Strategies propose pairs; they do not
// bounds-check against the actual slots — Bind and Combiner drop pairs that
// land outside either slot.
//
type Connection interface {
	Connect(start, end Bounds) []Pair
}

type straight struct{}

// Straight is the one-to-one mapping. When the sizes differ it truncates
// each axis to the smaller of the two, so neither box is necessarily
// covered.
//
func Straight() Connection {
	return straight{}
}

func (straight) Connect(start, end Bounds) []Pair {
	size := minv(start, end)
	pairs := make([]Pair, 0, size.Volume())
	for z := 0; z < size.Z; z++ {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				p := Point{x, y, z}
				pairs = append(pairs, Pair{p, p})
			}
		}
	}
	return pairs
}

type dim struct {
	x, y, z bool
}

// Dim broadcasts along the flagged axes: every start point connects to
// every end coordinate on an adapted axis and keeps its own coordinate on
// the others. The kept coordinate is not checked against the end box here;
// the caller's pair filter drops it if it falls outside.
//
func Dim(adaptX, adaptY, adaptZ bool) Connection {
	return dim{x: adaptX, y: adaptY, z: adaptZ}
}

func (d dim) Connect(start, end Bounds) []Pair {
	var pairs []Pair
	for z := 0; z < start.Z; z++ {
		for y := 0; y < start.Y; y++ {
			for x := 0; x < start.X; x++ {
				from := Point{x, y, z}
				xr := d.axisRange(d.x, x, end.X)
				yr := d.axisRange(d.y, y, end.Y)
				zr := d.axisRange(d.z, z, end.Z)
				for _, ex := range xr {
					for _, ey := range yr {
						for _, ez := range zr {
							pairs = append(pairs, Pair{from, Point{ex, ey, ez}})
						}
					}
				}
			}
		}
	}
	return pairs
}

func (dim) axisRange(adapt bool, own, end int) []int {
	if !adapt {
		return []int{own}
	}
	r := make([]int, end)
	for i := range r {
		r[i] = i
	}
	return r
}

// A MapFunc computes the end point for a start point, or reports false to
// drop it from the mapping.
//
type MapFunc func(p Point, start, end Bounds) (Point, bool)

type mapped struct {
	f MapFunc
}

// MapPoints connects each start point through f. Shifted, mirrored or
// scaled addressing is expressed this way.
//
func MapPoints(f MapFunc) Connection {
	return mapped{f: f}
}

func (m mapped) Connect(start, end Bounds) []Pair {
	var pairs []Pair
	for z := 0; z < start.Z; z++ {
		for y := 0; y < start.Y; y++ {
			for x := 0; x < start.X; x++ {
				from := Point{x, y, z}
				if to, ok := m.f(from, start, end); ok {
					pairs = append(pairs, Pair{from, to})
				}
			}
		}
	}
	return pairs
}

type filtered struct {
	inner Connection
	keep  func(from, to Point) bool
}

// Filter drops pairs of inner for which keep returns false.
//
func Filter(inner Connection, keep func(from, to Point) bool) Connection {
	return filtered{inner: inner, keep: keep}
}

func (f filtered) Connect(start, end Bounds) []Pair {
	pairs := f.inner.Connect(start, end)
	out := pairs[:0:0]
	for _, p := range pairs {
		if f.keep(p.From, p.To) {
			out = append(out, p)
		}
	}
	return out
}

type jointStep struct {
	bounds    Bounds
	hasBounds bool
	conn      Connection
}

// A Joint chains connections, optionally re-bounding the virtual slot in
// between steps. It behaves as one Connection: a chain through steps
// survives only while each intermediate point lands inside the declared
// intermediate bounds, and the final pair list is deduplicated since
// fan-out into fan-in produces duplicates.
//
type Joint struct {
	steps []jointStep
}

// Chain starts a Joint with a first connection.
//
func Chain(first Connection) *Joint {
	return &Joint{steps: []jointStep{{conn: first}}}
}

// Then appends a connection keeping the current virtual bounds.
//
func (j *Joint) Then(c Connection) *Joint {
	j.steps = append(j.steps, jointStep{conn: c})
	return j
}

// ThenVia appends a connection re-bounding the virtual slot to b first.
//
func (j *Joint) ThenVia(b Bounds, c Connection) *Joint {
	j.steps = append(j.steps, jointStep{bounds: b, hasBounds: true, conn: c})
	return j
}

// Connect threads point pairs through every step in turn.
//
func (j *Joint) Connect(start, end Bounds) []Pair {
	sb := start
	prev := Straight().Connect(start, start)

	for i, step := range j.steps {
		if step.hasBounds {
			sb = step.bounds
		}
		eb := sb
		if i+1 < len(j.steps) {
			if next := j.steps[i+1]; next.hasBounds {
				eb = next.bounds
			}
		} else {
			eb = end
		}

		vecs := step.conn.Connect(sb, eb)
		var next []Pair
		for _, pv := range prev {
			for _, v := range vecs {
				if pv.To == v.From && InBounds(v.To, eb) {
					next = append(next, Pair{pv.From, v.To})
				}
			}
		}
		prev = next
		sb = eb
	}

	return dedupPairs(prev)
}

func dedupPairs(pairs []Pair) []Pair {
	sort.Slice(pairs, func(i, j int) bool {
		return lessPair(pairs[i], pairs[j])
	})
	out := pairs[:0]
	for i, p := range pairs {
		if i == 0 || p != pairs[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func lessPair(a, b Pair) bool {
	if a.From != b.From {
		return lessPoint(a.From, b.From)
	}
	return lessPoint(a.To, b.To)
}

func lessPoint(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
