// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A Placement is the physical pose assigned to one named scheme.
//
type Placement struct {
	Pos Point
	Rot Rot
}

// A Positioner assigns a physical pose to every scheme a Combiner holds.
// Arrange must return a placement for every name it is given, or an error
// that names what is missing.
//
type Positioner interface {
	// SchemeAdded is called by the Combiner after every successful Add.
	SchemeAdded(name string)

	// Arrange maps each scheme name to its pose.
	Arrange(names []string) (map[string]Placement, error)
}

// UnplacedError reports schemes that reached Compile without a position.
//
type UnplacedError struct {
	Names []string
}

func (e *UnplacedError) Error() string {
	return "schemes have no position: " + strings.Join(e.Names, ", ")
}

// ManualPos is a Positioner with fully explicit position management.
// Compilation fails if any added scheme was never placed.
//
type ManualPos struct {
	poses map[string]*pose
	last  string
}

type pose struct {
	pos    Point
	rot    Rot
	placed bool
}

// NewManualPos returns an empty ManualPos.
//
func NewManualPos() *ManualPos {
	return &ManualPos{poses: make(map[string]*pose)}
}

func (m *ManualPos) entry(name string) *pose {
	p, ok := m.poses[name]
	if !ok {
		p = &pose{rot: Identity()}
		m.poses[name] = p
	}
	return p
}

// Place pins the named scheme to at. Placing twice keeps the last
// position.
//
func (m *ManualPos) Place(name string, at Point) {
	p := m.entry(name)
	p.pos = at
	p.placed = true
}

// PlaceIter places several schemes at once.
//
func (m *ManualPos) PlaceIter(pairs map[string]Point) {
	for name, at := range pairs {
		m.Place(name, at)
	}
}

// PlaceLast places the most recently added scheme. Panics when nothing was
// added yet.
//
func (m *ManualPos) PlaceLast(at Point) {
	if m.last == "" {
		panic("smlogic: ManualPos.PlaceLast before any scheme was added")
	}
	m.Place(m.last, at)
}

// Rotate composes by onto the named scheme's rotation. Rotations
// accumulate in call order.
//
func (m *ManualPos) Rotate(name string, by Rot) {
	p := m.entry(name)
	p.rot = by.Compose(p.rot)
}

// RotateIter rotates several schemes at once.
//
func (m *ManualPos) RotateIter(pairs map[string]Rot) {
	for name, by := range pairs {
		m.Rotate(name, by)
	}
}

// RotateLast rotates the most recently added scheme. Panics when nothing
// was added yet.
//
func (m *ManualPos) RotateLast(by Rot) {
	if m.last == "" {
		panic("smlogic: ManualPos.RotateLast before any scheme was added")
	}
	m.Rotate(m.last, by)
}

// SchemeAdded implements Positioner.
//
func (m *ManualPos) SchemeAdded(name string) { m.last = name }

// Arrange implements Positioner. A scheme that was only rotated, or never
// touched at all, counts as unplaced; all such names are reported in one
// error, sorted.
//
func (m *ManualPos) Arrange(names []string) (map[string]Placement, error) {
	placed := make(map[string]Placement, len(names))
	var missing []string
	for _, name := range names {
		p, ok := m.poses[name]
		if !ok || !p.placed {
			missing = append(missing, name)
			continue
		}
		placed[name] = Placement{Pos: p.pos, Rot: p.rot}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.WithStack(&UnplacedError{Names: missing})
	}
	return placed, nil
}
