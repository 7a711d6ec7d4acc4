// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import (
	"fmt"

	"github.com/pkg/errors"
)

// Missing tells which segment of a target path failed to resolve.
//
type Missing int

// Missing values. Scheme, slot and sector misses are reported separately
// so a caller can tell a typoed scheme name from a typoed sector.
const (
	MissingScheme Missing = iota
	MissingSlot
	MissingSector
)

func (m Missing) String() string {
	switch m {
	case MissingScheme:
		return "scheme"
	case MissingSlot:
		return "slot"
	case MissingSector:
		return "sector"
	}
	return "unknown"
}

// An Unresolved records one target path that did not resolve during
// compilation. It is a diagnostic, not an error: the entry that produced
// it is skipped and the rest of the build proceeds.
//
type Unresolved struct {
	// Target is the path as authored.
	Target string
	// Missing tells which lookup failed.
	Missing Missing
	// Scheme, Slot and Sector are the path segments after defaulting.
	Scheme, Slot, Sector string
}

func (u Unresolved) String() string {
	switch u.Missing {
	case MissingScheme:
		return fmt.Sprintf("target %q: scheme %q does not exist", u.Target, u.Scheme)
	case MissingSlot:
		return fmt.Sprintf("target %q: scheme %q has no slot %q", u.Target, u.Scheme, u.Slot)
	default:
		return fmt.Sprintf("target %q: slot %q has no sector %q", u.Target, u.Slot, u.Sector)
	}
}

// side tells which way a bind or connection lookup faces.
type side int

const (
	sideInput side = iota
	sideOutput
)

func (s side) String() string {
	if s == sideInput {
		return "input"
	}
	return "output"
}

type bindEntry struct {
	corner Point
	size   Bounds
	target string
	conn   Connection
}

type declaredSector struct {
	name string
	sec  Sector
}

// A Bind is a deferred slot specification: a box of abstract points plus
// named mappings from its sectors onto target paths elsewhere. It resolves
// into a concrete Slot during Combiner.Compile, against the namespace of
// the already-flattened sub-schemes.
//
type Bind struct {
	name    string
	kind    string
	size    Bounds
	entries []bindEntry
	sectors []declaredSector
}

// NewBind starts a bind named name with the given kind tag and size.
//
func NewBind(name, kind string, size Bounds) *Bind {
	return &Bind{name: name, kind: kind, size: size}
}

// Name returns the bind name; it becomes the compiled slot's name.
//
func (b *Bind) Name() string { return b.name }

// Kind returns the kind tag.
//
func (b *Bind) Kind() string { return b.kind }

// Bounds returns the bind size.
//
func (b *Bind) Bounds() Bounds { return b.size }

// Custom maps the sector (corner, size) of the bind onto target through
// conn.
//
func (b *Bind) Custom(corner Point, size Bounds, target string, conn Connection) *Bind {
	b.entries = append(b.entries, bindEntry{
		corner: corner,
		size:   size,
		target: target,
		conn:   conn,
	})
	return b
}

// Connect maps the sector (corner, size) straight onto target.
//
func (b *Bind) Connect(corner Point, size Bounds, target string) *Bind {
	return b.Custom(corner, size, target, Straight())
}

// Dim maps the sector (corner, size) onto target broadcasting along the
// flagged axes.
//
func (b *Bind) Dim(corner Point, size Bounds, target string, adaptX, adaptY, adaptZ bool) *Bind {
	return b.Custom(corner, size, target, Dim(adaptX, adaptY, adaptZ))
}

// CustomFull maps the whole bind onto target through conn.
//
func (b *Bind) CustomFull(target string, conn Connection) *Bind {
	return b.Custom(Point{}, b.size, target, conn)
}

// ConnectFull maps the whole bind straight onto target.
//
func (b *Bind) ConnectFull(target string) *Bind {
	return b.Connect(Point{}, b.size, target)
}

// DimFull maps the whole bind onto target broadcasting along the flagged
// axes.
//
func (b *Bind) DimFull(target string, adaptX, adaptY, adaptZ bool) *Bind {
	return b.Dim(Point{}, b.size, target, adaptX, adaptY, adaptZ)
}

// ConnectFunc maps every cell of the bind straight onto the target path f
// returns for it; cells where f reports false stay unmapped.
//
func (b *Bind) ConnectFunc(f func(x, y, z int) (string, bool)) *Bind {
	for z := 0; z < b.size.Z; z++ {
		for y := 0; y < b.size.Y; y++ {
			for x := 0; x < b.size.X; x++ {
				if target, ok := f(x, y, z); ok {
					b.Connect(Point{x, y, z}, V(1, 1, 1), target)
				}
			}
		}
	}
	return b
}

// AddSector pre-declares a named sector on the future slot. Validation is
// eager; the sector is transplanted onto the compiled slot as is.
//
func (b *Bind) AddSector(name string, pos Point, size Bounds, kind string) error {
	if name == WholeSlot {
		return errors.Errorf("bind %q: sector name \"\" is reserved", b.name)
	}
	for _, d := range b.sectors {
		if d.name == name {
			return errors.Errorf("bind %q: sector name %q is already taken", b.name, name)
		}
	}
	end := pos.Add(size)
	if pos.X < 0 || pos.Y < 0 || pos.Z < 0 ||
		end.X > b.size.X || end.Y > b.size.Y || end.Z > b.size.Z {
		return errors.Errorf("bind %q: sector %q at %v size %v is out of the bind bounds %v",
			b.name, name, pos, size, b.size)
	}
	b.sectors = append(b.sectors, declaredSector{
		name: name,
		sec:  Sector{Pos: pos, Size: size, Kind: kind},
	})
	return nil
}

// nsEntry is one flattened sub-scheme in a resolution namespace: its global
// unit index offset and its (relocated) slots for one side.
type nsEntry struct {
	offset int
	slots  []*Slot
}

// resolveSector resolves a target path against a namespace. On failure the
// returned Unresolved says exactly which segment missed.
func resolveSector(target string, ns map[string]nsEntry) (nsEntry, *Slot, Sector, *Unresolved) {
	schemeName, slotName, sectorName := splitPath(target)
	entry, ok := ns[schemeName]
	if !ok {
		return nsEntry{}, nil, Sector{}, &Unresolved{
			Target: target, Missing: MissingScheme,
			Scheme: schemeName, Slot: slotName, Sector: sectorName,
		}
	}
	slot := findSlot(slotName, entry.slots)
	if slot == nil {
		return nsEntry{}, nil, Sector{}, &Unresolved{
			Target: target, Missing: MissingSlot,
			Scheme: schemeName, Slot: slotName, Sector: sectorName,
		}
	}
	sec, ok := slot.Sector(sectorName)
	if !ok {
		return nsEntry{}, nil, Sector{}, &Unresolved{
			Target: target, Missing: MissingSector,
			Scheme: schemeName, Slot: slotName, Sector: sectorName,
		}
	}
	return entry, slot, sec, nil
}

// compile resolves the bind into a concrete Slot. Entries whose target does
// not resolve are skipped one by one and reported; compile never fails as a
// whole. Input binds receive from their targets, output binds mirror the
// direction — either way the target's global unit indices end up on the
// local point's list.
func (b *Bind) compile(ns map[string]nsEntry, s side) (*Slot, []Unresolved) {
	slot := NewSlot(b.name, b.kind, b.size, nil)
	var bad []Unresolved

	for _, e := range b.entries {
		entry, target, tsec, u := resolveSector(e.target, ns)
		if u != nil {
			bad = append(bad, *u)
			continue
		}

		var pairs []Pair
		switch s {
		case sideInput:
			pairs = e.conn.Connect(e.size, tsec.Size)
		case sideOutput:
			for _, p := range e.conn.Connect(tsec.Size, e.size) {
				pairs = append(pairs, Pair{From: p.To, To: p.From})
			}
		}

		for _, p := range pairs {
			local := p.From.Add(e.corner)
			remote := p.To.Add(tsec.Pos)
			// Strategies over-propose on mismatched sizes; silently drop
			// what lands outside either slot.
			if !InBounds(local, b.size) || !InBounds(remote, target.Bounds()) {
				continue
			}
			ids := target.Point(remote)
			if len(ids) == 0 {
				continue
			}
			global := make([]int, len(ids))
			for i, id := range ids {
				global[i] = id + entry.offset
			}
			slot.appendAt(local, global)
		}
	}

	for _, d := range b.sectors {
		// validated in AddSector
		_ = slot.BindSector(d.name, d.sec)
	}
	return slot, bad
}
