// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MaxConnections is the hard fan-out ceiling of the target format: a
// single controller cannot drive more outputs than this.
const MaxConnections = 255

// A ConnIssue records one deferred connection request whose endpoints
// could not be resolved at compile time.
//
type ConnIssue struct {
	From  string
	To    string
	Cause Unresolved
}

// A BindIssue records one unresolved reference inside a named bind.
//
type BindIssue struct {
	Bind  string
	Cause Unresolved
}

// Diagnostics collects everything a compile could not resolve. Unresolved
// references are not fatal: compilation still succeeds, the affected
// connections are simply absent from the result.
//
type Diagnostics struct {
	Connections []ConnIssue
	Inputs      []BindIssue
	Outputs     []BindIssue
}

// Empty reports whether the compile resolved everything.
//
func (d *Diagnostics) Empty() bool {
	return len(d.Connections) == 0 && len(d.Inputs) == 0 && len(d.Outputs) == 0
}

// A FanoutError is returned by Compile when units exceed MaxConnections.
// It lists every input and output slot path that addresses an over-limit
// unit, so the caller can see which part of the design needs a buffer
// stage.
//
type FanoutError struct {
	Limit   int
	Inputs  []string
	Outputs []string
}

func (e *FanoutError) Error() string {
	return fmt.Sprintf("fan-out limit of %d exceeded; affected inputs: [%s], outputs: [%s]",
		e.Limit, strings.Join(e.Inputs, ", "), strings.Join(e.Outputs, ", "))
}

type connCase struct {
	from string
	to   string
	conn Connection
}

// A Combiner assembles named schemes, deferred connections and binds into
// one flattened scheme. It is single use: build it up, then Compile.
//
// Scheme placement is delegated to the positioner P, reachable through
// Pos for positioner-specific calls.
//
type Combiner[P Positioner] struct {
	schemes map[string]*Scheme
	order   []string
	conns   []connCase

	inputs  []*Bind
	outputs []*Bind

	positioner    P
	noFanoutCheck bool
}

// NewCombiner returns an empty combiner driven by the given positioner.
//
func NewCombiner[P Positioner](positioner P) *Combiner[P] {
	return &Combiner[P]{
		schemes:    make(map[string]*Scheme),
		positioner: positioner,
	}
}

// PosManual returns a combiner with manual placement.
//
func PosManual() *Combiner[*ManualPos] {
	return NewCombiner(NewManualPos())
}

// Pos returns the positioner.
//
func (c *Combiner[P]) Pos() P { return c.positioner }

// Add embeds a deep copy of scheme under the given name. The name must
// not contain the path separator and must be unique.
//
func (c *Combiner[P]) Add(name string, scheme *Scheme) error {
	if !validName(name) {
		return errors.Errorf("invalid scheme name %q: must be non-empty and contain no %q", name, PathSep)
	}
	if _, ok := c.schemes[name]; ok {
		return errors.Errorf("scheme name %q is already taken", name)
	}
	c.schemes[name] = scheme.Clone()
	c.order = append(c.order, name)
	c.positioner.SchemeAdded(name)
	return nil
}

// AddShape wraps a single shape into a scheme and adds it.
//
func (c *Combiner[P]) AddShape(name string, base ShapeBase) error {
	return c.Add(name, SchemeFromShape(NewShape(base)))
}

// AddMul adds an independent copy of scheme under each of the names.
// On a name clash the remaining names are still added; the first error is
// returned.
//
func (c *Combiner[P]) AddMul(names []string, scheme *Scheme) error {
	var first error
	for _, name := range names {
		if err := c.Add(name, scheme); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Custom records a deferred connection request from an output slot path
// to an input slot path, resolved with the given strategy at compile
// time. Nothing is validated here.
//
func (c *Combiner[P]) Custom(from, to string, conn Connection) {
	c.conns = append(c.conns, connCase{from: from, to: to, conn: conn})
}

// Connect records a point-to-point connection request.
//
func (c *Combiner[P]) Connect(from, to string) {
	c.Custom(from, to, Straight())
}

// ConnectEach connects every from path to every to path.
//
func (c *Combiner[P]) ConnectEach(froms, tos []string) {
	for _, from := range froms {
		for _, to := range tos {
			c.Connect(from, to)
		}
	}
}

// Dim records a broadcast connection request, adapting the flagged axes.
//
func (c *Combiner[P]) Dim(from, to string, adaptX, adaptY, adaptZ bool) {
	c.Custom(from, to, Dim(adaptX, adaptY, adaptZ))
}

// BindInput declares an external input of the compiled scheme. The bind
// name must be unique among inputs.
//
func (c *Combiner[P]) BindInput(bind *Bind) error {
	if err := checkBindName(bind.Name(), c.inputs); err != nil {
		return err
	}
	c.inputs = append(c.inputs, bind)
	return nil
}

// BindOutput declares an external output of the compiled scheme. The
// bind name must be unique among outputs.
//
func (c *Combiner[P]) BindOutput(bind *Bind) error {
	if err := checkBindName(bind.Name(), c.outputs); err != nil {
		return err
	}
	c.outputs = append(c.outputs, bind)
	return nil
}

func checkBindName(name string, binds []*Bind) error {
	if !validName(name) {
		return errors.Errorf("invalid bind name %q: must be non-empty and contain no %q", name, PathSep)
	}
	for _, b := range binds {
		if b.Name() == name {
			return errors.Errorf("bind name %q is already taken", name)
		}
	}
	return nil
}

// PassInput forwards an existing input slot of an added scheme as an
// external input, preserving its size and named sectors. Unlike Connect
// the target is checked eagerly: the scheme and slot must already exist.
// The path must be "scheme" or "scheme/slot", a sector segment is
// rejected. An empty newKind keeps the slot's own kind.
//
func (c *Combiner[P]) PassInput(name, path, newKind string) error {
	bind, err := c.makePass(name, path, newKind, sideInput)
	if err != nil {
		return err
	}
	return c.BindInput(bind)
}

// PassOutput is the output side counterpart of PassInput.
//
func (c *Combiner[P]) PassOutput(name, path, newKind string) error {
	bind, err := c.makePass(name, path, newKind, sideOutput)
	if err != nil {
		return err
	}
	return c.BindOutput(bind)
}

func (c *Combiner[P]) makePass(name, path, newKind string, s side) (*Bind, error) {
	if !validName(name) {
		return nil, errors.Errorf("invalid pass name %q: must be non-empty and contain no %q", name, PathSep)
	}
	schemeName, slotName, sector := splitPath(path)
	if sector != WholeSlot {
		return nil, errors.Errorf("pass target %q: must be \"scheme\" or \"scheme/slot\", sector not allowed", path)
	}
	scheme, ok := c.schemes[schemeName]
	if !ok {
		return nil, errors.Errorf("pass target %q: no scheme named %q", path, schemeName)
	}
	slots := scheme.Inputs()
	if s == sideOutput {
		slots = scheme.Outputs()
	}
	slot := findSlot(slotName, slots)
	if slot == nil {
		return nil, errors.Errorf("pass target %q: scheme %q has no %v slot named %q", path, schemeName, s, slotName)
	}

	kind := slot.Kind()
	if newKind != "" {
		kind = newKind
	}
	bind := NewBind(name, kind, slot.Bounds())
	bind.ConnectFull(schemeName + PathSep + slotName)
	for _, sn := range slot.SectorNames() {
		sec, _ := slot.Sector(sn)
		// sectors of an existing slot are always valid here
		_ = bind.AddSector(sn, sec.Pos, sec.Size, sec.Kind)
	}
	return bind, nil
}

// DisableFanoutCheck turns off the MaxConnections validation in Compile.
//
func (c *Combiner[P]) DisableFanoutCheck() { c.noFanoutCheck = true }

// Compile flattens every added scheme into one unit list, compiles all
// binds, resolves all deferred connections and returns the result. Two
// conditions are fatal: an unplaced scheme and a fan-out overflow. All
// other problems land in Diagnostics and leave their connections out of
// the result.
//
// The combiner must not be used after Compile.
//
func (c *Combiner[P]) Compile() (*Scheme, *Diagnostics, error) {
	placements, err := c.positioner.Arrange(c.order)
	if err != nil {
		return nil, nil, err
	}

	var all []Unit
	insNS := make(map[string]nsEntry, len(c.order))
	outNS := make(map[string]nsEntry, len(c.order))
	offset := 0
	for _, name := range c.order {
		pl := placements[name]
		units, ins, outs := c.schemes[name].disassemble(offset, pl.Pos, pl.Rot)
		all = append(all, units...)
		insNS[name] = nsEntry{offset: offset, slots: ins}
		outNS[name] = nsEntry{offset: offset, slots: outs}
		offset += len(units)
	}

	diag := &Diagnostics{}
	inputs := make([]*Slot, 0, len(c.inputs))
	for _, b := range c.inputs {
		slot, unres := b.compile(insNS, sideInput)
		inputs = append(inputs, slot)
		for _, u := range unres {
			diag.Inputs = append(diag.Inputs, BindIssue{Bind: b.Name(), Cause: u})
		}
	}
	outputs := make([]*Slot, 0, len(c.outputs))
	for _, b := range c.outputs {
		slot, unres := b.compile(outNS, sideOutput)
		outputs = append(outputs, slot)
		for _, u := range unres {
			diag.Outputs = append(diag.Outputs, BindIssue{Bind: b.Name(), Cause: u})
		}
	}

	for _, cc := range c.conns {
		c.resolveConn(cc, all, outNS, insNS, diag)
	}

	if !c.noFanoutCheck {
		if err := checkFanout(all, insNS, outNS); err != nil {
			return nil, nil, err
		}
	}

	return NewScheme(all, inputs, outputs), diag, nil
}

// resolveConn resolves one deferred connection request. The from path is
// looked up among outputs, the to path among inputs; that is the only
// thing enforcing signal direction.
func (c *Combiner[P]) resolveConn(cc connCase, all []Unit, outNS, insNS map[string]nsEntry, diag *Diagnostics) {
	fromEnt, fromSlot, fromSec, unres := resolveSector(cc.from, outNS)
	if unres != nil {
		diag.Connections = append(diag.Connections, ConnIssue{From: cc.from, To: cc.to, Cause: *unres})
		return
	}
	toEnt, toSlot, toSec, unres := resolveSector(cc.to, insNS)
	if unres != nil {
		diag.Connections = append(diag.Connections, ConnIssue{From: cc.from, To: cc.to, Cause: *unres})
		return
	}

	for _, pair := range cc.conn.Connect(fromSec.Size, toSec.Size) {
		fp := pair.From.Add(fromSec.Pos)
		tp := pair.To.Add(toSec.Pos)
		if !InBounds(fp, fromSlot.Bounds()) || !InBounds(tp, toSlot.Bounds()) {
			continue
		}
		targets := toSlot.Point(tp)
		for _, src := range fromSlot.Point(fp) {
			sh := all[src+fromEnt.offset].Shape
			for _, dst := range targets {
				sh.PushConn(dst + toEnt.offset)
			}
		}
	}
}

// checkFanout scans every unit's outgoing list against MaxConnections and
// reports the slot paths addressing any offender.
func checkFanout(all []Unit, insNS, outNS map[string]nsEntry) error {
	over := make(map[int]bool)
	for i, u := range all {
		if len(u.Shape.Conns()) > MaxConnections {
			over[i] = true
		}
	}
	if len(over) == 0 {
		return nil
	}
	return errors.WithStack(&FanoutError{
		Limit:   MaxConnections,
		Inputs:  affectedPaths(insNS, over),
		Outputs: affectedPaths(outNS, over),
	})
}

func affectedPaths(ns map[string]nsEntry, over map[int]bool) []string {
	var paths []string
	for name, ent := range ns {
		for _, slot := range ent.slots {
			hit := false
			for _, ids := range slot.points.Raw() {
				for _, id := range ids {
					if over[id+ent.offset] {
						hit = true
						break
					}
				}
				if hit {
					break
				}
			}
			if hit {
				paths = append(paths, name+PathSep+slot.Name())
			}
		}
	}
	sort.Strings(paths)
	return paths
}
