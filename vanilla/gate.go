// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vanilla provides the stock Scrap Mechanic parts usable as
// scheme units: logic gates, timers, building blocks and a few
// decorations. Every part implements smlogic.ShapeBase and knows its own
// blueprint record layout.
//
package vanilla

import (
	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/blueprint"
)

// GateUUID is the shape id of the in-game logic gate.
const GateUUID = "9f0f56e8-2c31-4d83-996c-d00a9b296c3f"

// DefaultGateColor paints gates that no slot and no explicit color
// reached.
const DefaultGateColor = "df7f00"

// GateMode selects the boolean function of a logic gate. The numeric
// values are the ones the blueprint format stores in the controller
// "mode" field.
//
type GateMode int

const (
	AND GateMode = iota
	OR
	XOR
	NAND
	NOR
	XNOR
)

func (m GateMode) String() string {
	switch m {
	case AND:
		return "and"
	case OR:
		return "or"
	case XOR:
		return "xor"
	case NAND:
		return "nand"
	case NOR:
		return "nor"
	case XNOR:
		return "xnor"
	}
	return "unknown"
}

// Gate is the in-game logic gate, a 1×1×1 unit with both input and
// output.
//
type Gate struct {
	mode GateMode
}

// NewGate returns a gate shape with the given mode.
//
func NewGate(mode GateMode) *smlogic.Shape {
	return smlogic.NewShape(Gate{mode: mode})
}

// GateScheme returns a single gate wrapped into a scheme, ready for
// Combiner.Add.
//
func GateScheme(mode GateMode) *smlogic.Scheme {
	return smlogic.SchemeFromShape(NewGate(mode))
}

// Mode returns the gate's boolean function.
//
func (g Gate) Mode() GateMode { return g.mode }

func (g Gate) Size() smlogic.Bounds { return smlogic.V(1, 1, 1) }
func (g Gate) HasInput() bool       { return true }
func (g Gate) HasOutput() bool      { return true }

func (g Gate) Build(data smlogic.BuildData) blueprint.Child {
	xaxis, zaxis, offset := data.Rot.GameAxes()
	pos := data.Pos.Add(offset)
	color := data.Color
	if color == "" {
		color = DefaultGateColor
	}
	return blueprint.Child{
		Color:   color,
		ShapeID: GateUUID,
		XAxis:   xaxis,
		ZAxis:   zaxis,
		Pos:     blueprint.Pos{X: pos.X, Y: pos.Y, Z: pos.Z},
		Controller: &blueprint.Controller{
			Active:      blueprint.Bool(false),
			ID:          data.ID,
			Joints:      blueprint.Null,
			Controllers: blueprint.Refs(data.Conns),
			Mode:        blueprint.Int(int(g.mode)),
		},
	}
}
