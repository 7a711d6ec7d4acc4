// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package blueprint defines the target engine's blueprint file format and a
// small manager for the on-disk blueprint library.
package blueprint

import "encoding/json"

// Version is the blueprint document version the engine currently writes.
const Version = 4

// A Blueprint is one exported document. The positions of childs in the
// single body are their connection ids: controllers reference childs by
// index into that same list.
//
type Blueprint struct {
	Bodies  []Body `json:"bodies"`
	Version int    `json:"version"`
}

// New wraps a flat child list into a single-body document.
//
func New(childs []Child) *Blueprint {
	return &Blueprint{
		Bodies:  []Body{{Childs: childs}},
		Version: Version,
	}
}

// A Body is a rigid group of childs.
//
type Body struct {
	Childs []Child `json:"childs"`
}

// A Child is one placed part record.
//
type Child struct {
	Color      string      `json:"color"`
	ShapeID    string      `json:"shapeId"`
	XAxis      int         `json:"xaxis"`
	ZAxis      int         `json:"zaxis"`
	Pos        Pos         `json:"pos"`
	Bounds     *Box        `json:"bounds,omitempty"`
	Controller *Controller `json:"controller,omitempty"`
}

// Pos is an absolute cell position.
//
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Box is a block body extent.
//
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// A Controller carries the interactive state of a part. Which optional
// fields are present depends on the part kind: gates have a mode, timers
// have seconds and ticks, containers have a containers list.
//
type Controller struct {
	Active      *bool           `json:"active,omitempty"`
	ID          int             `json:"id"`
	Joints      json.RawMessage `json:"joints"`
	Controllers []Ref           `json:"controllers"`
	Mode        *int            `json:"mode,omitempty"`
	Seconds     *int            `json:"seconds,omitempty"`
	Ticks       *int            `json:"ticks,omitempty"`
	Containers  json.RawMessage `json:"containers,omitempty"`
}

// A Ref references another child by its position in the body.
//
type Ref struct {
	ID int `json:"id"`
}

// Refs converts a connection id list to controller references. Empty lists
// become nil, which serializes as null the way the engine writes it.
//
func Refs(ids []int) []Ref {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Ref, len(ids))
	for i, id := range ids {
		out[i] = Ref{ID: id}
	}
	return out
}

// Bool returns a pointer to b, for the optional controller fields.
//
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for the optional controller fields.
//
func Int(n int) *int { return &n }

// Null is the explicit JSON null used by optional raw fields.
var Null = json.RawMessage("null")
