// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vanilla

import (
	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/blueprint"
)

// TimerUUID is the shape id of the in-game timer.
const TimerUUID = "8f7fd0e7-c46e-4944-a414-7ce2437bb30f"

// DefaultTimerColor paints timers without an assigned color.
const DefaultTimerColor = "df7f00"

// TicksPerSecond is the game's logic tick rate.
const TicksPerSecond = 40

// Timer is the in-game delay element. It occupies 1×1×2 and delays its
// signal by a fixed number of ticks.
//
type Timer struct {
	seconds int
	ticks   int
}

// NewTimer returns a timer shape delaying by the given total tick count.
//
func NewTimer(ticks int) *smlogic.Shape {
	return NewTimerTime(ticks/TicksPerSecond, ticks%TicksPerSecond)
}

// NewTimerTime returns a timer shape with an explicit seconds and ticks
// split, the way the blueprint format stores it.
//
func NewTimerTime(seconds, ticks int) *smlogic.Shape {
	return smlogic.NewShape(Timer{seconds: seconds, ticks: ticks})
}

// TimerScheme returns a single timer wrapped into a scheme.
//
func TimerScheme(ticks int) *smlogic.Scheme {
	return smlogic.SchemeFromShape(NewTimer(ticks))
}

// Delay returns the total delay in ticks.
//
func (t Timer) Delay() int { return t.seconds*TicksPerSecond + t.ticks }

func (t Timer) Size() smlogic.Bounds { return smlogic.V(1, 1, 2) }
func (t Timer) HasInput() bool       { return true }
func (t Timer) HasOutput() bool      { return true }

func (t Timer) Build(data smlogic.BuildData) blueprint.Child {
	xaxis, zaxis, offset := data.Rot.GameAxes()
	pos := data.Pos.Add(offset)
	color := data.Color
	if color == "" {
		color = DefaultTimerColor
	}
	return blueprint.Child{
		Color:   color,
		ShapeID: TimerUUID,
		XAxis:   xaxis,
		ZAxis:   zaxis,
		Pos:     blueprint.Pos{X: pos.X, Y: pos.Y, Z: pos.Z},
		Controller: &blueprint.Controller{
			Active:      blueprint.Bool(false),
			ID:          data.ID,
			Joints:      blueprint.Null,
			Controllers: blueprint.Refs(data.Conns),
			Seconds:     blueprint.Int(t.seconds),
			Ticks:       blueprint.Int(t.ticks),
		},
	}
}
