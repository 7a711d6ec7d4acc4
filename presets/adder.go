// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package presets contains ready-made circuit designs built on the
// combiner: a ripple-carry adder and a simple memory cell. They double as
// worked examples of the composition API.
//
package presets

import (
	"fmt"

	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/vanilla"
)

// AdderSection builds a one-bit full adder. Inputs "a", "b" and the carry
// slot "_"; outputs "res" (the sum bit) and "_" (the carry towards the
// next section).
//
func AdderSection() *smlogic.Scheme {
	c := smlogic.PosManual()

	mustAdd(c.AddMul([]string{"a", "b", "_"}, vanilla.GateScheme(vanilla.OR)))
	mustAdd(c.AddMul([]string{"and_1", "and_2", "and_3"}, vanilla.GateScheme(vanilla.AND)))
	mustAdd(c.Add("res", vanilla.GateScheme(vanilla.XOR)))

	c.Pos().PlaceIter(map[string]smlogic.Point{
		"a":     smlogic.V(0, 0, 0),
		"b":     smlogic.V(0, 0, 1),
		"_":     smlogic.V(2, 0, 1),
		"and_1": smlogic.V(1, 0, 0),
		"and_2": smlogic.V(1, 0, 1),
		"and_3": smlogic.V(2, 0, 0),
		"res":   smlogic.V(3, 0, 0),
	})
	c.Pos().Rotate("a", smlogic.NegX.Rot())
	c.Pos().Rotate("b", smlogic.NegX.Rot())
	c.Pos().Rotate("res", smlogic.PosX.Rot())

	mustAdd(c.BindInput(smlogic.NewBind("a", "bit", smlogic.V(1, 1, 1)).ConnectFull("a")))
	mustAdd(c.BindInput(smlogic.NewBind("b", "bit", smlogic.V(1, 1, 1)).ConnectFull("b")))
	mustAdd(c.BindInput(smlogic.NewBind("_", "bit", smlogic.V(1, 1, 1)).ConnectFull("_")))

	c.ConnectEach([]string{"a", "b", "_"}, []string{"res"})

	// carry = ab + bc + ca
	c.ConnectEach([]string{"a"}, []string{"and_1", "and_2"})
	c.ConnectEach([]string{"b"}, []string{"and_2", "and_3"})
	c.ConnectEach([]string{"_"}, []string{"and_3", "and_1"})

	mustAdd(c.BindOutput(smlogic.NewBind("_", "bit", smlogic.V(1, 1, 1)).
		ConnectFull("and_1").
		ConnectFull("and_2").
		ConnectFull("and_3")))
	mustAdd(c.BindOutput(smlogic.NewBind("res", "bit", smlogic.V(1, 1, 1)).ConnectFull("res")))

	return mustCompile(c)
}

// Adder builds a ripple-carry adder over the given number of bits.
// Inputs "a" and "b" are bits×1×1 buses, output "_" is the sum bus.
//
func Adder(bits int) *smlogic.Scheme {
	section := AdderSection()
	c := smlogic.PosManual()

	for i := 0; i < bits; i++ {
		name := fmt.Sprint(i)
		mustAdd(c.Add(name, section))
		c.Pos().PlaceLast(smlogic.V(0, i, 0))
		if i+1 < bits {
			c.Connect(name, fmt.Sprint(i+1))
		}
	}

	a := smlogic.NewBind("a", "binary", smlogic.V(bits, 1, 1))
	for x := 0; x < bits; x++ {
		a.Connect(smlogic.V(x, 0, 0), smlogic.V(1, 1, 1), fmt.Sprintf("%d/a", x))
	}
	mustAdd(c.BindInput(a))

	b := smlogic.NewBind("b", "binary", smlogic.V(bits, 1, 1))
	b.ConnectFunc(func(x, _, _ int) (string, bool) {
		return fmt.Sprintf("%d/b", x), true
	})
	mustAdd(c.BindInput(b))

	res := smlogic.NewBind("_", "binary", smlogic.V(bits, 1, 1))
	res.ConnectFunc(func(x, _, _ int) (string, bool) {
		return fmt.Sprintf("%d/res", x), true
	})
	mustAdd(c.BindOutput(res))

	return mustCompile(c)
}

func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustCompile[P smlogic.Positioner](c *smlogic.Combiner[P]) *smlogic.Scheme {
	scheme, diag, err := c.Compile()
	if err != nil {
		panic(err)
	}
	if !diag.Empty() {
		panic(fmt.Sprintf("preset compile left unresolved references: %+v", diag))
	}
	return scheme
}
