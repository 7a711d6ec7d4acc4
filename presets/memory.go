// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package presets

import (
	"fmt"

	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/vanilla"
)

// MemoryCell builds a wordSize bit XOR latch. Writing happens while the
// "activate" input is held: the "data" bus toggles the stored bits, which
// appear on the default output bus.
//
func MemoryCell(wordSize int) *smlogic.Scheme {
	c := smlogic.PosManual()

	in := smlogic.NewBind("data", "binary", smlogic.V(wordSize, 1, 1))
	out := smlogic.NewBind(smlogic.DefaultSlot, "binary", smlogic.V(wordSize, 1, 1))

	for i := 0; i < wordSize; i++ {
		input := fmt.Sprintf("%d_input", i)
		mustAdd(c.Add(input, vanilla.GateScheme(vanilla.AND)))
		c.Pos().PlaceLast(smlogic.V(0, 0, i))
		c.Pos().RotateLast(smlogic.NegY.Rot())
		c.Connect("activate", input)
		in.Connect(smlogic.V(i, 0, 0), smlogic.V(1, 1, 1), input)

		output := fmt.Sprintf("%d_output", i)
		mustAdd(c.Add(output, vanilla.GateScheme(vanilla.AND)))
		c.Pos().PlaceLast(smlogic.V(1, 0, i))
		c.Pos().RotateLast(smlogic.NegY.Rot())
		c.Connect("activate", output)
		out.Connect(smlogic.V(i, 0, 0), smlogic.V(1, 1, 1), output)

		// the XOR feeds back into itself, holding the bit
		xor := fmt.Sprintf("%d_xor", i)
		mustAdd(c.Add(xor, vanilla.GateScheme(vanilla.XOR)))
		c.Pos().PlaceLast(smlogic.V(2, 0, i))
		c.Pos().RotateLast(smlogic.NegY.Rot())
		c.Connect(xor, xor)
		c.Connect(input, xor)
		c.Connect(xor, output)
	}

	mustAdd(c.Add("activate", vanilla.GateScheme(vanilla.AND)))
	c.Pos().PlaceLast(smlogic.V(1, 0, wordSize))
	c.Pos().RotateLast(smlogic.NegY.Rot())
	mustAdd(c.PassInput("activate", "activate", "logic"))

	mustAdd(c.BindInput(in))
	mustAdd(c.BindOutput(out))

	return mustCompile(c)
}
