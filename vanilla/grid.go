package vanilla

import "github.com/veligor/smlogic"

// GateGrid builds an X×Y×Z grid of identically rotated gates exposed as
// one scheme. Both the input and the output default slot span the whole
// grid with a one-to-one point mapping, so the grid works as a signal bus
// buffer of any shape.
//
func GateGrid(mode GateMode, kind string, size smlogic.Bounds, rot smlogic.Rot) *smlogic.Scheme {
	units := make([]smlogic.Unit, 0, size.Volume())
	in := smlogic.NewMap3D[[]int](size)
	out := smlogic.NewMap3D[[]int](size)
	for z := 0; z < size.Z; z++ {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				p := smlogic.V(x, y, z)
				in.Set(p, []int{len(units)})
				out.Set(p, []int{len(units)})
				units = append(units, smlogic.Unit{Pos: p, Rot: rot, Shape: NewGate(mode)})
			}
		}
	}
	return smlogic.NewScheme(units,
		[]*smlogic.Slot{smlogic.NewSlot(smlogic.DefaultSlot, kind, size, in)},
		[]*smlogic.Slot{smlogic.NewSlot(smlogic.DefaultSlot, kind, size, out)},
	)
}
