// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

// A Rot is one of the 24 discrete orthogonal rotations, stored as a signed
// permutation matrix (row-major). The zero value is not a valid rotation;
// use RotXYZ or Identity.
//
// The set is closed under Compose, every element has an Inverse and
// Identity() is the neutral element.
//
type Rot struct {
	m [9]int
}

// Identity returns the identity rotation.
//
func Identity() Rot {
	return Rot{m: [9]int{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// RotXYZ builds a rotation out of quarter turns: rx around the X axis
// first, then ry around Y, then rz around Z. Negative counts turn the
// other way.
//
func RotXYZ(rx, ry, rz int) Rot {
	r := Identity()
	for i := 0; i < quarters(rx); i++ {
		r = rotQX.Compose(r)
	}
	for i := 0; i < quarters(ry); i++ {
		r = rotQY.Compose(r)
	}
	for i := 0; i < quarters(rz); i++ {
		r = rotQZ.Compose(r)
	}
	return r
}

func quarters(n int) int {
	return (n%4 + 4) % 4
}

var (
	// y -> z, z -> -y
	rotQX = Rot{m: [9]int{
		1, 0, 0,
		0, 0, -1,
		0, 1, 0,
	}}
	// z -> x, x -> -z
	rotQY = Rot{m: [9]int{
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0,
	}}
	// x -> y, y -> -x
	rotQZ = Rot{m: [9]int{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}}
)

// Apply rotates v.
//
func (r Rot) Apply(v Vec3) Vec3 {
	return Vec3{
		X: r.m[0]*v.X + r.m[1]*v.Y + r.m[2]*v.Z,
		Y: r.m[3]*v.X + r.m[4]*v.Y + r.m[5]*v.Z,
		Z: r.m[6]*v.X + r.m[7]*v.Y + r.m[8]*v.Z,
	}
}

// Compose returns the rotation equivalent to applying s first, then r.
//
func (r Rot) Compose(s Rot) Rot {
	var p Rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r.m[i*3+k] * s.m[k*3+j]
			}
			p.m[i*3+j] = sum
		}
	}
	return p
}

// Inverse returns the rotation undoing r. For signed permutation matrices
// this is the transpose.
//
func (r Rot) Inverse() Rot {
	var t Rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.m[i*3+j] = r.m[j*3+i]
		}
	}
	return t
}

// A Facing is one of the six axis directions a rotation can point the
// local Z axis at.
//
type Facing int

// Facing values.
const (
	PosX Facing = iota
	PosY
	PosZ
	NegX
	NegY
	NegZ
)

// Rot returns a rotation that points the local Z axis at f.
//
func (f Facing) Rot() Rot {
	switch f {
	case PosX:
		return RotXYZ(0, 1, 0)
	case PosY:
		return RotXYZ(-1, 0, 0)
	case PosZ:
		return RotXYZ(0, 0, 0)
	case NegX:
		return RotXYZ(0, -1, 0)
	case NegY:
		return RotXYZ(1, 0, 0)
	case NegZ:
		return RotXYZ(2, 0, 0)
	default:
		panic("invalid facing")
	}
}

type orient int

const (
	orientUp orient = iota
	orientDown
	orientLeft
	orientRight
)

// The target engine encodes a rotation as an (xaxis, zaxis) pair, and each
// pair shifts the part's position slightly. There is no visible pattern to
// the shift, so the correction is tabulated for all 24 cases:
// (xaxis, zaxis, dx, dy, dz), indexed by facing*4 + orient.
var gameRotations = [24][5]int{
	{1, -2, 0, 0, 0},
	{-2, -1, 1, 0, 0},
	{-1, 2, 1, -1, 0},
	{2, 1, 0, -1, 0},
	{3, -1, 1, -1, 0},
	{-1, -3, 1, -1, 1},
	{-3, 1, 0, -1, 1},
	{1, 3, 0, -1, 0},
	{3, 2, 0, -1, 0},
	{2, -3, 0, -1, 1},
	{-3, -2, 0, 0, 1},
	{-2, 3, 0, 0, 0},
	{1, 2, 0, -1, 1},
	{2, -1, 1, -1, 1},
	{-1, -2, 1, 0, 1},
	{-2, 1, 0, 0, 1},
	{3, 1, 0, 0, 0},
	{1, -3, 0, 0, 1},
	{-3, -1, 1, 0, 1},
	{-1, 3, 1, 0, 0},
	{3, -2, 1, 0, 0},
	{-2, -3, 1, 0, 1},
	{-3, 2, 1, -1, 1},
	{2, 3, 1, -1, 0},
}

// GameAxes converts r into the target engine's encoding: the two signed
// axis indices plus the position correction that counteracts the engine's
// per-encoding offset. Parts here rotate around the center of their first
// cell, not around the box corner.
//
func (r Rot) GameAxes() (xaxis, zaxis int, offset Point) {
	f, o := r.facingOrient()
	var fi int
	switch f {
	case PosZ:
		fi = 0
	case PosY:
		fi = 1
	case PosX:
		fi = 2
	case NegZ:
		fi = 3
	case NegY:
		fi = 4
	case NegX:
		fi = 5
	}
	d := gameRotations[fi*4+int(o)]
	return d[0], d[1], Point{X: d[2], Y: d[3], Z: d[4]}
}

func (r Rot) facingOrient() (Facing, orient) {
	zAxis := r.Apply(Vec3{0, 0, 1})
	xAxis := r.Apply(Vec3{1, 0, 0})

	var f Facing
	switch {
	case zAxis.Z == 1:
		f = PosZ
	case zAxis.Z == -1:
		f = NegZ
	case zAxis.Y == 1:
		f = PosY
	case zAxis.Y == -1:
		f = NegY
	case zAxis.X == 1:
		f = PosX
	case zAxis.X == -1:
		f = NegX
	default:
		panic("not a rotation matrix")
	}

	switch {
	case xAxis.X == 1 || xAxis.Z == 1:
		return f, orientUp
	case xAxis.X == -1 || xAxis.Z == -1:
		return f, orientDown
	case xAxis.Y == 1:
		if f == PosZ || f == NegX {
			return f, orientRight
		}
		return f, orientLeft
	case xAxis.Y == -1:
		if f == PosZ || f == NegX {
			return f, orientLeft
		}
		return f, orientRight
	}
	panic("not a rotation matrix")
}
