// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package smlogic

// A Vec3 is an integer 3-vector. It doubles as a coordinate (Point) and as
// an axis-aligned box size (Bounds).
//
type Vec3 struct {
	X, Y, Z int
}

// Point is a coordinate or offset. Components may be negative.
//
type Point = Vec3

// Bounds is the size of an axis-aligned box. When used as a size, all
// components must be >= 0; a zero component makes the box empty but still
// addressable.
//
type Bounds = Vec3

// V is a shorthand Vec3 constructor.
//
func V(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + w.
//
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
//
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v with every component multiplied by n.
//
func (v Vec3) Scale(n int) Vec3 {
	return Vec3{v.X * n, v.Y * n, v.Z * n}
}

// Volume returns the number of points inside v treated as a box size.
//
func (v Vec3) Volume() int {
	return v.X * v.Y * v.Z
}

// InBounds reports whether every coordinate of p lies in the 0..b range.
//
func InBounds(p Point, b Bounds) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 &&
		p.X < b.X && p.Y < b.Y && p.Z < b.Z
}

func minv(a, b Vec3) Vec3 {
	return Vec3{mini(a.X, b.X), mini(a.Y, b.Y), mini(a.Z, b.Z)}
}

func maxv(a, b Vec3) Vec3 {
	return Vec3{maxi(a.X, b.X), maxi(a.Y, b.Y), maxi(a.Z, b.Z)}
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
