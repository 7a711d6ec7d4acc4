package smlogic

import (
	"fmt"
	"math"
)

type rgb struct{ r, g, b int }

var inputColors = [8]rgb{
	{10, 62, 226},
	{208, 37, 37},
	{117, 20, 237},
	{10, 62, 226},
	{76, 111, 227},
	{240, 103, 103},
	{174, 121, 240},
	{238, 123, 240},
}

var outputColors = [8]rgb{
	{25, 231, 83},
	{160, 234, 0},
	{44, 230, 230},
	{226, 219, 19},
	{104, 255, 136},
	{203, 246, 111},
	{126, 237, 237},
	{245, 240, 113},
}

// InputColor returns the paint color for a unit of input slot id at point
// p inside the slot. The base hue cycles over an 8 entry palette; per-cell
// sine fluctuation makes large slots readable in game.
//
func InputColor(id int, p Point) string {
	return fluctuate(inputColors[id%len(inputColors)], p)
}

// OutputColor is the output slot counterpart of InputColor.
//
func OutputColor(id int, p Point) string {
	return fluctuate(outputColors[id%len(outputColors)], p)
}

func fluctuate(c rgb, p Point) string {
	const amp = 80
	r := c.r + int(math.Round(math.Sin(float64(p.X)/10)*amp))
	g := c.g + int(math.Round(math.Sin(float64(p.Y)/10)*amp))
	b := c.b + int(math.Round(math.Sin(float64(p.Z)/10)*amp))
	return hexColor(r, g, b)
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("%02x%02x%02x", clamp8(r), clamp8(g), clamp8(b))
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
