// Package paint turns a stream of pointer samples into stroked shapes on a
// drawing surface.
package paint

import "math"

// Coordinate is a point in surface-local space.
type Coordinate struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Pt is shorthand for Coordinate{X: x, Y: y}.
func Pt(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// ToLocal converts a device-space point into the space of a surface whose
// top-left corner sits at origin in device space.
func ToLocal(device, origin Coordinate) Coordinate {
	return Coordinate{X: device.X - origin.X, Y: device.Y - origin.Y}
}

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}
