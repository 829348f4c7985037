package mcpi

import "fmt"

// Point is a sampled 2D coordinate.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Circle is the containment test a SampleStore counts against.
// Implementations must be pure: the same point always yields the same answer
// for as long as a store holds the circle.
type Circle interface {
	Contains(p Point) bool
}

// Compile-time interface check.
var _ Circle = Disk{}

// Disk is a closed circle: points on the boundary are inside.
type Disk struct {
	Center Point
	Radius float64
}

// UnitDisk returns the disk of radius 1 centred at the origin.
func UnitDisk() Disk {
	return Disk{Radius: 1}
}

// Contains reports whether p lies within the disk, boundary included.
func (d Disk) Contains(p Point) bool {
	dx := p.X - d.Center.X
	dy := p.Y - d.Center.Y
	return dx*dx+dy*dy <= d.Radius*d.Radius
}
