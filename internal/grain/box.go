package grain

import "gonum.org/v1/gonum/spatial/r3"

// Box is an orthorhombic simulation box anchored at the origin.
type Box struct {
	X, Y, Z float64
}

// Validate checks that every dimension is strictly positive.
func (b Box) Validate() error {
	switch {
	case b.X <= 0:
		return &InvalidBoxError{Axis: "x", Value: b.X}
	case b.Y <= 0:
		return &InvalidBoxError{Axis: "y", Value: b.Y}
	case b.Z <= 0:
		return &InvalidBoxError{Axis: "z", Value: b.Z}
	}
	return nil
}

// Contains reports whether p lies within (0, dim] on every axis.
func (b Box) Contains(p r3.Vec) bool {
	return p.X > 0 && p.X <= b.X &&
		p.Y > 0 && p.Y <= b.Y &&
		p.Z > 0 && p.Z <= b.Z
}

// Volume returns the box volume.
func (b Box) Volume() float64 {
	return b.X * b.Y * b.Z
}
