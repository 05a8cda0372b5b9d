package orbit

import "math/rand/v2"

// Shape is the outline drawn for every ring of an orbit.
type Shape uint8

const (
	Circle Shape = iota
	Square
	IsoTriangle

	shapeCount = 3
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case IsoTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

func randomShape(rng *rand.Rand) Shape {
	return Shape(rng.IntN(shapeCount))
}
