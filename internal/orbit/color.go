package orbit

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with integer channels in [0,255].
type Color struct {
	R, G, B int
}

// RandomColor rolls every channel independently in [0,255].
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: rng.IntN(256),
		G: rng.IntN(256),
		B: rng.IntN(256),
	}
}

// MixedWith returns a new color whose channels are the average of a random
// value and the matching channel of c, so successive mixes stay close to c.
func (c Color) MixedWith(rng *rand.Rand) Color {
	return Color{
		R: (rng.IntN(256) + c.R) / 2,
		G: (rng.IntN(256) + c.G) / 2,
		B: (rng.IntN(256) + c.B) / 2,
	}
}

// Unit converts c to unit-range floats for the drawing backend.
// Channels are scaled by 1/256, so 255 maps just below 1.
func (c Color) Unit() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 256,
		G: float64(c.G) / 256,
		B: float64(c.B) / 256,
	}
}
