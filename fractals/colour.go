package fractals

import "math"

// Colour is an 8-bit RGB triple. One is built per pixel and discarded once
// its bytes land in the buffer.
type Colour struct {
	Red, Green, Blue uint8
}

func NewColour(r, g, b uint8) Colour {
	return Colour{Red: r, Green: g, Blue: b}
}

// ColourFromFloats builds a Colour from normalized intensities in [0,1].
// Each channel is scaled by the byte maximum and truncated toward zero.
// Inputs outside [0,1] are not clamped; they produce whatever the float to
// uint8 conversion yields, which keeps rendered output bit-identical with
// the truncating behaviour the evaluators were tuned against.
func ColourFromFloats(r, g, b float64) Colour {
	return Colour{
		Red:   denormalize(r),
		Green: denormalize(g),
		Blue:  denormalize(b),
	}
}

func denormalize(v float64) uint8 {
	return uint8(v * math.MaxUint8)
}
