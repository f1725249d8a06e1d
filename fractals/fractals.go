// Package fractals holds the escape-time pixel functions the viewer
// renders. All evaluators take normalized coordinates in [0,1)² and share
// one stopping rule: iterate v ← v² + c until |v| reaches 2 or the
// iteration cap runs out.
package fractals

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	maxIterations = 1000
	escapeRadius  = 2.0
	shadeDivisor  = 200.0
	orbitRadius   = 0.7885
)

// Gradient maps the coordinate straight to a colour. Handy for checking
// buffer layout and orientation.
func Gradient(pos mgl64.Vec2) Colour {
	return ColourFromFloats(pos.X(), pos.Y(), 0)
}

// Mandelbrot treats pos as the constant c, spread over the complex range
// [-2,2]², and iterates from zero.
func Mandelbrot(pos mgl64.Vec2) Colour {
	c := complex(pos.X()*4-2, pos.Y()*4-2)
	return Julia(0, c)
}

// Julia iterates from v with the constant c. Escaping points shade grey by
// how fast they escaped; points still bounded at the cap are black. A value
// sitting exactly on the escape radius when the cap runs out counts as
// bounded.
func Julia(v, c complex128) Colour {
	i := 0
	for ; i < maxIterations && cmplx.Abs(v) < escapeRadius; i++ {
		v = v*v + c
	}

	if cmplx.Abs(v) > escapeRadius {
		shade := math.Min(1, float64(i)/shadeDivisor)
		return ColourFromFloats(shade, shade, shade)
	}
	return ColourFromFloats(0, 0, 0)
}

// AnimateJulia renders the Julia set whose constant orbits a circle of
// radius 0.7885 in the complex plane as t advances, so the set morphs
// continuously over time.
func AnimateJulia(pos mgl64.Vec2, t float64) Colour {
	v := complex(pos.X()*4-2, pos.Y()*4-2)
	return Julia(v, orbitRadius*cmplx.Exp(complex(0, t)))
}
