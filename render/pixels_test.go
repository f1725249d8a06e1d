package render

import (
	"bytes"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"juliascope/fractals"
)

func testFunc(pos mgl64.Vec2) fractals.Colour {
	return fractals.ColourFromFloats(pos.X(), pos.Y(), pos.X()*pos.Y())
}

// reference fills the buffer with a plain single-threaded sweep, written
// independently of the band logic under test.
func reference(pix []byte, width, height, pitch int, f PixelFunc) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := f(mgl64.Vec2{
				float64(col) / float64(width),
				float64(row) / float64(height),
			})
			i := row*pitch + col*4
			pix[i] = 255
			pix[i+1] = c.Blue
			pix[i+2] = c.Green
			pix[i+3] = c.Red
		}
	}
}

func TestPixelsMatchesReference(t *testing.T) {
	const width, height = 12, 9
	pitch := width * 4

	got := make([]byte, height*pitch)
	want := make([]byte, height*pitch)

	Pixels(got, width, height, pitch, testFunc)
	reference(want, width, height, pitch, testFunc)

	if !bytes.Equal(got, want) {
		t.Error("concurrent render differs from single-threaded sweep")
	}
}

func TestPixelsAlphaByte(t *testing.T) {
	const width, height = 6, 6
	pitch := width * 4

	pix := make([]byte, height*pitch)
	Pixels(pix, width, height, pitch, testFunc)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if a := pix[row*pitch+col*4]; a != 255 {
				t.Fatalf("pixel (%d,%d) byte 0 = %d, want 255", col, row, a)
			}
		}
	}
}

// Heights that don't divide by the band count still cover every row: the
// colour function must see each of the width×height coordinates exactly
// once.
func TestPixelsCoversEveryPixelOnce(t *testing.T) {
	for _, height := range []int{1, 2, 3, 7, 10, 31} {
		const width = 4
		pitch := width * 4
		pix := make([]byte, height*pitch)

		var mu sync.Mutex
		visits := make(map[mgl64.Vec2]int)

		Pixels(pix, width, height, pitch, func(pos mgl64.Vec2) fractals.Colour {
			mu.Lock()
			visits[pos]++
			mu.Unlock()
			return fractals.NewColour(0, 0, 0)
		})

		if len(visits) != width*height {
			t.Errorf("height %d: visited %d distinct coordinates, want %d",
				height, len(visits), width*height)
		}
		for pos, n := range visits {
			if n != 1 {
				t.Errorf("height %d: coordinate %v evaluated %d times", height, pos, n)
			}
		}
	}
}

func TestPixelsIdempotent(t *testing.T) {
	const width, height = 9, 9
	pitch := width * 4

	first := make([]byte, height*pitch)
	second := make([]byte, height*pitch)

	Pixels(first, width, height, pitch, testFunc)
	Pixels(second, width, height, pitch, testFunc)

	if !bytes.Equal(first, second) {
		t.Error("two renders of the same frame differ")
	}
}

// A pitch wider than width*4 leaves the per-row padding bytes alone while
// still writing every pixel where the reference sweep puts it.
func TestPixelsPaddedPitch(t *testing.T) {
	const width, height = 5, 6
	pitch := width*4 + 12

	pix := make([]byte, height*pitch)
	want := make([]byte, height*pitch)
	for i := range pix {
		pix[i] = 0xAA
		want[i] = 0xAA
	}

	Pixels(pix, width, height, pitch, testFunc)
	reference(want, width, height, pitch, testFunc)

	if !bytes.Equal(pix, want) {
		t.Error("padded-pitch render differs from single-threaded sweep")
	}
	for row := 0; row < height; row++ {
		for i := row*pitch + width*4; i < (row+1)*pitch; i++ {
			if pix[i] != 0xAA {
				t.Fatalf("padding byte at offset %d overwritten", i)
			}
		}
	}
}

func TestPixelsRendersMandelbrot(t *testing.T) {
	const width, height = 8, 8
	pitch := width * 4

	pix := make([]byte, height*pitch)
	Pixels(pix, width, height, pitch, fractals.Mandelbrot)

	// (0.5, 0.5) maps to c = 0, inside the set; all three channels black,
	// alpha still 255.
	i := (height/2)*pitch + (width/2)*4
	if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 0 {
		t.Errorf("centre pixel = %v, want [255 0 0 0]", pix[i:i+4])
	}
}
