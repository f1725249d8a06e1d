// Package render fills packed pixel buffers by fanning a pure colour
// function out over horizontal bands of rows.
package render

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"juliascope/fractals"
)

// PixelFunc maps a normalized coordinate in [0,1)² to a colour. It must
// not touch shared mutable state; bands call it concurrently.
type PixelFunc func(pos mgl64.Vec2) fractals.Colour

// NumBands is the fan-out of Pixels. Each band is a contiguous run of
// rows, so this also bounds the goroutines alive during a call.
const NumBands = 3

// Pixels fills every pixel of a width×height image with pitch bytes per
// row, writing [255, blue, green, red] at offset row*pitch + col*4. Rows
// are split into NumBands contiguous, non-overlapping bands rendered
// concurrently; Pixels returns only once every band has finished, and
// holds no reference to pix afterwards. pitch must be at least width*4;
// that is the caller's contract and is not checked here.
func Pixels(pix []byte, width, height, pitch int, f PixelFunc) {
	var wg sync.WaitGroup
	for band := 0; band < NumBands; band++ {
		top := band * height / NumBands
		bottom := (band + 1) * height / NumBands

		wg.Add(1)
		go func() {
			defer wg.Done()
			renderBand(pix, width, height, pitch, top, bottom, f)
		}()
	}
	wg.Wait()
}

func renderBand(pix []byte, width, height, pitch, top, bottom int, f PixelFunc) {
	for row := top; row < bottom; row++ {
		y := float64(row) / float64(height)
		for col := 0; col < width; col++ {
			x := float64(col) / float64(width)
			c := f(mgl64.Vec2{x, y})

			i := row*pitch + col*4
			pix[i] = 255
			pix[i+1] = c.Blue
			pix[i+2] = c.Green
			pix[i+3] = c.Red
		}
	}
}
