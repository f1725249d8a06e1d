package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"

	"juliascope/fractals"
	"juliascope/render"
)

const (
	imageWidth  = 2350
	imageHeight = 1920

	// timeScale maps elapsed milliseconds into the evaluators' time domain.
	timeScale = 0.0001
)

func init() {
	// GLFW and GL need the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// frameFunc builds the pixel function for one frame at animation time t.
// The static evaluators ignore t.
type frameFunc func(t float64) render.PixelFunc

func gradientFrame(float64) render.PixelFunc   { return fractals.Gradient }
func mandelbrotFrame(float64) render.PixelFunc { return fractals.Mandelbrot }

func juliaFrame(t float64) render.PixelFunc {
	return func(pos mgl64.Vec2) fractals.Colour {
		return fractals.AnimateJulia(pos, t)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow("JuliaScope", imageWidth, imageHeight)
	if err != nil {
		return err
	}
	defer window.Destroy()

	var frame frameFunc = juliaFrame
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		switch key {
		case glfw.Key1:
			frame = gradientFrame
		case glfw.Key2:
			frame = mandelbrotFrame
		case glfw.Key3:
			frame = juliaFrame
		case glfw.KeyEscape:
			window.SetShouldClose(true)
		}
	})

	renderFrame := func(t float64) {
		pix, pitch := window.Lock()
		render.Pixels(pix, imageWidth, imageHeight, pitch, frame(t))
		window.Unlock()
		window.Present()
	}

	renderFrame(0)

	start := time.Now()
	for !window.ShouldClose() {
		t := float64(time.Since(start).Milliseconds()) * timeScale
		renderFrame(t)
		glfw.PollEvents()
	}

	return nil
}
