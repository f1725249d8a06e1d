package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shaders/present.vert
var presentVertexShader string

//go:embed shaders/present.frag
var presentFragmentShader string

// RenderWindow owns a fixed-size window and the streaming texture the
// animation loop draws into. Lock hands out the CPU pixel buffer, Unlock
// commits it to the texture, Present puts the texture on screen.
type RenderWindow struct {
	*glfw.Window

	width  int
	height int
	pix    []byte

	program uint32
	vao     uint32
	vbo     uint32
	texture uint32
}

func NewRenderWindow(title string, width, height int) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}

	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	glfw.SwapInterval(1)

	if err := w.loadProgram(); err != nil {
		w.Window.Destroy()
		return nil, err
	}

	// One triangle big enough to cover the whole viewport.
	verticies := []float32{
		-1, -1,
		3, -1,
		-1, 3,
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	vertexAttrib := uint32(gl.GetAttribLocation(w.program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(vertexAttrib)
	gl.VertexAttribPointerWithOffset(vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, nil)

	gl.Uniform1i(gl.GetUniformLocation(w.program, gl.Str("frame\x00")), 0)
	gl.Viewport(0, 0, int32(width), int32(height))

	return w, nil
}

// Lock returns the writable pixel buffer and its pitch in bytes. Each
// pixel is 4 bytes, [alpha, blue, green, red]; the buffer stays valid
// until Destroy.
func (w *RenderWindow) Lock() ([]byte, int) {
	return w.pix, w.width * 4
}

// Unlock commits the pixel buffer to the streaming texture. The packed
// byte order matches gl.UNSIGNED_INT_8_8_8_8, so the upload is a straight
// copy.
func (w *RenderWindow) Unlock() {
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height),
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(w.pix))
}

// Present clears the framebuffer, draws the texture and swaps buffers.
// With a swap interval of 1 this blocks until vsync.
func (w *RenderWindow) Present() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(w.program)
	gl.BindVertexArray(w.vao)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	w.SwapBuffers()
}

// Destroy releases the GL objects and then the window, in reverse
// acquisition order.
func (w *RenderWindow) Destroy() {
	gl.DeleteTextures(1, &w.texture)
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteProgram(w.program)
	w.Window.Destroy()
}

func (w *RenderWindow) loadProgram() error {
	vertexShader, err := compileShader(presentVertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return err
	}

	fragmentShader, err := compileShader(presentFragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}

	w.program = gl.CreateProgram()
	gl.AttachShader(w.program, vertexShader)
	gl.AttachShader(w.program, fragmentShader)
	gl.LinkProgram(w.program)
	gl.UseProgram(w.program)

	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(w.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(w.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(w.program, l, nil, gl.Str(log))
		return fmt.Errorf("failed to link program: %v", log)
	}

	gl.BindFragDataLocation(w.program, 0, gl.Str("outputColor\x00"))

	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}
