//go:build !tinygo && cgo

package glcore

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig configures the scratch window InitWindow creates.
// Adapted from the teacher's glgl.WindowConfig: zero value means
// "use the driver/platform default" for every field.
type WindowConfig struct {
	Title         string
	NotResizable  bool
	Version       [2]int
	OpenGLProfile int
	ForwardCompat bool
	Width, Height int
}

// InitWindow creates a current GL context window and returns it along
// with a terminate func the caller should defer. Context creation and
// window-system integration are an explicit device core non-goal
// (spec.md §1); this exists only to stand up a context for the
// example program and context-bound tests.
func InitWindow(cfg WindowConfig) (window *glfw.Window, terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}

	glfw.WindowHint(glfw.Resizable, b2i(!cfg.NotResizable))
	if cfg.Version != [2]int{} {
		glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version[0])
		glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version[1])
	}
	if cfg.OpenGLProfile != 0 {
		glfw.WindowHint(glfw.OpenGLProfile, cfg.OpenGLProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, b2i(cfg.ForwardCompat))

	window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, nil, err
	}
	return window, func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
