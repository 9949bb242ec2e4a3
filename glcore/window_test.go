//go:build !tinygo && cgo

package glcore_test

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/soypat/gpudevice/glcore"
)

func TestInitWindow(t *testing.T) {
	window, term, err := glcore.InitWindow(glcore.WindowConfig{
		Title:         "gpudevice test window",
		Version:       [2]int{3, 3},
		OpenGLProfile: glfw.OpenGLCoreProfile,
		ForwardCompat: true,
		Width:         1,
		Height:        1,
	})
	if err != nil {
		t.Log(err)
		t.Skip("no display available")
	}
	defer term()
	_ = window
}
