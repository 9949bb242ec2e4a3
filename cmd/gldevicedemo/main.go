// Command gldevicedemo stands up a window and drives device.Device
// through one triangle's worth of state: program creation, a VBO/VAO
// pair, and a per-frame clear+draw. Adapted from the teacher's
// examples/hellotriangle, generalized from direct gl.* calls to the
// Device facade.
package main

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/soypat/gpudevice/device"
	"github.com/soypat/gpudevice/glcore"
	"github.com/soypat/gpudevice/shaders"
)

var triangleVertices = []float32{
	-0.5, -0.5,
	0.0, 0.5,
	0.5, -0.5,
}

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	window, terminate, err := glcore.InitWindow(glcore.WindowConfig{
		Title:         "gpudevice demo",
		Width:         800,
		Height:        800,
		Version:       [2]int{4, 6},
		OpenGLProfile: glfw.OpenGLCoreProfile,
		ForwardCompat: true,
	})
	if err != nil {
		log.Fatalln("failed to initialize window:", err)
	}
	defer terminate()

	driver := glcore.New()
	dev := device.New(driver, device.Config{})
	fmt.Println("driver capabilities:", dev.Capabilities())

	prog, err := dev.CreateProgram(shaders.Table{}, "solid", nil, device.CompileFlagsStrict)
	if err != nil {
		log.Fatalln("program:", err)
	}
	defer dev.DeleteProgram(prog)
	dev.BindFragDataLocation(prog, 0, "oFragColor")

	vao := dev.NewVAO()
	defer dev.DeleteVAO(vao)
	vbo := dev.NewVertexBuffer(float32sToBytes(triangleVertices), device.UsageStatic)
	defer dev.DeleteVertexBuffer(vbo)

	const floatSize = 4
	dev.AddAttribute(vao, vbo, 0, device.AttribLayout{
		Type:   device.FLOAT,
		Size:   2,
		Stride: 2 * floatSize,
	})

	identity := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	color := [4]float32{1, 0.4, 0.2, 1}

	target := dev.DefaultDrawTarget(800, 800)
	for !window.ShouldClose() {
		dev.BeginFrame()
		dev.BindDrawTarget(target)
		dev.Clear(target, &[4]float32{0, 0, 0, 1}, nil)

		dev.UseProgram(prog)
		dev.SetUniforms(prog, "uTransform", identity)
		_ = color
		dev.BindVAO(vao)
		dev.Draw(device.TRIANGLES, 0, 3)

		dev.EndFrame()
		window.SwapBuffers()
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
	}
}

func float32sToBytes(v []float32) []byte {
	out := make([]byte, len(v)*4)
	for i, f := range v {
		bits := math.Float32bits(f)
		out[i*4+0] = byte(bits)
		out[i*4+1] = byte(bits >> 8)
		out[i*4+2] = byte(bits >> 16)
		out[i*4+3] = byte(bits >> 24)
	}
	return out
}
