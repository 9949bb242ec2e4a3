package device

import (
	"fmt"
	"time"
)

// ErrorReactingDriver wraps a Driver so that a fixed set of calls
// (TexImage2D, TexStorage2D, CompileShader, LinkProgram, DrawArrays,
// DrawElements) is followed by an error poll; a non-nil result panics
// with the calling method's name attached. Every other method passes
// straight through to the wrapped Driver without a poll. Nothing in
// this module installs it: a caller wraps its driver with
// NewErrorReactingDriver before handing it to New. Mirrors gl.rs's
// gl::ErrorReactingGl::wrap.
type ErrorReactingDriver struct {
	Driver
}

func NewErrorReactingDriver(d Driver) *ErrorReactingDriver {
	return &ErrorReactingDriver{Driver: d}
}

func (e *ErrorReactingDriver) check(call string) {
	if err := Err(e.Driver); err != nil {
		panic(fmt.Sprintf("device: GL error after %s: %v", call, err))
	}
}

func (e *ErrorReactingDriver) TexImage2D(target Enum, level int32, internal Enum, w, h int32, external Enum, ty Enum, data []byte) {
	e.Driver.TexImage2D(target, level, internal, w, h, external, ty, data)
	e.check("TexImage2D")
}

func (e *ErrorReactingDriver) TexStorage2D(target Enum, levels int32, internal Enum, w, h int32) {
	e.Driver.TexStorage2D(target, levels, internal, w, h)
	e.check("TexStorage2D")
}

func (e *ErrorReactingDriver) CompileShader(id uint32) {
	e.Driver.CompileShader(id)
	e.check("CompileShader")
}

func (e *ErrorReactingDriver) LinkProgram(program uint32) {
	e.Driver.LinkProgram(program)
	e.check("LinkProgram")
}

func (e *ErrorReactingDriver) DrawArrays(mode Enum, first, count int32) {
	e.Driver.DrawArrays(mode, first, count)
	e.check("DrawArrays")
}

func (e *ErrorReactingDriver) DrawElements(mode Enum, count int32, ty Enum, offset int) {
	e.Driver.DrawElements(mode, count, ty, offset)
	e.check("DrawElements")
}

// ProfilingDriver wraps a Driver, timing a handful of
// representative expensive calls (texture upload, program link, draw
// calls) and reporting each above-threshold duration to sink. It is
// installed by Device.BeginFrame when profiling is active and removed
// by Device.EndFrame, mirroring gl.rs's ProfilingGl.
type ProfilingDriver struct {
	Driver
	sink      func(name string, d time.Duration)
	threshold time.Duration
}

func NewProfilingDriver(d Driver, sink func(name string, d time.Duration)) *ProfilingDriver {
	return &ProfilingDriver{Driver: d, sink: sink, threshold: 250 * time.Microsecond}
}

func (p *ProfilingDriver) report(name string, start time.Time) {
	if p.sink == nil {
		return
	}
	if d := time.Since(start); d >= p.threshold {
		p.sink(name, d)
	}
}

func (p *ProfilingDriver) TexImage2D(target Enum, level int32, internal Enum, w, h int32, external Enum, ty Enum, data []byte) {
	start := time.Now()
	p.Driver.TexImage2D(target, level, internal, w, h, external, ty, data)
	p.report("TexImage2D", start)
}

func (p *ProfilingDriver) TexSubImage2D(target Enum, level, xoff, yoff, w, h int32, external Enum, ty Enum, data []byte) {
	start := time.Now()
	p.Driver.TexSubImage2D(target, level, xoff, yoff, w, h, external, ty, data)
	p.report("TexSubImage2D", start)
}

func (p *ProfilingDriver) LinkProgram(program uint32) {
	start := time.Now()
	p.Driver.LinkProgram(program)
	p.report("LinkProgram", start)
}

func (p *ProfilingDriver) DrawElements(mode Enum, count int32, ty Enum, offset int) {
	start := time.Now()
	p.Driver.DrawElements(mode, count, ty, offset)
	p.report("DrawElements", start)
}

func (p *ProfilingDriver) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask uint32, filter Enum) {
	start := time.Now()
	p.Driver.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
	p.report("BlitFramebuffer", start)
}
