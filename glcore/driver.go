//go:build !tinygo && cgo

// Package glcore is the concrete, go-gl-backed implementation of
// device.Driver. It is the direct descendant of the teacher's
// glgl.go/shaders.go: the same gl.* call shapes, the same
// runtime.Pinner use for output-parameter calls, generalized from
// free functions operating on an implicit current context into
// methods on a Driver value so device.Device can be parameterized
// over it.
package glcore

import (
	"context"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/soypat/gpudevice/device"
)

// glDriver is the concrete device.Driver backed by go-gl's v4.6-core
// binding. The zero value is ready to use once a GL context is
// current on the calling thread.
type glDriver struct{}

// New returns a Driver bound to whichever GL context is current on
// the calling goroutine's OS thread. Callers must have already
// arranged gl.Init() and context creation (see cmd/gldevicedemo for
// the glfw-based example), matching the teacher's convention of
// leaving context setup entirely to the caller.
func New() device.Driver {
	return glDriver{}
}

func (glDriver) GetString(name device.Enum) string {
	return gl.GoStr(gl.GetString(uint32(name)))
}

func (glDriver) GetStringi(name device.Enum, index uint32) string {
	return gl.GoStr(gl.GetStringi(uint32(name), index))
}

func (glDriver) GetIntegerv(name device.Enum) int32 {
	var v int32
	var p runtime.Pinner
	p.Pin(&v)
	defer p.Unpin()
	gl.GetIntegerv(uint32(name), &v)
	return v
}

func (glDriver) GetError() device.Enum {
	return device.Enum(gl.GetError())
}

func (glDriver) GenTextures(n int) []uint32 {
	ids := make([]uint32, n)
	var p runtime.Pinner
	p.Pin(&ids[0])
	gl.GenTextures(int32(n), &ids[0])
	p.Unpin()
	return ids
}

func (glDriver) DeleteTextures(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}

func (glDriver) BindTexture(target device.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (glDriver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (glDriver) TexParameteri(target, pname device.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (glDriver) TexImage2D(target device.Enum, level int32, internal device.Enum, w, h int32, external, ty device.Enum, data []byte) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.TexImage2D(uint32(target), level, int32(internal), w, h, 0, uint32(external), uint32(ty), ptr)
}

func (glDriver) TexStorage2D(target device.Enum, levels int32, internal device.Enum, w, h int32) {
	gl.TexStorage2D(uint32(target), levels, uint32(internal), w, h)
}

func (glDriver) TexStorage3D(target device.Enum, levels int32, internal device.Enum, w, h, depth int32) {
	gl.TexStorage3D(uint32(target), levels, uint32(internal), w, h, depth)
}

func (glDriver) TexSubImage2D(target device.Enum, level, xoff, yoff, w, h int32, external, ty device.Enum, data []byte) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.TexSubImage2D(uint32(target), level, xoff, yoff, w, h, uint32(external), uint32(ty), ptr)
}

func (glDriver) TexSubImage2DFromPBO(target device.Enum, level, xoff, yoff, w, h int32, external, ty device.Enum, pboOffset int) {
	gl.TexSubImage2D(uint32(target), level, xoff, yoff, w, h, uint32(external), uint32(ty), unsafe.Pointer(uintptr(pboOffset)))
}

func (glDriver) TexSubImage3D(target device.Enum, level, xoff, yoff, zoff, w, h int32, external, ty device.Enum, data []byte) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.TexSubImage3D(uint32(target), level, xoff, yoff, zoff, w, h, 1, uint32(external), uint32(ty), ptr)
}

func (glDriver) TexSubImage3DFromPBO(target device.Enum, level, xoff, yoff, zoff, w, h int32, external, ty device.Enum, pboOffset int) {
	gl.TexSubImage3D(uint32(target), level, xoff, yoff, zoff, w, h, 1, uint32(external), uint32(ty), unsafe.Pointer(uintptr(pboOffset)))
}

func (glDriver) CopyTexSubImage3D(target device.Enum, level, xoff, yoff, zoff, x, y, w, h int32) {
	gl.CopyTexSubImage3D(uint32(target), level, xoff, yoff, zoff, x, y, w, h)
}

func (glDriver) GenerateMipmap(target device.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (glDriver) GenRenderbuffers(n int) []uint32 {
	ids := make([]uint32, n)
	var p runtime.Pinner
	p.Pin(&ids[0])
	gl.GenRenderbuffers(int32(n), &ids[0])
	p.Unpin()
	return ids
}

func (glDriver) DeleteRenderbuffers(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteRenderbuffers(int32(len(ids)), &ids[0])
}

func (glDriver) BindRenderbuffer(id uint32) {
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
}

func (glDriver) RenderbufferStorage(internal device.Enum, w, h int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(internal), w, h)
}

func (glDriver) GenFramebuffers(n int) []uint32 {
	ids := make([]uint32, n)
	var p runtime.Pinner
	p.Pin(&ids[0])
	gl.GenFramebuffers(int32(n), &ids[0])
	p.Unpin()
	return ids
}

func (glDriver) DeleteFramebuffers(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteFramebuffers(int32(len(ids)), &ids[0])
}

func (glDriver) BindFramebuffer(target device.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (glDriver) FramebufferTexture2D(target, attachment, textarget device.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), texture, level)
}

func (glDriver) FramebufferTextureLayer(target, attachment device.Enum, texture uint32, level, layer int32) {
	gl.FramebufferTextureLayer(uint32(target), uint32(attachment), texture, level, layer)
}

func (glDriver) FramebufferRenderbuffer(target, attachment device.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), gl.RENDERBUFFER, renderbuffer)
}

func (glDriver) CheckFramebufferStatus(target device.Enum) device.Enum {
	return device.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (glDriver) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask uint32, filter device.Enum) {
	gl.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, uint32(filter))
}

func (glDriver) InvalidateFramebuffer(target device.Enum, attachments []device.Enum) {
	if len(attachments) == 0 {
		return
	}
	raw := make([]uint32, len(attachments))
	for i, a := range attachments {
		raw[i] = uint32(a)
	}
	gl.InvalidateFramebuffer(uint32(target), int32(len(raw)), &raw[0])
}

func (glDriver) CopyImageSubData(srcName uint32, srcTarget device.Enum, srcLevel, srcX, srcY, srcZ int32,
	dstName uint32, dstTarget device.Enum, dstLevel, dstX, dstY, dstZ int32, w, h, depth int32) {
	gl.CopyImageSubData(
		srcName, uint32(srcTarget), srcLevel, srcX, srcY, srcZ,
		dstName, uint32(dstTarget), dstLevel, dstX, dstY, dstZ,
		w, h, depth,
	)
}

func (glDriver) GenBuffers(n int) []uint32 {
	ids := make([]uint32, n)
	var p runtime.Pinner
	p.Pin(&ids[0])
	gl.GenBuffers(int32(n), &ids[0])
	p.Unpin()
	return ids
}

func (glDriver) DeleteBuffers(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(ids)), &ids[0])
}

func (glDriver) BindBuffer(target device.Enum, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (glDriver) BufferData(target device.Enum, size int, data []byte, usage device.Enum) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.BufferData(uint32(target), size, ptr, uint32(usage))
}

func (glDriver) BufferSubData(target device.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), unsafe.Pointer(&data[0]))
}

func (glDriver) MapBufferRange(target device.Enum, offset, length int, access uint32) []byte {
	ptr := gl.MapBufferRange(uint32(target), offset, length, access)
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

func (glDriver) UnmapBuffer(target device.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (glDriver) GenVertexArrays(n int) []uint32 {
	ids := make([]uint32, n)
	var p runtime.Pinner
	p.Pin(&ids[0])
	gl.GenVertexArrays(int32(n), &ids[0])
	p.Unpin()
	return ids
}

func (glDriver) DeleteVertexArrays(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteVertexArrays(int32(len(ids)), &ids[0])
}

func (glDriver) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (glDriver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (glDriver) VertexAttribPointer(index uint32, size int32, ty device.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(ty), normalized, stride, uintptr(offset))
}

func (glDriver) CreateShader(ty device.Enum) uint32 { return gl.CreateShader(uint32(ty)) }
func (glDriver) DeleteShader(id uint32)              { gl.DeleteShader(id) }

func (glDriver) ShaderSource(id uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
}

func (glDriver) CompileShader(id uint32) { gl.CompileShader(id) }

func (glDriver) GetShaderiv(id uint32, pname device.Enum) int32 {
	var status int32
	var p runtime.Pinner
	p.Pin(&status)
	defer p.Unpin()
	gl.GetShaderiv(id, uint32(pname), &status)
	return status
}

func (glDriver) GetShaderInfoLog(id uint32) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]byte, length)
	gl.GetShaderInfoLog(id, length, nil, &log[0])
	return string(log[:len(log)-1])
}

func (glDriver) CreateProgram() uint32 { return gl.CreateProgram() }
func (glDriver) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (glDriver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (glDriver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (glDriver) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (glDriver) ValidateProgram(program uint32)      { gl.ValidateProgram(program) }

func (glDriver) GetProgramiv(program uint32, pname device.Enum) int32 {
	var status int32
	var p runtime.Pinner
	p.Pin(&status)
	defer p.Unpin()
	gl.GetProgramiv(program, uint32(pname), &status)
	return status
}

func (glDriver) GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]byte, length)
	gl.GetProgramInfoLog(program, length, nil, &log[0])
	return string(log[:len(log)-1])
}

func (glDriver) UseProgram(id uint32) { gl.UseProgram(id) }

func (glDriver) BindFragDataLocation(program uint32, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

func (glDriver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (glDriver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (glDriver) Uniform1i(loc int32, v int32)     { gl.Uniform1i(loc, v) }
func (glDriver) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }

func (glDriver) UniformMatrix4fv(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (glDriver) ProgramParameteri(program uint32, pname device.Enum, value int32) {
	gl.ProgramParameteri(program, uint32(pname), value)
}

func (glDriver) ProgramBinary(program uint32, format uint32, binary []byte) {
	if len(binary) == 0 {
		return
	}
	gl.ProgramBinary(program, format, unsafe.Pointer(&binary[0]), int32(len(binary)))
}

func (glDriver) GetProgramBinary(program uint32) ([]byte, uint32, bool) {
	var length int32
	gl.GetProgramiv(program, gl.PROGRAM_BINARY_LENGTH, &length)
	if length == 0 {
		return nil, 0, false
	}
	binary := make([]byte, length)
	var format uint32
	var written int32
	gl.GetProgramBinary(program, length, &written, &format, unsafe.Pointer(&binary[0]))
	if written == 0 {
		return nil, 0, false
	}
	return binary[:written], format, true
}

func (glDriver) DrawArrays(mode device.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (glDriver) DrawElements(mode device.Enum, count int32, ty device.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(ty), uintptr(offset))
}

func (glDriver) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }
func (glDriver) Scissor(x, y, w, h int32)  { gl.Scissor(x, y, w, h) }

func (glDriver) Enable(cap device.Enum)  { gl.Enable(uint32(cap)) }
func (glDriver) Disable(cap device.Enum) { gl.Disable(uint32(cap)) }

func (glDriver) BlendFunc(src, dst device.Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (glDriver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha device.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (glDriver) BlendEquation(mode device.Enum) { gl.BlendEquation(uint32(mode)) }

func (glDriver) DepthFunc(fn device.Enum) { gl.DepthFunc(uint32(fn)) }
func (glDriver) DepthMask(flag bool)       { gl.DepthMask(flag) }

func (glDriver) Clear(mask uint32) { gl.Clear(mask) }

func (glDriver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (glDriver) ClearDepth(d float64)          { gl.ClearDepth(d) }

func (glDriver) PixelStorei(pname device.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

func (glDriver) Flush()  { gl.Flush() }
func (glDriver) Finish() { gl.Finish() }

func (glDriver) DebugMessageCallback(cb func(source, gltype, id, severity device.Enum, message string)) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		cb(device.Enum(source), device.Enum(gltype), device.Enum(id), device.Enum(severity), message)
	}, nil)
}

func (glDriver) GetDebugMessages(maxCount int) []device.DebugMessage {
	if maxCount <= 0 {
		return nil
	}
	sources := make([]uint32, maxCount)
	types := make([]uint32, maxCount)
	ids := make([]uint32, maxCount)
	severities := make([]uint32, maxCount)
	lengths := make([]int32, maxCount)
	buf := make([]byte, maxCount*256)
	n := gl.GetDebugMessageLog(uint32(maxCount), int32(len(buf)),
		&sources[0], &types[0], &ids[0], &severities[0], &lengths[0], &buf[0])
	msgs := make([]device.DebugMessage, 0, n)
	offset := int32(0)
	for i := uint32(0); i < n; i++ {
		l := lengths[i]
		msg := string(buf[offset : offset+l-1])
		offset += l
		msgs = append(msgs, device.DebugMessage{
			Source:   device.Enum(sources[i]),
			Type:     device.Enum(types[i]),
			ID:       device.Enum(ids[i]),
			Severity: device.Enum(severities[i]),
			Message:  msg,
		})
	}
	return msgs
}

// slogDebugSink installs a Driver debug callback that logs every
// message through log, the way the teacher's EnableDebugOutput wires
// gl.DebugMessageCallback straight to an slog.Logger.
func slogDebugSink(d device.Driver, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	d.DebugMessageCallback(func(source, gltype, id, severity device.Enum, message string) {
		var level slog.Level
		switch gltype {
		case device.DEBUG_TYPE_ERROR:
			level = slog.LevelError
		case device.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
			level = slog.LevelWarn
		default:
			level = slog.LevelInfo
		}
		log.LogAttrs(context.Background(), level, message,
			slog.Uint64("source", uint64(source)),
			slog.Uint64("gltype", uint64(gltype)),
			slog.Uint64("id", uint64(id)),
		)
	})
}

// EnableDebugOutput wires the driver's debug message callback straight
// to log, the same one-call setup as the teacher's
// glgl.EnableDebugOutput.
func EnableDebugOutput(d device.Driver, log *slog.Logger) {
	slogDebugSink(d, log)
}
