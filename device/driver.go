package device

// Driver is the narrow surface the core needs from an OpenGL /
// OpenGL ES binding. The core never imports a concrete GL binding; it
// is parameterized over this interface so the concrete implementation
// (package glcore) can be swapped for a fake in tests, or wrapped by
// an error-reacting or profiling decorator at runtime (see
// ErrorReactingDriver, ProfilingDriver).
//
// Method shapes mirror the teacher's direct gl.* calls one-for-one;
// the interface exists to make the call path swappable, not to change
// what gets called.
type Driver interface {
	// Queries
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetIntegerv(name Enum) int32
	GetError() Enum

	// Textures
	GenTextures(n int) []uint32
	DeleteTextures(ids []uint32)
	BindTexture(target Enum, id uint32)
	ActiveTexture(unit uint32)
	TexParameteri(target Enum, pname Enum, param int32)
	TexImage2D(target Enum, level int32, internal Enum, w, h int32, external Enum, ty Enum, data []byte)
	TexStorage2D(target Enum, levels int32, internal Enum, w, h int32)
	TexStorage3D(target Enum, levels int32, internal Enum, w, h, depth int32)
	TexSubImage2D(target Enum, level, xoff, yoff, w, h int32, external Enum, ty Enum, data []byte)
	// TexSubImage3D is TexSubImage2D's array/volume-texture sibling,
	// addressing a single layer (zoff) of depth extent 1.
	TexSubImage3D(target Enum, level, xoff, yoff, zoff, w, h int32, external Enum, ty Enum, data []byte)
	// TexSubImage2DFromPBO uploads from whichever PIXEL_UNPACK_BUFFER is
	// currently bound, starting at byte offset pboOffset, the way a real
	// driver call passes the PBO offset as the "pointer" argument once a
	// buffer is bound to GL_PIXEL_UNPACK_BUFFER.
	TexSubImage2DFromPBO(target Enum, level, xoff, yoff, w, h int32, external Enum, ty Enum, pboOffset int)
	// TexSubImage3DFromPBO is TexSubImage2DFromPBO's array-texture
	// sibling, used for layer > 0 (and layer == 0 of a 2D-array target).
	TexSubImage3DFromPBO(target Enum, level, xoff, yoff, zoff, w, h int32, external Enum, ty Enum, pboOffset int)
	CopyTexSubImage3D(target Enum, level, xoff, yoff, zoff, x, y, w, h int32)
	GenerateMipmap(target Enum)

	// Renderbuffers
	GenRenderbuffers(n int) []uint32
	DeleteRenderbuffers(ids []uint32)
	BindRenderbuffer(id uint32)
	RenderbufferStorage(internal Enum, w, h int32)

	// Framebuffers
	GenFramebuffers(n int) []uint32
	DeleteFramebuffers(ids []uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture2D(target, attachment Enum, textarget Enum, texture uint32, level int32)
	FramebufferTextureLayer(target, attachment Enum, texture uint32, level, layer int32)
	FramebufferRenderbuffer(target, attachment Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask uint32, filter Enum)
	InvalidateFramebuffer(target Enum, attachments []Enum)
	CopyImageSubData(srcName uint32, srcTarget Enum, srcLevel, srcX, srcY, srcZ int32,
		dstName uint32, dstTarget Enum, dstLevel, dstX, dstY, dstZ int32, w, h, depth int32)

	// Buffers
	GenBuffers(n int) []uint32
	DeleteBuffers(ids []uint32)
	BindBuffer(target Enum, id uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	MapBufferRange(target Enum, offset, length int, access uint32) []byte
	UnmapBuffer(target Enum) bool

	// Vertex arrays
	GenVertexArrays(n int) []uint32
	DeleteVertexArrays(ids []uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride int32, offset int)

	// Shaders / programs
	CreateShader(ty Enum) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	GetShaderiv(id uint32, pname Enum) int32
	GetShaderInfoLog(id uint32) string
	CreateProgram() uint32
	DeleteProgram(id uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(id uint32)
	BindFragDataLocation(program uint32, color uint32, name string)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	UniformMatrix4fv(loc int32, m [16]float32)
	ProgramParameteri(program uint32, pname Enum, value int32)
	ProgramBinary(program uint32, format uint32, binary []byte)
	GetProgramBinary(program uint32) (binary []byte, format uint32, ok bool)

	// Draw
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, ty Enum, offset int)
	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)
	Enable(cap Enum)
	Disable(cap Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquation(mode Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	PixelStorei(pname Enum, param int32)
	Flush()
	Finish()

	// Debug
	DebugMessageCallback(cb func(source, gltype, id, severity Enum, message string))
	GetDebugMessages(maxCount int) []DebugMessage
}

// DebugMessage is one KHR_debug entry.
type DebugMessage struct {
	Source, Type, ID, Severity Enum
	Message                    string
}
