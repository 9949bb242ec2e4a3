package device

// fakeDriver is a pure in-memory Driver good enough to exercise every
// piece of device logic that doesn't require an actual GPU: capability
// probing, resource registry bookkeeping, state cache elision, shader
// composition/digest, program cache hit/miss, and the upload engine's
// stride math. GL object IDs are simply incrementing counters; no
// actual rendering happens.
type fakeDriver struct {
	nextID uint32

	strings map[Enum]string
	ints    map[Enum]int32
	extensions []string

	shaderSource map[uint32]string
	compileOK    map[uint32]bool
	linkOK       map[uint32]bool
	infoLog      map[uint32]string

	buffers map[uint32][]byte
	mapped  map[uint32][]byte

	programBinaries map[uint32][]byte

	errQueue []Enum

	// call counters, for state-cache elision assertions.
	calls map[string]int

	// fboStatusOverride, when non-zero, is returned by
	// CheckFramebufferStatus instead of FRAMEBUFFER_COMPLETE.
	fboStatusOverride Enum

	// linkFail, when true, makes every LinkProgram leave LINK_STATUS at 0.
	linkFail bool

	// pixelStore records the last value set for each PixelStorei pname,
	// for assertions on UNPACK_ROW_LENGTH bracketing around flushes.
	pixelStore    map[Enum]int32
	pixelStoreLog []int32 // UNPACK_ROW_LENGTH values in call order
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		strings:         map[Enum]string{RENDERER: "fake renderer", VERSION_STR: "4.6 (Core Profile)"},
		ints:            map[Enum]int32{MAX_TEXTURE_SIZE: 4096, MAX_ARRAY_TEXTURE_LAYERS: 256},
		shaderSource:    map[uint32]string{},
		compileOK:       map[uint32]bool{},
		linkOK:          map[uint32]bool{},
		infoLog:         map[uint32]string{},
		buffers:         map[uint32][]byte{},
		mapped:          map[uint32][]byte{},
		programBinaries: map[uint32][]byte{},
		calls:           map[string]int{},
		pixelStore:      map[Enum]int32{},
	}
}

func (f *fakeDriver) alloc() uint32 { f.nextID++; return f.nextID }

func (f *fakeDriver) count(name string) { f.calls[name]++ }

func (f *fakeDriver) GetString(name Enum) string { return f.strings[name] }
func (f *fakeDriver) GetStringi(name Enum, index uint32) string {
	if name != EXTENSIONS || int(index) >= len(f.extensions) {
		return ""
	}
	return f.extensions[index]
}
func (f *fakeDriver) GetIntegerv(name Enum) int32 {
	if name == NUM_EXTENSIONS {
		return int32(len(f.extensions))
	}
	return f.ints[name]
}
func (f *fakeDriver) GetError() Enum {
	if len(f.errQueue) == 0 {
		return 0
	}
	e := f.errQueue[0]
	f.errQueue = f.errQueue[1:]
	return e
}

func (f *fakeDriver) GenTextures(n int) []uint32      { return f.genIDs(n) }
func (f *fakeDriver) DeleteTextures(ids []uint32)      {}
func (f *fakeDriver) BindTexture(target Enum, id uint32) { f.count("BindTexture") }
func (f *fakeDriver) ActiveTexture(unit uint32)          { f.count("ActiveTexture") }
func (f *fakeDriver) TexParameteri(target, pname Enum, param int32) {}
func (f *fakeDriver) TexImage2D(target Enum, level int32, internal Enum, w, h int32, external, ty Enum, data []byte) {
}
func (f *fakeDriver) TexStorage2D(target Enum, levels int32, internal Enum, w, h int32) {}
func (f *fakeDriver) TexStorage3D(target Enum, levels int32, internal Enum, w, h, depth int32) {}
func (f *fakeDriver) TexSubImage2D(target Enum, level, xoff, yoff, w, h int32, external, ty Enum, data []byte) {
}
func (f *fakeDriver) TexSubImage2DFromPBO(target Enum, level, xoff, yoff, w, h int32, external, ty Enum, pboOffset int) {
	f.count("TexSubImage2DFromPBO")
}
func (f *fakeDriver) TexSubImage3D(target Enum, level, xoff, yoff, zoff, w, h int32, external, ty Enum, data []byte) {
}
func (f *fakeDriver) TexSubImage3DFromPBO(target Enum, level, xoff, yoff, zoff, w, h int32, external, ty Enum, pboOffset int) {
	f.count("TexSubImage3DFromPBO")
}
func (f *fakeDriver) CopyTexSubImage3D(target Enum, level, xoff, yoff, zoff, x, y, w, h int32) {}
func (f *fakeDriver) GenerateMipmap(target Enum)                                               {}

func (f *fakeDriver) GenRenderbuffers(n int) []uint32 { return f.genIDs(n) }
func (f *fakeDriver) DeleteRenderbuffers(ids []uint32) {}
func (f *fakeDriver) BindRenderbuffer(id uint32)       {}
func (f *fakeDriver) RenderbufferStorage(internal Enum, w, h int32) {}

func (f *fakeDriver) GenFramebuffers(n int) []uint32 { return f.genIDs(n) }
func (f *fakeDriver) DeleteFramebuffers(ids []uint32) {}
func (f *fakeDriver) BindFramebuffer(target Enum, id uint32) { f.count("BindFramebuffer") }
func (f *fakeDriver) FramebufferTexture2D(target, attachment, textarget Enum, texture uint32, level int32) {
}
func (f *fakeDriver) FramebufferTextureLayer(target, attachment Enum, texture uint32, level, layer int32) {
}
func (f *fakeDriver) FramebufferRenderbuffer(target, attachment Enum, renderbuffer uint32) {}
func (f *fakeDriver) CheckFramebufferStatus(target Enum) Enum {
	if f.fboStatusOverride != 0 {
		return f.fboStatusOverride
	}
	return FRAMEBUFFER_COMPLETE
}
func (f *fakeDriver) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask uint32, filter Enum) {
}
func (f *fakeDriver) InvalidateFramebuffer(target Enum, attachments []Enum) {}
func (f *fakeDriver) CopyImageSubData(srcName uint32, srcTarget Enum, srcLevel, srcX, srcY, srcZ int32,
	dstName uint32, dstTarget Enum, dstLevel, dstX, dstY, dstZ int32, w, h, depth int32) {
}

func (f *fakeDriver) GenBuffers(n int) []uint32 { return f.genIDs(n) }
func (f *fakeDriver) DeleteBuffers(ids []uint32) {}
func (f *fakeDriver) BindBuffer(target Enum, id uint32) { f.count("BindBuffer") }
func (f *fakeDriver) BufferData(target Enum, size int, data []byte, usage Enum) {
}
func (f *fakeDriver) BufferSubData(target Enum, offset int, data []byte) {}
func (f *fakeDriver) MapBufferRange(target Enum, offset, length int, access uint32) []byte {
	buf := make([]byte, length)
	f.mapped[uint32(offset)] = buf
	return buf
}
func (f *fakeDriver) UnmapBuffer(target Enum) bool { return true }

func (f *fakeDriver) GenVertexArrays(n int) []uint32 { return f.genIDs(n) }
func (f *fakeDriver) DeleteVertexArrays(ids []uint32) {}
func (f *fakeDriver) BindVertexArray(id uint32)       { f.count("BindVertexArray") }
func (f *fakeDriver) EnableVertexAttribArray(index uint32) {}
func (f *fakeDriver) VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride int32, offset int) {
}

func (f *fakeDriver) CreateShader(ty Enum) uint32 { return f.alloc() }
func (f *fakeDriver) DeleteShader(id uint32)       {}
func (f *fakeDriver) ShaderSource(id uint32, src string) { f.shaderSource[id] = src }
func (f *fakeDriver) CompileShader(id uint32)            { f.compileOK[id] = true }
func (f *fakeDriver) GetShaderiv(id uint32, pname Enum) int32 {
	if pname == COMPILE_STATUS && f.compileOK[id] {
		return 1
	}
	return 0
}
func (f *fakeDriver) GetShaderInfoLog(id uint32) string { return f.infoLog[id] }

func (f *fakeDriver) CreateProgram() uint32       { return f.alloc() }
func (f *fakeDriver) DeleteProgram(id uint32)     {}
func (f *fakeDriver) AttachShader(program, shader uint32) {}
func (f *fakeDriver) DetachShader(program, shader uint32) {}
func (f *fakeDriver) LinkProgram(program uint32) {
	f.count("LinkProgram")
	f.linkOK[program] = !f.linkFail
}
func (f *fakeDriver) ValidateProgram(program uint32)      {}
func (f *fakeDriver) GetProgramiv(program uint32, pname Enum) int32 {
	if pname == LINK_STATUS && f.linkOK[program] {
		return 1
	}
	if pname == VALIDATE_STATUS {
		return 1
	}
	return 0
}
func (f *fakeDriver) GetProgramInfoLog(program uint32) string { return f.infoLog[program] }
func (f *fakeDriver) UseProgram(id uint32)                    { f.count("UseProgram") }
func (f *fakeDriver) BindFragDataLocation(program uint32, color uint32, name string) {}
func (f *fakeDriver) GetUniformLocation(program uint32, name string) int32 { return 0 }
func (f *fakeDriver) GetAttribLocation(program uint32, name string) int32 { return 0 }
func (f *fakeDriver) Uniform1i(loc int32, v int32)     {}
func (f *fakeDriver) Uniform1f(loc int32, v float32)    {}
func (f *fakeDriver) UniformMatrix4fv(loc int32, m [16]float32) {}
func (f *fakeDriver) ProgramParameteri(program uint32, pname Enum, value int32) {}
func (f *fakeDriver) ProgramBinary(program uint32, format uint32, binary []byte) {
	f.programBinaries[program] = binary
	f.linkOK[program] = true
}
func (f *fakeDriver) GetProgramBinary(program uint32) ([]byte, uint32, bool) {
	b, ok := f.programBinaries[program]
	if !ok {
		b = []byte{0xde, 0xad, 0xbe, 0xef}
	}
	return b, 1, true
}

func (f *fakeDriver) DrawArrays(mode Enum, first, count int32)                    {}
func (f *fakeDriver) DrawElements(mode Enum, count int32, ty Enum, offset int)    {}
func (f *fakeDriver) Viewport(x, y, w, h int32)                                   {}
func (f *fakeDriver) Scissor(x, y, w, h int32)                                    {}
func (f *fakeDriver) Enable(cap Enum)                                             {}
func (f *fakeDriver) Disable(cap Enum)                                            {}
func (f *fakeDriver) BlendFunc(src, dst Enum)                                     {}
func (f *fakeDriver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)   {}
func (f *fakeDriver) BlendEquation(mode Enum)                                     {}
func (f *fakeDriver) DepthFunc(fn Enum)                                           {}
func (f *fakeDriver) DepthMask(flag bool)                                         {}
func (f *fakeDriver) Clear(mask uint32)                                           {}
func (f *fakeDriver) ClearColor(r, g, b, a float32)                               {}
func (f *fakeDriver) ClearDepth(d float64)                                        {}
func (f *fakeDriver) PixelStorei(pname Enum, param int32) {
	f.pixelStore[pname] = param
	if pname == UNPACK_ROW_LENGTH {
		f.pixelStoreLog = append(f.pixelStoreLog, param)
	}
}
func (f *fakeDriver) Flush()                                                      {}
func (f *fakeDriver) Finish()                                                     {}

func (f *fakeDriver) DebugMessageCallback(cb func(source, gltype, id, severity Enum, message string)) {
}
func (f *fakeDriver) GetDebugMessages(maxCount int) []DebugMessage { return nil }

func (f *fakeDriver) genIDs(n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = f.alloc()
	}
	return ids
}

var _ Driver = (*fakeDriver)(nil)
