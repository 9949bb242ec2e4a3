package device

// TargetKind distinguishes the three flavors of render target C7
// names: the window-system-provided default framebuffer, a texture
// (FBO) this device owns, and an FBO owned by a host embedder.
type TargetKind int

const (
	TargetDefault TargetKind = iota
	TargetTexture
	TargetExternal
)

// DrawTarget is something a draw call can render into. Its zero value
// is not valid; construct one with DefaultDrawTarget, TextureDrawTarget,
// or ExternalDrawTarget.
type DrawTarget struct {
	Kind          TargetKind
	Width, Height int32
	fboGL         uint32
	// flipY is true for the default target: GL's window-system
	// framebuffer has its origin at the bottom-left, but callers
	// describe rects top-left-down, same as every texture's logical
	// image origin. Texture and external targets never need the flip
	// since nothing outside this device ever displays them directly.
	flipY bool
}

// ReadTarget is something a blit or pixel read can read from. Same
// shape as DrawTarget; kept as a distinct type so a caller can't
// accidentally bind a read target as a draw target or vice versa.
type ReadTarget struct {
	Kind          TargetKind
	Width, Height int32
	fboGL         uint32
	flipY         bool
}

// DefaultDrawTarget describes the window-system framebuffer at the
// given dimensions.
func (d *Device) DefaultDrawTarget(w, h int32) DrawTarget {
	return DrawTarget{Kind: TargetDefault, Width: w, Height: h, flipY: true}
}

// TextureDrawTarget describes rendering into fbo.
func (d *Device) TextureDrawTarget(fbo *FBO) DrawTarget {
	return DrawTarget{Kind: TargetTexture, Width: fbo.Width, Height: fbo.Height, fboGL: fbo.glID}
}

// ExternalDrawTarget describes rendering into a framebuffer object
// this device does not own (glFBO is a raw GL name supplied by a host
// embedder).
func (d *Device) ExternalDrawTarget(glFBO uint32, w, h int32) DrawTarget {
	return DrawTarget{Kind: TargetExternal, Width: w, Height: h, fboGL: glFBO}
}

// DefaultReadTarget, TextureReadTarget, ExternalReadTarget mirror the
// DrawTarget constructors for the read side.
func (d *Device) DefaultReadTarget(w, h int32) ReadTarget {
	return ReadTarget{Kind: TargetDefault, Width: w, Height: h, flipY: true}
}

func (d *Device) TextureReadTarget(fbo *FBO) ReadTarget {
	return ReadTarget{Kind: TargetTexture, Width: fbo.Width, Height: fbo.Height, fboGL: fbo.glID}
}

func (d *Device) ExternalReadTarget(glFBO uint32, w, h int32) ReadTarget {
	return ReadTarget{Kind: TargetExternal, Width: w, Height: h, fboGL: glFBO}
}

// ReadTargetFromDraw derives a ReadTarget that reads from the same
// framebuffer dt draws into. Go has no equivalent of a `From` trait
// impl, so this is a plain constructor function rather than a type
// conversion. Nothing inside this package calls it.
func ReadTargetFromDraw(dt DrawTarget) ReadTarget {
	return ReadTarget{Kind: dt.Kind, Width: dt.Width, Height: dt.Height, fboGL: dt.fboGL, flipY: dt.flipY}
}

// BindDrawTarget binds dt as DRAW_FRAMEBUFFER and sets the viewport to
// its full extent.
func (d *Device) BindDrawTarget(dt DrawTarget) {
	d.bindFramebuffer(DRAW_FRAMEBUFFER, dt.fboGL)
	d.driver.Viewport(0, 0, dt.Width, dt.Height)
}

// BindReadTarget binds rt as READ_FRAMEBUFFER.
func (d *Device) BindReadTarget(rt ReadTarget) {
	d.bindFramebuffer(READ_FRAMEBUFFER, rt.fboGL)
}

// SetScissor enables the scissor test and sets a scissor rect
// described in the caller's top-left-origin, (x, y, w, h) convention,
// converting to GL's bottom-left origin when dt needs the flip.
func (d *Device) SetScissor(dt DrawTarget, x, y, w, h int32) {
	glY := y
	if dt.flipY {
		glY = dt.Height - (y + h)
	}
	d.driver.Enable(SCISSOR_TEST)
	d.driver.Scissor(x, glY, w, h)
}

// DisableScissor disables the scissor test.
func (d *Device) DisableScissor() {
	d.driver.Disable(SCISSOR_TEST)
}
