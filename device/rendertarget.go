package device

import "fmt"

type sizeKey struct{ w, h int32 }

// renderTargetManager owns every FBO and the depth renderbuffers they
// share. Depth attachments are refcounted and keyed by (width,
// height): two textures rendered at the same size reuse one
// renderbuffer, created lazily on first use and deleted once its
// refcount drops to zero. Mirrors gl.rs's
// acquire_depth_target/release_depth_target.
type renderTargetManager struct {
	dev        *Device
	depthBySize map[sizeKey]*Renderbuffer

	// blitWorkaround holds one FBO+texture pair per size used to route
	// non-zero-layer blits through a 2D intermediate on drivers (Adreno)
	// that can't blit directly into an array layer.
	blitWorkaround map[sizeKey]*FBO
}

func newRenderTargetManager(dev *Device) *renderTargetManager {
	return &renderTargetManager{
		dev:            dev,
		depthBySize:    map[sizeKey]*Renderbuffer{},
		blitWorkaround: map[sizeKey]*FBO{},
	}
}

// CreateFBOForTexture creates an FBO bound to one layer of tex (layer
// is ignored for non-array textures) and, if withDepth is set,
// attaches a shared depth renderbuffer of the matching size.
// Attachment never happens eagerly for color; C6 creates FBOs lazily,
// only when a texture is first used as a render target.
func (d *Device) CreateFBOForTexture(tex *Texture, layer int32, withDepth bool) (*FBO, error) {
	rtm := d.renderTargets
	glID := d.driver.GenFramebuffers(1)[0]
	d.bindFramebuffer(DRAW_FRAMEBUFFER, glID)

	if tex.Layers > 1 {
		d.driver.FramebufferTextureLayer(DRAW_FRAMEBUFFER, COLOR_ATTACHMENT0, tex.glID, 0, layer)
	} else {
		d.driver.FramebufferTexture2D(DRAW_FRAMEBUFFER, COLOR_ATTACHMENT0, tex.target, tex.glID, 0)
	}

	fbo := &FBO{
		id:           FBOID(d.reg.alloc()),
		glID:         glID,
		colorTexture: tex.id,
		layer:        layer,
		Width:        tex.Width,
		Height:       tex.Height,
	}

	if withDepth {
		rb := rtm.acquireDepthTarget(tex.Width, tex.Height, DEPTH_COMPONENT24)
		d.driver.FramebufferRenderbuffer(DRAW_FRAMEBUFFER, DEPTH_ATTACHMENT, rb.glID)
		fbo.depth = rb.id
	}

	if status := d.driver.CheckFramebufferStatus(DRAW_FRAMEBUFFER); status != FRAMEBUFFER_COMPLETE {
		d.destroyFBO(fbo)
		return nil, fmt.Errorf("device: framebuffer incomplete: status 0x%x", status)
	}

	d.reg.fbos[fbo.id] = fbo
	return fbo, nil
}

// acquireDepthTarget returns the shared depth renderbuffer for
// (w, h), creating it on first request. Every call must be paired
// with a releaseDepthTarget once the owning FBO is destroyed.
func (rtm *renderTargetManager) acquireDepthTarget(w, h int32, format Enum) *Renderbuffer {
	key := sizeKey{w, h}
	if rb, ok := rtm.depthBySize[key]; ok {
		rb.refcount++
		return rb
	}
	d := rtm.dev
	glID := d.driver.GenRenderbuffers(1)[0]
	d.driver.BindRenderbuffer(glID)
	d.driver.RenderbufferStorage(format, w, h)
	rb := &Renderbuffer{
		id:       RenderbufferID(d.reg.alloc()),
		glID:     glID,
		Width:    w,
		Height:   h,
		Format:   format,
		refcount: 1,
	}
	d.reg.renderbuffers[rb.id] = rb
	d.reg.gpuBytes += rb.bytes()
	rtm.depthBySize[key] = rb
	return rb
}

// releaseDepthTarget drops one reference to rb's shared renderbuffer,
// deleting the underlying GL object once the refcount reaches zero.
func (rtm *renderTargetManager) releaseDepthTarget(rb *Renderbuffer) {
	rb.refcount--
	if rb.refcount > 0 {
		return
	}
	d := rtm.dev
	delete(rtm.depthBySize, sizeKey{rb.Width, rb.Height})
	delete(d.reg.renderbuffers, rb.id)
	d.reg.gpuBytes -= rb.bytes()
	d.driver.DeleteRenderbuffers([]uint32{rb.glID})
}

// destroyFBO deletes fbo and releases its shared depth attachment, if
// any.
func (d *Device) destroyFBO(fbo *FBO) {
	if fbo.depth != 0 {
		if rb, ok := d.reg.renderbuffers[fbo.depth]; ok {
			d.renderTargets.releaseDepthTarget(rb)
		}
	}
	delete(d.reg.fbos, fbo.id)
	d.driver.DeleteFramebuffers([]uint32{fbo.glID})
}

// blitWorkaroundTarget returns a scratch (FBO, Texture) pair of size
// (w, h) used to stage a blit into a non-zero array layer on drivers
// whose Capabilities.SupportsBlitToTextureArray is false (Adreno):
// blit into the 2D scratch texture, then CopyTexSubImage3D from the
// scratch into the real array layer. Allocated lazily, one per
// distinct size, and never released early — these are small and
// reused across the whole device lifetime.
func (d *Device) blitWorkaroundTarget(w, h int32, format ImageFormat) (*FBO, *Texture, error) {
	key := sizeKey{w, h}
	if fbo, ok := d.renderTargets.blitWorkaround[key]; ok {
		tex, err := d.lookupTexture(fbo.colorTexture)
		return fbo, tex, err
	}
	tex, err := d.CreateTexture(format, w, h, 1, FilterNearest)
	if err != nil {
		return nil, nil, err
	}
	fbo, err := d.CreateFBOForTexture(tex, 0, false)
	if err != nil {
		d.DeleteTexture(tex)
		return nil, nil, err
	}
	d.renderTargets.blitWorkaround[key] = fbo
	return fbo, tex, nil
}
