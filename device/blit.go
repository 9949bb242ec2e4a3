package device

import "fmt"

// Rect is an axis-aligned pixel rectangle in top-left-origin
// coordinates, the same convention every texture's logical image uses.
type Rect struct {
	X, Y, W, H int32
}

// CopyTextureSubData copies a same-size region directly from one
// texture to another via CopyImageSubData when the driver supports
// it — no framebuffer bind, no blit, the cheapest possible path —
// falling back to an FBO blit otherwise. Mirrors gl.rs's preference
// for CopyImageSubData over blit_framebuffer wherever both textures
// are plain 2D (layer 0).
func (d *Device) CopyTextureSubData(src *Texture, srcX, srcY int32, dst *Texture, dstX, dstY, w, h int32) error {
	if d.caps.SupportsCopyImageSubData {
		d.driver.CopyImageSubData(
			src.glID, src.target, 0, srcX, srcY, 0,
			dst.glID, dst.target, 0, dstX, dstY, 0,
			w, h, 1,
		)
		return nil
	}
	srcFBO, err := d.CreateFBOForTexture(src, 0, false)
	if err != nil {
		return fmt.Errorf("device: copy fallback: %w", err)
	}
	defer d.destroyFBO(srcFBO)
	dstFBO, err := d.CreateFBOForTexture(dst, 0, false)
	if err != nil {
		return fmt.Errorf("device: copy fallback: %w", err)
	}
	defer d.destroyFBO(dstFBO)

	d.BlitFramebufferRect(
		d.TextureReadTarget(srcFBO), Rect{srcX, srcY, w, h},
		d.TextureDrawTarget(dstFBO), Rect{dstX, dstY, w, h},
		false,
	)
	return nil
}

// BlitFramebufferRect blits srcRect of src into dstRect of dst,
// converting each rect from top-left-origin to GL's bottom-left
// origin when its target requires the flip (the default
// window-system target only). linear selects GL_LINEAR filtering for
// a size-changing blit; same-size blits should pass false.
func (d *Device) BlitFramebufferRect(src ReadTarget, srcRect Rect, dst DrawTarget, dstRect Rect, linear bool) {
	d.BindReadTarget(src)
	d.bindFramebuffer(DRAW_FRAMEBUFFER, dst.fboGL)

	sx0, sy0, sx1, sy1 := rectToGL(src.flipY, src.Height, srcRect)
	dx0, dy0, dx1, dy1 := rectToGL(dst.flipY, dst.Height, dstRect)

	filter := NEAREST
	if linear {
		filter = LINEAR
	}
	d.driver.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, uint32(COLOR_BUFFER_BIT), filter)
}

func rectToGL(flip bool, targetHeight int32, r Rect) (x0, y0, x1, y1 int32) {
	if !flip {
		return r.X, r.Y, r.X + r.W, r.Y + r.H
	}
	// Flip: GL's bottom-left origin means the top edge in caller
	// coordinates is the larger GL y.
	y0 = targetHeight - (r.Y + r.H)
	y1 = targetHeight - r.Y
	return r.X, y0, r.X + r.W, y1
}

// BlitToArrayLayer renders srcRect of src into layer of dstTex (an
// array texture), routing through a 2D scratch FBO first on drivers
// that can't blit directly into a non-zero array layer
// (Capabilities.SupportsBlitToTextureArray == false, the Adreno blit
// bug this device works around). Layer 0 never needs the workaround:
// a plain FramebufferTextureLayer bind blits directly in that case on
// every driver this device targets.
func (d *Device) BlitToArrayLayer(dstTex *Texture, layer int32, src ReadTarget, srcRect Rect) error {
	if layer == 0 || d.caps.SupportsBlitToTextureArray {
		dstFBO, err := d.CreateFBOForTexture(dstTex, layer, false)
		if err != nil {
			return err
		}
		defer d.destroyFBO(dstFBO)
		d.BlitFramebufferRect(src, srcRect, d.TextureDrawTarget(dstFBO), Rect{0, 0, srcRect.W, srcRect.H}, false)
		return nil
	}

	scratchFBO, scratchTex, err := d.blitWorkaroundTarget(srcRect.W, srcRect.H, dstTex.Format)
	if err != nil {
		return fmt.Errorf("device: blit workaround: %w", err)
	}
	d.BlitFramebufferRect(src, srcRect, d.TextureDrawTarget(scratchFBO), Rect{0, 0, srcRect.W, srcRect.H}, false)
	d.bindFramebuffer(READ_FRAMEBUFFER, scratchFBO.glID)
	d.bindTextureUnit(0, dstTex.target, dstTex.glID)
	d.driver.CopyTexSubImage3D(dstTex.target, 0, 0, 0, layer, 0, 0, srcRect.W, srcRect.H)
	_ = scratchTex
	return nil
}

// InvalidateFramebuffer hints to the driver that the named attachments
// of dt's framebuffer no longer need their contents preserved (tile
// GPUs skip a store pass). A pure performance hint: correctness never
// depends on it running.
func (d *Device) InvalidateFramebuffer(dt DrawTarget, attachments ...Enum) {
	d.bindFramebuffer(DRAW_FRAMEBUFFER, dt.fboGL)
	d.driver.InvalidateFramebuffer(DRAW_FRAMEBUFFER, attachments)
}
