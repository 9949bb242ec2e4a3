package device

// stateCache eliminates redundant driver calls by remembering the
// last value bound to each piece of GL state this device touches.
// Every bind/use method here is a guarded driver call: set-if-
// different, matching spec.md C3's "no call issued when the requested
// state already matches the cached state" invariant.
type stateCache struct {
	boundTextureUnit uint32
	boundTextures    map[uint32]uint32 // unit -> glID, per TEXTURE_2D target only
	currentProgram   uint32
	boundVAO         uint32
	boundReadFBO     uint32
	boundDrawFBO     uint32
	boundVBO         uint32
	boundIBO         uint32
	boundPBOPack     uint32
	boundPBOUnpack   uint32

	valid bool
}

func newStateCache() *stateCache {
	return &stateCache{boundTextures: map[uint32]uint32{}}
}

// reset forgets every cached value without issuing driver calls,
// forcing the next bind of each kind to go through regardless of
// whether the driver's actual bound object happens to match. Used by
// Device.ResetState, mirroring gl.rs's reset_state.
func (s *stateCache) reset() {
	*s = stateCache{boundTextures: map[uint32]uint32{}}
}

func (s *stateCache) onTextureDeleted(glID uint32) {
	for unit, bound := range s.boundTextures {
		if bound == glID {
			delete(s.boundTextures, unit)
		}
	}
}

func (d *Device) bindTextureUnit(unit uint32, target Enum, glID uint32) {
	if d.stateCache.boundTextures[unit] == glID && d.stateCache.valid {
		return
	}
	if d.stateCache.boundTextureUnit != unit {
		d.driver.ActiveTexture(unit)
		d.stateCache.boundTextureUnit = unit
	}
	d.driver.BindTexture(target, glID)
	d.stateCache.boundTextures[unit] = glID
	d.stateCache.valid = true
}

func (d *Device) useProgram(glID uint32) {
	if d.stateCache.currentProgram == glID && d.stateCache.valid {
		return
	}
	d.driver.UseProgram(glID)
	d.stateCache.currentProgram = glID
	d.stateCache.valid = true
}

func (d *Device) bindVAO(glID uint32) {
	if d.stateCache.boundVAO == glID && d.stateCache.valid {
		return
	}
	d.driver.BindVertexArray(glID)
	d.stateCache.boundVAO = glID
	d.stateCache.valid = true
}

func (d *Device) bindFramebuffer(target Enum, glID uint32) {
	switch target {
	case READ_FRAMEBUFFER:
		if d.stateCache.boundReadFBO == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundReadFBO = glID
	case DRAW_FRAMEBUFFER:
		if d.stateCache.boundDrawFBO == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundDrawFBO = glID
	case FRAMEBUFFER:
		if d.stateCache.boundReadFBO == glID && d.stateCache.boundDrawFBO == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundReadFBO = glID
		d.stateCache.boundDrawFBO = glID
	}
	d.driver.BindFramebuffer(target, glID)
	d.stateCache.valid = true
}

func (d *Device) bindBuffer(target Enum, glID uint32) {
	switch target {
	case ARRAY_BUFFER:
		if d.stateCache.boundVBO == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundVBO = glID
	case ELEMENT_ARRAY_BUFFER:
		if d.stateCache.boundIBO == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundIBO = glID
	case PIXEL_PACK_BUFFER:
		if d.stateCache.boundPBOPack == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundPBOPack = glID
	case PIXEL_UNPACK_BUFFER:
		if d.stateCache.boundPBOUnpack == glID && d.stateCache.valid {
			return
		}
		d.stateCache.boundPBOUnpack = glID
	}
	d.driver.BindBuffer(target, glID)
	d.stateCache.valid = true
}

// ResetState forgets every cached binding so the next device call
// rebinds from scratch, for use after code outside this package has
// made arbitrary GL calls (e.g. a host compositor sharing the
// context). Matches gl.rs's device.reset_state() called at the top of
// each frame by cautious callers.
func (d *Device) ResetState() {
	d.stateCache.reset()
}
