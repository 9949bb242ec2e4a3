package device

// CreateTexture allocates a new 2D or array texture of the given
// logical format and dimensions. Storage allocation dispatches on the
// capability-probed TexStorageUsage policy exactly as gl.rs's
// create_texture does: tex_storage when the driver is trusted for
// this format, otherwise tex_image with a nil data pointer to reserve
// storage without transferring pixels.
func (d *Device) CreateTexture(format ImageFormat, w, h, layers int32, filter TextureFilter) (*Texture, error) {
	target := TEXTURE_2D
	if layers > 1 {
		target = TEXTURE_2D_ARRAY
	}
	glID := d.driver.GenTextures(1)[0]
	d.bindTextureUnit(0, target, glID)

	desc := describeFormat(d.caps, format)
	if d.caps.CanUseTexStorage(format) {
		if layers > 1 {
			d.driver.TexStorage3D(target, 1, desc.Internal, w, h, layers)
		} else {
			d.driver.TexStorage2D(target, 1, desc.Internal, w, h)
		}
	} else {
		if layers > 1 {
			// No tex_image3d in the narrow Driver surface: array
			// textures always go through tex_storage in practice (every
			// driver old enough to lack EXT_texture_storage also lacks
			// array textures), so this path only ever runs for 2D.
			d.driver.TexStorage3D(target, 1, desc.Internal, w, h, layers)
		} else {
			d.driver.TexImage2D(target, 0, desc.Internal, w, h, desc.External, desc.PixelType, nil)
		}
	}

	minFilter, magFilter := NEAREST, NEAREST
	if filter == FilterLinear {
		minFilter, magFilter = LINEAR_MIPMAP_LINEAR, LINEAR
	}
	d.driver.TexParameteri(target, TEXTURE_MIN_FILTER, int32(minFilter))
	d.driver.TexParameteri(target, TEXTURE_MAG_FILTER, int32(magFilter))
	d.driver.TexParameteri(target, TEXTURE_WRAP_S, int32(CLAMP_TO_EDGE))
	d.driver.TexParameteri(target, TEXTURE_WRAP_T, int32(CLAMP_TO_EDGE))

	return d.registerTexture(glID, target, format, w, h, layers, filter), nil
}

// DeleteTexture releases tex's GL object, subtracts its bytes from the
// GPU-byte counter, and forgets it in the state cache so a stale
// binding can't be mistaken for live state.
func (d *Device) DeleteTexture(tex *Texture) {
	d.destroyTexture(tex)
}

// BindTextureForSampling binds tex to texture unit slot for use as a
// shader sampler input.
func (d *Device) BindTextureForSampling(slot uint32, tex *Texture) {
	d.bindTextureUnit(slot, tex.target, tex.glID)
}

// RegisterExternalTexture wraps a texture the device does not own
// (glID, target supplied by the caller — typically a platform video
// decoder surface) for binding purposes only; DeleteExternalTexture
// never deletes the underlying GL object.
func (d *Device) RegisterExternalTexture(glID uint32, target Enum) *ExternalTexture {
	t := &ExternalTexture{id: ExternalTextureID(d.reg.alloc()), glID: glID, target: target}
	d.reg.externalTexs[t.id] = t
	return t
}

// DeleteExternalTexture forgets t without touching the underlying GL
// texture object, which some other owner is responsible for.
func (d *Device) DeleteExternalTexture(t *ExternalTexture) {
	delete(d.reg.externalTexs, t.id)
}

// BindExternalTextureForSampling binds t to texture unit slot.
func (d *Device) BindExternalTextureForSampling(slot uint32, t *ExternalTexture) {
	d.bindTextureUnit(slot, t.target, t.glID)
}

// GenerateMipmaps regenerates the mip chain for tex, needed after any
// upload to a FilterLinear texture (matching spec.md's "mipmap
// regeneration for trilinear-filtered textures" edge case).
func (d *Device) GenerateMipmaps(tex *Texture) {
	if tex.Filter != FilterLinear {
		return
	}
	d.bindTextureUnit(0, tex.target, tex.glID)
	d.driver.GenerateMipmap(tex.target)
	tex.hasMips = true
}
