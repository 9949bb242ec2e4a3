package device

// UploadMode selects how an Uploader transfers pixel data to a
// texture, chosen once at construction (spec.md C8's "two modes").
type UploadMode int

const (
	// UploadPBO queues chunks into a streaming pixel-unpack buffer and
	// defers the actual TexSubImage*_pbo call to Flush. Amortizes the
	// upload across a batch; the right default for per-frame texture
	// streaming.
	UploadPBO UploadMode = iota
	// UploadImmediate writes each sub-region directly with
	// TexSubImage2D/3D and never touches a PBO. Simpler, synchronous,
	// appropriate for one-off or rare uploads where batching buys
	// nothing.
	UploadImmediate
)

// defaultPBOCapacity is the scratch buffer size a fresh Uploader
// allocates on first use and re-allocates to whenever a single chunk
// would overflow the current buffer. Chosen generously enough that
// typical per-frame texture updates (a handful of small rects) never
// need more than one flush.
const defaultPBOCapacity = 512 * 1024

func alignUp(n, align int32) int32 {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + (align - rem)
}

// cropUpload clamps the destination rect (x, y, w, h) to tex's actual
// dimensions and repositions the source data offset to match, the way
// spec.md C8 step 1 requires ("crop the destination to the texture's
// actual dimensions"). ok is false when the rect is entirely outside
// the texture; cropped is true when any clipping happened at all, so
// callers can decide whether to warn.
func cropUpload(tex *Texture, x, y, w, h int32, srcStride int, bpp int32) (cx, cy, cw, ch int32, dataOffset int, cropped, ok bool) {
	cx, cy, cw, ch = x, y, w, h
	if cx < 0 {
		cw += cx
		cx = 0
	}
	if cy < 0 {
		ch += cy
		cy = 0
	}
	if cx+cw > tex.Width {
		cw = tex.Width - cx
	}
	if cy+ch > tex.Height {
		ch = tex.Height - cy
	}
	if cw <= 0 || ch <= 0 {
		return 0, 0, 0, 0, 0, true, false
	}
	cropped = cw != w || ch != h
	leftTrim := cx - x
	topTrim := cy - y
	dataOffset = int(topTrim)*srcStride + int(leftTrim)*int(bpp)
	return cx, cy, cw, ch, dataOffset, cropped, true
}

type pendingChunk struct {
	tex        *Texture
	x, y, w, h int32
	layer      int32
	// rowLengthPixels is the UNPACK_ROW_LENGTH value Flush must set
	// before issuing this chunk's TexSubImage*_pbo, or 0 when the row
	// is tightly packed and no explicit stride is needed.
	rowLengthPixels int32
	pboOffset       int
}

// Uploader streams pixel data into textures, either through a PBO
// (mirrors gl.rs's TextureUploader: appends chunks into one orphaned
// buffer until it would overflow, then flushes and starts a new one)
// or immediately via direct TexSubImage calls, depending on the mode
// it was constructed with.
type Uploader struct {
	dev  *Device
	mode UploadMode
	pbo  *PBO

	capacity int
	used     int
	chunks   []pendingChunk
}

// NewUploader creates an uploader in the given mode. capacityHint, if
// positive, overrides defaultPBOCapacity as the initial (and minimum)
// PBO size; ignored in UploadImmediate mode.
func (d *Device) NewUploader(capacityHint int, mode UploadMode) *Uploader {
	capacity := defaultPBOCapacity
	if capacityHint > 0 {
		capacity = capacityHint
	}
	return &Uploader{dev: d, mode: mode, capacity: capacity}
}

func (u *Uploader) allocatePBO(size int) {
	glID := u.dev.driver.GenBuffers(1)[0]
	u.dev.bindBuffer(PIXEL_UNPACK_BUFFER, glID)
	u.dev.driver.BufferData(PIXEL_UNPACK_BUFFER, size, nil, Enum(STREAM_DRAW))
	u.pbo = &PBO{id: PBOID(u.dev.reg.alloc()), glID: glID, Capacity: size}
	u.dev.reg.pbos[u.pbo.id] = u.pbo
	u.capacity = size
	u.used = 0
}

// Upload queues (or, in UploadImmediate mode, writes directly) w x h
// pixels of tex's format at destination offset (x, y) on array layer
// layer, reading from data with the given source row stride (rowBytes
// if data is tightly packed). The destination rect is cropped to
// tex's actual dimensions first; a rect fully outside the texture is
// a no-op, and a partially-clipped rect logs a warning before
// proceeding with the cropped rect. A chunk that would overflow the
// current PBO triggers an implicit Flush before a fresh buffer of the
// larger of the chunk's size and the current capacity is allocated to
// hold it — queued work is never silently dropped.
func (u *Uploader) Upload(tex *Texture, x, y, w, h, layer int32, srcStride int, data []byte) {
	d := u.dev
	bpp := int32(tex.Format.BytesPerPixel())

	cx, cy, cw, ch, dataOff, cropped, ok := cropUpload(tex, x, y, w, h, srcStride, bpp)
	if !ok {
		d.log.Warn("upload_texture: destination rect fully outside texture bounds, dropped",
			"x", x, "y", y, "w", w, "h", h, "texWidth", tex.Width, "texHeight", tex.Height)
		return
	}
	if cropped {
		d.log.Warn("upload_texture: destination rect clipped to texture bounds",
			"x", x, "y", y, "w", w, "h", h,
			"croppedX", cx, "croppedY", cy, "croppedW", cw, "croppedH", ch)
	}
	x, y, w, h = cx, cy, cw, ch
	data = data[dataOff:]

	if u.mode == UploadImmediate {
		u.uploadImmediate(tex, x, y, w, h, layer, srcStride, bpp, data)
		return
	}

	rowBytes := w * bpp
	paddedStride := alignUp(rowBytes, d.caps.OptimalPBOStride)
	total := int(paddedStride) * int(h)

	if u.pbo == nil {
		u.allocatePBO(u.capacity)
	}
	if u.used+total > u.pbo.Capacity {
		u.Flush()
		need := total
		if need < u.capacity {
			need = u.capacity
		}
		u.allocatePBO(need)
	}

	d.bindBuffer(PIXEL_UNPACK_BUFFER, u.pbo.glID)
	mapped := d.driver.MapBufferRange(PIXEL_UNPACK_BUFFER, u.used, total, uint32(MAP_WRITE_BIT))
	if srcStride == int(rowBytes) && int(paddedStride) == int(rowBytes) {
		// Fast path: source and destination are both tightly packed at
		// the same stride, one contiguous copy covers every row.
		copy(mapped, data)
	} else {
		// Mapped row-by-row copy: source stride and destination stride
		// (padded to the driver's optimal alignment) differ, so each row
		// needs its own copy into the right offset.
		for row := int32(0); row < h; row++ {
			srcOff := int(row) * srcStride
			dstOff := int(row) * int(paddedStride)
			copy(mapped[dstOff:dstOff+int(rowBytes)], data[srcOff:srcOff+int(rowBytes)])
		}
	}
	d.driver.UnmapBuffer(PIXEL_UNPACK_BUFFER)

	var rowLengthPixels int32
	if paddedStride != rowBytes {
		rowLengthPixels = paddedStride / bpp
	}
	u.chunks = append(u.chunks, pendingChunk{
		tex: tex, x: x, y: y, w: w, h: h, layer: layer,
		rowLengthPixels: rowLengthPixels,
		pboOffset:       u.used,
	})
	u.pbo.Used = u.used + total
	u.used += total
}

// uploadImmediate writes one already-cropped rect directly with
// TexSubImage2D/3D, applying the same row-by-row repacking Upload's
// PBO path uses whenever the caller's source stride doesn't match the
// tightly packed row size GL expects from a plain byte slice.
func (u *Uploader) uploadImmediate(tex *Texture, x, y, w, h, layer int32, srcStride int, bpp int32, data []byte) {
	d := u.dev
	rowBytes := w * bpp
	desc := describeFormat(d.caps, tex.Format)
	d.bindTextureUnit(0, tex.target, tex.glID)

	packed := data
	if srcStride != int(rowBytes) {
		packed = make([]byte, int(rowBytes)*int(h))
		for row := int32(0); row < h; row++ {
			srcOff := int(row) * srcStride
			dstOff := int(row) * int(rowBytes)
			copy(packed[dstOff:dstOff+int(rowBytes)], data[srcOff:srcOff+int(rowBytes)])
		}
	}

	if tex.Layers > 1 {
		d.driver.TexSubImage3D(tex.target, 0, x, y, layer, w, h, desc.External, desc.PixelType, packed)
	} else {
		d.driver.TexSubImage2D(tex.target, 0, x, y, w, h, desc.External, desc.PixelType, packed)
	}
	if tex.Filter == FilterLinear {
		d.GenerateMipmaps(tex)
	}
}

// Flush uploads every queued chunk from the PBO into its destination
// texture via TexSubImage2DFromPBO (or TexSubImage3DFromPBO for array
// textures, addressing the chunk's layer), then regenerates mipmaps
// for any touched Linear-filtered texture, and forgets the queue. Per
// spec.md C8's flush step, UNPACK_ROW_LENGTH is set before any chunk
// whose stride required padding and restored to zero right after that
// chunk's upload. The PBO itself is not freed — the next Upload call keeps
// appending to it until it would overflow. A no-op in UploadImmediate
// mode, where Upload already wrote directly.
func (u *Uploader) Flush() {
	if u.mode == UploadImmediate || len(u.chunks) == 0 {
		return
	}
	d := u.dev
	d.bindBuffer(PIXEL_UNPACK_BUFFER, u.pbo.glID)
	touchedMips := map[TextureID]*Texture{}
	for _, c := range u.chunks {
		desc := describeFormat(d.caps, c.tex.Format)
		d.bindTextureUnit(0, c.tex.target, c.tex.glID)
		if c.rowLengthPixels != 0 {
			d.driver.PixelStorei(UNPACK_ROW_LENGTH, c.rowLengthPixels)
		}
		if c.tex.Layers > 1 {
			d.driver.TexSubImage3DFromPBO(c.tex.target, 0, c.x, c.y, c.layer, c.w, c.h, desc.External, desc.PixelType, c.pboOffset)
		} else {
			d.driver.TexSubImage2DFromPBO(c.tex.target, 0, c.x, c.y, c.w, c.h, desc.External, desc.PixelType, c.pboOffset)
		}
		if c.rowLengthPixels != 0 {
			d.driver.PixelStorei(UNPACK_ROW_LENGTH, 0)
		}
		if c.tex.Filter == FilterLinear {
			touchedMips[c.tex.id] = c.tex
		}
	}
	for _, tex := range touchedMips {
		d.GenerateMipmaps(tex)
	}
	u.chunks = u.chunks[:0]
}

// Close flushes any pending chunks and releases the PBO.
func (u *Uploader) Close() {
	u.Flush()
	if u.pbo != nil {
		delete(u.dev.reg.pbos, u.pbo.id)
		u.dev.driver.DeleteBuffers([]uint32{u.pbo.glID})
		u.pbo = nil
	}
}
