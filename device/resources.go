package device

import "fmt"

// Every resource handle is a typed, non-zero ID scoped to one Device.
// Handles are opaque to callers outside this package; they exist so a
// stale or foreign handle is a compile error, not a runtime footgun.

type TextureID uint32
type ExternalTextureID uint32
type RenderbufferID uint32
type FBOID uint32
type VBOID uint32
type IBOID uint32
type VAOID uint32
type PBOID uint32
type ProgramID uint32

// Texture is a registered 2D or array texture plus the bookkeeping the
// rest of the device needs: its logical format (for upload/blit
// decisions), dimensions, layer count, and filtering mode (mipmap
// regeneration is only needed for Linear-filtered textures).
type Texture struct {
	id       TextureID
	glID     uint32
	target   Enum
	Format   ImageFormat
	Width    int32
	Height   int32
	Layers   int32
	Filter   TextureFilter
	hasMips  bool
}

type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

func (t *Texture) ID() TextureID { return t.id }
func (t *Texture) bytes() uint64 {
	return uint64(t.Width) * uint64(t.Height) * uint64(t.Layers) * uint64(t.Format.BytesPerPixel())
}

// ExternalTexture wraps a texture the device does not own the
// lifetime of (e.g. a platform video frame bound via
// TEXTURE_EXTERNAL_OES or TEXTURE_RECTANGLE). The registry tracks it
// for binding purposes only; DeleteExternalTexture never deletes the
// underlying GL object.
type ExternalTexture struct {
	id     ExternalTextureID
	glID   uint32
	target Enum
}

func (t *ExternalTexture) ID() ExternalTextureID { return t.id }

// Renderbuffer is a refcounted depth (or depth+whatever) attachment,
// shared across FBOs of the same size the way gl.rs's
// acquire_depth_target/release_depth_target share one renderbuffer per
// distinct (width, height).
type Renderbuffer struct {
	id       RenderbufferID
	glID     uint32
	Width    int32
	Height   int32
	Format   Enum
	refcount int
}

func (r *Renderbuffer) ID() RenderbufferID { return r.id }
func (r *Renderbuffer) bytes() uint64 {
	// Depth24 is 4 bytes/pixel regardless of exact sized format chosen.
	return uint64(r.Width) * uint64(r.Height) * 4
}

// FBO is a registered framebuffer object bound to either a texture
// layer or a renderbuffer (for the default-target case there is no
// FBO; DrawTarget/ReadTarget represent that separately).
type FBO struct {
	id           FBOID
	glID         uint32
	colorTexture TextureID
	layer        int32
	depth        RenderbufferID
	Width        int32
	Height       int32
}

func (f *FBO) ID() FBOID { return f.id }

type VBO struct {
	id   VBOID
	glID uint32
}

func (b *VBO) ID() VBOID { return b.id }

type IBO struct {
	id   IBOID
	glID uint32
}

func (b *IBO) ID() IBOID { return b.id }

type VAO struct {
	id   VAOID
	glID uint32
}

func (v *VAO) ID() VAOID { return v.id }

// PBO is a pixel (un)pack buffer used by the streaming upload engine.
// Capacity is the buffer's allocated size in bytes; Used tracks how
// much of the current orphaned allocation has been claimed by chunks
// queued so far this frame.
type PBO struct {
	id       PBOID
	glID     uint32
	Capacity int
	Used     int
}

func (p *PBO) ID() PBOID { return p.id }

// registry holds every live resource for one Device and the live
// GPU-byte counter spec.md's C2 requires: every allocating
// create adds to it, every matching destroy subtracts, and nothing
// else touches it.
type registry struct {
	nextID uint32

	textures      map[TextureID]*Texture
	externalTexs  map[ExternalTextureID]*ExternalTexture
	renderbuffers map[RenderbufferID]*Renderbuffer
	fbos          map[FBOID]*FBO
	vbos          map[VBOID]*VBO
	ibos          map[IBOID]*IBO
	vaos          map[VAOID]*VAO
	pbos          map[PBOID]*PBO
	programs      map[ProgramID]*Program

	gpuBytes uint64
}

func newRegistry() *registry {
	return &registry{
		textures:      map[TextureID]*Texture{},
		externalTexs:  map[ExternalTextureID]*ExternalTexture{},
		renderbuffers: map[RenderbufferID]*Renderbuffer{},
		fbos:          map[FBOID]*FBO{},
		vbos:          map[VBOID]*VBO{},
		ibos:          map[IBOID]*IBO{},
		vaos:          map[VAOID]*VAO{},
		pbos:          map[PBOID]*PBO{},
		programs:      map[ProgramID]*Program{},
	}
}

func (r *registry) alloc() uint32 {
	r.nextID++
	return r.nextID
}

// GPUBytesInUse reports the live total of every byte-counted
// allocation currently registered: texture storage and renderbuffer
// storage. Matches spec.md C2's "global GPU-byte counter" invariant.
func (d *Device) GPUBytesInUse() uint64 { return d.reg.gpuBytes }

func (d *Device) registerTexture(glID uint32, target Enum, format ImageFormat, w, h, layers int32, filter TextureFilter) *Texture {
	t := &Texture{
		id:     TextureID(d.reg.alloc()),
		glID:   glID,
		target: target,
		Format: format,
		Width:  w,
		Height: h,
		Layers: layers,
		Filter: filter,
	}
	d.reg.textures[t.id] = t
	d.reg.gpuBytes += t.bytes()
	return t
}

func (d *Device) destroyTexture(t *Texture) {
	if t == nil {
		return
	}
	delete(d.reg.textures, t.id)
	d.reg.gpuBytes -= t.bytes()
	d.driver.DeleteTextures([]uint32{t.glID})
	d.stateCache.onTextureDeleted(t.glID)
}

func (d *Device) lookupTexture(id TextureID) (*Texture, error) {
	t, ok := d.reg.textures[id]
	if !ok {
		return nil, fmt.Errorf("device: unknown texture id %d", id)
	}
	return t, nil
}
