package device

import "strings"

// TexStorageUsage records how confidently tex_storage-family calls can
// be used for a given format, mirroring gl.rs's three-state policy:
// some drivers advertise the extension but lie about BGRA support.
type TexStorageUsage int

const (
	// TexStorageNever: never use tex_storage for this format, always
	// fall back to tex_image.
	TexStorageNever TexStorageUsage = iota
	// TexStorageNonBGRA8: tex_storage is safe for every format except
	// BGRA8, which must still go through tex_image.
	TexStorageNonBGRA8
	// TexStorageAlways: tex_storage is safe for every supported format.
	TexStorageAlways
)

// Capabilities is everything the device probes about the driver once,
// at startup, and consults on every later call that branches on driver
// behavior.
type Capabilities struct {
	Renderer string
	Version  string

	MaxTextureSize      int32
	MaxArrayTextureLayers int32

	SupportsCopyImageSubData     bool
	SupportsBlitToTextureArray   bool
	SupportsPixelLocalStorage    bool
	SupportsAdvancedBlendEquation bool
	SupportsKHRDebug             bool
	SupportsMultisampling        bool // TODO: never probed upstream either; kept as a reporting field only.

	TexStorage   TexStorageUsage
	BGRAInternal Enum
	BGRAExternal Enum

	OptimalPBOStride int32

	ForceFirstVertexConvention bool
}

// ProbeCapabilities runs the full capability probe once against a
// freshly-current Driver. It is pure given the driver's query
// responses: no state is mutated on the driver itself beyond the
// queries GL defines as side-effect free.
func ProbeCapabilities(d Driver) Capabilities {
	renderer := d.GetString(RENDERER)
	version := d.GetString(VERSION_STR)

	exts := enumerateExtensions(d)
	has := func(name string) bool { _, ok := exts[name]; return ok }

	isGLES := strings.Contains(version, "OpenGL ES")

	caps := Capabilities{
		Renderer:              renderer,
		Version:               version,
		MaxTextureSize:        d.GetIntegerv(MAX_TEXTURE_SIZE),
		MaxArrayTextureLayers: d.GetIntegerv(MAX_ARRAY_TEXTURE_LAYERS),
		SupportsCopyImageSubData: has("GL_ARB_copy_image") || has("GL_EXT_copy_image") ||
			has("GL_OES_copy_image"),
		SupportsPixelLocalStorage: has("GL_EXT_shader_pixel_local_storage"),
		SupportsKHRDebug:          has("GL_KHR_debug"),
	}

	isAdreno := strings.Contains(renderer, "Adreno")
	caps.SupportsBlitToTextureArray = !isAdreno
	caps.SupportsAdvancedBlendEquation = has("GL_KHR_blend_equation_advanced") && !isAdreno
	caps.ForceFirstVertexConvention = has("GL_ANGLE_provoking_vertex")

	if isAdreno {
		caps.OptimalPBOStride = 256
	} else {
		caps.OptimalPBOStride = 4
	}

	hasBGRA := has("GL_EXT_texture_format_BGRA8888") || has("GL_APPLE_texture_format_BGRA8888") || !isGLES
	hasTexStorage := has("GL_ARB_texture_storage") || has("GL_EXT_texture_storage") || !isGLES
	hasSizedBGRA := has("GL_EXT_texture_storage") && hasBGRA

	switch {
	case hasBGRA && hasSizedBGRA:
		caps.BGRAInternal = BGRA8_EXT
		caps.BGRAExternal = BGRA_EXT
		caps.TexStorage = TexStorageAlways
	case hasBGRA:
		caps.BGRAInternal = BGRA_EXT
		caps.BGRAExternal = BGRA_EXT
		if hasTexStorage {
			caps.TexStorage = TexStorageNonBGRA8
		} else {
			caps.TexStorage = TexStorageNever
		}
	default:
		caps.BGRAInternal = RGBA8
		if isGLES {
			caps.BGRAExternal = RGBA
		} else {
			caps.BGRAExternal = BGRA_EXT
		}
		if hasTexStorage {
			caps.TexStorage = TexStorageAlways
		} else {
			caps.TexStorage = TexStorageNever
		}
	}

	return caps
}

// CanUseTexStorage reports whether tex_storage-family calls are safe
// to use for the given logical format under this capability set.
func (c Capabilities) CanUseTexStorage(f ImageFormat) bool {
	switch c.TexStorage {
	case TexStorageAlways:
		return true
	case TexStorageNonBGRA8:
		return f != BGRA8
	default:
		return false
	}
}

func enumerateExtensions(d Driver) map[string]struct{} {
	set := map[string]struct{}{}
	n := d.GetIntegerv(NUM_EXTENSIONS)
	if n > 0 {
		for i := int32(0); i < n; i++ {
			set[d.GetStringi(EXTENSIONS, uint32(i))] = struct{}{}
		}
		return set
	}
	// Fallback for drivers where GetStringi over GL_EXTENSIONS is
	// unavailable (pre-3.0 style single space-separated string).
	for _, name := range strings.Fields(d.GetString(EXTENSIONS)) {
		set[name] = struct{}{}
	}
	return set
}

func clampMaxTextureSize(caps Capabilities, requested int32) int32 {
	if requested <= 0 || requested > caps.MaxTextureSize {
		return caps.MaxTextureSize
	}
	return requested
}
