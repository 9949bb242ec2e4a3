package device

// ImageFormat is a logical, driver-independent pixel format. The
// concrete (internal, external, type) GL triple it maps to depends on
// capabilities probed at startup (notably the BGRA texture-storage
// policy), so the mapping lives on Capabilities rather than being a
// static table.
type ImageFormat int

const (
	R8 ImageFormat = iota
	R16
	RG8
	RG16
	BGRA8
	RGBA8
	RGBAF32
	RGBAI32
)

func (f ImageFormat) String() string {
	switch f {
	case R8:
		return "R8"
	case R16:
		return "R16"
	case RG8:
		return "RG8"
	case RG16:
		return "RG16"
	case BGRA8:
		return "BGRA8"
	case RGBA8:
		return "RGBA8"
	case RGBAF32:
		return "RGBAF32"
	case RGBAI32:
		return "RGBAI32"
	default:
		return "ImageFormat(?)"
	}
}

// BytesPerPixel reports the packed size of one texel in this format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case R8:
		return 1
	case R16, RG8:
		return 2
	case RG16:
		return 4
	case BGRA8, RGBA8:
		return 4
	case RGBAF32:
		return 16
	case RGBAI32:
		return 16
	default:
		panic("device: unknown ImageFormat")
	}
}

// FormatDesc is the (internal, external, pixelType) GL triple a
// logical format compiles down to, plus the driver-legal renderbuffer
// storage format for formats that can back a renderbuffer.
type FormatDesc struct {
	Internal      Enum
	External      Enum
	PixelType     Enum
	Renderbuffer  Enum
}

// describeFormat is the port of gl.rs's gl_describe_format: a pure
// match from logical format to GL triple, parameterized on the BGRA
// policy decided during capability probing. It never touches the
// driver.
func describeFormat(caps Capabilities, f ImageFormat) FormatDesc {
	switch f {
	case R8:
		return FormatDesc{Internal: R8, External: RED, PixelType: UNSIGNED_BYTE, Renderbuffer: R8}
	case R16:
		// R16 has no unsigned-normalized renderbuffer-storable sibling on
		// most drivers; the original falls back to the integer R16UI
		// renderbuffer format here. Preserved as-is rather than "fixed".
		return FormatDesc{Internal: R16, External: RED, PixelType: UNSIGNED_SHORT, Renderbuffer: R16UI}
	case RG8:
		return FormatDesc{Internal: RG8, External: RG, PixelType: UNSIGNED_BYTE, Renderbuffer: RG8}
	case RG16:
		return FormatDesc{Internal: RG16, External: RG, PixelType: UNSIGNED_SHORT, Renderbuffer: RG16}
	case BGRA8:
		return FormatDesc{
			Internal:     caps.BGRAInternal,
			External:     caps.BGRAExternal,
			PixelType:    UNSIGNED_BYTE,
			Renderbuffer: RGBA8,
		}
	case RGBA8:
		return FormatDesc{Internal: RGBA8, External: RGBA, PixelType: UNSIGNED_BYTE, Renderbuffer: RGBA8}
	case RGBAF32:
		return FormatDesc{Internal: RGBA32F, External: RGBA, PixelType: FLOAT, Renderbuffer: 0}
	case RGBAI32:
		return FormatDesc{Internal: RGBA32I, External: RGBA_INTEGER, PixelType: INT, Renderbuffer: 0}
	default:
		panic("device: unknown ImageFormat")
	}
}

// matchingRenderbufferFormat reports the format a renderbuffer backing
// this image format must use, coercing BGRA8 down to RGBA8 the way
// gl.rs's matching_renderbuffer_format does (no driver exposes a BGRA
// renderbuffer storage format).
func matchingRenderbufferFormat(caps Capabilities, f ImageFormat) Enum {
	if f == BGRA8 {
		return RGBA8
	}
	return describeFormat(caps, f).Renderbuffer
}
