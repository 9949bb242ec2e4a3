package device

import "testing"

func TestDescribeFormatPureOfDriver(t *testing.T) {
	caps := Capabilities{BGRAInternal: BGRA8_EXT, BGRAExternal: BGRA_EXT}
	d1 := describeFormat(caps, RGBA8)
	d2 := describeFormat(caps, RGBA8)
	if d1 != d2 {
		t.Error("describeFormat must be a pure function of (caps, format)")
	}
	if d1.Internal != RGBA8 || d1.External != RGBA || d1.PixelType != UNSIGNED_BYTE {
		t.Errorf("unexpected RGBA8 descriptor: %+v", d1)
	}
}

func TestDescribeFormatBGRAUsesCapabilityPolicy(t *testing.T) {
	caps := Capabilities{BGRAInternal: BGRA8_EXT, BGRAExternal: BGRA_EXT}
	desc := describeFormat(caps, BGRA8)
	if desc.Internal != BGRA8_EXT || desc.External != BGRA_EXT {
		t.Errorf("BGRA8 descriptor should follow the probed capability policy, got %+v", desc)
	}
}

func TestDescribeFormatR16RenderbufferQuirk(t *testing.T) {
	// R16 has no normalized renderbuffer-storable format on most
	// drivers; the original falls back to the integer R16UI renderbuffer
	// format and this port preserves that rather than "fixing" it.
	desc := describeFormat(Capabilities{}, R16)
	if desc.Renderbuffer != R16UI {
		t.Errorf("R16 renderbuffer format = 0x%x, want R16UI (preserved upstream quirk)", desc.Renderbuffer)
	}
}

func TestMatchingRenderbufferFormatCoercesBGRA(t *testing.T) {
	caps := Capabilities{BGRAInternal: BGRA_EXT, BGRAExternal: BGRA_EXT}
	if got := matchingRenderbufferFormat(caps, BGRA8); got != RGBA8 {
		t.Errorf("BGRA8 renderbuffer format must coerce to RGBA8, got 0x%x", got)
	}
	if got := matchingRenderbufferFormat(caps, RGBA8); got != RGBA8 {
		t.Errorf("RGBA8 renderbuffer format should pass through unchanged, got 0x%x", got)
	}
}

func TestBytesPerPixel(t *testing.T) {
	cases := map[ImageFormat]int{
		R8: 1, R16: 2, RG8: 2, RG16: 4,
		BGRA8: 4, RGBA8: 4, RGBAF32: 16, RGBAI32: 16,
	}
	for f, want := range cases {
		if got := f.BytesPerPixel(); got != want {
			t.Errorf("%v.BytesPerPixel() = %d, want %d", f, got, want)
		}
	}
}
