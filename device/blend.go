package device

// BlendMode selects one of the blend function/equation combinations
// the renderer needs, each a direct port of one of gl.rs's
// set_blend_mode_* functions.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendPremultipliedAlpha
	BlendPremultipliedDestOut
	BlendSubpixelConstantTextColor
	BlendSubpixelWithBGColor
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var advancedBlendEquation = map[BlendMode]Enum{
	BlendMultiply:    MULTIPLY_KHR,
	BlendScreen:      SCREEN_KHR,
	BlendOverlay:     OVERLAY_KHR,
	BlendDarken:      DARKEN_KHR,
	BlendLighten:     LIGHTEN_KHR,
	BlendColorDodge:  COLORDODGE_KHR,
	BlendColorBurn:   COLORBURN_KHR,
	BlendHardLight:   HARDLIGHT_KHR,
	BlendSoftLight:   SOFTLIGHT_KHR,
	BlendDifference:  DIFFERENCE_KHR,
	BlendExclusion:   EXCLUSION_KHR,
	BlendHue:         HSL_HUE_KHR,
	BlendSaturation:  HSL_SATURATION_KHR,
	BlendColor:       HSL_COLOR_KHR,
	BlendLuminosity:  HSL_LUMINOSITY_KHR,
}

// SetBlendMode configures blend state for mode. Advanced blend modes
// (multiply through luminosity) require
// Capabilities.SupportsAdvancedBlendEquation; calling with one on an
// unsupporting driver is a caller bug, not something this device
// silently degrades — the renderer is expected to have already
// checked the capability before selecting such a mode.
func (d *Device) SetBlendMode(mode BlendMode) {
	if mode == BlendNone {
		d.driver.Disable(BLEND)
		return
	}
	d.driver.Enable(BLEND)

	if eq, ok := advancedBlendEquation[mode]; ok {
		d.driver.BlendEquation(eq)
		return
	}
	d.driver.BlendEquation(FUNC_ADD)

	switch mode {
	case BlendAlpha:
		d.driver.BlendFuncSeparate(SRC_ALPHA, ONE_MINUS_SRC_ALPHA, ONE, ONE_MINUS_SRC_ALPHA)
	case BlendPremultipliedAlpha:
		d.driver.BlendFunc(ONE, ONE_MINUS_SRC_ALPHA)
	case BlendPremultipliedDestOut:
		d.driver.BlendFunc(ZERO, ONE_MINUS_SRC_ALPHA)
	case BlendSubpixelConstantTextColor:
		d.driver.BlendFunc(CONSTANT_COLOR, ONE_MINUS_SRC_COLOR)
	case BlendSubpixelWithBGColor:
		d.driver.BlendFuncSeparate(ONE_MINUS_DST_ALPHA, ONE, ONE_MINUS_SRC1_COLOR, ONE_MINUS_SRC_ALPHA)
	default:
		d.driver.BlendFuncSeparate(SRC_ALPHA, ONE_MINUS_SRC_ALPHA, ONE, ONE_MINUS_SRC_ALPHA)
	}
}

// SetDepthTest configures the depth test, matching gl.rs's
// set_depth_test helper (LEQUAL under DEPTH_TEST, depth writes gated
// separately by writeDepth since some passes test but never write).
func (d *Device) SetDepthTest(enable, writeDepth bool) {
	if !enable {
		d.driver.Disable(DEPTH_TEST)
		return
	}
	d.driver.Enable(DEPTH_TEST)
	d.driver.DepthFunc(LEQUAL)
	d.driver.DepthMask(writeDepth)
}

// Clear clears dt's framebuffer, optionally clearing color and/or
// depth.
func (d *Device) Clear(dt DrawTarget, color *[4]float32, depth *float64) {
	d.bindFramebuffer(DRAW_FRAMEBUFFER, dt.fboGL)
	var mask uint32
	if color != nil {
		d.driver.ClearColor(color[0], color[1], color[2], color[3])
		mask |= uint32(COLOR_BUFFER_BIT)
	}
	if depth != nil {
		d.driver.ClearDepth(*depth)
		mask |= uint32(DEPTH_BUFFER_BIT)
	}
	if mask != 0 {
		d.driver.Clear(mask)
	}
}
