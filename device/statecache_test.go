package device

import "testing"

func TestBindTextureUnitElidesRedundantCalls(t *testing.T) {
	dev, d := newTestDevice(false)

	dev.bindTextureUnit(0, TEXTURE_2D, 7)
	dev.bindTextureUnit(0, TEXTURE_2D, 7)
	dev.bindTextureUnit(0, TEXTURE_2D, 7)

	if d.calls["BindTexture"] != 1 {
		t.Errorf("rebinding the same texture to the same unit should issue one BindTexture call, got %d", d.calls["BindTexture"])
	}

	dev.bindTextureUnit(0, TEXTURE_2D, 9)
	if d.calls["BindTexture"] != 2 {
		t.Errorf("binding a different glID must issue a new BindTexture call, got %d", d.calls["BindTexture"])
	}
}

func TestBindFramebufferTracksReadAndDrawIndependently(t *testing.T) {
	dev, d := newTestDevice(false)

	dev.bindFramebuffer(DRAW_FRAMEBUFFER, 3)
	dev.bindFramebuffer(DRAW_FRAMEBUFFER, 3)
	if d.calls["BindFramebuffer"] != 1 {
		t.Errorf("redundant DRAW_FRAMEBUFFER bind should be elided, got %d calls", d.calls["BindFramebuffer"])
	}

	dev.bindFramebuffer(READ_FRAMEBUFFER, 3)
	if d.calls["BindFramebuffer"] != 2 {
		t.Errorf("a READ_FRAMEBUFFER bind is tracked separately from DRAW_FRAMEBUFFER and must not be elided, got %d", d.calls["BindFramebuffer"])
	}
}

func TestBindBufferElidesPerTarget(t *testing.T) {
	dev, d := newTestDevice(false)

	dev.bindBuffer(ARRAY_BUFFER, 1)
	dev.bindBuffer(ARRAY_BUFFER, 1)
	dev.bindBuffer(ELEMENT_ARRAY_BUFFER, 1) // same glID, different target: not redundant

	if d.calls["BindBuffer"] != 2 {
		t.Errorf("expected 2 BindBuffer calls (one per distinct target), got %d", d.calls["BindBuffer"])
	}
}

func TestResetStateForcesNextBindThrough(t *testing.T) {
	dev, d := newTestDevice(false)

	dev.bindVAO(5)
	dev.ResetState()
	dev.bindVAO(5)

	if d.calls["BindVertexArray"] != 2 {
		t.Errorf("ResetState must force the next identical bind through rather than elide it, got %d calls", d.calls["BindVertexArray"])
	}
}

func TestOnTextureDeletedForgetsCachedBinding(t *testing.T) {
	dev, d := newTestDevice(false)

	dev.bindTextureUnit(1, TEXTURE_2D, 42)
	dev.stateCache.onTextureDeleted(42)
	dev.bindTextureUnit(1, TEXTURE_2D, 42)

	if d.calls["BindTexture"] != 2 {
		t.Errorf("after a texture is deleted, rebinding its (reused) glID must not be elided, got %d calls", d.calls["BindTexture"])
	}
}
