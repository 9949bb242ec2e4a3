package device

import "testing"

func TestGPUBytesInUseTracksTextureLifetime(t *testing.T) {
	dev, _ := newTestDevice(false)

	if dev.GPUBytesInUse() != 0 {
		t.Fatalf("fresh device should report 0 bytes in use, got %d", dev.GPUBytesInUse())
	}

	tex, err := dev.CreateTexture(RGBA8, 16, 16, 1, FilterNearest)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	want := uint64(16 * 16 * 1 * 4)
	if got := dev.GPUBytesInUse(); got != want {
		t.Errorf("GPUBytesInUse after create = %d, want %d", got, want)
	}

	dev.DeleteTexture(tex)
	if got := dev.GPUBytesInUse(); got != 0 {
		t.Errorf("GPUBytesInUse after delete = %d, want 0", got)
	}
}

func TestGPUBytesInUseAccountsArrayLayers(t *testing.T) {
	dev, _ := newTestDevice(false)
	tex, err := dev.CreateTexture(R8, 8, 8, 4, FilterNearest)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	want := uint64(8 * 8 * 4 * 1)
	if got := dev.GPUBytesInUse(); got != want {
		t.Errorf("GPUBytesInUse for a 4-layer R8 array = %d, want %d", got, want)
	}
	dev.DeleteTexture(tex)
}

func TestDeleteTextureForgetsStateCacheBinding(t *testing.T) {
	dev, d := newTestDevice(false)
	tex, err := dev.CreateTexture(RGBA8, 4, 4, 1, FilterNearest)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	dev.BindTextureForSampling(0, tex)
	bindsBeforeDelete := d.calls["BindTexture"]

	dev.DeleteTexture(tex)

	// A fresh texture could be allocated the same glID by the driver;
	// rebinding that glID to the same unit must not be elided as if the
	// deleted texture were still bound.
	dev.bindTextureUnit(0, TEXTURE_2D, tex.glID)
	if d.calls["BindTexture"] <= bindsBeforeDelete {
		t.Error("rebinding a glID reused after DeleteTexture must issue a fresh BindTexture call")
	}
}
