package device

import (
	"testing"
	"time"
)

func TestEndFrameAdvancesFrameID(t *testing.T) {
	dev, _ := newTestDevice(false)
	if dev.FrameID() != 0 {
		t.Fatalf("fresh device should start at frame 0, got %d", dev.FrameID())
	}
	for i := 1; i <= 3; i++ {
		id := dev.EndFrame()
		if uint64(id) != uint64(i) || dev.FrameID() != uint64(i) {
			t.Errorf("EndFrame #%d returned %d, FrameID() = %d, want %d", i, id, dev.FrameID(), i)
		}
	}
}

func TestStartupCompleteLatchFiresAtConfiguredFrameCount(t *testing.T) {
	dev, _ := newTestDevice(false)
	dev.startupFrameCount = 3

	for i := 0; i < 2; i++ {
		dev.EndFrame()
	}
	if dev.programCache.startupComplete {
		t.Fatal("startup-complete latch fired before reaching the configured frame count")
	}
	dev.EndFrame()
	if !dev.programCache.startupComplete {
		t.Error("startup-complete latch should fire once frameID reaches startupFrameCount")
	}
}

func TestBeginFrameInstallsProfilingWrapperOnlyWhenActive(t *testing.T) {
	dev, base := newTestDevice(false)
	var recorded []string
	dev.SetProfiling(true, func(name string, _ time.Duration) { recorded = append(recorded, name) })

	dev.BeginFrame()
	if dev.driver == base {
		t.Error("BeginFrame with profiling active must install a wrapping driver")
	}
	dev.EndFrame()
	if dev.driver != base {
		t.Error("EndFrame must restore the unwrapped driver once the frame ends")
	}
}
