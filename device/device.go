package device

import (
	"log/slog"
	"time"
)

// Config configures a Device at construction time. Every field is
// optional; a zero value selects the documented default, the same
// zero-value-means-default convention the teacher's WindowConfig uses.
type Config struct {
	// Logger receives driver debug messages and program-cache I/O
	// logs. Defaults to slog.Default().
	Logger *slog.Logger
	// MaxTextureSize clamps the reported maximum texture dimension
	// below whatever the driver advertises. Zero means "use the
	// driver's own limit", per clamp_max_texture_size.
	MaxTextureSize int32
	// DiskCache enables on-disk program binary caching (see
	// program_cache.go). Nil disables it.
	DiskCache DiskCache
	// StartupFrameCount is how many end_frame calls must elapse before
	// the program cache is told startup is complete. Zero selects the
	// original's default of 10.
	StartupFrameCount int
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) startupFrameCount() int {
	return zdefault(c.StartupFrameCount, 10)
}

// Device is the single entry point for everything C1–C11 describe: a
// capability-probed driver, a resource registry with a live GPU-byte
// counter, a redundant-state-eliminating cache, a shader/program
// pipeline backed by a content-addressed cache, and a render-target
// manager with shared depth attachments.
//
// A Device is not safe for concurrent use: like the GL context it
// wraps, every call must come from the thread that owns the context
// (see spec.md's concurrency model).
type Device struct {
	driver     Driver
	baseDriver Driver // saved when a profiling wrapper is installed, restored on removal
	caps       Capabilities
	log        *slog.Logger

	reg        *registry
	stateCache *stateCache

	programCache *ProgramCache
	renderTargets *renderTargetManager

	maxTextureSizeOverride int32

	frameID           uint64
	startupFrameCount int
	startupComplete   bool

	profilingActive bool
	profilingSink   func(name string, d time.Duration)

	pixelLocalStorageEnabled bool
}

// New probes capabilities on d and returns a ready Device. d must
// already be the current driver for an active GL context.
func New(d Driver, cfg Config) *Device {
	caps := ProbeCapabilities(d)
	dev := &Device{
		driver:                 d,
		caps:                   caps,
		log:                    cfg.logger(),
		reg:                    newRegistry(),
		stateCache:             newStateCache(),
		startupFrameCount:      cfg.startupFrameCount(),
		maxTextureSizeOverride: cfg.MaxTextureSize,
	}
	dev.programCache = newProgramCache(dev, cfg.DiskCache)
	dev.renderTargets = newRenderTargetManager(dev)
	return dev
}

// Capabilities returns the probe results computed in New.
func (d *Device) Capabilities() Capabilities { return d.caps }

// MaxTextureSize reports the effective maximum texture dimension:
// the driver's own limit, clamped to any Config.MaxTextureSize
// override. Mirrors gl.rs's clamp_max_texture_size.
func (d *Device) MaxTextureSize() int32 {
	return clampMaxTextureSize(d.caps, d.maxTextureSizeOverride)
}

// FrameID is the monotonically increasing frame counter, incremented
// once per EndFrame.
func (d *Device) FrameID() uint64 { return d.frameID }

// BeginFrame starts a new frame: installs the profiling driver
// wrapper if profiling is currently active. It touches no other state.
func (d *Device) BeginFrame() {
	if d.profilingActive && d.baseDriver == nil {
		d.baseDriver = d.driver
		d.driver = NewProfilingDriver(d.driver, d.profilingSink)
	}
}

// EndFrame advances the frame counter, flushes the driver, removes
// the profiling wrapper if one is installed, and — once
// startupFrameCount frames have elapsed — marks the program cache's
// startup as complete. That only sets a flag on the cache: no cache
// behaviour depends on it, and nothing is persisted or reported to
// observers at that point. Mirrors gl.rs's end_frame / frame_id==10 latch.
func (d *Device) EndFrame() FrameID {
	d.driver.Flush()
	d.frameID++
	if d.baseDriver != nil {
		d.driver = d.baseDriver
		d.baseDriver = nil
	}
	if !d.startupComplete && int(d.frameID) >= d.startupFrameCount {
		d.startupComplete = true
		d.programCache.notifyStartupComplete()
	}
	return FrameID(d.frameID)
}

// FrameID identifies one frame: EndFrame returns the counter's value
// after incrementing it.
type FrameID uint64

// SetProfiling turns the profiling driver wrapper on or off; the
// change takes effect at the next BeginFrame. sink is called for each
// timed driver call (the methods ProfilingDriver overrides) that takes
// at least an internally chosen threshold while the wrapper is
// installed (see ProfilingDriver).
func (d *Device) SetProfiling(active bool, sink func(name string, d time.Duration)) {
	d.profilingActive = active
	d.profilingSink = sink
}

// MemoryReport summarizes the device's own GPU-side bookkeeping
// categories. It does not and cannot include driver-internal overhead
// (command buffers, shader compiler scratch) — only what this package
// tracked itself. Mirrors gl.rs's Device::report_memory.
type MemoryReport struct {
	TextureBytes      uint64
	DepthTargetBytes  uint64
	ProgramBytes      uint64
}

// ReportMemory computes a MemoryReport from the live registry and
// program cache.
func (d *Device) ReportMemory() MemoryReport {
	var texBytes, depthBytes uint64
	for _, t := range d.reg.textures {
		texBytes += t.bytes()
	}
	for _, r := range d.reg.renderbuffers {
		depthBytes += r.bytes()
	}
	return MemoryReport{
		TextureBytes:     texBytes,
		DepthTargetBytes: depthBytes,
		ProgramBytes:     d.programCache.totalBinaryBytes(),
	}
}

// EnablePixelLocalStorage toggles GL_SHADER_PIXEL_LOCAL_STORAGE_EXT,
// gated on the capability probe; a no-op (with a logged warning) on
// drivers that never advertised the extension.
func (d *Device) EnablePixelLocalStorage(enable bool) {
	if !d.caps.SupportsPixelLocalStorage {
		if enable {
			d.log.Warn("pixel local storage requested but unsupported by driver")
		}
		return
	}
	if enable {
		d.driver.Enable(SHADER_PIXEL_LOCAL_STORAGE_EXT)
	} else {
		d.driver.Disable(SHADER_PIXEL_LOCAL_STORAGE_EXT)
	}
	d.pixelLocalStorageEnabled = enable
}

// EchoDriverMessages drains up to maxCount pending KHR_debug messages
// and logs each at a level derived from its GL severity. A no-op on
// drivers without KHR_debug.
func (d *Device) EchoDriverMessages(maxCount int) {
	if !d.caps.SupportsKHRDebug {
		return
	}
	for _, msg := range d.driver.GetDebugMessages(maxCount) {
		logDriverMessage(d.log, msg)
	}
}

func logDriverMessage(log *slog.Logger, msg DebugMessage) {
	attrs := []any{
		slog.String("source", enumName(msg.Source)),
		slog.String("type", enumName(msg.Type)),
		slog.Uint64("id", uint64(msg.ID)),
	}
	switch msg.Severity {
	case DEBUG_SEVERITY_HIGH:
		log.Error(msg.Message, attrs...)
	case DEBUG_SEVERITY_MEDIUM:
		log.Warn(msg.Message, attrs...)
	case DEBUG_SEVERITY_LOW:
		log.Info(msg.Message, attrs...)
	default:
		log.Debug(msg.Message, attrs...)
	}
}

func enumName(e Enum) string {
	switch e {
	case DEBUG_TYPE_ERROR:
		return "ERROR"
	case DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED_BEHAVIOR"
	case DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "UNDEFINED_BEHAVIOR"
	case DEBUG_TYPE_PORTABILITY:
		return "PORTABILITY"
	case DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	case DEBUG_TYPE_MARKER:
		return "MARKER"
	case DEBUG_TYPE_PUSH_GROUP:
		return "PUSH_GROUP"
	case DEBUG_TYPE_POP_GROUP:
		return "POP_GROUP"
	default:
		return "OTHER"
	}
}
