package device

// DiskCache persists linked program binaries across process runs,
// keyed by ShaderDigest. A nil DiskCache (the default) disables
// persistence entirely; everything still works, it just recompiles on
// every run.
type DiskCache interface {
	Load(digest ShaderDigest) (binary []byte, format uint32, ok bool)
	Store(digest ShaderDigest, binary []byte, format uint32)
}

// ProgramCacheObserver is notified of program cache lifecycle events a
// host application may want to react to — for example invalidating a
// persisted binary that failed to load on this driver version.
// Mirrors gl.rs's ProgramCacheObserver trait.
type ProgramCacheObserver interface {
	NotifyProgramBinaryFailed(digest ShaderDigest)
}

// ProgramCache maps a shader digest to its linked Program, backed
// optionally by a DiskCache for cross-run persistence. Binaries loaded
// from disk are checked for LINK_STATUS as soon as they are uploaded;
// observers registered with AddObserver receive
// NotifyProgramBinaryFailed when a persisted binary its disk cache
// served turns out to be unusable (driver upgrade, wrong GPU), so the
// caller can evict that entry.
type ProgramCache struct {
	dev   *Device
	disk  DiskCache
	byDigest map[ShaderDigest]*Program

	observers []ProgramCacheObserver

	startupComplete bool
	// pendingLoads is not updated or read anywhere; EndFrame's
	// startup-complete latch depends on the frame count alone.
	pendingLoads int
}

func newProgramCache(dev *Device, disk DiskCache) *ProgramCache {
	return &ProgramCache{
		dev:      dev,
		disk:     disk,
		byDigest: map[ShaderDigest]*Program{},
	}
}

func (c *ProgramCache) AddObserver(o ProgramCacheObserver) {
	c.observers = append(c.observers, o)
}

func (c *ProgramCache) lookup(digest ShaderDigest) *Program {
	return c.byDigest[digest]
}

func (c *ProgramCache) store(p *Program) {
	c.byDigest[p.Digest] = p
	if c.disk != nil {
		c.updateDiskCache(p)
	}
}

func (c *ProgramCache) remove(digest ShaderDigest) {
	delete(c.byDigest, digest)
}

// updateDiskCache persists p's linked binary, mirroring gl.rs's
// update_disk_cache: retrieve the driver's binary representation and
// hand it to the disk cache, best-effort (a disk write failure never
// fails program creation).
func (c *ProgramCache) updateDiskCache(p *Program) {
	binary, format, ok := c.dev.driver.GetProgramBinary(p.glID)
	if !ok {
		return
	}
	c.disk.Store(p.Digest, binary, format)
}

// TryLoadShaderFromDisk attempts to skip compilation entirely by
// uploading a previously-linked binary straight into a fresh program
// object. Returns false (with no error — this is an optimization, not
// a requirement) if no disk cache is configured, nothing is cached for
// digest, or the driver rejects the binary (stale driver version,
// different GPU — the common case this guards against).
func (c *ProgramCache) TryLoadShaderFromDisk(name string, features []string, digest ShaderDigest) (*Program, bool) {
	if c.disk == nil {
		return nil, false
	}
	binary, format, ok := c.disk.Load(digest)
	if !ok {
		return nil, false
	}
	glID := c.dev.driver.CreateProgram()
	c.dev.driver.ProgramBinary(glID, format, binary)
	if c.dev.driver.GetProgramiv(glID, LINK_STATUS) == 0 {
		c.dev.driver.DeleteProgram(glID)
		c.notifyProgramBinaryFailed(digest)
		return nil, false
	}
	prog := &Program{
		id:       ProgramID(c.dev.reg.alloc()),
		glID:     glID,
		Name:     name,
		Features: append([]string(nil), features...),
		Digest:   digest,
		linked:   true,
		binding:  map[string]int32{},
	}
	c.dev.reg.programs[prog.id] = prog
	c.byDigest[digest] = prog
	return prog, true
}

func (c *ProgramCache) notifyProgramBinaryFailed(digest ShaderDigest) {
	for _, o := range c.observers {
		o.NotifyProgramBinaryFailed(digest)
	}
}

func (c *ProgramCache) notifyStartupComplete() {
	c.startupComplete = true
}

// totalBinaryBytes sums the retrievable binary size of every cached
// program, feeding Device.ReportMemory's ProgramBytes field.
func (c *ProgramCache) totalBinaryBytes() uint64 {
	var total uint64
	for _, p := range c.byDigest {
		if binary, _, ok := c.dev.driver.GetProgramBinary(p.glID); ok {
			total += uint64(len(binary))
		}
	}
	return total
}
