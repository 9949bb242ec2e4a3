package device

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// ShaderKind selects which half of a combined shader source file gets
// compiled: the same base source can serve as both vertex and
// fragment shader, gated by a WR_VERTEX_SHADER/WR_FRAGMENT_SHADER define,
// the way the original's .glsl files are written.
type ShaderKind int

const (
	KindVertex ShaderKind = iota
	KindFragment
)

func (k ShaderKind) glType() Enum {
	if k == KindVertex {
		return VERTEX_SHADER
	}
	return FRAGMENT_SHADER
}

func (k ShaderKind) define() string {
	if k == KindVertex {
		return "WR_VERTEX_SHADER"
	}
	return "WR_FRAGMENT_SHADER"
}

// SourceTable resolves a base shader name to raw GLSL text, with
// recursive `#import <name>` resolution. A compile-time table (see
// package shaders) and an optional on-disk override path both satisfy
// this interface.
type SourceTable interface {
	Source(name string) (string, bool)
}

const glslVersion = "#version 150\n"

// composeSource builds the final GLSL text: version pragma, a kind
// define, one define per requested feature, then the expanded source
// tree rooted at name with every `#import <other>` line replaced by
// other's own expansion (depth-first, each name expanded once).
func composeSource(table SourceTable, name string, kind ShaderKind, features []string) (string, error) {
	var sb strings.Builder
	sb.WriteString(glslVersion)
	sb.WriteString("#define ")
	sb.WriteString(kind.define())
	sb.WriteString("\n")
	sortedFeatures := append([]string(nil), features...)
	sort.Strings(sortedFeatures)
	for _, f := range sortedFeatures {
		sb.WriteString("#define WR_FEATURE_")
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	seen := map[string]bool{}
	if err := expandImports(table, name, seen, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func expandImports(table SourceTable, name string, seen map[string]bool, out *strings.Builder) error {
	if done, ok := seen[name]; ok {
		if !done {
			return fmt.Errorf("device: shader import cycle at %q", name)
		}
		return nil
	}
	seen[name] = false
	src, ok := table.Source(name)
	if !ok {
		return fmt.Errorf("device: unknown shader source %q", name)
	}
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#import ") {
			imported := strings.TrimSpace(strings.TrimPrefix(trimmed, "#import "))
			imported = strings.Trim(imported, `"<>`)
			if err := expandImports(table, imported, seen, out); err != nil {
				return err
			}
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	seen[name] = true
	return nil
}

// ShaderDigest is the SHA-256 of a program's fully composed vertex and
// fragment sources, used as the program binary cache key so two
// programs with identical effective source (regardless of feature
// combination that produced it) share one cache entry.
type ShaderDigest [32]byte

func computeDigest(vertexSrc, fragmentSrc string) ShaderDigest {
	h := sha256.New()
	h.Write([]byte(vertexSrc))
	h.Write([]byte{0})
	h.Write([]byte(fragmentSrc))
	sum := h.Sum(nil)
	var d ShaderDigest
	copy(d[:], sum)
	return d
}

// Program is a linked shader program plus the identity the program
// cache keys on.
type Program struct {
	id       ProgramID
	glID     uint32
	Name     string
	Features []string
	Digest   ShaderDigest

	linked  bool
	binding map[string]int32 // uniform name -> location, memoized
}

func (p *Program) ID() ProgramID { return p.id }

// CreateProgram composes, compiles, and links a program named name
// with the given optional features, exactly the teacher's
// compileSources flow (compile both stages, attach, link, validate if
// flags.validateProgram(), detach+delete shaders, check link status)
// generalized over the Driver interface and the content-addressed
// cache (see program_cache.go), which is consulted before any actual
// compile/link work happens.
func (d *Device) CreateProgram(table SourceTable, name string, features []string, flags CompileFlags) (*Program, error) {
	vertexSrc, err := composeSource(table, name, KindVertex, features)
	if err != nil {
		return nil, err
	}
	fragmentSrc, err := composeSource(table, name, KindFragment, features)
	if err != nil {
		return nil, err
	}
	digest := computeDigest(vertexSrc, fragmentSrc)

	if cached := d.programCache.lookup(digest); cached != nil {
		return cached, nil
	}
	if prog, ok := d.programCache.TryLoadShaderFromDisk(name, features, digest); ok {
		return prog, nil
	}

	glID := d.driver.CreateProgram()
	vs, err := d.compileStage(name, KindVertex, vertexSrc, flags)
	if err != nil {
		d.driver.DeleteProgram(glID)
		return nil, err
	}
	fs, err := d.compileStage(name, KindFragment, fragmentSrc, flags)
	if err != nil {
		d.driver.DeleteShader(vs)
		d.driver.DeleteProgram(glID)
		return nil, err
	}
	d.driver.AttachShader(glID, vs)
	d.driver.AttachShader(glID, fs)
	d.driver.ProgramParameteri(glID, PROGRAM_BINARY_RETRIEVABLE_HINT, 1)

	if flags.checkLink() {
		d.driver.LinkProgram(glID)
		if d.driver.GetProgramiv(glID, LINK_STATUS) == 0 {
			log := d.driver.GetProgramInfoLog(glID)
			d.driver.DetachShader(glID, vs)
			d.driver.DetachShader(glID, fs)
			d.driver.DeleteShader(vs)
			d.driver.DeleteShader(fs)
			d.driver.DeleteProgram(glID)
			return nil, &ProgramLinkError{Name: name, Log: log}
		}
	} else {
		d.driver.LinkProgram(glID)
	}
	if flags.validateProgram() {
		d.driver.ValidateProgram(glID)
		if d.driver.GetProgramiv(glID, VALIDATE_STATUS) == 0 {
			d.log.Warn("program failed validation", "name", name, "log", d.driver.GetProgramInfoLog(glID))
		}
	}

	d.driver.DetachShader(glID, vs)
	d.driver.DetachShader(glID, fs)
	d.driver.DeleteShader(vs)
	d.driver.DeleteShader(fs)

	prog := &Program{
		id:       ProgramID(d.reg.alloc()),
		glID:     glID,
		Name:     name,
		Features: append([]string(nil), features...),
		Digest:   digest,
		linked:   true,
		binding:  map[string]int32{},
	}
	d.reg.programs[prog.id] = prog
	d.programCache.store(prog)
	return prog, nil
}

func (d *Device) compileStage(name string, kind ShaderKind, src string, flags CompileFlags) (uint32, error) {
	id := d.driver.CreateShader(kind.glType())
	d.driver.ShaderSource(id, src)
	if !flags.checkCompile() {
		d.driver.CompileShader(id)
		return id, nil
	}
	d.driver.CompileShader(id)
	if d.driver.GetShaderiv(id, COMPILE_STATUS) == 0 {
		log := d.driver.GetShaderInfoLog(id)
		d.driver.DeleteShader(id)
		kindName := "vertex"
		if kind == KindFragment {
			kindName = "fragment"
		}
		return 0, &ShaderCompileError{Name: name, Kind: kindName, Log: log}
	}
	return id, nil
}

// UseProgram binds p as current, going through the state cache.
func (d *Device) UseProgram(p *Program) {
	d.useProgram(p.glID)
}

// DeleteProgram removes p from the registry and the program cache and
// deletes the underlying GL object.
func (d *Device) DeleteProgram(p *Program) {
	delete(d.reg.programs, p.id)
	d.programCache.remove(p.Digest)
	d.driver.DeleteProgram(p.glID)
}

func (d *Device) uniformLocation(p *Program, name string) int32 {
	if loc, ok := p.binding[name]; ok {
		return loc
	}
	loc := d.driver.GetUniformLocation(p.glID, name)
	p.binding[name] = loc
	return loc
}

// SetUniform1i sets an int/sampler uniform by name on p, which must
// already be the current program.
func (d *Device) SetUniform1i(p *Program, name string, v int32) {
	if loc := d.uniformLocation(p, name); loc >= 0 {
		d.driver.Uniform1i(loc, v)
	}
}

// SetUniform1f sets a float uniform by name on p.
func (d *Device) SetUniform1f(p *Program, name string, v float32) {
	if loc := d.uniformLocation(p, name); loc >= 0 {
		d.driver.Uniform1f(loc, v)
	}
}

// SetUniforms uploads a 4x4 transform matrix uniform by name,
// column-major as GL expects.
func (d *Device) SetUniforms(p *Program, name string, m [16]float32) {
	if loc := d.uniformLocation(p, name); loc >= 0 {
		d.driver.UniformMatrix4fv(loc, m)
	}
}

// BindFragDataLocation binds a fragment shader output to a color
// attachment index, the teacher's BindFrag operation generalized to a
// named program. CreateProgram has already linked p, and GL applies
// the binding only at the program's next link; Device does not relink.
func (d *Device) BindFragDataLocation(p *Program, color uint32, name string) {
	d.driver.BindFragDataLocation(p.glID, color, name)
}
