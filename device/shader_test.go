package device

import (
	"strings"
	"testing"
)

type mapSourceTable map[string]string

func (m mapSourceTable) Source(name string) (string, bool) {
	s, ok := m[name]
	return s, ok
}

func TestComposeSourceOrdersFeatureDefines(t *testing.T) {
	table := mapSourceTable{"base": "void main() {}\n"}
	src, err := composeSource(table, "base", KindVertex, []string{"CLIP", "ALPHA_PASS"})
	if err != nil {
		t.Fatalf("composeSource: %v", err)
	}
	if !strings.HasPrefix(src, glslVersion) {
		t.Error("composed source must start with the version pragma")
	}
	alphaIdx := strings.Index(src, "WR_FEATURE_ALPHA_PASS")
	clipIdx := strings.Index(src, "WR_FEATURE_CLIP")
	if alphaIdx == -1 || clipIdx == -1 {
		t.Fatal("expected both feature defines present")
	}
	if alphaIdx > clipIdx {
		t.Error("feature defines must be emitted in sorted order regardless of input order")
	}
	if !strings.Contains(src, "WR_VERTEX_SHADER") {
		t.Error("expected the vertex-kind define")
	}
}

func TestComposeSourceExpandsImports(t *testing.T) {
	table := mapSourceTable{
		"common": "float foo() { return 1.0; }\n",
		"main":   "#import common\nvoid main() { foo(); }\n",
	}
	src, err := composeSource(table, "main", KindFragment, nil)
	if err != nil {
		t.Fatalf("composeSource: %v", err)
	}
	if !strings.Contains(src, "float foo()") {
		t.Error("expected imported source to be inlined")
	}
	if strings.Contains(src, "#import") {
		t.Error("#import directives must not survive into the composed output")
	}
}

func TestComposeSourceDetectsImportCycle(t *testing.T) {
	table := mapSourceTable{
		"a": "#import b\n",
		"b": "#import a\n",
	}
	_, err := composeSource(table, "a", KindVertex, nil)
	if err == nil {
		t.Fatal("expected an error for a cyclic #import chain")
	}
}

func TestComposeSourceUnknownImport(t *testing.T) {
	table := mapSourceTable{"main": "#import missing\n"}
	_, err := composeSource(table, "main", KindVertex, nil)
	if err == nil {
		t.Fatal("expected an error for an unresolved #import")
	}
}

func TestComputeDigestDeterministicAndDistinguishesSplit(t *testing.T) {
	d1 := computeDigest("vertex-src", "fragment-src")
	d2 := computeDigest("vertex-src", "fragment-src")
	if d1 != d2 {
		t.Error("computeDigest must be deterministic for identical inputs")
	}
	// A naive concatenation digest would collide across different
	// vertex/fragment splits of the same combined text; the embedded
	// NUL separator must prevent that.
	d3 := computeDigest("vertex-sr", "cfragment-src")
	if d1 == d3 {
		t.Error("computeDigest must not collide across different vertex/fragment splits")
	}
}

func TestCreateProgramCacheHit(t *testing.T) {
	dev, d := newTestDevice(false)
	table := mapSourceTable{"solid": "void main(){}\n"}

	p1, err := dev.CreateProgram(table, "solid", nil, CompileFlagsStrict)
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	linkCallsAfterFirst := d.calls["LinkProgram"]

	p2, err := dev.CreateProgram(table, "solid", nil, CompileFlagsStrict)
	if err != nil {
		t.Fatalf("CreateProgram (cached): %v", err)
	}
	if p1 != p2 {
		t.Error("a second CreateProgram with identical composed source must hit the program cache and return the same *Program")
	}
	if d.calls["LinkProgram"] != linkCallsAfterFirst {
		t.Error("a program cache hit must not recompile or relink")
	}
}

func TestCreateProgramDistinctFeaturesDoNotCollide(t *testing.T) {
	dev, _ := newTestDevice(false)
	table := mapSourceTable{"solid": "void main(){}\n"}

	p1, err := dev.CreateProgram(table, "solid", []string{"A"}, CompileFlagsStrict)
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	p2, err := dev.CreateProgram(table, "solid", []string{"B"}, CompileFlagsStrict)
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	if p1 == p2 {
		t.Error("distinct feature sets produce distinct composed source and must not share a cache entry")
	}
}

func TestCreateProgramLinkFailureReturnsTypedError(t *testing.T) {
	dev, d := newTestDevice(false)
	table := mapSourceTable{"broken": "void main(){}\n"}
	d.linkFail = true

	_, err := dev.CreateProgram(table, "broken", nil, CompileFlagsStrict)
	if err == nil {
		t.Fatal("expected a link error")
	}
	if _, ok := err.(*ProgramLinkError); !ok {
		t.Errorf("expected *ProgramLinkError, got %T", err)
	}
	if len(dev.reg.programs) != 0 {
		t.Error("a failed link must not leave a registered program behind")
	}
}
