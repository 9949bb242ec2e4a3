// Package shaders holds the compile-time shader source table:
// every .glsl file under glsl/ keyed by its base filename, with
// `#import <name>` resolution handled by the device package at
// composition time (this package only needs to answer "what is the
// raw text for this name").
package shaders

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/gpudevice/device"
)

//go:embed glsl/*.glsl
var embedded embed.FS

var builtin = loadEmbedded()

func loadEmbedded() map[string]string {
	entries, err := embedded.ReadDir("glsl")
	if err != nil {
		panic(err)
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		data, err := embedded.ReadFile("glsl/" + e.Name())
		if err != nil {
			panic(err)
		}
		m[name] = string(data)
	}
	return m
}

// Table is the default compile-time SourceTable, backed by the
// embedded glsl/ directory.
type Table struct{}

func (Table) Source(name string) (string, bool) {
	src, ok := builtin[name]
	return src, ok
}

var _ device.SourceTable = Table{}

// DiskOverrideTable resolves a shader name from disk first (under
// Dir/<name>.glsl), falling back to the embedded builtin table. Used
// during shader development so edits take effect without a rebuild.
type DiskOverrideTable struct {
	Dir string
}

func (t DiskOverrideTable) Source(name string) (string, bool) {
	if t.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(t.Dir, name+".glsl")); err == nil {
			return string(data), true
		}
	}
	return Table{}.Source(name)
}

var _ device.SourceTable = DiskOverrideTable{}
