package device

import "os"

// DumpShaderSource writes name's fully composed vertex and fragment
// source to <dir>/<name>.vert and <dir>/<name>.frag, for offline
// inspection of exactly what text a given feature combination compiled
// to. Mirrors gl.rs's dump_shader_source, which does the same two
// std::fs::write calls keyed off the base shader name.
func DumpShaderSource(table SourceTable, name string, features []string, dir string) error {
	vertexSrc, err := composeSource(table, name, KindVertex, features)
	if err != nil {
		return err
	}
	fragmentSrc, err := composeSource(table, name, KindFragment, features)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dir+"/"+name+".vert", []byte(vertexSrc), 0o644); err != nil {
		return err
	}
	return os.WriteFile(dir+"/"+name+".frag", []byte(fragmentSrc), 0o644)
}
