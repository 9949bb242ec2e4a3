package device

// CompileFlags controls how CreateProgram compiles and links a
// program. Adapted from the teacher's glgl.CompileFlags: same bitmask
// shape and same Lax/Strict composed presets, generalized from a
// single combined-source compile to the named, feature-parameterized
// CreateProgram above.
type CompileFlags uint64

const (
	// CompileFlagValidateProgram runs ValidateProgram after linking.
	// Expensive; reserve for debug and test builds.
	CompileFlagValidateProgram CompileFlags = 1 << iota
	// CompileFlagNoCompileCheck skips the compile-status check. Setting
	// this may turn a shader error into a silent black screen instead
	// of a returned error.
	CompileFlagNoCompileCheck
	// CompileFlagNoLinkCheck skips the link-status check, same caveat.
	CompileFlagNoLinkCheck
)

const (
	// CompileFlagsLax disables compile/link error handling for
	// performance; callers should poll Err() themselves if using it.
	CompileFlagsLax = CompileFlagNoCompileCheck | CompileFlagNoLinkCheck
	// CompileFlagsStrict enables every check, including validation.
	CompileFlagsStrict = CompileFlagValidateProgram
)

func (cf CompileFlags) checkCompile() bool    { return cf&CompileFlagNoCompileCheck == 0 }
func (cf CompileFlags) checkLink() bool       { return cf&CompileFlagNoLinkCheck == 0 }
func (cf CompileFlags) validateProgram() bool { return cf&CompileFlagValidateProgram != 0 }
