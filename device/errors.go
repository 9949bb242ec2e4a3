package device

import (
	"fmt"
	"strconv"
	"strings"
)

// glError is a single GL error code, named the way the teacher's
// glgl.go names them.
type glError Enum

func (e glError) Error() string {
	switch Enum(e) {
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0503:
		return "GL_STACK_OVERFLOW"
	case 0x0504:
		return "GL_STACK_UNDERFLOW"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL error 0x" + strconv.FormatUint(uint64(e), 16)
	}
}

// glErrors joins every error code drained in one poll, same shape as
// the teacher's glgl.Err.
type glErrors []glError

func (e glErrors) Error() string {
	var sb strings.Builder
	for i, g := range e {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(g.Error())
	}
	return sb.String()
}

// Err drains d.GetError() into a joined error, bounded the same way
// the teacher bounds its drain loop: GL never returns more distinct
// error codes than exist, so a fixed cap prevents spinning forever on
// a driver that misbehaves.
func Err(d Driver) error {
	const maxDrain = 16
	var errs glErrors
	for i := 0; i < maxDrain; i++ {
		code := d.GetError()
		if code == 0 {
			break
		}
		errs = append(errs, glError(code))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ShaderCompileError wraps a shader compile failure with its info log.
type ShaderCompileError struct {
	Name string
	Kind string
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s (%s): %s", e.Name, e.Kind, e.Log)
}

// ProgramLinkError wraps a program link failure with its info log.
type ProgramLinkError struct {
	Name string
	Log  string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("link %s: %s", e.Name, e.Log)
}
