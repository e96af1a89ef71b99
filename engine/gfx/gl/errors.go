package glbackend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContext is returned when no GL context could be acquired.
	ErrNoContext = errors.New("gl: no rendering context available")

	ErrNilShader         = errors.New("gl: nil or uncompiled shader")
	ErrShaderKind        = errors.New("gl: shader attached to the wrong stage")
	ErrAttributeNotFound = errors.New("gl: attribute not found")
	ErrUniformNotFound   = errors.New("gl: uniform not found")
	ErrUnsupportedArity  = errors.New("gl: unsupported uniform arity")
	ErrOutOfTextureUnits = errors.New("gl: out of texture units")

	ErrInvalidBufferLength = errors.New("gl: buffer length is not a multiple of the item size")
	ErrNoVertexData        = errors.New("gl: no vertex data uploaded")
	ErrArityMismatch       = errors.New("gl: wrong number of uniform values")
	ErrProgramNotBound     = errors.New("gl: program is not bound")
)

// CompileError carries the compiler's info log verbatim.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader compile error (%s): %s", e.Kind, e.Log)
}

// LinkError carries the linker's info log verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link error: %s", e.Log)
}
