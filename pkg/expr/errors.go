package expr

import "fmt"

// CompileError is a static type or semantic error raised during type
// prediction, width resolution, or constant evaluation. It aborts compilation
// of the offending expression; the caller renders Src however it sees fit.
type CompileError struct {
	Message string
	Src     SourceLocation
}

func (e *CompileError) Error() string { return e.Message }

func compileErrorf(src SourceLocation, format string, args ...any) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...), Src: src}
}

// UnsupportedError signals a language feature this compiler does not
// implement yet. It is distinct from CompileError so callers can choose to
// treat it as fatal or as a known limitation.
type UnsupportedError struct {
	Feature string
	Src     SourceLocation
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("expr: unsupported feature: %s", e.Feature)
}
