// core/reads/errors.go
package reads

import "fmt"

// FormatError reports an unrecoverable structural violation in the input,
// carrying the offending line for diagnosis.
type FormatError struct {
	Msg  string
	Line string
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return e.Msg
	}
	return e.Msg + ":\n" + e.Line
}

// InvalidInputError reports a value that could not be classified as a
// path, readable stream, or line sequence.
type InvalidInputError struct {
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("input %v (%T) is not a file path, reader, or line sequence", e.Value, e.Value)
}

// UnsupportedFormatError reports an unknown format tag (or quality profile).
type UnsupportedFormatError struct {
	Format string
	Kind   string // defaults to "format"
}

func (e *UnsupportedFormatError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "format"
	}
	return fmt.Sprintf("unrecognized %s: %q", kind, e.Format)
}
