package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation the error occurred in
type Phase string

const (
	PhaseDecode Phase = "decode" // share code to profile
	PhaseEncode Phase = "encode" // profile to share code
	PhaseApply  Phase = "apply"  // config-file patching
	PhaseCopy   Phase = "copy"   // config tree copy
	PhaseLocate Phase = "locate" // install directory discovery
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedCode    Kind = "malformed_code"    // wrong prefix/segment/length structure
	KindInvalidDigit     Kind = "invalid_digit"     // character outside the share-code alphabet
	KindTruncatedPayload Kind = "truncated_payload" // packed buffer shorter than required
	KindNotFound         Kind = "not_found"
	KindInvalidInput     Kind = "invalid_input"
	KindIO               Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Code   string // the share code being processed, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Code != "" {
		b.WriteString(" in ")
		b.WriteString(fmt.Sprintf("%q", e.Code))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Code sets the share code being processed
func (b *Builder) Code(code string) *Builder {
	b.err.Code = code
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedCode creates a structural share-code error
func MalformedCode(code, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedCode,
		Code:   code,
		Detail: detail,
	}
}

// InvalidDigit creates an error for a character outside the alphabet.
// pos is the character's index within the 25-character payload.
func InvalidDigit(code string, char rune, pos int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDigit,
		Code:   code,
		Detail: fmt.Sprintf("character %q at position %d is not in the share-code alphabet", char, pos),
		Value:  char,
	}
}

// TruncatedPayload creates an error for a packed buffer shorter than required
func TruncatedPayload(code string, got int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedPayload,
		Code:   code,
		Detail: fmt.Sprintf("payload resolved to %d bytes, need 18", got),
		Value:  got,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}

// IO wraps a filesystem error
func IO(phase Phase, cause error, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Cause:  cause,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
