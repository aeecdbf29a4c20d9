package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // shape classification
	PhaseChain    Phase = "chain"    // strategy chain construction
	PhasePlan     Phase = "plan"     // plan generation
	PhaseManifest Phase = "manifest" // signature manifest loading
	PhaseParse    Phase = "parse"    // type-string parsing
	PhaseRender   Phase = "render"   // plan rendering
)

// Kind categorizes the error
type Kind string

const (
	KindMissingCapability Kind = "missing_capability"
	KindInvalidChain      Kind = "invalid_chain"
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
	KindNotFound          Kind = "not_found"
	KindFieldMissing      Kind = "field_missing"
	KindInvalidData       Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Strategy   string
	Capability string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Strategy != "" || e.Capability != "" {
		b.WriteString(": ")
		if e.Strategy != "" && e.Capability != "" {
			b.WriteString("strategy ")
			b.WriteString(e.Strategy)
			b.WriteString(", capability ")
			b.WriteString(e.Capability)
		} else if e.Strategy != "" {
			b.WriteString("strategy ")
			b.WriteString(e.Strategy)
		} else {
			b.WriteString("capability ")
			b.WriteString(e.Capability)
		}
	}

	if e.Detail != "" {
		if e.Strategy != "" || e.Capability != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the declaration path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Strategy sets the strategy name
func (b *Builder) Strategy(s string) *Builder {
	b.err.Strategy = s
	return b
}

// Capability sets the capability name
func (b *Builder) Capability(c string) *Builder {
	b.err.Capability = c
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

// MissingCapability creates an error for a decorator whose wrapped strategy
// does not declare a capability the decorator requires
func MissingCapability(phase Phase, path []string, strategy, capability string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindMissingCapability,
		Path:       path,
		Strategy:   strategy,
		Capability: capability,
	}
}

// InvalidChain creates a strategy chain misconfiguration error
func InvalidChain(phase Phase, path []string, strategy, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidChain,
		Path:     path,
		Strategy: strategy,
		Detail:   detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
