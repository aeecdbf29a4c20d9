// Package errors provides structured error types for the marshalgen library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: declaration path, strategy
// and capability names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseChain, errors.KindMissingCapability).
//		Path("copy-files", "paths").
//		Strategy("CallerBuffer").
//		Capability("caller_allocated_buffer").
//		Detail("native type declares no buffer size").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingCapability(errors.PhaseChain, path, "CallerBuffer", "caller_allocated_buffer")
//	err := errors.InvalidInput(errors.PhaseManifest, "byref must be one of none|in|out|inout")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
