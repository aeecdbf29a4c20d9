// Package plan drives the phase protocol and validates strategy chains.
//
// Generate queries the outermost strategy once per phase of one value's
// lifecycle and collects the results in protocol order. The surrounding
// emitter owns the execution discipline: the pin scope closes on every exit
// path of the native call, GuaranteedUnmarshal and Cleanup run on both the
// exceptional and the normal path, NotifyForSuccessfulInvoke only after a
// successful call.
//
// # Chain Construction
//
// Chain assembles a decorator composition and enforces at build time the
// preconditions the phase functions themselves never check:
//
//	s, err := plan.NewChain(native).
//	    WithCallerBuffer().
//	    WithCollection(elems, syntax.Raw("nativeLen")).
//	    Build()
//
// A caller-buffer decorator over a shape that never declared
// caller_allocated_buffer, or a collection decorator without an elements
// marshaller, is rejected here with a structured error. Once Build
// succeeds, generation cannot fail.
package plan
