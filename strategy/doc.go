// Package strategy implements the marshalling-strategy composition engine.
//
// A Strategy answers, once per lifecycle phase, which statements must run
// for one value crossing the boundary. Strategies compose as decorators:
// each wraps an inner strategy, overrides the phases it changes, and
// forwards the rest untouched.
//
// # Phase Protocol
//
// Phases are queried in a fixed order and the results concatenated; the
// order never depends on which capabilities are declared:
//
//	Phase                       Emitted when
//	──────────────────────────────────────────────────────────
//	Setup                       always
//	Marshal                     to_native
//	Pin                         pinnable_reference
//	PinnedMarshal               to_native | caller_allocated_buffer
//	⟨native call⟩
//	NotifyForSuccessfulInvoke   on_invoked
//	UnmarshalCapture            to_managed | guaranteed_unmarshal
//	GuaranteedUnmarshal         guaranteed_unmarshal
//	Unmarshal                   to_managed
//	Cleanup                     free
//
// Marshal and PinnedMarshal are distinct because some native
// representations need an address that is only stable after pinning.
// UnmarshalCapture runs even when the managed conversion is skipped, so a
// guaranteed unmarshal still sees the raw target value.
//
// Every phase method is total over the capability × by-ref × intent space:
// a missing capability yields an empty sequence, never an error. No phase
// assumes another phase ran; the protocol ordering is what makes the
// composed sequence correct.
//
// # Composition Contract
//
// Decorators own their inner strategy exclusively; chains are linear, never
// shared, never cyclic. The CallerBuffer decorator substitutes only the
// Marshal phase when the call site is eligible, so the optimization is
// invisible to the driver and to every other decorator. The
// LinearCollection decorator adds per-element statements via an
// ElementsMarshaller, reached only through the SourceAdapter's four
// element-buffer accessors.
//
// Decorating a strategy whose declared capability set does not match the
// decorator's assumptions is a precondition violation; the plan package's
// chain builder rejects it at construction. Phase methods never check.
package strategy
