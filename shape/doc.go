// Package shape describes what a native representation type can do and how
// a value is passed at the call boundary.
//
// # Capabilities
//
// Every native representation type declares a CapabilitySet: a bitmask of
// the marshalling operations it supports. The set is fixed for the lifetime
// of a generation pass and drives which lifecycle phases emit statements:
//
//	Capability              Phase it enables
//	─────────────────────────────────────────────────
//	ToNative                Marshal, PinnedMarshal
//	ToManaged               UnmarshalCapture, Unmarshal
//	Free                    Cleanup
//	CallerAllocatedBuffer   PinnedMarshal, buffered Marshal
//	GuaranteedUnmarshal     UnmarshalCapture, GuaranteedUnmarshal
//	PinnableReference       Pin
//	OnInvoked               NotifyForSuccessfulInvoke
//
// Containment checks are pure and allocation-free; a missing capability
// means the corresponding phase is empty, never an error.
//
// # Call-Site Descriptors
//
// ByRefKind captures how the value is passed (none/in/out/inout). For
// by-value values, ByValueIntent captures which directions of data flow are
// semantically required: IntentOut and IntentInOut imply unmarshalling back
// into the same storage even though the call itself is by value.
package shape
