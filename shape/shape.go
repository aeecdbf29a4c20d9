package shape

import "strings"

// CapabilitySet is a bitmask of marshalling operations a native
// representation type supports. Declared once per type, immutable for the
// lifetime of a generation pass.
type CapabilitySet uint8

const (
	// ToNative supports transforming the origin value to its native
	// representation.
	ToNative CapabilitySet = 1 << iota
	// ToManaged supports transforming the native value back to the origin
	// representation.
	ToManaged
	// Free supports explicit release of native-side resources.
	Free
	// CallerAllocatedBuffer supports marshalling into a caller-supplied
	// scratch buffer of a declared fixed size.
	CallerAllocatedBuffer
	// GuaranteedUnmarshal requires the origin value to be recovered on
	// every exit path of the surrounding call, exceptional or not.
	GuaranteedUnmarshal
	// PinnableReference exposes a reference that must stay stable for the
	// duration of the native call.
	PinnableReference
	// OnInvoked wants a notification after the native call succeeds.
	OnInvoked
)

var capabilityNames = []struct {
	cap  CapabilitySet
	name string
}{
	{ToNative, "to_native"},
	{ToManaged, "to_managed"},
	{Free, "free"},
	{CallerAllocatedBuffer, "caller_allocated_buffer"},
	{GuaranteedUnmarshal, "guaranteed_unmarshal"},
	{PinnableReference, "pinnable_reference"},
	{OnInvoked, "on_invoked"},
}

// Has reports whether s contains every capability in c.
func (s CapabilitySet) Has(c CapabilitySet) bool {
	return s&c == c
}

// Any reports whether s contains at least one capability in c.
func (s CapabilitySet) Any(c CapabilitySet) bool {
	return s&c != 0
}

// String renders the set as a stable pipe-separated list.
func (s CapabilitySet) String() string {
	if s == 0 {
		return "none"
	}
	var b strings.Builder
	for _, cn := range capabilityNames {
		if !s.Has(cn.cap) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(cn.name)
	}
	return b.String()
}

// ByRefKind describes how a value is passed at the call boundary.
type ByRefKind uint8

const (
	ByRefNone ByRefKind = iota
	ByRefIn
	ByRefOut
	ByRefInOut
)

func (k ByRefKind) String() string {
	switch k {
	case ByRefNone:
		return "none"
	case ByRefIn:
		return "in"
	case ByRefOut:
		return "out"
	case ByRefInOut:
		return "inout"
	default:
		return "unknown"
	}
}

// ByValueIntent describes the semantically required data-flow directions of
// a by-value parameter's contents.
type ByValueIntent uint8

const (
	IntentIn ByValueIntent = iota
	IntentOut
	IntentInOut
)

func (i ByValueIntent) String() string {
	switch i {
	case IntentIn:
		return "in"
	case IntentOut:
		return "out"
	case IntentInOut:
		return "inout"
	default:
		return "unknown"
	}
}

// All enumerates every declared capability, in mask order. Used by callers
// that iterate the full capability space, such as plan validation and tests.
func All() []CapabilitySet {
	caps := make([]CapabilitySet, 0, len(capabilityNames))
	for _, cn := range capabilityNames {
		caps = append(caps, cn.cap)
	}
	return caps
}
