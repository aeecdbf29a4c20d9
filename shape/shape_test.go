package shape

import "testing"

func TestCapabilitySet_Has(t *testing.T) {
	tests := []struct {
		name string
		set  CapabilitySet
		want CapabilitySet
		has  bool
	}{
		{"single present", ToNative | Free, Free, true},
		{"single absent", ToNative | Free, ToManaged, false},
		{"multi present", ToNative | ToManaged | Free, ToNative | Free, true},
		{"multi partial", ToNative | Free, ToNative | ToManaged, false},
		{"empty set", 0, ToNative, false},
		{"empty query", ToNative, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Has(tt.want); got != tt.has {
				t.Errorf("Has(%v) = %v, want %v", tt.want, got, tt.has)
			}
		})
	}
}

func TestCapabilitySet_Any(t *testing.T) {
	set := ToNative | CallerAllocatedBuffer
	if !set.Any(ToNative | ToManaged) {
		t.Error("Any should report true when one flag overlaps")
	}
	if set.Any(ToManaged | Free) {
		t.Error("Any should report false when no flag overlaps")
	}
}

func TestCapabilitySet_String(t *testing.T) {
	tests := []struct {
		name string
		set  CapabilitySet
		want string
	}{
		{"empty", 0, "none"},
		{"single", Free, "free"},
		{"ordered", Free | ToNative | OnInvoked, "to_native|free|on_invoked"},
		{"full", ToNative | ToManaged | Free | CallerAllocatedBuffer | GuaranteedUnmarshal | PinnableReference | OnInvoked,
			"to_native|to_managed|free|caller_allocated_buffer|guaranteed_unmarshal|pinnable_reference|on_invoked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestByRefKind_String(t *testing.T) {
	kinds := map[ByRefKind]string{
		ByRefNone:  "none",
		ByRefIn:    "in",
		ByRefOut:   "out",
		ByRefInOut: "inout",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("ByRefKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestAll_CoversMask(t *testing.T) {
	var merged CapabilitySet
	for _, c := range All() {
		merged |= c
	}
	full := ToNative | ToManaged | Free | CallerAllocatedBuffer |
		GuaranteedUnmarshal | PinnableReference | OnInvoked
	if merged != full {
		t.Errorf("All() merged to %v, want %v", merged, full)
	}
}
