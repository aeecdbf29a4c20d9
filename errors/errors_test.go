package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseChain,
				Kind:       KindMissingCapability,
				Path:       []string{"copy-files", "paths"},
				Strategy:   "CallerBuffer",
				Capability: "caller_allocated_buffer",
				Detail:     "native type declares no buffer size",
			},
			contains: []string{"[chain]", "missing_capability", "copy-files.paths", "CallerBuffer", "caller_allocated_buffer", "no buffer size"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseManifest,
				Kind:  KindFieldMissing,
			},
			contains: []string{"[manifest]", "field_missing"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "parse type string",
				Cause:  errors.New("unexpected token"),
			},
			contains: []string{"[parse]", "invalid_data", "parse type string", "caused by", "unexpected token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseChain,
		Kind:  KindInvalidChain,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseChain,
		Kind:  KindMissingCapability,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseChain, Kind: KindMissingCapability}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseManifest, Kind: KindMissingCapability}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseChain, Kind: KindInvalidChain}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseChain, Kind: KindMissingCapability}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseChain, KindMissingCapability).
		Path("fn", "arg").
		Strategy("LinearCollection").
		Capability("to_managed").
		Value(3).
		Cause(cause).
		Detail("expected %s, got %s", "elements", "nil").
		Build()

	if err.Phase != PhaseChain {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseChain)
	}
	if err.Kind != KindMissingCapability {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMissingCapability)
	}
	if len(err.Path) != 2 || err.Path[0] != "fn" || err.Path[1] != "arg" {
		t.Errorf("Path = %v, want [fn arg]", err.Path)
	}
	if err.Strategy != "LinearCollection" {
		t.Errorf("Strategy = %v, want 'LinearCollection'", err.Strategy)
	}
	if err.Capability != "to_managed" {
		t.Errorf("Capability = %v, want 'to_managed'", err.Capability)
	}
	if err.Value != 3 {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected elements, got nil" {
		t.Errorf("Detail = %v, want 'expected elements, got nil'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MissingCapability", func(t *testing.T) {
		err := MissingCapability(PhaseChain, []string{"arg"}, "CallerBuffer", "caller_allocated_buffer")
		if err.Kind != KindMissingCapability {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingCapability)
		}
		if err.Strategy != "CallerBuffer" || err.Capability != "caller_allocated_buffer" {
			t.Errorf("Strategy=%v Capability=%v", err.Strategy, err.Capability)
		}
	})

	t.Run("InvalidChain", func(t *testing.T) {
		err := InvalidChain(PhaseChain, []string{"arg"}, "LinearCollection", "nil elements marshaller")
		if err.Kind != KindInvalidChain {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidChain)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseClassify, "future types")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing(PhaseManifest, []string{"function"}, "name")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseManifest, "function", "copy-files")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !containsSubstring(err.Detail, "copy-files") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseManifest, "byref must be one of none|in|out|inout")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseManifest, []string{"param"}, "empty type")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("bad token")
		err := ParseFailed("list<", cause)
		if err.Phase != PhaseParse {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
		}
		if !errors.Is(err.Cause, cause) {
			t.Error("cause not preserved")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhasePlan, KindInvalidChain, cause, "build chain")
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("Wrap should preserve cause")
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
