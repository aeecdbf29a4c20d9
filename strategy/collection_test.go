package strategy

import (
	"strings"
	"testing"

	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// stubElements emits one recognizable statement per operation.
type stubElements struct {
	trivialCleanup bool
}

func (e *stubElements) ElementMarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "marshalElements",
		Args:   []syntax.Expr{src.OriginValuesSource(), src.TargetValuesDestination()},
	}}
}

func (e *stubElements) ElementUnmarshal(src marshalgen.ElementSource, count syntax.Expr) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "unmarshalElements",
		Args:   []syntax.Expr{src.TargetValuesSource(count), src.OriginValuesDestination(count)},
	}}
}

func (e *stubElements) ByValueOutMarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "prepareTargetElements",
		Args:   []syntax.Expr{src.TargetValuesDestination()},
	}}
}

func (e *stubElements) ByValueOutUnmarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "unmarshalElementsByValueOut",
		Args:   []syntax.Expr{src.OriginValuesSource()},
	}}
}

func (e *stubElements) ElementCleanup(src marshalgen.ElementSource) syntax.Stmt {
	if e.trivialCleanup {
		return nil
	}
	return &syntax.Emit{X: &syntax.Call{
		Method: "freeElements",
		Args:   []syntax.Expr{src.TargetValuesDestination()},
	}}
}

func collectionPosition(caps shape.CapabilitySet, ref shape.ByRefKind, intent shape.ByValueIntent) *ValuePosition {
	return &ValuePosition{
		Index:  0,
		ByRef:  ref,
		Intent: intent,
		Native: NativeType{TypeName: "SliceMarshaller", Shape: caps},
	}
}

func TestLinearCollection_UnmarshalCountOrdering(t *testing.T) {
	inner := NewStatefulValue()
	s := NewLinearCollection(inner, &stubElements{}, syntax.Raw("nativeLen"))
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.ToManaged|shape.Free, shape.ByRefIn, shape.IntentIn)

	got := s.Unmarshal(ctx, pos)
	want := []string{
		"count0 := nativeLen",
		"unmarshalElements(marshaller0.TargetValuesSource(count0), marshaller0.OriginValuesDestination(count0))",
		"arg0 = marshaller0.ToOrigin()",
	}
	if len(got) != len(want) {
		t.Fatalf("Unmarshal emitted %d statements, want %d:\n%s", len(got), len(want), syntax.Render(got))
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("stmt %d = %q, want %q", i, got[i].String(), w)
		}
	}
}

func TestLinearCollection_UnmarshalSkippedWithoutToManaged(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, syntax.Raw("nativeLen"))
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.Free, shape.ByRefIn, shape.IntentIn)

	// Count computation and element unmarshal are skipped together.
	got := s.Unmarshal(ctx, pos)
	if len(got) != 0 {
		t.Errorf("Unmarshal without to_managed should be empty, got:\n%s", syntax.Render(got))
	}
}

func TestLinearCollection_ByValueOutMarshal(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, syntax.Raw("nativeLen"))
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.ToManaged, shape.ByRefNone, shape.IntentOut)

	got := s.Marshal(ctx, pos)
	want := []string{
		"marshaller0.FromOrigin(arg0)",
		"prepareTargetElements(marshaller0.TargetValuesDestination())",
	}
	if len(got) != len(want) {
		t.Fatalf("Marshal emitted %d statements, want %d:\n%s", len(got), len(want), syntax.Render(got))
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("stmt %d = %q, want %q", i, got[i].String(), w)
		}
	}
	if strings.Contains(syntax.Render(got), "marshalElements(") {
		t.Error("by-value out marshal must never emit the standard element marshal")
	}
}

func TestLinearCollection_ByValueOutUnmarshalIndependent(t *testing.T) {
	// The by-value-out recovery runs even when to_managed is absent.
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, nil)
	ctx := testContext(false)

	for _, intent := range []shape.ByValueIntent{shape.IntentOut, shape.IntentInOut} {
		pos := collectionPosition(shape.ToNative, shape.ByRefNone, intent)
		got := s.Unmarshal(ctx, pos)
		if len(got) != 1 || got[0].String() != "unmarshalElementsByValueOut(marshaller0.OriginValuesSource())" {
			t.Errorf("intent %v: got %q", intent, syntax.Render(got))
		}
	}

	// By-ref values never take the by-value-out path.
	pos := collectionPosition(shape.ToNative, shape.ByRefInOut, shape.IntentOut)
	if got := s.Unmarshal(ctx, pos); len(got) != 0 {
		t.Errorf("by-ref value should not emit by-value-out recovery, got %q", syntax.Render(got))
	}
}

func TestLinearCollection_MarshalGating(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, nil)
	ctx := testContext(false)

	pos := collectionPosition(shape.ToManaged|shape.Free, shape.ByRefIn, shape.IntentIn)
	if got := s.Marshal(ctx, pos); len(got) != 0 {
		t.Errorf("Marshal without to_native or buffer should be empty, got %q", syntax.Render(got))
	}

	pos = collectionPosition(shape.CallerAllocatedBuffer, shape.ByRefIn, shape.IntentIn)
	if got := s.Marshal(ctx, pos); len(got) == 0 {
		t.Error("Marshal with caller_allocated_buffer should emit the element pass")
	}
}

func TestLinearCollection_CleanupOrdering(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, nil)
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.Free, shape.ByRefIn, shape.IntentIn)

	got := s.Cleanup(ctx, pos)
	want := []string{
		"freeElements(marshaller0.TargetValuesDestination())",
		"marshaller0.Free()",
	}
	if len(got) != len(want) {
		t.Fatalf("Cleanup emitted %d statements, want %d:\n%s", len(got), len(want), syntax.Render(got))
	}
	for i, w := range want {
		if got[i].String() != w {
			t.Errorf("stmt %d = %q, want %q", i, got[i].String(), w)
		}
	}
}

func TestLinearCollection_CleanupTrivialElements(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{trivialCleanup: true}, nil)
	ctx := testContext(false)

	// No element statement, container release still gated on free.
	pos := collectionPosition(shape.ToNative|shape.Free, shape.ByRefIn, shape.IntentIn)
	got := s.Cleanup(ctx, pos)
	if len(got) != 1 || got[0].String() != "marshaller0.Free()" {
		t.Errorf("Cleanup = %q, want container release only", syntax.Render(got))
	}

	pos = collectionPosition(shape.ToNative, shape.ByRefIn, shape.IntentIn)
	if got := s.Cleanup(ctx, pos); len(got) != 0 {
		t.Errorf("Cleanup without free and with trivial elements should be empty, got %q", syntax.Render(got))
	}
}

func TestLinearCollection_ForwardsStructuralPhases(t *testing.T) {
	inner := NewStatefulValue()
	s := NewLinearCollection(inner, &stubElements{}, syntax.Raw("nativeLen"))
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.ToManaged|shape.Free|shape.PinnableReference|shape.OnInvoked,
		shape.ByRefIn, shape.IntentIn)

	forwarded := []Phase{
		PhaseSetup, PhasePin, PhasePinnedMarshal,
		PhaseNotifyForSuccessfulInvoke, PhaseUnmarshalCapture, PhaseGuaranteedUnmarshal,
	}
	for _, p := range forwarded {
		wrapped := EmitPhase(s, p, ctx, pos)
		direct := EmitPhase(inner, p, ctx, pos)
		if syntax.Render(wrapped) != syntax.Render(direct) {
			t.Errorf("%v: wrapped %q != inner %q", p, syntax.Render(wrapped), syntax.Render(direct))
		}
	}
}

func TestLinearCollection_UsesOriginIdentifier(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, nil)
	if !s.UsesOriginIdentifier() {
		t.Error("collection strategy must always use an origin identifier")
	}
}

func TestLinearCollection_Idempotence(t *testing.T) {
	s := NewLinearCollection(NewStatefulValue(), &stubElements{}, syntax.Raw("nativeLen"))
	ctx := testContext(false)
	pos := collectionPosition(shape.ToNative|shape.ToManaged|shape.Free, shape.ByRefNone, shape.IntentInOut)

	for _, p := range Phases() {
		first := EmitPhase(s, p, ctx, pos)
		second := EmitPhase(s, p, ctx, pos)
		if !syntax.Equal(first, second) {
			t.Errorf("%v not idempotent: %q vs %q", p, syntax.Render(first), syntax.Render(second))
		}
	}
}
