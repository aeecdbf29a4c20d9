package strategy

import "github.com/wippyai/marshalgen/syntax"

// Phase is one named step of the marshalling lifecycle, in protocol order.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseMarshal
	PhasePin
	PhasePinnedMarshal
	PhaseNotifyForSuccessfulInvoke
	PhaseUnmarshalCapture
	PhaseGuaranteedUnmarshal
	PhaseUnmarshal
	PhaseCleanup

	PhaseCount = int(PhaseCleanup) + 1
)

var phaseNames = [PhaseCount]string{
	"Setup",
	"Marshal",
	"Pin",
	"PinnedMarshal",
	"NotifyForSuccessfulInvoke",
	"UnmarshalCapture",
	"GuaranteedUnmarshal",
	"Unmarshal",
	"Cleanup",
}

func (p Phase) String() string {
	if int(p) < PhaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// Phases lists every phase in protocol order.
func Phases() []Phase {
	out := make([]Phase, PhaseCount)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

// EmitPhase dispatches one phase query to s. Driver glue: keeps the
// phase-to-method mapping in one place.
func EmitPhase(s Strategy, p Phase, ctx *Context, pos *ValuePosition) []syntax.Stmt {
	switch p {
	case PhaseSetup:
		return s.Setup(ctx, pos)
	case PhaseMarshal:
		return s.Marshal(ctx, pos)
	case PhasePin:
		return s.Pin(ctx, pos)
	case PhasePinnedMarshal:
		return s.PinnedMarshal(ctx, pos)
	case PhaseNotifyForSuccessfulInvoke:
		return s.NotifyForSuccessfulInvoke(ctx, pos)
	case PhaseUnmarshalCapture:
		return s.UnmarshalCapture(ctx, pos)
	case PhaseGuaranteedUnmarshal:
		return s.GuaranteedUnmarshal(ctx, pos)
	case PhaseUnmarshal:
		return s.Unmarshal(ctx, pos)
	case PhaseCleanup:
		return s.Cleanup(ctx, pos)
	default:
		return nil
	}
}
