package plan

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/syntax"
)

// Plan holds one value's statement sequences, one per phase, in protocol
// order. A plan is produced once per generation pass and then discarded.
type Plan struct {
	phases [strategy.PhaseCount][]syntax.Stmt
}

// Generate queries s once per phase for pos and collects the results.
// It never fails: phase functions are total over their input space.
func Generate(s strategy.Strategy, ctx *strategy.Context, pos *strategy.ValuePosition) *Plan {
	p := &Plan{}
	for _, ph := range strategy.Phases() {
		stmts := strategy.EmitPhase(s, ph, ctx, pos)
		p.phases[ph] = stmts
		Logger().Debug("phase emitted",
			zap.Stringer("phase", ph),
			zap.Int("position", pos.Index),
			zap.Int("statements", len(stmts)),
		)
	}
	return p
}

// Phase returns the statement sequence for one phase.
func (p *Plan) Phase(ph strategy.Phase) []syntax.Stmt {
	return p.phases[ph]
}

// Sequence concatenates all phases in protocol order.
func (p *Plan) Sequence() []syntax.Stmt {
	var out []syntax.Stmt
	for _, ph := range strategy.Phases() {
		out = append(out, p.phases[ph]...)
	}
	return out
}

// Render formats the plan with one header per non-empty phase and a marker
// at the native-call point.
func (p *Plan) Render() string {
	var b strings.Builder
	for _, ph := range strategy.Phases() {
		if ph == strategy.PhaseNotifyForSuccessfulInvoke {
			b.WriteString("--- native call ---\n")
		}
		stmts := p.phases[ph]
		if len(stmts) == 0 {
			continue
		}
		b.WriteString("[")
		b.WriteString(ph.String())
		b.WriteString("]\n")
		for _, s := range stmts {
			b.WriteString("  ")
			b.WriteString(s.String())
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
