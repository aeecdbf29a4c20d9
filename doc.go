// Package marshalgen synthesizes marshalling plans for values crossing a
// two-representation boundary.
//
// Given a value's declared capability set and its call-site context, the
// library decides which marshalling operations must run in each lifecycle
// phase, in what order, and how decorators layer cross-cutting concerns
// (caller-allocated buffers, per-element collection marshalling) onto a base
// strategy without either side knowing about the other.
//
// # Architecture Overview
//
//	marshalgen/          Root package with collaborator interfaces and the
//	│                    default naming registry
//	├── syntax/          Statement/expression IR emitted by strategies
//	├── shape/           Capability bitmask and call-site descriptors
//	├── strategy/        Base strategy, decorators, phase protocol
//	├── plan/            Phase-ordering driver and validated chain builder
//	├── witshape/        WIT type classification into shapes and chains
//	├── manifest/        TOML signature manifests for the CLI
//	├── errors/          Structured error types for debugging
//	└── cmd/plangen/     CLI for rendering and browsing plans
//
// # Quick Start
//
// Build a chain for a string parameter and generate its plan:
//
//	native := strategy.NativeType{
//	    TypeName:  "Utf8Marshaller",
//	    Shape:     shape.ToNative | shape.ToManaged | shape.Free,
//	    StackOnly: true,
//	}
//	pos := &strategy.ValuePosition{Index: 0, ByRef: shape.ByRefNone, Native: native}
//	ctx := strategy.NewContext(marshalgen.NewNames(), true)
//
//	s, err := plan.NewChain(native).Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := plan.Generate(s, ctx, pos)
//	fmt.Println(p.Render())
//
// # Phase Protocol
//
// The driver queries the outermost strategy once per phase and concatenates
// the results in a fixed order, independent of which capabilities are set:
//
//	Setup → Marshal → Pin → PinnedMarshal → ⟨native call⟩ →
//	NotifyForSuccessfulInvoke → UnmarshalCapture → GuaranteedUnmarshal →
//	Unmarshal → Cleanup
//
// Pin scopes and GuaranteedUnmarshal/Cleanup run on every exit path of the
// surrounding call; that discipline is the emitter's contract, not something
// any individual phase enforces.
//
// # Decorator Composition
//
// Decorators wrap an inner strategy and override a subset of phases,
// forwarding the rest unchanged. The caller-buffer decorator substitutes
// only the Marshal phase; the linear-collection decorator adds per-element
// statements around the container-level phases of its inner strategy. A
// decorator never needs to coordinate with another decorator.
//
// # Thread Safety
//
// Generation is single-threaded and synchronous. A ValuePosition and its
// marshaller instance are exclusively owned by one strategy chain for one
// generation pass; nothing is shared across values or passes.
package marshalgen
