// Package wfc implements GraphWaveFunctionCollapse's constraint-solving
// core (spec.md §2–§7): the Propagator, Entropy Index, Observer, and the
// Solver loop that drives them, plus the State that owns all of their
// tables.
//
// What:
//
//   - State holds, per GO node, an admissible-color bitset, and per GL-iso
//     of GO, an admissible-pattern bitset and its Shannon entropy under the
//     GI-observed pattern weighting.
//   - Reset rebuilds all tables from scratch and runs an initial constraint
//     propagation; a failure here is an InputError (the caller cannot fix
//     it by retrying).
//   - Run alternates observe-and-pin with propagate-to-fixed-point until
//     every iso is pinned (Done), some admissible set empties
//     (Failed — recoverable via Reset), or the iteration budget runs out
//     (Paused).
//
// Why:
//
//   - This is the "hard part" the spec calls out in §1: everything else in
//     this module (isoenum, pattern, converters) exists only to feed this
//     package's constructor, and to consume its GO afterward.
//
// How:
//
//   - Exception-as-control-flow in the reference implementation
//     (_FinishedObserving, _Contradiction) is replaced, per spec.md §9's
//     Design Notes, with explicit sentinel errors translated into an
//     Outcome by Run; only InputError crosses the package boundary as a
//     real error (spec.md §7).
//   - Colors and patterns are interned integers (pattern.Color/Pattern)
//     tracked in internal/bitset sets, per Design Notes §9 option (a).
//   - Randomness is injected (math/rand.Rand via internal/prng), never
//     drawn from a process-global source, to keep a fixed seed + fixed iso
//     order reproducible (spec.md §5).
package wfc
