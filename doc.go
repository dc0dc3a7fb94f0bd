// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tramp provides a tail-call trampoline engine in Go.
//
// The engine expresses an unbounded sequence of dependent steps without
// growing physical call depth: a computation is an explicit state value plus
// a transition function, driven by a single iterative loop that replaces the
// state wholesale each step instead of pushing stack frames.
//
// # Design Philosophy
//
// tramp provides:
//   - A minimal but complete contract for trampolined evaluation
//   - Constant physical stack depth independent of logical recursion depth
//   - Observable virtual call frames decoupled from physical stack usage
//
// # Core Loop
//
//   - [Transition], [Predicate], [Extract]: the evaluation contract
//   - [Run]: drive a state-transition computation to completion
//   - [RunEither]: fallible transitions; a Left aborts the loop immediately
//   - [Budget], [RunBudget]: opt-in iteration caps for otherwise unbounded
//     loops ([ErrBudgetExhausted])
//
// Run maintains exactly one live state; per-iteration memory is reused, not
// accumulated. The engine never inspects state values — fixed-width overflow
// inside a transition wraps silently unless the transition reports it
// through [RunEither].
//
// # Trace Recording
//
// Debug tracing records a {depth, state} snapshot per visited state so
// external tooling can inspect the virtual stack depth of a computation that
// uses constant physical stack:
//
//   - [Entry]: immutable snapshot
//   - [Trace]: append-only buffer (also a [Sink])
//   - [Sink]: streaming observer interface
//   - [RunTraced], [RunObserved]: traced counterparts of [Run]
//
// Tracing is purely observational: trace length at termination equals the
// transition count plus one, and disabling it never changes the result.
//
// # Stepping Boundary
//
// [Begin] and [Paused] provide one-transition-at-a-time evaluation for
// tooling that drives computation externally. Affine semantics: each
// [Paused] may be resumed at most once.
//
//   - [Begin]: start a steppable run
//   - [Paused.Resume]: advance one transition (panics on reuse)
//   - [Paused.TryResume]: non-panicking variant
//   - [Paused.Discard]: drop without resuming
//
// # Defunctionalized Tail Calls
//
// [Bounce] reifies "the next tail call" as data (Reynolds 1972), evaluated
// by a flat loop:
//
//   - [Land]: computation complete
//   - [More]: deferred tail call
//   - [RunBounce]: iterative evaluator, constant stack for any chain length
//
// # Continuation-Passing Style
//
// [Cont] is the closure encoding of continuations, with the minimal monad
// operations [Return] and [Bind] plus [Suspend] for raw CPS access.
// [Descent] describes a self-similar computation; [Descent.Cont] reifies it
// as a first-class Cont value, and [Descent.Run] closes that value in
// literal CPS — the advancing call in tail position, but linear physical
// stack since Go performs no tail-call elimination — while
// [Descent.RunBounced] evaluates the same chain on the bounce trampoline in
// constant stack.
//
// # Example
//
//	type state struct{ n, acc uint64 }
//
//	result := tramp.Run(state{n: 20, acc: 1},
//		func(s state) state { return state{n: s.n - 1, acc: s.acc * s.n} },
//		func(s state) bool { return s.n <= 1 },
//		func(s state) uint64 { return s.acc },
//	)
//	// result == 20!
package tramp
