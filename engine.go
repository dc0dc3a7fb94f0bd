// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "errors"

// Transition computes the next state from the current one.
// It must perform O(1) work per call and must not recurse in a way that
// grows the caller's stack; the engine supplies the iteration.
type Transition[S any] func(S) S

// Predicate decides whether the loop should stop at the given state.
type Predicate[S any] func(S) bool

// Extract projects the final result out of a terminal state.
type Extract[S, R any] func(S) R

// Run drives a state-transition computation to completion.
//
// It maintains a single current binding seeded with initial. While done
// does not hold, current is replaced wholesale by next(current). Once done
// holds, extract(current) is returned and the state is discarded.
//
// Run uses O(1) auxiliary memory and constant physical stack depth
// regardless of how many iterations execute. The per-iteration state memory
// is reused, not accumulated.
//
// If done never becomes true the loop never returns; bounding iteration is
// the caller's contract (see [Budget]). Run never inspects state values:
// arithmetic overflow inside next is the transition's concern.
func Run[S, R any](initial S, next Transition[S], done Predicate[S], extract Extract[S, R]) R {
	current := initial
	for !done(current) {
		current = next(current)
	}
	return extract(current)
}

// RunEither drives a fallible state-transition computation.
//
// A transition that returns Left aborts the loop at the current iteration;
// the failure is surfaced to the caller unchanged. The engine never recovers
// locally. On termination the extracted result is returned as Right.
func RunEither[S, E, R any](initial S, next func(S) Either[E, S], done Predicate[S], extract Extract[S, R]) Either[E, R] {
	current := initial
	for !done(current) {
		step := next(current)
		if step.IsLeft() {
			e, _ := step.GetLeft()
			return Left[E, R](e)
		}
		current, _ = step.GetRight()
	}
	return Right[E](extract(current))
}

// ErrBudgetExhausted reports that a budgeted run hit its iteration cap
// before the termination predicate held.
var ErrBudgetExhausted = errors.New("tramp: iteration budget exhausted")

// Budget wraps a termination predicate with an iteration cap.
//
// The returned predicate reports true once done holds or limit evaluations
// have occurred, whichever comes first. The wrapper carries a mutable
// counter, so it is single-use: build a fresh one per run.
func Budget[S any](limit uint64, done Predicate[S]) Predicate[S] {
	var seen uint64
	return func(s S) bool {
		if done(s) {
			return true
		}
		seen++
		return seen > limit
	}
}

// RunBudget runs like [Run] but aborts with [ErrBudgetExhausted] once limit
// transitions have been applied without the termination predicate holding.
func RunBudget[S, R any](limit uint64, initial S, next Transition[S], done Predicate[S], extract Extract[S, R]) Either[error, R] {
	current := initial
	for steps := uint64(0); ; steps++ {
		if done(current) {
			return Right[error](extract(current))
		}
		if steps == limit {
			return Left[error, R](ErrBudgetExhausted)
		}
		current = next(current)
	}
}
