// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "sync/atomic"

// Stepping boundary for external tooling. Begin/Resume provide shallow
// one-transition-at-a-time evaluation, unlike Run which drives the loop to
// completion. A debugger can walk virtual call frames this way while the
// physical stack stays flat.

// Paused represents a run suspended between two transitions.
// It exposes the current state and its virtual depth.
//
// Paused enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a pause.
type Paused[S, R any] struct {
	used    atomic.Uintptr
	state   S
	depth   uint64
	next    Transition[S]
	done    Predicate[S]
	extract Extract[S, R]
}

// State returns the state the run is paused at.
func (p *Paused[S, R]) State() S { return p.state }

// Depth returns the 0-based count of transitions applied so far.
func (p *Paused[S, R]) Depth() uint64 { return p.depth }

// Resume applies one transition and re-tests termination.
// Returns either the final result (with nil pause) or the next pause.
// Panics if the pause has already been resumed or discarded.
//
// The returned pause reuses the receiver's memory, avoiding one allocation
// per step.
func (p *Paused[S, R]) Resume() (R, *Paused[S, R]) {
	if p.used.Add(1) != 1 {
		panic("tramp: pause resumed twice")
	}
	return p.advance()
}

// TryResume attempts to apply one transition.
// Returns (result, pause, true) on success, or (zero, nil, false) if the
// pause has already been used.
func (p *Paused[S, R]) TryResume() (R, *Paused[S, R], bool) {
	if p.used.Add(1) != 1 {
		var zero R
		return zero, nil, false
	}
	r, next := p.advance()
	return r, next, true
}

// Discard marks the pause as consumed without resuming.
func (p *Paused[S, R]) Discard() {
	p.used.Store(1)
}

// advance applies one transition. On termination the receiver stays marked
// used, so stale aliases still panic on Resume.
func (p *Paused[S, R]) advance() (R, *Paused[S, R]) {
	state := p.next(p.state)
	if p.done(state) {
		return p.extract(state), nil
	}
	p.state = state
	p.depth++
	p.used.Store(0)
	var zero R
	return zero, p
}

// Begin starts a steppable run.
//
// If initial is already terminal, Begin returns the extracted result with a
// nil pause and applies zero transitions. Otherwise it returns a pause at
// depth 0 holding the initial state; each Resume advances exactly one
// transition.
func Begin[S, R any](initial S, next Transition[S], done Predicate[S], extract Extract[S, R]) (R, *Paused[S, R]) {
	if done(initial) {
		return extract(initial), nil
	}
	var zero R
	return zero, &Paused[S, R]{
		state:   initial,
		next:    next,
		done:    done,
		extract: extract,
	}
}
