// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Trace recording decouples logical recursion depth (what a debugger should
// see) from physical stack usage (constant). Recording is purely
// observational: removing it never changes the result of a run.

// Entry is an immutable snapshot of one visited state.
// Depth is the 0-based count of snapshots recorded before this one.
type Entry[S any] struct {
	Depth uint64
	State S
}

// Sink receives state snapshots as a traced run visits them.
// Implementations must not retain the right to mutate recorded entries;
// the engine never reads them back.
type Sink[S any] interface {
	Record(Entry[S])
}

// Trace is an append-only buffer of visited states.
// It grows monotonically; entries are never mutated in place.
// The zero value is ready to use. Trace implements [Sink].
type Trace[S any] struct {
	entries []Entry[S]
}

// Record appends a snapshot. Depth is assigned by the caller.
func (t *Trace[S]) Record(e Entry[S]) {
	t.entries = append(t.entries, e)
}

// Len returns the number of recorded snapshots.
func (t *Trace[S]) Len() int { return len(t.entries) }

// At returns the i-th snapshot in record order.
func (t *Trace[S]) At(i int) Entry[S] { return t.entries[i] }

// Entries returns a copy of the recorded snapshots.
func (t *Trace[S]) Entries() []Entry[S] {
	out := make([]Entry[S], len(t.entries))
	copy(out, t.entries)
	return out
}

// RunTraced runs like [Run] while recording every visited state, the initial
// state included, into a fresh [Trace].
//
// The trace length at termination equals the number of transition
// applications plus one. The returned result is identical to an untraced
// [Run] over the same inputs.
func RunTraced[S, R any](initial S, next Transition[S], done Predicate[S], extract Extract[S, R]) (R, *Trace[S]) {
	trace := &Trace[S]{}
	result := RunObserved[S, R](trace, initial, next, done, extract)
	return result, trace
}

// RunObserved runs like [Run], streaming every visited state into sink.
// Each state is recorded before its termination test, so sink observes the
// initial state at depth 0 and the terminal state last.
func RunObserved[S, R any](sink Sink[S], initial S, next Transition[S], done Predicate[S], extract Extract[S, R]) R {
	current := initial
	for depth := uint64(0); ; depth++ {
		sink.Record(Entry[S]{Depth: depth, State: current})
		if done(current) {
			return extract(current)
		}
		current = next(current)
	}
}
