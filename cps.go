// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Descent describes a self-similar computation for continuation-passing
// evaluation: a problem either satisfies the base case or shrinks toward it,
// with the pending work of each level captured by Combine.
//
// Evaluation order: the base case's continuation fires first, producing the
// result for the smallest sub-problem; continuations then fire in reverse
// order of construction, so the combine chain unwinds from innermost to
// outermost, mirroring the recursive descent.
type Descent[S, R any] struct {
	// IsBase reports whether s needs no further shrinking.
	IsBase func(S) bool

	// Base produces the result for a base-case state.
	Base func(S) R

	// Shrink moves s one level toward the base case.
	Shrink func(S) S

	// Combine folds one level's pending work into a sub-result.
	Combine func(S, R) R
}

// Cont reifies the descent from s as a continuation-passing computation.
//
// A base-case state becomes [Return] of its base result. Any other state
// suspends: when the computation is closed, it binds the reified sub-problem
// to a continuation that folds in this level's pending work and forwards
// downstream. Construction is lazy — each level's recursion happens only
// inside its suspension, and the call that advances the descent is in tail
// position there. Go performs no tail-call elimination, so closing the
// computation still consumes physical stack linear in the descent depth;
// use [Descent.RunBounced] when the depth is unbounded.
func (d Descent[S, R]) Cont(s S) Cont[R, R] {
	if d.IsBase(s) {
		return Return[R](d.Base(s))
	}
	return Suspend[R](func(k func(R) R) R {
		m := Bind(d.Cont(d.Shrink(s)), func(sub R) Cont[R, R] {
			return Return[R](d.Combine(s, sub))
		})
		return m(k)
	})
}

// Run evaluates the descent from s with the final continuation k.
//
// The base case's continuation fires first, producing the result for the
// smallest sub-problem; continuations then fire in reverse order of
// construction, so k observes the fully combined result last.
func (d Descent[S, R]) Run(s S, k func(R) R) R {
	return RunContWith(d.Cont(s), k)
}

// Eval runs the descent with the identity continuation.
func (d Descent[S, R]) Eval(s S) R {
	return RunCont(d.Cont(s))
}

// Bounced evaluates the descent as a [Bounce] chain.
//
// Semantics match [Descent.Run] exactly, but each descending step and each
// continuation invocation is reified as a bounce instead of a stack frame.
// The continuation chain lives on the heap, one link per transition step,
// and is released once the terminal continuation lands.
func (d Descent[S, R]) Bounced(s S, k func(R) Bounce[R]) Bounce[R] {
	if d.IsBase(s) {
		return k(d.Base(s))
	}
	return More[R]{Next: func() Bounce[R] {
		return d.Bounced(d.Shrink(s), func(sub R) Bounce[R] {
			return More[R]{Next: func() Bounce[R] {
				return k(d.Combine(s, sub))
			}}
		})
	}}
}

// RunBounced evaluates the descent from s on the bounce trampoline,
// using constant physical stack regardless of descent depth.
func (d Descent[S, R]) RunBounced(s S) R {
	return RunBounce[R](d.Bounced(s, func(r R) Bounce[R] {
		return Land[R]{Value: r}
	}))
}
