// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Cont is the closure encoding of a continuation-passing computation: a
// function that, handed the rest of the computation k, produces the final
// answer. Cont[R, A] yields an intermediate value of type A; R is the answer
// type of the whole computation.
//
// [Descent.Cont] reifies an engine descent as a Cont value, so the
// continuation chain the spec of a trampolined computation talks about is a
// first-class value here, not an implementation detail.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a plain value: the computation hands a straight to its
// continuation, with no pending work of its own.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend adapts a raw CPS function into a Cont. Use it when a computation
// needs its continuation first-class — to defer it, or to invoke it more
// than once.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind chains f onto m: the value m produces picks the computation that
// runs next. Together with [Return] this is the complete monadic core;
// derived combinators can all be spelled with these two.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// identity is the final continuation used by RunCont. Kept as a named
// generic function so each instantiation is a static funcval rather than a
// per-call closure allocation.
func identity[A any](a A) A { return a }

// RunCont closes a computation whose intermediate and answer types coincide
// by applying the identity continuation.
func RunCont[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunContWith closes a computation with an explicit final continuation.
func RunContWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
