// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package factorial demonstrates the trampoline engine with four renditions
// of the same computation: naive recursion, accumulator-passing recursion,
// the iterative trampoline, and continuation-passing style.
//
// All unchecked variants use a fixed-width uint64 accumulator and agree
// modulo 2^64; products wrap silently for n > 20. [Checked] detects the
// first wrapping multiplication instead.
package factorial

import (
	"errors"

	"code.hybscloud.com/tramp"
)

// State is the virtual call frame of the countdown: the remaining operand
// and the product accumulated so far.
type State struct {
	N   uint64
	Acc uint64
}

// ErrOverflow reports that the accumulator would wrap past 2^64.
var ErrOverflow = errors.New("factorial: accumulator overflow")

// done reports the base case: nothing left to multiply.
func done(s State) bool { return s.N <= 1 }

// next performs one countdown step. O(1) work, no recursion.
func next(s State) State {
	return State{N: s.N - 1, Acc: s.Acc * s.N}
}

// result extracts the accumulated product from a terminal state.
func result(s State) uint64 { return s.Acc }

// Naive computes n! by plain recursion. The multiplication is pending work
// that must happen after the recursive call returns, so every level consumes
// a real stack frame; large n exhausts the stack and kills the process,
// uncatchably. Kept as the baseline the engine exists to replace.
func Naive(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * Naive(n-1)
}

// TailRec computes n! by accumulator-passing recursion. The recursive call
// is the last action of each level, but Go performs no tail-call
// elimination, so stack usage still grows linearly with n.
func TailRec(n uint64) uint64 {
	return tailRec(n, 1)
}

func tailRec(n, acc uint64) uint64 {
	if n <= 1 {
		return acc
	}
	return tailRec(n-1, acc*n)
}

// Trampolined computes n! on the engine's iterative loop: constant physical
// stack for any n.
func Trampolined(n uint64) uint64 {
	return tramp.Run(State{N: n, Acc: 1}, next, done, result)
}

// Traced computes n! while recording every visited state.
// The trace holds one entry per virtual call frame, initial state included.
func Traced(n uint64) (uint64, *tramp.Trace[State]) {
	return tramp.RunTraced(State{N: n, Acc: 1}, next, done, result)
}

// descent is the CPS formulation: shrink n toward the base case, with each
// level's pending multiplication captured in Combine.
var descent = tramp.Descent[uint64, uint64]{
	IsBase:  func(n uint64) bool { return n <= 1 },
	Base:    func(uint64) uint64 { return 1 },
	Shrink:  func(n uint64) uint64 { return n - 1 },
	Combine: func(n, sub uint64) uint64 { return n * sub },
}

// CPS computes n! in literal continuation-passing style. Each descending
// call is in tail position; without tail-call elimination the physical stack
// still grows with n, so prefer [CPSBounced] for unbounded inputs.
func CPS(n uint64) uint64 {
	return descent.Eval(n)
}

// CPSBounced computes n! with the CPS descent reified on the bounce
// trampoline: the continuation chain lives on the heap and physical stack
// stays constant.
func CPSBounced(n uint64) uint64 {
	return descent.RunBounced(n)
}

// Checked computes n! with strict overflow detection: the transition fails
// with [ErrOverflow] before the first wrapping multiplication, and the
// engine surfaces the failure as Left without continuing the loop.
func Checked(n uint64) tramp.Either[error, uint64] {
	return tramp.RunEither(State{N: n, Acc: 1},
		func(s State) tramp.Either[error, State] {
			if s.Acc > ^uint64(0)/s.N {
				return tramp.Left[error, State](ErrOverflow)
			}
			return tramp.Right[error](next(s))
		},
		done, result,
	)
}
