// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Defunctionalized tail calls. A Bounce reifies "the next tail call" as
// data instead of a stack frame, so a chain of any length evaluates in a
// flat loop. Dispatch uses type switches, not tags — Bounce is a pure
// marker interface.

// Bounce is the interface for reified tail-call steps.
type Bounce[R any] interface {
	bounce() // unexported marker method
}

// Land signals completion. The evaluator returns Value as the final result.
type Land[R any] struct {
	Value R
}

func (Land[R]) bounce() {}

// More carries the deferred tail call. Next performs one step of work and
// yields the following bounce.
type More[R any] struct {
	Next func() Bounce[R]
}

func (More[R]) bounce() {}

// RunBounce evaluates a bounce chain to completion.
//
// It iteratively unwraps [More] steps until reaching [Land], so physical
// stack depth stays constant no matter how long the chain is — each Next
// call returns before the following one begins. Panics on a Bounce
// implementation other than Land or More.
func RunBounce[R any](b Bounce[R]) R {
	for {
		switch v := b.(type) {
		case Land[R]:
			return v.Value
		case More[R]:
			b = v.Next()
		default:
			panic("tramp: unknown bounce type")
		}
	}
}
