// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package factorial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tramp"
	"code.hybscloud.com/tramp/factorial"
)

// known holds exact values; 20! is the largest factorial representable in
// a uint64 without wrapping.
var known = map[uint64]uint64{
	0:  1,
	1:  1,
	2:  2,
	5:  120,
	10: 3628800,
	20: 2432902008176640000,
}

func TestVariantsAgree(t *testing.T) {
	for n, want := range known {
		assert.Equal(t, want, factorial.Naive(n), "Naive(%d)", n)
		assert.Equal(t, want, factorial.TailRec(n), "TailRec(%d)", n)
		assert.Equal(t, want, factorial.Trampolined(n), "Trampolined(%d)", n)
		assert.Equal(t, want, factorial.CPS(n), "CPS(%d)", n)
		assert.Equal(t, want, factorial.CPSBounced(n), "CPSBounced(%d)", n)
	}
}

func TestWraparoundConsistency(t *testing.T) {
	// Beyond 20 the accumulator wraps; all constant-stack variants must
	// wrap identically.
	for _, n := range []uint64{21, 25, 100} {
		want := factorial.Trampolined(n)
		assert.Equal(t, want, factorial.CPSBounced(n), "n=%d", n)
		traced, _ := factorial.Traced(n)
		assert.Equal(t, want, traced, "n=%d traced", n)
	}
}

func TestTrampolinedDeep(t *testing.T) {
	// The original demo's headline input: constant stack at n = 200000.
	_ = factorial.Trampolined(200_000)
	_ = factorial.CPSBounced(200_000)
}

func TestTracedSnapshots(t *testing.T) {
	v, trace := factorial.Traced(4)
	require.Equal(t, uint64(24), v)

	want := []tramp.Entry[factorial.State]{
		{Depth: 0, State: factorial.State{N: 4, Acc: 1}},
		{Depth: 1, State: factorial.State{N: 3, Acc: 4}},
		{Depth: 2, State: factorial.State{N: 2, Acc: 12}},
		{Depth: 3, State: factorial.State{N: 1, Acc: 24}},
	}
	if diff := cmp.Diff(want, trace.Entries()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckedWithinRange(t *testing.T) {
	for n, want := range known {
		got := factorial.Checked(n)
		require.True(t, got.IsRight(), "Checked(%d) returned Left", n)
		v, _ := got.GetRight()
		assert.Equal(t, want, v, "Checked(%d)", n)
	}
}

func TestCheckedOverflow(t *testing.T) {
	// 21! exceeds 2^64; the transition must fail before wrapping.
	for _, n := range []uint64{21, 30, 200_000} {
		got := factorial.Checked(n)
		err, ok := got.GetLeft()
		require.True(t, ok, "Checked(%d) returned Right", n)
		assert.ErrorIs(t, err, factorial.ErrOverflow)
	}
}
