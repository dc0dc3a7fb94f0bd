// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"testing"

	"code.hybscloud.com/tramp"
)

func TestBeginTerminalInitial(t *testing.T) {
	v, paused := tramp.Begin(factState{n: 1, acc: 1}, factNext, factDone, factResult)
	if paused != nil {
		t.Fatal("Begin on terminal state returned a pause, want nil")
	}
	if v != 1 {
		t.Errorf("Begin terminal result = %d, want 1", v)
	}
}

func TestBeginResumeWalksDepths(t *testing.T) {
	_, paused := tramp.Begin(factState{n: 5, acc: 1}, factNext, factDone, factResult)
	if paused == nil {
		t.Fatal("Begin returned nil pause for non-terminal state")
	}
	if paused.Depth() != 0 || paused.State().n != 5 {
		t.Fatalf("initial pause = depth %d state %+v, want depth 0 n=5", paused.Depth(), paused.State())
	}

	var result uint64
	steps := 0
	for paused != nil {
		prevDepth := paused.Depth()
		result, paused = paused.Resume()
		steps++
		if paused != nil && paused.Depth() != prevDepth+1 {
			t.Errorf("depth after resume = %d, want %d", paused.Depth(), prevDepth+1)
		}
	}
	if result != 120 {
		t.Errorf("stepped factorial(5) = %d, want 120", result)
	}
	if steps != 4 {
		t.Errorf("stepped run took %d resumes, want 4", steps)
	}
}

func TestPausedResumeTwicePanics(t *testing.T) {
	_, paused := tramp.Begin(factState{n: 2, acc: 1}, factNext, factDone, factResult)
	v, next := paused.Resume()
	if next != nil || v != 2 {
		t.Fatalf("Resume from n=2 = (%d, %v), want (2, nil)", v, next)
	}
	defer func() {
		if recover() == nil {
			t.Error("second Resume on a completed pause did not panic")
		}
	}()
	paused.Resume()
}

func TestPausedResumeAfterDiscardPanics(t *testing.T) {
	_, paused := tramp.Begin(factState{n: 3, acc: 1}, factNext, factDone, factResult)
	paused.Discard()
	defer func() {
		if recover() == nil {
			t.Error("Resume after Discard did not panic")
		}
	}()
	paused.Resume()
}

func TestPausedTryResume(t *testing.T) {
	_, paused := tramp.Begin(factState{n: 3, acc: 1}, factNext, factDone, factResult)
	_, next, ok := paused.TryResume()
	if !ok {
		t.Fatal("first TryResume reported used")
	}
	if next == nil {
		t.Fatal("TryResume completed after one step, want pause at n=2")
	}
	// The pause reuses the receiver's memory; the stale alias is the same
	// handle and stays usable only through it.
	v, final, ok := next.TryResume()
	if !ok {
		t.Fatal("second TryResume reported used")
	}
	if final != nil {
		t.Fatalf("run not complete after two resumes from n=3")
	}
	if v != 6 {
		t.Errorf("stepped factorial(3) = %d, want 6", v)
	}
}

func TestPausedDiscardBlocksTryResume(t *testing.T) {
	_, paused := tramp.Begin(factState{n: 4, acc: 1}, factNext, factDone, factResult)
	paused.Discard()
	if _, _, ok := paused.TryResume(); ok {
		t.Error("TryResume succeeded after Discard")
	}
}
