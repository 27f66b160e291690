package worker

import (
	"clinicdesk/cmd/internal/utils/clock"
	"errors"
	"testing"
	"time"
)

type fakeSweeper struct {
	calls chan time.Duration
	err   error
}

func newFakeSweeper() *fakeSweeper {
	return &fakeSweeper{calls: make(chan time.Duration, 16)}
}

func (f *fakeSweeper) SweepReminders(threshold time.Duration) (int, error) {
	f.calls <- threshold
	return 1, f.err
}

// waitForTimer blocks until the worker has armed its next period timer.
func waitForTimer(t *testing.T, clk *clock.ManagedClock) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for clk.Waiters() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("worker never armed its timer")
		}
		time.Sleep(time.Millisecond)
	}
}

func expectSweep(t *testing.T, f *fakeSweeper, want time.Duration) {
	t.Helper()
	select {
	case got := <-f.calls:
		if got != want {
			t.Errorf("sweep threshold = %s, want %s", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sweep")
	}
}

func TestReminderWorker_SweepsEveryPeriod(t *testing.T) {
	clk := clock.NewManaged(time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC))
	sweeper := newFakeSweeper()
	w := NewReminderWorker(sweeper, clk, 10*time.Second, time.Minute)

	w.Start()
	defer w.Stop(time.Second)

	waitForTimer(t, clk)
	clk.WarpForward(5 * time.Second)
	select {
	case <-sweeper.calls:
		t.Fatal("swept before the period elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	clk.WarpForward(5 * time.Second)
	expectSweep(t, sweeper, time.Minute)

	waitForTimer(t, clk)
	clk.WarpForward(10 * time.Second)
	expectSweep(t, sweeper, time.Minute)
}

func TestReminderWorker_KeepsRunningAfterError(t *testing.T) {
	clk := clock.NewManaged(time.Now())
	sweeper := newFakeSweeper()
	sweeper.err = errors.New("store unavailable")
	w := NewReminderWorker(sweeper, clk, time.Second, time.Second)

	w.Start()
	defer w.Stop(time.Second)

	for i := 0; i < 2; i++ {
		waitForTimer(t, clk)
		clk.WarpForward(time.Second)
		expectSweep(t, sweeper, time.Second)
	}
}

func TestReminderWorker_StartStop(t *testing.T) {
	clk := clock.NewManaged(time.Now())
	sweeper := newFakeSweeper()
	w := NewReminderWorker(sweeper, clk, 0, -1)

	if w.period != DefaultPeriod || w.threshold != DefaultThreshold {
		t.Errorf("defaults not applied: period=%s threshold=%s", w.period, w.threshold)
	}

	w.Start()
	w.Start()
	if !w.Started() {
		t.Fatal("expected worker to be started")
	}

	waitForTimer(t, clk)
	w.Stop(time.Second)
	if w.Started() {
		t.Fatal("expected worker to be stopped")
	}

	clk.WarpForward(DefaultPeriod)
	select {
	case <-sweeper.calls:
		t.Fatal("swept after Stop")
	case <-time.After(20 * time.Millisecond):
	}

	w.Stop(time.Second)
}

func TestReminderWorker_ZeroThresholdIsKept(t *testing.T) {
	clk := clock.NewManaged(time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC))
	sweeper := newFakeSweeper()
	w := NewReminderWorker(sweeper, clk, time.Second, 0)
	if w.threshold != 0 {
		t.Fatalf("threshold = %s, want 0", w.threshold)
	}

	w.Start()
	defer w.Stop(time.Second)

	waitForTimer(t, clk)
	clk.WarpForward(time.Second)
	expectSweep(t, sweeper, 0)
}
