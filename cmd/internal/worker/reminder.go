package worker

import (
	"clinicdesk/cmd/internal/utils/clock"
	"github.com/labstack/gommon/log"
	"sync"
	"time"
)

const (
	DefaultPeriod    = 10 * time.Second
	DefaultThreshold = 60 * time.Second
)

type Sweeper interface {
	SweepReminders(threshold time.Duration) (int, error)
}

// ReminderWorker runs the reminder sweep every period until stopped. It never
// backs off; a failed sweep is logged and retried on the next tick.
type ReminderWorker struct {
	sweeper   Sweeper
	clock     clock.Clock
	period    time.Duration
	threshold time.Duration

	mu      sync.Mutex
	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewReminderWorker(sweeper Sweeper, clk clock.Clock, period, threshold time.Duration) *ReminderWorker {
	if period <= 0 {
		period = DefaultPeriod
	}
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &ReminderWorker{
		sweeper:   sweeper,
		clock:     clk,
		period:    period,
		threshold: threshold,
	}
}

func (w *ReminderWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	w.started = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.loop(w.stopCh, w.doneCh)
}

// Stop signals the loop and waits up to wait for an in-flight sweep to finish.
func (w *ReminderWorker) Stop(wait time.Duration) {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	select {
	case <-done:
	case <-time.After(wait):
		log.Warnf("reminder worker did not stop within %s", wait)
	}
}

func (w *ReminderWorker) Started() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started
}

func (w *ReminderWorker) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	for {
		select {
		case <-stopCh:
			return
		case <-w.clock.After(w.period):
		}

		// Stop may race with the timer; never sweep after it was requested.
		select {
		case <-stopCh:
			return
		default:
		}
		w.tick()
	}
}

func (w *ReminderWorker) tick() {
	log.Debugf("checking auto reminders")
	sent, err := w.sweeper.SweepReminders(w.threshold)
	if err != nil {
		log.Errorf("reminder sweep failed: %v", err)
		return
	}
	if sent > 0 {
		log.Infof("reminder sweep sent %d reminder(s)", sent)
	}
}
