package livesync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"

	"github.com/sirupsen/logrus"
)

const DefaultPollInterval = 15 * time.Second

// Source is the athlete collection as seen by a subscription.
type Source interface {
	List(ctx context.Context) ([]domain.Athlete, error)
	Watch(ctx context.Context, onChange func()) error
}

// Subscription delivers full athlete snapshots until cancelled.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Subscribe loads the current snapshot, hands it to callback and keeps
// delivering a fresh full snapshot after every change the source reports.
// If the source cannot watch, it falls back to reloading every pollInterval.
// callback is never called concurrently with itself.
func Subscribe(
	ctx context.Context,
	source Source,
	callback func([]domain.Athlete),
	pollInterval time.Duration,
) (*Subscription, error) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	initial, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load initial snapshot: %w", err)
	}
	callback(initial)

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go sub.run(ctx, source, callback, pollInterval)

	return sub, nil
}

// Cancel stops the subscription and waits until no more callbacks run.
func (s *Subscription) Cancel() {
	s.cancel()
	<-s.done
}

// Done is closed once the subscription has stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) run(
	ctx context.Context,
	source Source,
	callback func([]domain.Athlete),
	pollInterval time.Duration,
) {
	defer close(s.done)

	// bursts of change events collapse into a single reload
	changes := make(chan struct{}, 1)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- source.Watch(ctx, notify)
	}()
	watching := true

	var (
		ticker *time.Ticker
		poll   <-chan time.Time
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	reload := func() {
		athletes, err := source.List(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logrus.WithError(err).Error("livesync: reload athletes snapshot")
			}
			return
		}
		callback(athletes)
	}

	for {
		select {
		case <-ctx.Done():
			if watching {
				<-watchErr
			}
			return
		case err := <-watchErr:
			watching = false
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				continue
			}
			logrus.WithError(err).WithField("interval", pollInterval).
				Warn("livesync: change stream unavailable, polling instead")
			ticker = time.NewTicker(pollInterval)
			poll = ticker.C
			reload()
		case <-changes:
			reload()
		case <-poll:
			reload()
		}
	}
}
