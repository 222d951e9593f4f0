// Package notify fans notification messages out to web push subscriptions.
//
// Delivery is best effort: each subscription is attempted independently, a
// failure is logged and never affects the other deliveries or the caller.
// Endpoints the push service reports as gone are pruned.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"roster/internal/model"
	"roster/internal/worker"
)

// Subscriptions is the storage the dispatcher reads targets from.
type Subscriptions interface {
	ListFor(ctx context.Context, userID *uint) ([]model.Subscription, error)
	Delete(ctx context.Context, id uint) error
}

// Submitter accepts background jobs.
type Submitter interface {
	Submit(job worker.Job) error
}

// Report summarizes one fan-out.
type Report struct {
	Sent   int
	Failed int
	Pruned int
}

// Dispatcher delivers messages to every subscription of a target.
type Dispatcher struct {
	subs    Subscriptions
	sender  Sender
	pool    Submitter
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewDispatcher wires a dispatcher. timeout bounds each single delivery.
func NewDispatcher(subs Subscriptions, sender Sender, pool Submitter, timeout time.Duration, log logrus.FieldLogger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		subs:    subs,
		sender:  sender,
		pool:    pool,
		timeout: timeout,
		log:     log.WithField("component", "notify"),
	}
}

// Enqueue schedules a fan-out on the worker pool and returns immediately.
// A nil userID targets every subscription.
func (d *Dispatcher) Enqueue(userID *uint, message string) {
	target := copyTarget(userID)
	err := d.pool.Submit(func(ctx context.Context) {
		d.Dispatch(ctx, target, message)
	})
	if err != nil {
		d.log.WithError(err).WithField("user_id", targetField(target)).Warn("notification dispatch dropped")
	}
}

// Dispatch delivers message to the target's subscriptions and waits for all attempts.
func (d *Dispatcher) Dispatch(ctx context.Context, userID *uint, message string) Report {
	var report Report
	log := d.log.WithField("user_id", targetField(userID))

	subs, err := d.subs.ListFor(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("load subscriptions failed")
		return report
	}

	payload := []byte(message)
	for _, sub := range subs {
		err := d.deliver(ctx, sub, payload)
		if err == nil {
			report.Sent++
			continue
		}

		report.Failed++
		entry := log.WithError(err).WithField("subscription_id", sub.ID)
		if !errors.Is(err, ErrGone) {
			entry.Warn("push delivery failed")
			continue
		}
		if err := d.subs.Delete(ctx, sub.ID); err != nil {
			entry.WithField("prune_error", err.Error()).Warn("push endpoint gone, prune failed")
			continue
		}
		report.Pruned++
		entry.Info("push endpoint gone, subscription pruned")
	}

	log.WithFields(logrus.Fields{
		"sent":   report.Sent,
		"failed": report.Failed,
		"pruned": report.Pruned,
	}).Debug("notification dispatched")
	return report
}

func (d *Dispatcher) deliver(ctx context.Context, sub model.Subscription, payload []byte) (err error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	// a misbehaving sender must not take the other deliveries down
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("push sender panicked")
		}
	}()
	return d.sender.Send(ctx, sub, payload)
}

func copyTarget(userID *uint) *uint {
	if userID == nil {
		return nil
	}
	v := *userID
	return &v
}

func targetField(userID *uint) interface{} {
	if userID == nil {
		return "all"
	}
	return *userID
}
