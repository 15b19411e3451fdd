// Copyright 2025 samber.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://github.com/flowcore/rx/blob/main/licenses/LICENSE.apache.md
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rx

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// virtualEpoch is the zero point every VirtualTimeScheduler clock is
// measured from. One virtual tick equals one millisecond of simulated time.
var virtualEpoch = time.Unix(0, 0).UTC()

// VirtualTick converts a plain tick count into the time.Time a
// VirtualTimeScheduler understands.
func VirtualTick(ticks int64) time.Time {
	return virtualEpoch.Add(time.Duration(ticks) * time.Millisecond)
}

// Canonical virtual times used by scenario tests, as used throughout the
// reactive-streams test literature: an observable under test is built at
// CreatedTime, a recording observer subscribes at SubscribedTime, and that
// subscription is torn down at UnsubscribedTime.
const (
	CreatedTime      int64 = 100
	SubscribedTime   int64 = 200
	UnsubscribedTime int64 = 1000
)

var _ Scheduler = (*VirtualTimeScheduler)(nil)

// VirtualTimeScheduler is a Scheduler whose clock only advances when told
// to. It lets tests express "at virtual tick 210, assert this value was
// emitted" without sleeping real wall-clock time, and is the scheduler every
// time-based operator (delay, throttle, interval, timeout, retry backoff)
// should be driven by in tests.
type VirtualTimeScheduler struct {
	mu    sync.Mutex
	queue schedulerQueue
	clock time.Time
}

// NewVirtualTimeScheduler returns a scheduler whose clock starts at tick 0.
func NewVirtualTimeScheduler() *VirtualTimeScheduler {
	return &VirtualTimeScheduler{clock: virtualEpoch}
}

func (s *VirtualTimeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clock
}

func (s *VirtualTimeScheduler) Schedule(action Action) Subscription {
	return s.ScheduleAt(s.Now(), action)
}

func (s *VirtualTimeScheduler) ScheduleAfter(dt time.Duration, action Action) Subscription {
	return s.ScheduleAt(s.Now().Add(dt), action)
}

func (s *VirtualTimeScheduler) ScheduleAt(t time.Time, action Action) Subscription {
	item := &schedulerItem{dueAt: t, seq: nextSchedulerSeq(), action: action}

	s.mu.Lock()
	heap.Push(&s.queue, item)
	s.mu.Unlock()

	return newScheduledSubscription(item)
}

// ScheduleAtTick is ScheduleAt expressed in ticks rather than time.Time.
func (s *VirtualTimeScheduler) ScheduleAtTick(tick int64, action Action) Subscription {
	return s.ScheduleAt(VirtualTick(tick), action)
}

// AdvanceTo runs every queued action due at or before t, in (due-time,
// insertion-sequence) order, moving the clock forward as it goes. Actions
// scheduled by other actions while draining are picked up in the same pass
// if they fall at or before t.
func (s *VirtualTimeScheduler) AdvanceTo(t time.Time) {
	for {
		s.mu.Lock()

		if s.queue.Len() == 0 || s.queue[0].dueAt.After(t) {
			if s.clock.Before(t) {
				s.clock = t
			}

			s.mu.Unlock()

			return
		}

		item := heap.Pop(&s.queue).(*schedulerItem) //nolint:forcetypeassert
		s.clock = item.dueAt
		s.mu.Unlock()

		if item.isCancelled() {
			continue
		}

		item.action(func(next Action) {
			s.Schedule(next)
		})
	}
}

// AdvanceToTick is AdvanceTo expressed in ticks.
func (s *VirtualTimeScheduler) AdvanceToTick(tick int64) {
	s.AdvanceTo(VirtualTick(tick))
}

// Recorded is one entry of a virtual-time trace: the tick it happened at,
// and the notification it carried.
type Recorded[T any] struct {
	Tick         int64
	Notification Notification[T]
}

// RunScenario builds an observable via factory at CreatedTime (or
// createdAt if given a non-zero override is not supported, CreatedTime is
// fixed by convention), subscribes a recording observer to it at
// subscribeAt, unsubscribes at unsubscribeAt, and returns the ordered trace
// of every notification the recording observer saw, each timestamped at the
// virtual tick it arrived on.
func RunScenario[T any](sched *VirtualTimeScheduler, factory func() Observable[T], subscribeAt, unsubscribeAt int64) []Recorded[T] {
	var (
		mu      sync.Mutex
		trace   []Recorded[T]
		source  Observable[T]
		sub     Subscription
	)

	record := func(n Notification[T]) {
		mu.Lock()
		defer mu.Unlock()

		trace = append(trace, Recorded[T]{Tick: tickOf(sched.Now()), Notification: n})
	}

	sched.ScheduleAtTick(CreatedTime, func(func(Action)) {
		source = factory()
	})

	sched.ScheduleAtTick(subscribeAt, func(func(Action)) {
		sub = source.Subscribe(NewObserver(
			func(value T) { record(NewNotificationNext(value)) },
			func(err error) { record(NewNotificationError[T](err)) },
			func() { record(NewNotificationComplete[T]()) },
		))
	})

	sched.ScheduleAtTick(unsubscribeAt, func(func(Action)) {
		if sub != nil {
			sub.Unsubscribe()
		}
	})

	sched.AdvanceToTick(unsubscribeAt)

	mu.Lock()
	defer mu.Unlock()

	return trace
}

func tickOf(t time.Time) int64 {
	return int64(t.Sub(virtualEpoch) / time.Millisecond)
}

// MakeHotObservable replays records at their absolute virtual ticks,
// independent of when (or whether) anything has subscribed yet: values
// emitted before a subscriber attaches are lost to that subscriber, exactly
// like a live broadcast.
func MakeHotObservable[T any](sched *VirtualTimeScheduler, records []Recorded[T]) Observable[T] {
	subject := NewPublishSubject[T]()

	for _, rec := range records {
		rec := rec
		sched.ScheduleAtTick(rec.Tick, func(func(Action)) {
			processNotificationWithObserverAndContext(context.Background(), rec.Notification, subject)
		})
	}

	return subject.AsObservable()
}

// MakeColdObservable replays records at offsets relative to each
// subscription: every subscriber independently sees the same sequence,
// starting from its own subscribe time.
func MakeColdObservable[T any](sched *VirtualTimeScheduler, records []Recorded[T]) Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		subs := make([]Subscription, 0, len(records))

		for _, rec := range records {
			rec := rec
			subs = append(subs, sched.ScheduleAfter(time.Duration(rec.Tick)*time.Millisecond, func(func(Action)) {
				processNotificationWithObserverAndContext(ctx, rec.Notification, destination)
			}))
		}

		return func() {
			for _, s := range subs {
				s.Unsubscribe()
			}
		}
	})
}
