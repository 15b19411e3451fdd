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
	"sync"
	"sync/atomic"
	"time"
)

// Action is a unit of work handed to a Scheduler. self lets the action
// reschedule itself (or something else) onto the same worker, which is how
// recursive/periodic work (retry, interval, throttle) is expressed without
// growing the call stack.
type Action func(self func(Action))

// Scheduler abstracts over "where and when" a piece of work runs: inline,
// on a dedicated goroutine, on a shared worker pool, or - for tests - on a
// virtual clock. It mirrors the scheduler family described by ReactiveX:
// immediate, trampoline (current-thread), event-loop, new-thread and the
// virtual-time test scheduler all implement this same surface.
type Scheduler interface {
	// Now returns the scheduler's notion of the current time. Wall-clock
	// schedulers return monotonic real time; VirtualTimeScheduler returns
	// its simulated clock.
	Now() time.Time

	// Schedule runs action as soon as the scheduler can.
	Schedule(action Action) Subscription

	// ScheduleAfter runs action once dt has elapsed on the scheduler's clock.
	ScheduleAfter(dt time.Duration, action Action) Subscription

	// ScheduleAt runs action once the scheduler's clock reaches t.
	ScheduleAt(t time.Time, action Action) Subscription
}

// schedulerItem is one entry of a scheduler's due-time priority queue. Ties
// on dueAt are broken by seq, giving a stable FIFO ordering at equal times.
type schedulerItem struct {
	dueAt     time.Time
	seq       uint64
	action    Action
	cancelled int32
	index     int // heap index, maintained by container/heap
}

func (i *schedulerItem) cancel() {
	atomic.StoreInt32(&i.cancelled, 1)
}

func (i *schedulerItem) isCancelled() bool {
	return atomic.LoadInt32(&i.cancelled) == 1
}

// schedulerQueue is a min-heap of schedulerItem ordered by (dueAt, seq).
// Cancellation is lazy: a cancelled item stays in the heap and is simply
// skipped by the executor when it is popped.
type schedulerQueue []*schedulerItem

func (q schedulerQueue) Len() int { return len(q) }

func (q schedulerQueue) Less(i, j int) bool {
	if q[i].dueAt.Equal(q[j].dueAt) {
		return q[i].seq < q[j].seq
	}

	return q[i].dueAt.Before(q[j].dueAt)
}

func (q schedulerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *schedulerQueue) Push(x any) {
	item := x.(*schedulerItem) //nolint:forcetypeassert
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *schedulerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}

var schedulerSeq uint64

func nextSchedulerSeq() uint64 {
	return atomic.AddUint64(&schedulerSeq, 1)
}

// scheduledSubscription is the Subscription returned by every scheduler:
// unsubscribing only marks the queued item as cancelled, it is removed from
// the heap lazily the next time the executor dequeues it.
func newScheduledSubscription(item *schedulerItem) Subscription {
	return NewSubscription(item.cancel)
}

var (
	_ Scheduler = (*immediateScheduler)(nil)
	_ Scheduler = (*trampolineScheduler)(nil)
	_ Scheduler = (*newThreadScheduler)(nil)
	_ Scheduler = (*eventLoopScheduler)(nil)
)

// immediateScheduler runs every action synchronously, on the calling
// goroutine, the instant it is scheduled. ScheduleAfter/ScheduleAt block the
// caller for the requested delay via time.Sleep.
type immediateScheduler struct{}

// Immediate is a Scheduler that executes work synchronously and immediately,
// blocking the caller for any requested delay.
var Immediate Scheduler = immediateScheduler{}

func (immediateScheduler) Now() time.Time { return time.Now() }

func (s immediateScheduler) Schedule(action Action) Subscription {
	return s.ScheduleAt(s.Now(), action)
}

func (s immediateScheduler) ScheduleAfter(dt time.Duration, action Action) Subscription {
	return s.ScheduleAt(s.Now().Add(dt), action)
}

func (s immediateScheduler) ScheduleAt(t time.Time, action Action) Subscription {
	item := &schedulerItem{dueAt: t, seq: nextSchedulerSeq(), action: action}
	sub := newScheduledSubscription(item)

	if d := time.Until(t); d > 0 {
		time.Sleep(d)
	}

	if !item.isCancelled() {
		runSchedulerAction(item.action)
	}

	return sub
}

// runSchedulerAction invokes action, wiring up its recursive self-schedule
// hook to immediately re-run on the same goroutine.
func runSchedulerAction(action Action) {
	action(func(next Action) {
		runSchedulerAction(next)
	})
}

// trampolineScheduler implements the current-thread discipline described by
// the spec: a single shared "is a worker already draining" flag. A true
// thread-local would require goroutine-local storage, which Go does not
// provide, so the trampoline here is process-wide rather than per-goroutine
// -- recursive schedule() calls from within an action still queue and drain
// without growing the stack, which is the property the discipline exists
// for; see DESIGN.md for the tradeoff.
type trampolineScheduler struct {
	mu     sync.Mutex
	queue  schedulerQueue
	active bool
}

// NewTrampolineScheduler returns a scheduler implementing the current-thread
// (trampoline) discipline: the first Schedule call on an idle trampoline
// drains the whole queue before returning; nested Schedule calls made from
// within a running action merely enqueue.
func NewTrampolineScheduler() Scheduler {
	return &trampolineScheduler{queue: schedulerQueue{}}
}

func (s *trampolineScheduler) Now() time.Time { return time.Now() }

func (s *trampolineScheduler) Schedule(action Action) Subscription {
	return s.ScheduleAt(s.Now(), action)
}

func (s *trampolineScheduler) ScheduleAfter(dt time.Duration, action Action) Subscription {
	return s.ScheduleAt(s.Now().Add(dt), action)
}

func (s *trampolineScheduler) ScheduleAt(t time.Time, action Action) Subscription {
	item := &schedulerItem{dueAt: t, seq: nextSchedulerSeq(), action: action}
	sub := newScheduledSubscription(item)

	s.mu.Lock()
	heap.Push(&s.queue, item)

	if s.active {
		s.mu.Unlock()
		return sub
	}

	s.active = true
	s.mu.Unlock()

	s.drain()

	return sub
}

func (s *trampolineScheduler) drain() {
	for {
		s.mu.Lock()

		if s.queue.Len() == 0 {
			s.active = false
			s.mu.Unlock()

			return
		}

		item := heap.Pop(&s.queue).(*schedulerItem) //nolint:forcetypeassert
		s.mu.Unlock()

		if item.isCancelled() {
			continue
		}

		if d := time.Until(item.dueAt); d > 0 {
			time.Sleep(d)
		}

		item.action(func(next Action) {
			s.Schedule(next)
		})
	}
}

// newThreadScheduler hands every unit of scheduled work to a brand-new
// goroutine. It provides no ordering guarantee across actions beyond what
// the operating system scheduler already gives goroutines.
type newThreadScheduler struct{}

// NewThreadSchedulerInstance returns a scheduler that runs every action on
// its own freshly spawned goroutine.
func NewThreadSchedulerInstance() Scheduler {
	return newThreadScheduler{}
}

func (newThreadScheduler) Now() time.Time { return time.Now() }

func (s newThreadScheduler) Schedule(action Action) Subscription {
	return s.ScheduleAt(s.Now(), action)
}

func (s newThreadScheduler) ScheduleAfter(dt time.Duration, action Action) Subscription {
	return s.ScheduleAt(s.Now().Add(dt), action)
}

func (s newThreadScheduler) ScheduleAt(t time.Time, action Action) Subscription {
	item := &schedulerItem{dueAt: t, seq: nextSchedulerSeq(), action: action}
	sub := newScheduledSubscription(item)

	go func() {
		if d := time.Until(t); d > 0 {
			time.Sleep(d)
		}

		if item.isCancelled() {
			return
		}

		runSchedulerAction(item.action)
	}()

	return sub
}

// eventLoopScheduler runs every scheduled action, in due-time then
// insertion-sequence order, on a single dedicated worker goroutine. It wakes
// up either when its queue gains a new soonest item or when the current
// soonest item comes due.
type eventLoopScheduler struct {
	mu       sync.Mutex
	queue    schedulerQueue
	wake     chan struct{}
	done     chan struct{}
	shutdown int32
}

// NewEventLoopScheduler starts a dedicated worker goroutine and returns a
// Scheduler bound to it. Call Stop to shut the worker down once it has
// drained its queue.
func NewEventLoopScheduler() *eventLoopScheduler { //nolint:revive
	s := &eventLoopScheduler{
		queue: schedulerQueue{},
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}

	go s.loop()

	return s
}

func (s *eventLoopScheduler) Now() time.Time { return time.Now() }

func (s *eventLoopScheduler) Schedule(action Action) Subscription {
	return s.ScheduleAt(s.Now(), action)
}

func (s *eventLoopScheduler) ScheduleAfter(dt time.Duration, action Action) Subscription {
	return s.ScheduleAt(s.Now().Add(dt), action)
}

func (s *eventLoopScheduler) ScheduleAt(t time.Time, action Action) Subscription {
	item := &schedulerItem{dueAt: t, seq: nextSchedulerSeq(), action: action}
	sub := newScheduledSubscription(item)

	s.mu.Lock()
	heap.Push(&s.queue, item)
	s.mu.Unlock()

	s.signal()

	return sub
}

func (s *eventLoopScheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Stop signals the worker to exit once its queue has drained. Actions
// already queued still run; nothing new may be scheduled afterwards.
func (s *eventLoopScheduler) Stop() {
	atomic.StoreInt32(&s.shutdown, 1)
	s.signal()
}

func (s *eventLoopScheduler) loop() {
	defer close(s.done)

	for {
		s.mu.Lock()

		if s.queue.Len() == 0 {
			stopping := atomic.LoadInt32(&s.shutdown) == 1
			s.mu.Unlock()

			if stopping {
				return
			}

			<-s.wake

			continue
		}

		next := s.queue[0]
		wait := time.Until(next.dueAt)
		s.mu.Unlock()

		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-s.wake:
				timer.Stop()
			}

			continue
		}

		s.mu.Lock()
		item := heap.Pop(&s.queue).(*schedulerItem) //nolint:forcetypeassert
		s.mu.Unlock()

		if item.isCancelled() {
			continue
		}

		item.action(func(next Action) {
			s.Schedule(next)
		})
	}
}
