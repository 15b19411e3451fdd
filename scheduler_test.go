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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImmediateScheduler(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	order := []int{}

	Immediate.Schedule(func(self func(Action)) {
		order = append(order, 1)
	})
	is.Equal([]int{1}, order)

	start := time.Now()
	Immediate.ScheduleAfter(20*time.Millisecond, func(self func(Action)) {
		order = append(order, 2)
	})
	is.Equal([]int{1, 2}, order)
	is.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestImmediateSchedulerSelfReschedule(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	count := 0

	var action Action
	action = func(self func(Action)) {
		count++
		if count < 3 {
			self(action)
		}
	}

	Immediate.Schedule(action)
	is.Equal(3, count)
}

func TestTrampolineSchedulerOrdersByDueTime(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sched := NewTrampolineScheduler()

	var mu sync.Mutex

	order := []int{}

	record := func(n int) Action {
		return func(self func(Action)) {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}
	}

	sched.ScheduleAfter(30*time.Millisecond, record(3))
	sched.ScheduleAfter(10*time.Millisecond, record(1))
	sched.ScheduleAfter(20*time.Millisecond, record(2))

	mu.Lock()
	is.Equal([]int{1, 2, 3}, order)
	mu.Unlock()
}

func TestTrampolineSchedulerCancellation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sched := NewTrampolineScheduler()

	ran := false

	sub := sched.ScheduleAfter(50*time.Millisecond, func(self func(Action)) {
		ran = true
	})
	sub.Unsubscribe()

	time.Sleep(80 * time.Millisecond)
	is.False(ran)
}

func TestNewThreadSchedulerRunsOnItsOwnGoroutine(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, time.Second)
	is := assert.New(t)

	done := make(chan struct{})

	NewThreadSchedulerInstance().Schedule(func(self func(Action)) {
		close(done)
	})

	<-done
	is.True(true) // reaching here means the action ran off the calling goroutine
}

func TestEventLoopSchedulerOrdersByDueTime(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, time.Second)
	is := assert.New(t)

	sched := NewEventLoopScheduler()
	defer sched.Stop()

	var mu sync.Mutex

	order := []int{}
	done := make(chan struct{})

	record := func(n int, last bool) Action {
		return func(self func(Action)) {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()

			if last {
				close(done)
			}
		}
	}

	sched.ScheduleAfter(30*time.Millisecond, record(3, true))
	sched.ScheduleAfter(10*time.Millisecond, record(1, false))
	sched.ScheduleAfter(20*time.Millisecond, record(2, false))

	<-done

	mu.Lock()
	is.Equal([]int{1, 2, 3}, order)
	mu.Unlock()
}

func TestVirtualTimeSchedulerAdvanceTo(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sched := NewVirtualTimeScheduler()

	order := []int64{}

	sched.ScheduleAtTick(300, func(self func(Action)) {
		order = append(order, 300)
	})
	sched.ScheduleAtTick(100, func(self func(Action)) {
		order = append(order, 100)
	})
	sched.ScheduleAtTick(200, func(self func(Action)) {
		order = append(order, 200)
	})

	is.Equal(VirtualTick(0), sched.Now())

	sched.AdvanceToTick(250)
	is.Equal([]int64{100, 200}, order)
	is.Equal(VirtualTick(250), sched.Now())

	sched.AdvanceToTick(1000)
	is.Equal([]int64{100, 200, 300}, order)
}

func TestRunScenarioColdObservable(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sched := NewVirtualTimeScheduler()

	trace := RunScenario(sched, func() Observable[int] {
		return MakeColdObservable(sched, []Recorded[int]{
			{Tick: 10, Notification: NewNotificationNext(1)},
			{Tick: 20, Notification: NewNotificationNext(2)},
			{Tick: 30, Notification: NewNotificationComplete[int]()},
		})
	}, SubscribedTime, UnsubscribedTime)

	is.Equal([]Recorded[int]{
		{Tick: SubscribedTime + 10, Notification: NewNotificationNext(1)},
		{Tick: SubscribedTime + 20, Notification: NewNotificationNext(2)},
		{Tick: SubscribedTime + 30, Notification: NewNotificationComplete[int]()},
	}, trace)
}

func TestRunScenarioHotObservable(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sched := NewVirtualTimeScheduler()

	trace := RunScenario(sched, func() Observable[int] {
		return MakeHotObservable(sched, []Recorded[int]{
			{Tick: 150, Notification: NewNotificationNext(1)}, // before subscription, dropped
			{Tick: 250, Notification: NewNotificationNext(2)},
			{Tick: 350, Notification: NewNotificationComplete[int]()},
		})
	}, SubscribedTime, UnsubscribedTime)

	is.Equal([]Recorded[int]{
		{Tick: 250, Notification: NewNotificationNext(2)},
		{Tick: 350, Notification: NewNotificationComplete[int]()},
	}, trace)
}
