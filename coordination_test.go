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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityOneWorker(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[int64](1, 2, 3),
			IdentityOneWorker[int64](Immediate),
		),
	)
	is.Equal([]int64{1, 2, 3}, values)
	is.NoError(err)
}

func TestSynchronizeOneWorker(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 500*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[int64](1, 2, 3),
			SynchronizeOneWorker[int64](NewThreadSchedulerInstance()),
		),
	)
	is.Equal([]int64{1, 2, 3}, values)
	is.NoError(err)
}

func TestSerializeOneWorker(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[int64](1, 2, 3),
			SerializeOneWorker[int64](Immediate),
		),
	)
	is.Equal([]int64{1, 2, 3}, values)
	is.NoError(err)
}

func TestObserveOnScheduler(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 500*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[int64](1, 2, 3),
			ObserveOnScheduler[int64](NewThreadSchedulerInstance()),
		),
	)
	is.Equal([]int64{1, 2, 3}, values)
	is.NoError(err)
}

func TestSubscribeOnScheduler(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 500*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[int64](1, 2, 3),
			SubscribeOnScheduler[int64](NewThreadSchedulerInstance()),
		),
	)
	is.Equal([]int64{1, 2, 3}, values)
	is.NoError(err)
}

func TestSubscribeOnSchedulerEarlyUnsubscribe(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 500*time.Millisecond)
	is := assert.New(t)

	sched := NewEventLoopScheduler()
	defer sched.Stop()

	// Keep the worker busy so the scheduled subscribe cannot run before we
	// have a chance to cancel it.
	blockerDone := make(chan struct{})
	sched.Schedule(func(func(Action)) {
		<-blockerDone
	})

	ran := false

	source := NewObservable(func(destination Observer[int]) Teardown {
		ran = true
		destination.Complete()

		return nil
	})

	sub := Pipe1(source, SubscribeOnScheduler[int](sched)).Subscribe(NoopObserver[int]())
	sub.Unsubscribe()
	close(blockerDone)

	time.Sleep(50 * time.Millisecond)
	is.False(ran)
}
