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
	"context"
	"sync"
)

// IdentityOneWorker is the no-op coordination: it exists so call sites that
// are parameterized over a coordination strategy can pass a Scheduler
// without changing behavior. Both directions (subscribing in, emitting out)
// are the identity function.
func IdentityOneWorker[T any](_ Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return source
	}
}

// SynchronizeOneWorker forces every notification delivered to the downstream
// observer through a single worker drawn from sched, protected by a
// per-subscription mutex. Unlike ObserveOnScheduler, it schedules only the
// delivery of each notification directly (no intermediate unbounded queue):
// a slow downstream applies backpressure straight through to sched.
func SynchronizeOneWorker[T any](sched Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex

			deliver := func(run func()) {
				sched.Schedule(func(func(Action)) {
					mu.Lock()
					defer mu.Unlock()

					run()
				})
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						deliver(func() { destination.NextWithContext(ctx, value) })
					},
					func(ctx context.Context, err error) {
						deliver(func() { destination.ErrorWithContext(ctx, err) })
					},
					func(ctx context.Context) {
						deliver(func() { destination.CompleteWithContext(ctx) })
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// SerializeOneWorker is SynchronizeOneWorker without the forced thread
// switch: concurrent producers are still totally ordered by a per-
// subscription mutex, but delivery happens synchronously on whichever
// goroutine produced the notification.
func SerializeOneWorker[T any](_ Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						defer mu.Unlock()
						destination.NextWithContext(ctx, value)
					},
					func(ctx context.Context, err error) {
						mu.Lock()
						defer mu.Unlock()
						destination.ErrorWithContext(ctx, err)
					},
					func(ctx context.Context) {
						mu.Lock()
						defer mu.Unlock()
						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// ObserveOnScheduler schedules each downstream notification onto sched,
// buffering an unbounded FIFO queue between the source and sched's worker.
// Unsubscribing drains the queue without delivering whatever is left in it.
func ObserveOnScheduler[T any](sched Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			type queued struct {
				ctx context.Context
				n   Notification[T]
			}

			var (
				mu      sync.Mutex
				pending []queued
				draining bool
				closed  bool
			)

			var drain func()
			drain = func() {
				mu.Lock()
				if len(pending) == 0 || closed {
					draining = false
					mu.Unlock()

					return
				}

				item := pending[0]
				pending = pending[1:]
				mu.Unlock()

				sched.Schedule(func(func(Action)) {
					mu.Lock()
					isClosed := closed
					mu.Unlock()

					if !isClosed {
						processNotificationWithObserverAndContext(item.ctx, item.n, destination)
					}

					drain()
				})
			}

			enqueue := func(ctx context.Context, n Notification[T]) {
				mu.Lock()
				defer mu.Unlock()

				if closed {
					return
				}

				pending = append(pending, queued{ctx: ctx, n: n})

				if !draining {
					draining = true

					go drain()
				}
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) { enqueue(ctx, NewNotificationNext(value)) },
					func(ctx context.Context, err error) { enqueue(ctx, NewNotificationError[T](err)) },
					func(ctx context.Context) { enqueue(ctx, NewNotificationComplete[T]()) },
				),
			)

			return func() {
				sub.Unsubscribe()

				mu.Lock()
				closed = true
				pending = nil
				mu.Unlock()
			}
		})
	}
}

// SubscribeOnScheduler schedules the act of subscribing to source onto
// sched; the Subscription returned to the caller is itself the scheduled
// subscription, so unsubscribing before the scheduled subscribe runs cancels
// it outright.
func SubscribeOnScheduler[T any](sched Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			inner := NewSubscription(nil)

			scheduled := sched.Schedule(func(func(Action)) {
				inner.AddUnsubscribable(source.SubscribeWithContext(subscriberCtx, destination))
			})

			return func() {
				scheduled.Unsubscribe()
				inner.Unsubscribe()
			}
		})
	}
}
