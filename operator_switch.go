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

// SwitchAll flattens a higher-order Observable by always forwarding from the
// most recently emitted inner Observable: each time the outer Observable
// emits, any previous inner subscription is cancelled before subscribing to
// the new one. The result completes once both the outer Observable and the
// current inner Observable have completed.
func SwitchAll[T any]() func(Observable[Observable[T]]) Observable[T] {
	return func(sources Observable[Observable[T]]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex

			outerDone := false
			innerDone := true // no inner subscribed yet counts as "done"
			gen := 0          // incremented every time a new inner observable replaces the current one

			subscriptions := NewSubscription(nil)
			innerSub := NewSerialSubscription()
			subscriptions.AddUnsubscribable(innerSub)

			maybeComplete := func(ctx context.Context) {
				if outerDone && innerDone {
					destination.CompleteWithContext(ctx)
				}
			}

			subscriptions.AddUnsubscribable(
				sources.SubscribeWithContext(
					subscriberCtx,
					NewObserverWithContext(
						func(ctx context.Context, inner Observable[T]) {
							mu.Lock()
							innerDone = false
							gen++
							myGen := gen
							mu.Unlock()

							// Tear down the previous inner subscription before
							// subscribing to the new one.
							innerSub.Set(nil)

							sub := inner.SubscribeWithContext(
								ctx,
								NewObserverWithContext(
									destination.NextWithContext,
									destination.ErrorWithContext,
									func(ctx context.Context) {
										mu.Lock()
										isCurrent := myGen == gen
										if isCurrent {
											innerDone = true
										}
										mu.Unlock()

										if isCurrent {
											maybeComplete(ctx)
										}
									},
								),
							)

							// Store this one as the current inner subscription,
							// so the next outer value or an unsubscribe tears it down.
							innerSub.Set(sub)
						},
						destination.ErrorWithContext,
						func(ctx context.Context) {
							mu.Lock()
							outerDone = true
							mu.Unlock()

							maybeComplete(ctx)
						},
					),
				),
			)

			return subscriptions.Unsubscribe
		})
	}
}

// SwitchMap projects each source value to an Observable via projection and
// flattens the result using SwitchAll semantics: whenever the source emits a
// new value, the previous inner Observable is unsubscribed.
func SwitchMap[T, R any](projection func(item T) Observable[R]) func(Observable[T]) Observable[R] {
	return SwitchMapWithContext(func(ctx context.Context, item T) (context.Context, Observable[R]) {
		return ctx, projection(item)
	})
}

// SwitchMapWithContext is SwitchMap with access to, and the ability to
// propagate, a context.Context across the projection.
func SwitchMapWithContext[T, R any](projection func(ctx context.Context, item T) (context.Context, Observable[R])) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return SwitchAll[R]()(MapWithContext(projection)(source))
	}
}
