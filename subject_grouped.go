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

import "context"

// GroupedObservable is an Observable of T carrying an immutable Key of type K.
// It is produced by GroupBy: the outer Observable emits one GroupedObservable
// per distinct key, in first-seen order.
type GroupedObservable[T any, K comparable] interface {
	Observable[T]

	// Key returns the key this group was created for. It never changes.
	Key() K
}

// GroupedSubject is a plain (publish) Subject augmented with an immutable key.
// It is both the private sink fed by GroupBy and the public GroupedObservable
// handed downstream.
type GroupedSubject[T any, K comparable] interface {
	Subject[T]
	GroupedObservable[T, K]
}

var _ GroupedSubject[int, string] = (*groupedSubjectImpl[int, string])(nil)

// NewGroupedSubject creates a GroupedSubject for the given key. It multicasts
// like a plain PublishSubject: values observed before a downstream subscribes
// are not replayed to it.
func NewGroupedSubject[T any, K comparable](key K) GroupedSubject[T, K] {
	return &groupedSubjectImpl[T, K]{
		Subject: NewPublishSubject[T](),
		key:     key,
	}
}

type groupedSubjectImpl[T any, K comparable] struct {
	Subject[T]
	key K
}

func (g *groupedSubjectImpl[T, K]) Key() K {
	return g.key
}

func (g *groupedSubjectImpl[T, K]) Subscribe(destination Observer[T]) Subscription {
	return g.Subject.Subscribe(destination)
}

func (g *groupedSubjectImpl[T, K]) SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription {
	return g.Subject.SubscribeWithContext(ctx, destination)
}

func (g *groupedSubjectImpl[T, K]) AsObservable() Observable[T] {
	return g
}

func (g *groupedSubjectImpl[T, K]) AsObserver() Observer[T] {
	return g
}
