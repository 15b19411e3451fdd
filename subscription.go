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

	"github.com/samber/lo"
	"github.com/flowcore/rx/internal/xerrors"
)

// Teardown is a function that cleans up resources, such as closing
// a file or a network connection. It is called when the Subscription is closed.
// It is part of a Subscription, and is returned by the Observable creation.
// It will be called only once, when the Subscription is canceled.
type Teardown func()

// Unsubscribable represents any type that can be unsubscribed from.
// It provides a common interface for cancellation operations.
type Unsubscribable interface {
	Unsubscribe()
}

// SubscriptionToken identifies a finalizer previously registered with
// Add/AddUnsubscribable, so it can later be removed with Remove without
// running it. The zero value never matches a registered finalizer.
type SubscriptionToken uint64

// Subscription represents an ongoing execution of an `Observable`, and has
// a minimal API which allows you to cancel that execution.
type Subscription interface {
	Unsubscribable

	Add(teardown Teardown) SubscriptionToken
	AddUnsubscribable(unsubscribable Unsubscribable) SubscriptionToken
	Remove(token SubscriptionToken)
	IsClosed() bool
	Wait() // Note: using .Wait() is not recommended.
}

var _ Subscription = (*subscriptionImpl)(nil)

// NewSubscription creates a new Subscription. When `teardown` is nil, nothing
// is added. When the subscription is already disposed, the `teardown` callback
// is triggered immediately.
func NewSubscription(teardown Teardown) Subscription {
	s := &subscriptionImpl{
		done:       false,
		mu:         sync.Mutex{},
		finalizers: make([]finalizerEntry, 0, 4), // Pre-allocate for common case
	}

	if teardown != nil {
		s.Add(teardown)
	}

	return s
}

// finalizerEntry pairs a registered teardown with the token Remove uses to
// find it again. Go gives no way to compare function values, so removal by
// token (rather than by the func itself) is the only option.
type finalizerEntry struct {
	token SubscriptionToken
	fn    func()
}

type subscriptionImpl struct {
	done       bool
	mu         sync.Mutex // Should be a RWMutex because of the .IsClosed() method, but sync.RWMutex is 30% slower.
	nextToken  uint64
	finalizers []finalizerEntry
}

// Add receives a finalizer to execute upon unsubscription. When `teardown`
// is nil, nothing is added. When the subscription is already disposed, the `teardown`
// callback is triggered immediately. The returned token may be passed to
// Remove to cancel the registration before it ever runs.
//
// This method is thread-safe.
//
// Implements Subscription.
func (s *subscriptionImpl) Add(teardown Teardown) SubscriptionToken {
	if teardown == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		teardown() // not protected against panics

		return 0
	}

	s.nextToken++
	token := SubscriptionToken(s.nextToken)
	s.finalizers = append(s.finalizers, finalizerEntry{token: token, fn: teardown})

	return token
}

// AddUnsubscribable merges multiple subscriptions into one. The method does nothing
// if `unsubscribable` is nil.
//
// This method is thread-safe.
//
// Implements Subscription.
func (s *subscriptionImpl) AddUnsubscribable(unsubscribable Unsubscribable) SubscriptionToken {
	if unsubscribable == nil {
		return 0
	}

	return s.Add(unsubscribable.Unsubscribe)
}

// Remove cancels a finalizer previously registered by Add/AddUnsubscribable,
// identified by the token Add returned, without running it. Removing an
// unknown or already-fired token is a no-op.
//
// This method is thread-safe.
//
// Implements Subscription.
func (s *subscriptionImpl) Remove(token SubscriptionToken) {
	if token == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.finalizers {
		if s.finalizers[i].token == token {
			s.finalizers = append(s.finalizers[:i], s.finalizers[i+1:]...)
			return
		}
	}
}

// Unsubscribe disposes the resources held by the subscription. May, for
// instance, cancel an ongoing `Observable` execution or cancel any other
// type of work that started when the `Subscription` was created.
//
// This method is thread-safe. Finalizers are executed in sequence.
//
// Implements Unsuscribable.
func (s *subscriptionImpl) Unsubscribe() {
	s.mu.Lock()

	if s.done {
		s.mu.Unlock()
		return
	}

	s.done = true

	if len(s.finalizers) == 0 {
		s.mu.Unlock()
		return
	}

	finalizers := s.finalizers
	s.finalizers = nil
	s.mu.Unlock()

	var errs []error

	// Note: we prefer not running this in parallel.
	for i := range finalizers {
		err := execFinalizer(finalizers[i].fn) // protected against panics
		if err != nil {
			// OnUnhandledError(err)
			errs = append(errs, err)
		}
	}

	// Error is triggered after the recursive call to finalizers
	// because we want to execute all finalizers before panicking.
	if len(errs) > 0 {
		// errors.Join has been introduced in go 1.20
		panic(xerrors.Join(errs...))
	}
}

// IsClosed returns true if the subscription has been disposed
// or if unsubscription is in progress.
//
// Implements Subscription.
func (s *subscriptionImpl) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// Wait blocks until a `Subscription` is canceled. It can be used for
// blocking until an `Observable` throws an error or completes.
//
// Please use it carefully. Calling this method is against the Reactive
// Programming Manifesto. This method might be deleted in the future.
//
// Note: using .Wait() is not recommended.
//
// Implements Subscription.
func (s *subscriptionImpl) Wait() {
	ch := make(chan struct{}, 1)

	// There is no guarantee that this callback will be the last finalizer
	// added to this subscription.
	s.Add(func() {
		ch <- struct{}{}
	})

	<-ch
	close(ch)
}

// execFinalizer runs the finalizer and catches any panics, converting them to errors.
func execFinalizer(finalizer func()) (err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			finalizer()

			err = nil

			return nil
		},
		func(e any) {
			err = newUnsubscriptionError(recoverValueToError(e))
		},
	)

	return err
}

var _ SerialSubscription = (*serialSubscriptionImpl)(nil)

// SerialSubscription is a Subscription that holds at most one "current"
// Unsubscribable at a time. Calling Set atomically swaps in the new value
// and unsubscribes whatever was previously held, which is the discipline
// operators like SwitchAll need for their active inner subscription: each
// new inner replaces, and tears down, the one before it.
type SerialSubscription interface {
	Subscription

	// Set unsubscribes the value currently held by the cell, if any, and
	// stores unsubscribable as the new current value. If the
	// SerialSubscription itself has already been unsubscribed,
	// unsubscribable is unsubscribed immediately instead of being stored.
	// Passing nil simply clears the cell, unsubscribing whatever it held.
	Set(unsubscribable Unsubscribable)
}

// NewSerialSubscription creates an empty SerialSubscription.
func NewSerialSubscription() SerialSubscription {
	return &serialSubscriptionImpl{
		subscriptionImpl: NewSubscription(nil).(*subscriptionImpl), //nolint:forcetypeassert
	}
}

type serialSubscriptionImpl struct {
	*subscriptionImpl

	cellMu  sync.Mutex
	current Unsubscribable
	token   SubscriptionToken
}

// Implements SerialSubscription.
func (s *serialSubscriptionImpl) Set(unsubscribable Unsubscribable) {
	s.cellMu.Lock()

	previous := s.current
	if s.token != 0 {
		s.subscriptionImpl.Remove(s.token)
		s.token = 0
	}

	s.current = unsubscribable

	closed := s.subscriptionImpl.IsClosed()
	if !closed && unsubscribable != nil {
		s.token = s.subscriptionImpl.AddUnsubscribable(unsubscribable)
	}

	s.cellMu.Unlock()

	// The previous occupant is always torn down here: whether it is being
	// replaced or the cell is closing, it must not keep running. Unsubscribe
	// is idempotent, so this never double-fires in a way that matters.
	if previous != nil {
		previous.Unsubscribe()
	}

	if closed && unsubscribable != nil {
		unsubscribable.Unsubscribe()
	}
}
