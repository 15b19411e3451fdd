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
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/flowcore/rx/internal/xerrors"
)

// @TODO: custom error type ?
func recoverValueToError(e any) error {
	if err, ok := e.(error); ok {
		return err
	}

	return fmt.Errorf("unexpected error: %v", e)
}

func recoverUnhandledError(cb func()) {
	lo.TryCatchWithErrorValue(
		func() error {
			cb()
			return nil
		},
		func(e any) {
			err := recoverValueToError(e)
			OnUnhandledError(context.TODO(), err)
		},
	)
}

var (
	//nolint:revive
	ErrRangeWithStepWrongStep                       = errors.New("rx.RangeWithStep: step must be greater than 0")
	ErrRangeWithStepAndIntervalWrongStep            = errors.New("rx.RangeWithStepAndInterval: step must be greater than 0")
	ErrFirstEmpty                                   = errors.New("rx.First: empty")
	ErrLastEmpty                                    = errors.New("rx.Last: empty")
	ErrHeadEmpty                                    = errors.New("rx.Head: empty")
	ErrTailEmpty                                    = errors.New("rx.Tail: empty")
	ErrTakeWrongCount                               = errors.New("rx.Take: count must be greater or equal to 0")
	ErrTakeLastWrongCount                           = errors.New("rx.TakeLast: count must be greater or equal to 0")
	ErrSkipWrongCount                               = errors.New("rx.Skip: count must be greater or equal to 0")
	ErrSkipLastWrongCount                           = errors.New("rx.SkipLast: count must be greater than 0")
	ErrElementAtWrongNth                            = errors.New("rx.ElementAt: nth must be greater or equal to 0")
	ErrElementAtNotFound                            = errors.New("rx.ElementAt: nth element not found")
	ErrElementAtOrDefaultWrongNth                   = errors.New("rx.ElementAtOrDefault: nth must be greater or equal to 0")
	ErrRepeatWrongCount                             = errors.New("rx.Repeat: count must be greater or equal to 0")
	ErrRepeatWithIntervalWrongCount                 = errors.New("rx.RepeatWithInterval: count must be greater or equal to 0")
	ErrRepeatWithWrongCount                         = errors.New("rx.RepeatWith: count must be greater or equal to 0")
	ErrBufferWithCountWrongSize                     = errors.New("rx.BufferWithCount: size must be greater than 0")
	ErrBufferWithTimeWrongDuration                  = errors.New("rx.BufferWithTime: duration must be greater than 0")
	ErrBufferWithTimeOrCountWrongSize               = errors.New("rx.BufferWithTimeOrCount: size must be greater than 0")
	ErrBufferWithTimeOrCountWrongDuration           = errors.New("rx.BufferWithTimeOrCount: duration must be greater than 0")
	ErrClampLowerLessThanUpper                      = errors.New("rx.Clamp: lower must be less than or equal to upper")
	ErrToChannelWrongSize                           = errors.New("rx.ErrToChannelWrongSize: size must be greater or equal to 0")
	ErrPoolWrongSize                                = errors.New("rx.Pool: size must be greater than 0")
	ErrSubscribeOnWrongBufferSize                   = errors.New("rx.SubscribeOn: buffer size must be greater than 0")
	ErrObserveOnWrongBufferSize                     = errors.New("rx.ObserveOn: buffer size must be greater than 0")
	ErrDetachOnWrongMode                            = errors.New("rx.detachOn: unexpected detach mode")
	ErrUnicastSubjectConcurrent                     = errors.New("rx.UnicastSubject: a single subscriber accepted")
	ErrConnectableObservableMissingConnectorFactory = errors.New("rx.ConnectableObservable: missing connector factory")
)

func newUnsubscriptionError(err error) error {
	return &unsubscriptionError{
		err: err,
	}
}

type unsubscriptionError struct {
	err error
}

func (e *unsubscriptionError) Error() string {
	return "rx.Subscription: " + e.err.Error()
}

func (e *unsubscriptionError) Unwrap() error {
	return e.err
}

func newObservableError(err error) error {
	return &observableError{
		err: err,
	}
}

type observableError struct {
	err error
}

func (e *observableError) Error() string {
	return "rx.Observable: " + e.err.Error()
}

func (e *observableError) Unwrap() error {
	return e.err
}

func newObserverError(err error) error {
	return &observerError{
		err: err,
	}
}

type observerError struct {
	err error
}

func (e *observerError) Error() string {
	err := "<nil>"
	if e.err != nil {
		err = e.err.Error()
	}

	return "rx.Observer: " + err
}

func (e *observerError) Unwrap() error {
	return e.err
}

func newTimeoutError(duration time.Duration) error {
	return &timeoutError{
		duration: duration,
	}
}

type timeoutError struct {
	duration time.Duration
}

func (e *timeoutError) Error() string {
	return "rx.Timeout: timeout after " + e.duration.String()
}

func newCastError[T, U any]() error {
	return &castError[T, U]{}
}

type castError[T any, U any] struct{}

func (e *castError[T, U]) Error() string {
	var t T

	var u U

	return fmt.Sprintf("rx.Cast: unable to cast %T to %T", t, u)
}

func newPipeError(msg string, args ...any) error {
	return &pipeError{
		err: fmt.Errorf(msg, args...),
	}
}

type pipeError struct {
	err error
}

func (e *pipeError) Error() string {
	return "rx.Pipe: " + e.err.Error()
}

func (e *pipeError) Unwrap() error {
	return e.err
}

// newCompositeError wraps every non-nil error collected across a set of
// sources that all terminated before the composite was raised, preserving
// the order they arrived in. Used by MergeDelayError and friends, which
// defer reporting errors until every source has had a chance to run.
func newCompositeError(errs []error) error {
	return &compositeError{errs: errs}
}

type compositeError struct {
	errs []error
}

func (e *compositeError) Error() string {
	return "rx.CompositeError: " + xerrors.Join(e.errs...).Error()
}

// Errors returns every collected error, in the order they were observed.
func (e *compositeError) Errors() []error {
	return e.errs
}

func (e *compositeError) Unwrap() []error {
	return e.errs
}
