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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSwitchAll(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 500*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Of(
				RangeWithInterval(0, 5, 30*time.Millisecond),
				RangeWithInterval(10, 13, 30*time.Millisecond),
			),
			SwitchAll[int64](),
		),
	)
	is.Equal([]int64{10, 11, 12}, values)
	is.NoError(err)
}

func TestSwitchAllEmpty(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Empty[Observable[int64]](),
			SwitchAll[int64](),
		),
	)
	is.Equal([]int64{}, values)
	is.NoError(err)
}

func TestSwitchMap(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 1000*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			RangeWithInterval(0, 3, 40*time.Millisecond),
			SwitchMap(func(n int64) Observable[int64] {
				return Pipe1(Of(n*10), Delay[int64](100*time.Millisecond))
			}),
		),
	)
	// Each new outer emission cancels the previous (still-delayed) inner, so
	// only the last inner observable ever gets to emit.
	is.Equal([]int64{20}, values)
	is.NoError(err)
}

func TestSwitchAllUnsubscribeTearsDownActiveInner(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var innerTornDown bool

	inner := NewObservableWithContext(func(_ context.Context, _ Observer[int64]) Teardown {
		return func() {
			innerTornDown = true
		}
	})

	outer := NewSubject[Observable[int64]]()

	sub := Pipe1(
		outer.AsObservable(),
		SwitchAll[int64](),
	).Subscribe(NewObserver(
		func(int64) {},
		func(error) {},
		func() {},
	))

	outer.Next(inner)

	is.False(innerTornDown)

	sub.Unsubscribe()
	is.True(innerTornDown)
}

func TestSwitchAllPropagatesInnerError(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	values, err := Collect(
		Pipe1(
			Just[Observable[int64]](Throw[int64](assert.AnError)),
			SwitchAll[int64](),
		),
	)
	is.Equal([]int64{}, values)
	is.EqualError(err, assert.AnError.Error())
}
