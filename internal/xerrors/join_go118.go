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

//go:build !go1.20

package xerrors

import "strings"

// Join provides errors.Join-like behavior for go1.18/go1.19, which predate
// the standard library helper.
func Join(errs ...error) error {
	nonNil := make([]error, 0, len(errs))

	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}

	if len(nonNil) == 0 {
		return nil
	}

	return &joinError{errs: nonNil}
}

type joinError struct {
	errs []error
}

func (e *joinError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "\n")
}

func (e *joinError) Unwrap() []error {
	return e.errs
}
