// SPDX-License-Identifier: Apache-2.0
/*
 * civtime: civil time conversion for Unix epochs
 * Copyright (C) 2026 The civtime Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package funchelpers makes deferred cleanup functions that return errors
// (most notably Close) propagate their error into a named return value
// instead of dropping it.
package funchelpers

import (
	"io"

	"github.com/civtime/civtime/internal/assert"
)

// VerifyError runs fn and, if fn fails and *Err is still nil, stores fn's
// error in *Err. It is intended to be deferred with a named return value:
//
//	func write(path string) (Err error) {
//		fh, err := os.Create(path)
//		if err != nil {
//			return err
//		}
//		defer funchelpers.VerifyError(&Err, fh.Close)
//		...
//	}
func VerifyError(Err *error, fn func() error) {
	assert.Assertf(Err != nil, "VerifyError must be given a non-nil error slot")
	if err := fn(); err != nil && *Err == nil {
		*Err = err
	}
}

// VerifyClose is shorthand for VerifyError(Err, closer.Close).
func VerifyClose(Err *error, closer io.Closer) {
	VerifyError(Err, closer.Close)
}
