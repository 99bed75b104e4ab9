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

// Package assert provides panic helpers for conditions that can only be
// violated by a programming error or a broken host, never by caller input.
package assert

import "fmt"

// Assertf panics with a Printf-formatted message if the predicate is false.
func Assertf(predicate bool, fmtMsg string, args ...any) {
	if !predicate {
		panic(fmt.Sprintf(fmtMsg, args...))
	}
}

// NoError panics with the error as the message if it is non-nil. It is meant
// for operations whose failure no caller could meaningfully handle.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
