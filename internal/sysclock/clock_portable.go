//go:build !(linux || darwin || freebsd || netbsd || openbsd || solaris)

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

package sysclock

import "time"

// The Go runtime's time.Now carries a monotonic reading on every platform,
// so hosts without a clock_gettime syscall wrapper fall back to it for both
// clocks.
var monotonicBase = time.Now()

// Realtime returns the current wall clock reading as whole seconds since the
// Unix epoch plus a nanosecond fraction.
func Realtime() (seconds int64, nanoseconds int32) {
	t := time.Now()
	return t.Unix(), int32(t.Nanosecond())
}

// Monotonic returns a monotonic nanosecond reading with an arbitrary zero
// point; only differences between readings are meaningful.
func Monotonic() uint64 {
	return uint64(time.Since(monotonicBase))
}
