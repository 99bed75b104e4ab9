//go:build linux || darwin || freebsd || netbsd || openbsd || solaris

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

import (
	"golang.org/x/sys/unix"

	"github.com/civtime/civtime/internal/assert"
)

func clockGettime(clockid int32) (sec, nsec int64) {
	var ts unix.Timespec
	err := unix.ClockGettime(clockid, &ts)
	// clock_gettime(2) on a valid clock id cannot fail.
	assert.NoError(err)
	return ts.Unix()
}

// Realtime returns the current CLOCK_REALTIME reading as whole seconds since
// the Unix epoch plus a nanosecond fraction.
func Realtime() (seconds int64, nanoseconds int32) {
	sec, nsec := clockGettime(unix.CLOCK_REALTIME)
	return sec, int32(nsec)
}

// Monotonic returns the current CLOCK_MONOTONIC reading in nanoseconds. The
// zero point is arbitrary; only differences between readings are meaningful.
func Monotonic() uint64 {
	sec, nsec := clockGettime(unix.CLOCK_MONOTONIC)
	return uint64(sec)*1_000_000_000 + uint64(nsec)
}
