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

package civtime

import (
	"time"

	"github.com/civtime/civtime/internal/sysclock"
)

const nanosPerSecond = 1_000_000_000

// Instant is a point in time, expressed as whole seconds since the Unix
// epoch (1970-01-01T00:00:00 UTC) plus a nanosecond fraction. Seconds may be
// negative for pre-1970 instants. A canonical Instant has Nanoseconds in
// [0, 999999999]; the calendar conversions carry the fraction through
// untouched, so a non-canonical fraction is never silently reinterpreted.
type Instant struct {
	Seconds     int64
	Nanoseconds int32
}

// NewInstant returns the canonical Instant for the given epoch seconds and
// nanosecond fraction. Fractions outside [0, 999999999] are carried into the
// seconds field, so NewInstant(0, -1) is the instant one nanosecond before
// the epoch, represented as {-1, 999999999}.
func NewInstant(seconds, nanoseconds int64) Instant {
	seconds += nanoseconds / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	}
	return Instant{Seconds: seconds, Nanoseconds: int32(nanoseconds)}
}

// Now returns the current time of the realtime clock as an Instant.
func Now() Instant {
	sec, nsec := sysclock.Realtime()
	return NewInstant(sec, int64(nsec))
}

// MonotonicNanoseconds returns a monotonically increasing nanosecond counter
// with an arbitrary zero point. It is only meaningful for measuring
// intervals within a single process; it has no relationship to the epoch.
func MonotonicNanoseconds() uint64 {
	return sysclock.Monotonic()
}

// FromTime converts a time.Time into an Instant, discarding any monotonic
// clock reading and any location information.
func FromTime(t time.Time) Instant {
	return Instant{Seconds: t.Unix(), Nanoseconds: int32(t.Nanosecond())}
}

// Time converts the Instant into a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.Seconds, int64(i.Nanoseconds)).UTC()
}

// Compare returns -1, 0 or +1 depending on whether i is earlier than, the
// same as, or later than o. Both instants are compared in canonical form.
func (i Instant) Compare(o Instant) int {
	a, b := NewInstant(i.Seconds, int64(i.Nanoseconds)), NewInstant(o.Seconds, int64(o.Nanoseconds))
	switch {
	case a.Seconds < b.Seconds:
		return -1
	case a.Seconds > b.Seconds:
		return +1
	case a.Nanoseconds < b.Nanoseconds:
		return -1
	case a.Nanoseconds > b.Nanoseconds:
		return +1
	default:
		return 0
	}
}

// Before reports whether i is strictly earlier than o.
func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }

// After reports whether i is strictly later than o.
func (i Instant) After(o Instant) bool { return i.Compare(o) > 0 }

// Equal reports whether i and o represent the same point in time, even if
// their non-canonical representations differ.
func (i Instant) Equal(o Instant) bool { return i.Compare(o) == 0 }
