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
	"fmt"
	"math"
	"time"
)

// The host calendar facility counts seconds from year 1 rather than from the
// Unix epoch, so instants close enough to either int64 extreme would overflow
// its internal representation and silently wrap. Decoding clamps to the
// nearest cleanly representable instant instead. The bounds are asymmetric
// because the facility's absolute count is itself offset from the Unix epoch.
const (
	maxInstantSeconds = math.MaxInt64 - 62135596800
	minInstantSeconds = math.MinInt64 + 8113015808
)

// Exposed errors.
var (
	// ErrLocalTimeUnavailable is returned when the host-configured local
	// time zone cannot be resolved (for example, the TZ environment
	// variable names a zone the host's tzdata does not know about).
	ErrLocalTimeUnavailable = fmt.Errorf("local time unavailable")

	// ErrInvalidField is returned by CalendarTime.ValidateFields when a
	// calendar field lies outside its documented range.
	ErrInvalidField = fmt.Errorf("invalid calendar field")
)

// DecodeUTC converts an Instant to calendar fields in UTC. It is total: the
// host calendar facility used here has no year-2038-style limit, and the few
// seconds values too close to either int64 extreme for it to represent
// (within about two millennia of the top of the range and about 257 years of
// the bottom) are clamped to the nearest representable instant rather than
// wrapping. UTCOffsetSeconds is always 0
// and IsDST carries no meaning for the UTC calendar; the nanosecond fraction
// is copied from the input unchanged.
func DecodeUTC(i Instant) CalendarTime {
	return decode(i, time.UTC)
}

// DecodeLocal converts an Instant to calendar fields in the host-configured
// local time zone, applying whatever seasonal (DST) adjustment was in effect
// at that instant. UTCOffsetSeconds reports the signed offset actually
// applied (east-positive) and IsDST whether DST was in effect. It fails with
// an error matching ErrLocalTimeUnavailable when the local zone cannot be
// resolved; it never returns a zeroed record alongside an error.
func DecodeLocal(i Instant) (CalendarTime, error) {
	loc, err := localLocation()
	if err != nil {
		return CalendarTime{}, err
	}
	return decode(i, loc), nil
}

// EncodeUTC is the inverse of DecodeUTC: it interprets the broken-down
// fields as UTC and returns the corresponding Instant. The derived and
// advisory fields (Weekday, DayOfYear, IsDST, UTCOffsetSeconds) are ignored,
// and the Nanosecond field is carried into the result unchanged.
//
// Out-of-range fields are normalized with conventional calendar carry:
// month 12 rolls into January of the following year, day 0 into the last day
// of the previous month, second 60 into the next minute, and so on. Callers
// that want rejection instead should run ValidateFields first.
func EncodeUTC(ct CalendarTime) Instant {
	return encode(ct, time.UTC)
}

// EncodeLocal is like EncodeUTC but interprets the fields in the
// host-configured local time zone. It fails with an error matching
// ErrLocalTimeUnavailable when the local zone cannot be resolved.
//
// For local times made ambiguous or nonexistent by a DST transition, the
// resolution is whichever instant the host calendar facility
// deterministically picks for those fields; the IsDST hint in the input is
// ignored. Around a spring-forward gap this means the encoded instant lands
// on the other side of the transition rather than failing.
func EncodeLocal(ct CalendarTime) (Instant, error) {
	loc, err := localLocation()
	if err != nil {
		return Instant{}, err
	}
	return encode(ct, loc), nil
}

func decode(i Instant, loc *time.Location) CalendarTime {
	seconds := i.Seconds
	if seconds > maxInstantSeconds {
		seconds = maxInstantSeconds
	} else if seconds < minInstantSeconds {
		seconds = minInstantSeconds
	}
	t := time.Unix(seconds, 0).In(loc)
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	_, offset := t.Zone()

	isDST := 0
	if t.IsDST() {
		isDST = 1
	}
	return CalendarTime{
		Second:           second,
		Minute:           minute,
		Hour:             hour,
		DayOfMonth:       day,
		Month:            int(month) - 1,
		Year:             year - 1900,
		Weekday:          int(t.Weekday()),
		DayOfYear:        t.YearDay() - 1,
		IsDST:            isDST,
		UTCOffsetSeconds: offset,
		Nanosecond:       i.Nanoseconds,
	}
}

func encode(ct CalendarTime, loc *time.Location) Instant {
	t := time.Date(ct.Year+1900, time.Month(ct.Month+1), ct.DayOfMonth,
		ct.Hour, ct.Minute, ct.Second, 0, loc)
	return Instant{Seconds: t.Unix(), Nanoseconds: ct.Nanosecond}
}
