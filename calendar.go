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
	"strings"
)

// CalendarTime is the broken-down, human-readable representation of an
// Instant in a specific zone. The field conventions intentionally match the
// classic broken-down-time record: months are zero-based, years are counted
// from 1900, weekdays are zero-based starting from Sunday and the day of the
// year is zero-based.
//
// CalendarTime is a pure snapshot value. Decoding creates a fresh one on
// every call and nothing in this package ever mutates or retains one.
type CalendarTime struct {
	// Second is the second of the minute, in [0, 60]. 60 is the leap
	// second placeholder; encoding it normalizes into the next minute.
	Second int
	// Minute is the minute of the hour, in [0, 59].
	Minute int
	// Hour is the hour of the day, in [0, 23].
	Hour int
	// DayOfMonth is the day of the month, in [1, 31].
	DayOfMonth int
	// Month is the zero-based month of the year, in [0, 11].
	Month int
	// Year is the number of years since 1900. It is signed and may be
	// negative.
	Year int
	// Weekday is the zero-based day of the week, with 0 meaning Sunday.
	// It is derived by decoding and ignored by encoding.
	Weekday int
	// DayOfYear is the zero-based day of the year, in [0, 365]. It is
	// derived by decoding and ignored by encoding.
	DayOfYear int
	// IsDST reports whether Daylight Saving Time was in effect at the
	// decoded instant: positive means DST, zero means no DST, negative
	// means unknown. Encoding ignores it (see EncodeLocal).
	IsDST int
	// UTCOffsetSeconds is the offset east of UTC, in seconds, that was
	// applied when decoding. It is always 0 for the UTC calendar.
	// Encoding ignores it.
	UTCOffsetSeconds int
	// Nanosecond is the fractional part of the source Instant, carried
	// through conversion verbatim.
	Nanosecond int32
}

// String renders the calendar time in RFC 3339 layout with a numeric UTC
// offset ("Z" for zero offset). This is a fixed, locale-independent layout
// intended for diagnostics; it is not a formatting facility.
func (ct CalendarTime) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d",
		ct.Year+1900, ct.Month+1, ct.DayOfMonth, ct.Hour, ct.Minute, ct.Second)
	if ct.Nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", ct.Nanosecond), "0")
		fmt.Fprintf(&b, ".%s", frac)
	}
	if ct.UTCOffsetSeconds == 0 {
		b.WriteString("Z")
	} else {
		offset, sign := ct.UTCOffsetSeconds, "+"
		if offset < 0 {
			offset, sign = -offset, "-"
		}
		fmt.Fprintf(&b, "%s%02d:%02d", sign, offset/3600, offset%3600/60)
	}
	return b.String()
}

// ValidateFields checks that every calendar field of ct lies within its
// documented range, including that DayOfMonth exists in the given month and
// year. The encode operations never require this: they normalize
// out-of-range fields with conventional carry instead (month 12 rolls into
// January of the next year, second 60 into the next minute, and so on).
// ValidateFields is for callers that want to reject such input up front; it
// returns an error matching ErrInvalidField for the first field found out of
// range, and nil if all fields are in range.
//
// Weekday, DayOfYear, IsDST and UTCOffsetSeconds are derived or advisory
// fields that encoding ignores, so they are not checked.
func (ct CalendarTime) ValidateFields() error {
	switch {
	case ct.Second < 0 || ct.Second > 60:
		return fmt.Errorf("%w: second %d outside [0, 60]", ErrInvalidField, ct.Second)
	case ct.Minute < 0 || ct.Minute > 59:
		return fmt.Errorf("%w: minute %d outside [0, 59]", ErrInvalidField, ct.Minute)
	case ct.Hour < 0 || ct.Hour > 23:
		return fmt.Errorf("%w: hour %d outside [0, 23]", ErrInvalidField, ct.Hour)
	case ct.Month < 0 || ct.Month > 11:
		return fmt.Errorf("%w: month %d outside [0, 11]", ErrInvalidField, ct.Month)
	case ct.Nanosecond < 0 || ct.Nanosecond >= nanosPerSecond:
		return fmt.Errorf("%w: nanosecond %d outside [0, 999999999]", ErrInvalidField, ct.Nanosecond)
	}
	if maxDay := daysInMonth(ct.Year+1900, ct.Month); ct.DayOfMonth < 1 || ct.DayOfMonth > maxDay {
		return fmt.Errorf("%w: day %d outside [1, %d] for month %d of year %d",
			ErrInvalidField, ct.DayOfMonth, maxDay, ct.Month, ct.Year+1900)
	}
	return nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the number of days in the given zero-based month of
// the given (absolute) year.
func daysInMonth(year, month int) int {
	switch month {
	case 1: // February
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10: // April, June, September, November
		return 30
	default:
		return 31
	}
}
