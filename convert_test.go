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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// losAngeles is the zone used by all DST-sensitive tests. Its 2021 spring
// transition was 2021-03-14T02:00:00 standard time (10:00:00 UTC), jumping
// to 03:00:00 -0700; the fall transition was 2021-11-07T02:00:00 -0700
// (09:00:00 UTC), falling back to 01:00:00 -0800.
const losAngeles = "America/Los_Angeles"

const (
	pstOffset = -8 * 60 * 60
	pdtOffset = -7 * 60 * 60
)

func TestDecodeUTC(t *testing.T) {
	for _, test := range []struct {
		name    string
		seconds int64
		want    CalendarTime
	}{
		{"Epoch", 0, CalendarTime{
			Year: 70, Month: 0, DayOfMonth: 1,
			Weekday: 4, DayOfYear: 0,
		}},
		{"Y2K", 946684800, CalendarTime{
			Year: 100, Month: 0, DayOfMonth: 1,
			Weekday: 6, DayOfYear: 0,
		}},
		{"DayBeforeEpoch", -86400, CalendarTime{
			Year: 69, Month: 11, DayOfMonth: 31,
			Weekday: 3, DayOfYear: 364,
		}},
		{"1234567890", 1234567890, CalendarTime{
			Hour: 23, Minute: 31, Second: 30,
			Year: 109, Month: 1, DayOfMonth: 13,
			Weekday: 5, DayOfYear: 43,
		}},
		{"Year2038Rollover", 1 << 31, CalendarTime{
			Hour: 3, Minute: 14, Second: 8,
			Year: 138, Month: 0, DayOfMonth: 19,
			Weekday: 2, DayOfYear: 18,
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := DecodeUTC(Instant{Seconds: test.seconds})
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecodeUTCZeroOffset(t *testing.T) {
	for _, seconds := range []int64{0, 1, -1, 946684800, -2208988800, 253402300799} {
		ct := DecodeUTC(Instant{Seconds: seconds})
		assert.Zero(t, ct.UTCOffsetSeconds, "UTC decode must report a zero offset")
		assert.Zero(t, ct.IsDST, "DST carries no meaning for the UTC calendar")
	}
}

func TestNanosecondPassThrough(t *testing.T) {
	for _, nsec := range []int32{0, 1, 123456789, 999999999} {
		in := Instant{Seconds: 946684800, Nanoseconds: nsec}
		ct := DecodeUTC(in)
		assert.Equal(t, nsec, ct.Nanosecond, "decode must carry the fraction through verbatim")

		out := EncodeUTC(ct)
		assert.Equal(t, nsec, out.Nanoseconds, "encode must carry the fraction through verbatim")
	}
}

func TestRoundTripUTC(t *testing.T) {
	seconds := []int64{
		0, 1, -1,
		86399, -86400,
		946684800, 1234567890,
		1<<31 - 1, 1 << 31, // either side of the 32-bit time_t limit
		-2208988800,  // 1900-01-01
		253402300799, // 9999-12-31T23:59:59
	}
	for _, sec := range seconds {
		in := Instant{Seconds: sec, Nanoseconds: 42}
		out := EncodeUTC(DecodeUTC(in))
		assert.Equal(t, in, out, "EncodeUTC(DecodeUTC(i)) must be the identity for %d", sec)
	}
}

func TestEncodeUTCIgnoresDerivedFields(t *testing.T) {
	ct := DecodeUTC(Instant{Seconds: 946684800})

	// Garbage in the derived and advisory fields must not change the result.
	ct.Weekday = 2
	ct.DayOfYear = 300
	ct.IsDST = 1
	ct.UTCOffsetSeconds = -12345
	assert.Equal(t, Instant{Seconds: 946684800}, EncodeUTC(ct))
}

func TestEncodeUTCNormalization(t *testing.T) {
	for _, test := range []struct {
		name string
		ct   CalendarTime
		want int64
	}{
		// Month 12 carries into January of the next year.
		{"MonthCarry", CalendarTime{Year: 100, Month: 12, DayOfMonth: 1}, 978307200},
		// Day 0 borrows from the previous month.
		{"DayBorrow", CalendarTime{Year: 100, Month: 0, DayOfMonth: 0}, 946598400},
		// The leap second placeholder lands on the following second.
		{"LeapSecond", CalendarTime{
			Year: 98, Month: 11, DayOfMonth: 31, Hour: 23, Minute: 59, Second: 60,
		}, 915148800},
		// Negative minutes borrow from the hour.
		{"MinuteBorrow", CalendarTime{
			Year: 100, Month: 0, DayOfMonth: 1, Hour: 1, Minute: -1,
		}, 946684800 + 59*60},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := EncodeUTC(test.ct)
			assert.Equal(t, Instant{Seconds: test.want}, got)
		})
	}
}

func TestDecodeLocal(t *testing.T) {
	t.Setenv("TZ", losAngeles)

	// 2000-01-01T00:00:00Z is 1999-12-31T16:00:00 -0800.
	ct, err := DecodeLocal(Instant{Seconds: 946684800, Nanoseconds: 7})
	require.NoError(t, err)

	assert.Equal(t, CalendarTime{
		Hour: 16,
		Year: 99, Month: 11, DayOfMonth: 31,
		Weekday: 5, DayOfYear: 364,
		IsDST: 0, UTCOffsetSeconds: pstOffset,
		Nanosecond: 7,
	}, ct)
}

func TestDecodeLocalDSTBoundary(t *testing.T) {
	t.Setenv("TZ", losAngeles)

	transition := time.Date(2021, time.March, 14, 10, 0, 0, 0, time.UTC).Unix()

	before, err := DecodeLocal(Instant{Seconds: transition - 1})
	require.NoError(t, err)
	assert.Zero(t, before.IsDST, "one second before spring-forward should be standard time")
	assert.Equal(t, pstOffset, before.UTCOffsetSeconds)
	assert.Equal(t, 1, before.Hour)
	assert.Equal(t, 59, before.Minute)
	assert.Equal(t, 59, before.Second)

	after, err := DecodeLocal(Instant{Seconds: transition + 1})
	require.NoError(t, err)
	assert.Positive(t, after.IsDST, "one second after spring-forward should be DST")
	assert.Equal(t, pdtOffset, after.UTCOffsetSeconds)
	assert.Equal(t, 3, after.Hour)
	assert.Equal(t, 0, after.Minute)
	assert.Equal(t, 1, after.Second)
}

func TestRoundTripLocal(t *testing.T) {
	t.Setenv("TZ", losAngeles)

	for _, sec := range []int64{0, 946684800, 1234567890, -86400} {
		in := Instant{Seconds: sec, Nanoseconds: 99}
		ct, err := DecodeLocal(in)
		require.NoError(t, err)

		out, err := EncodeLocal(ct)
		require.NoError(t, err)
		assert.Equal(t, in, out, "EncodeLocal(DecodeLocal(i)) must be the identity for %d", sec)
	}
}

func TestEncodeLocalSpringForwardGap(t *testing.T) {
	t.Setenv("TZ", losAngeles)

	// 02:30 on 2021-03-14 does not exist in Los Angeles; the host calendar
	// facility resolves the gap by carrying the missing hour forward, so
	// these fields encode to 03:30 -0700.
	in := CalendarTime{Year: 121, Month: 2, DayOfMonth: 14, Hour: 2, Minute: 30}

	got, err := EncodeLocal(in)
	require.NoError(t, err)

	again, err := EncodeLocal(in)
	require.NoError(t, err)
	assert.Equal(t, got, again, "gap resolution must be deterministic")

	back, err := DecodeLocal(got)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Hour)
	assert.Equal(t, 30, back.Minute)
	assert.Positive(t, back.IsDST)
	assert.Equal(t, pdtOffset, back.UTCOffsetSeconds)
}

func TestEncodeLocalFallBackOverlap(t *testing.T) {
	t.Setenv("TZ", losAngeles)

	// 01:30 on 2021-11-07 happens twice in Los Angeles (once at -0700, once
	// at -0800). The encode must pick one of the two deterministically; we
	// do not pin which, only that the choice is stable and decodes back to
	// the same wall-clock fields.
	in := CalendarTime{Year: 121, Month: 10, DayOfMonth: 7, Hour: 1, Minute: 30}

	got, err := EncodeLocal(in)
	require.NoError(t, err)

	again, err := EncodeLocal(in)
	require.NoError(t, err)
	assert.Equal(t, got, again, "overlap resolution must be deterministic")

	back, err := DecodeLocal(got)
	require.NoError(t, err)
	assert.Equal(t, 1, back.Hour)
	assert.Equal(t, 30, back.Minute)
	assert.Contains(t, []int{pstOffset, pdtOffset}, back.UTCOffsetSeconds)
}

func TestLocalUnavailable(t *testing.T) {
	t.Setenv("TZ", "Not/AZone")

	_, err := DecodeLocal(Instant{})
	require.ErrorIs(t, err, ErrLocalTimeUnavailable)

	_, err = EncodeLocal(CalendarTime{Year: 100, Month: 0, DayOfMonth: 1})
	require.ErrorIs(t, err, ErrLocalTimeUnavailable)
}

func TestDecodeUTCClampsNearRangeEnd(t *testing.T) {
	// Seconds values the host facility cannot represent decode as the last
	// representable instant instead of wrapping into the distant past.
	clamped := DecodeUTC(Instant{Seconds: math.MaxInt64})
	limit := DecodeUTC(Instant{Seconds: maxInstantSeconds})
	assert.Equal(t, limit, clamped)

	// Just below the clamp point the conversion still round-trips.
	in := Instant{Seconds: maxInstantSeconds}
	assert.Equal(t, in, EncodeUTC(DecodeUTC(in)))
}

func TestDecodeUTCClampsNearRangeStart(t *testing.T) {
	// Seconds values below the host facility's range decode as the first
	// representable instant instead of wrapping into the distant future.
	clamped := DecodeUTC(Instant{Seconds: math.MinInt64})
	limit := DecodeUTC(Instant{Seconds: minInstantSeconds})
	assert.Equal(t, limit, clamped)
	assert.Equal(t, limit, DecodeUTC(Instant{Seconds: minInstantSeconds - 1}))

	// A pre-epoch instant must never decode to a post-epoch year.
	assert.Negative(t, limit.Year+1900)

	// At the clamp point the conversion still round-trips.
	in := Instant{Seconds: minInstantSeconds}
	assert.Equal(t, in, EncodeUTC(DecodeUTC(in)))
}

func TestConversionsArePure(t *testing.T) {
	// Decoding must never mutate shared state: repeated and interleaved
	// calls over the same inputs always produce identical snapshots.
	in := Instant{Seconds: 1234567890, Nanoseconds: 5}
	first := DecodeUTC(in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DecodeUTC(in))
	}
}
