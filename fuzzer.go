//go:build gofuzz

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
	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// Fuzz checks that EncodeUTC inverts DecodeUTC for arbitrary canonical
// instants, and that decoding always produces in-range calendar fields.
func Fuzz(data []byte) int {
	c := fuzz.NewConsumer(data)

	rawSec, err := c.GetUint64()
	if err != nil {
		return -1
	}
	rawNsec, err := c.GetUint64()
	if err != nil {
		return -1
	}
	instant := Instant{
		Seconds:     int64(rawSec),
		Nanoseconds: int32(rawNsec % 1_000_000_000),
	}
	// Decoding clamps past the representable range, so the round-trip
	// property only holds between the two clamp points.
	if instant.Seconds > maxInstantSeconds {
		instant.Seconds = maxInstantSeconds
	} else if instant.Seconds < minInstantSeconds {
		instant.Seconds = minInstantSeconds
	}

	ct := DecodeUTC(instant)
	if ct.UTCOffsetSeconds != 0 {
		panic("UTC decode produced a non-zero offset")
	}
	if ct.Month < 0 || ct.Month > 11 {
		panic("UTC decode produced an out-of-range month")
	}
	if ct.DayOfMonth < 1 || ct.DayOfMonth > 31 {
		panic("UTC decode produced an out-of-range day")
	}
	if ct.Weekday < 0 || ct.Weekday > 6 {
		panic("UTC decode produced an out-of-range weekday")
	}

	if got := EncodeUTC(ct); !got.Equal(instant) {
		panic("EncodeUTC did not invert DecodeUTC")
	}
	return 1
}
