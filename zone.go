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
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches GMT/UTC±h, GMT/UTC±hh:mm and GMT/UTC±hh:mm:ss with hours up to 15,
// case insensitive.
var fixedOffsetZoneRegex = regexp.MustCompile(
	`(?i)^(GMT|UTC)([+-])((((0?\d)|(1[0-5])):([0-5]\d)(:([0-5]\d))?)|(1[0-5])|(0?\d))$`)

// localLocation resolves the host-configured local time zone. The TZ
// environment variable takes precedence: an empty value means UTC, a
// GMT/UTC-relative fixed offset is parsed directly, and anything else is
// treated as an IANA zone name to be looked up in the host's tzdata. With TZ
// unset the Go runtime's notion of the system zone is used. An unresolvable
// TZ value is the LocalTimeUnavailable condition.
//
// The zone is resolved on every call rather than once at startup, so a test
// or caller that changes TZ sees the change immediately. The environment is
// only ever read, never mutated.
func localLocation() (*time.Location, error) {
	tz, ok := os.LookupEnv("TZ")
	if !ok {
		return time.Local, nil
	}
	// POSIX allows the zone name to carry a leading colon.
	tz = strings.TrimPrefix(tz, ":")
	if tz == "" {
		return time.UTC, nil
	}
	if offset, ok := parseFixedOffsetZone(tz); ok {
		return time.FixedZone(tz, offset), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving TZ=%q: %v", ErrLocalTimeUnavailable, tz, err)
	}
	return loc, nil
}

// parseFixedOffsetZone parses fixed-offset zone strings of the forms
// GMT/UTC±h, GMT/UTC±hh:mm and GMT/UTC±hh:mm:ss (case insensitive, hours up
// to 15) and returns the offset in seconds east of UTC. The sign follows the
// POSIX TZ convention, which is inverted relative to ISO 8601: TZ=UTC+5
// names a zone five hours west of Greenwich, so it parses to -18000.
func parseFixedOffsetZone(s string) (offsetSeconds int, ok bool) {
	m := fixedOffsetZoneRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	sign, rest := m[2], m[3]

	var hours, minutes, seconds int64
	parts := strings.Split(rest, ":")
	hours, _ = strconv.ParseInt(parts[0], 10, 64)
	if len(parts) > 1 {
		minutes, _ = strconv.ParseInt(parts[1], 10, 64)
	}
	if len(parts) > 2 {
		seconds, _ = strconv.ParseInt(parts[2], 10, 64)
	}

	offset := int(hours*3600 + minutes*60 + seconds)
	if sign == "+" {
		offset = -offset
	}
	return offset, true
}
