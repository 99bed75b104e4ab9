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

// Package civtime converts between Unix epoch instants and broken-down
// calendar time, in UTC and in the host-configured local time zone. The
// calendar math itself is delegated to the host calendar facility (the Go
// time package and its tzdata); this package pins down the field conventions
// (zero-based months, years since 1900, Sunday-based weekdays, east-positive
// UTC offsets) and the failure semantics at the API boundary.
//
// All conversions are pure functions that are safe to call concurrently. The
// library never logs and has no I/O of its own beyond reading the process's
// TZ environment variable to resolve the local zone.
package civtime

import (
	"github.com/blang/semver/v4"
)

// Version is the version of the civtime library and the civtime tool.
const Version = "0.1.0+dev"

// FullVersion returns the canonical rendering of Version, and panics if
// Version is not a well-formed semantic version (which would be a build
// configuration bug, not a runtime condition).
func FullVersion() string {
	return semver.MustParse(Version).String()
}
