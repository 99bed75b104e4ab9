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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/civtime/civtime"
	"github.com/civtime/civtime/internal/funchelpers"
)

// calendarJSON is the JSON shape of a decoded calendar time. The field
// conventions are the library's (zero-based months, years since 1900,
// Sunday-based weekdays, east-positive offsets).
type calendarJSON struct {
	Second           int    `json:"second"`
	Minute           int    `json:"minute"`
	Hour             int    `json:"hour"`
	DayOfMonth       int    `json:"day_of_month"`
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	Weekday          int    `json:"weekday"`
	DayOfYear        int    `json:"day_of_year"`
	IsDST            int    `json:"is_dst"`
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`
	Nanosecond       int32  `json:"nanosecond"`
	Rendered         string `json:"rendered"`
}

func toCalendarJSON(ct civtime.CalendarTime) calendarJSON {
	return calendarJSON{
		Second:           ct.Second,
		Minute:           ct.Minute,
		Hour:             ct.Hour,
		DayOfMonth:       ct.DayOfMonth,
		Month:            ct.Month,
		Year:             ct.Year,
		Weekday:          ct.Weekday,
		DayOfYear:        ct.DayOfYear,
		IsDST:            ct.IsDST,
		UTCOffsetSeconds: ct.UTCOffsetSeconds,
		Nanosecond:       ct.Nanosecond,
		Rendered:         ct.String(),
	}
}

// instantJSON is the JSON shape of an encoded instant.
type instantJSON struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int32 `json:"nanoseconds"`
}

// parseInstantArgs parses the "<seconds> [nanoseconds]" positional argument
// form shared by the decode subcommands.
func parseInstantArgs(ctx *cli.Context) (civtime.Instant, error) {
	args := ctx.Args()
	if len(args) < 1 || len(args) > 2 {
		return civtime.Instant{}, errors.New("expected <seconds> [nanoseconds] arguments")
	}

	seconds, err := strconv.ParseInt(args.Get(0), 10, 64)
	if err != nil {
		return civtime.Instant{}, fmt.Errorf("parsing seconds argument %q: %w", args.Get(0), err)
	}

	var nanoseconds int64
	if len(args) == 2 {
		nanoseconds, err = strconv.ParseInt(args.Get(1), 10, 32)
		if err != nil {
			return civtime.Instant{}, fmt.Errorf("parsing nanoseconds argument %q: %w", args.Get(1), err)
		}
		if nanoseconds < 0 || nanoseconds > 999_999_999 {
			return civtime.Instant{}, errors.New("nanoseconds argument outside [0, 999999999]")
		}
	}
	return civtime.Instant{Seconds: seconds, Nanoseconds: int32(nanoseconds)}, nil
}

// outputWriter opens the file given by --output, or stdout if the flag is
// unset. The returned cleanup must be deferred against a named return value.
func outputWriter(ctx *cli.Context) (io.Writer, func(*error), error) {
	path := ctx.String("output")
	if path == "" {
		return os.Stdout, func(*error) {}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output path: %w", err)
	}
	return fh, func(Err *error) { funchelpers.VerifyClose(Err, fh) }, nil
}

// emit writes v to w, either as a single JSON document (--json) or in the
// default human-readable rendering.
func emit(w io.Writer, ctx *cli.Context, v any, human string) error {
	if ctx.Bool("json") {
		enc := json.NewEncoder(w)
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, human)
	return err
}
