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
	"errors"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/civtime/civtime"
)

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "converts broken-down calendar time to an epoch instant",
	ArgsUsage: `<year> <month> <day> [hour [minute [second [nanosecond]]]]

Where "<year>" is the absolute year (e.g. 2000), "<month>" is one-based
(1-12) and "<day>" is the day of the month. Omitted clock fields default to
zero. The fields are interpreted as UTC unless --local is given, in which
case they are interpreted in the host-configured local time zone.

Out-of-range fields are normalized with conventional calendar carry (month
13 rolls into the next year); pass --strict to reject them instead.`,

	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "local",
			Usage: "interpret the fields in the host local time zone instead of UTC",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "reject out-of-range fields instead of normalizing them",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "output the instant as a JSON encoded blob",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "write the result to a file instead of stdout",
		},
	},

	Action: encode,
}

func parseCalendarArgs(ctx *cli.Context) (civtime.CalendarTime, error) {
	args := ctx.Args()
	if len(args) < 3 || len(args) > 7 {
		return civtime.CalendarTime{}, errors.New("expected <year> <month> <day> [hour [minute [second [nanosecond]]]] arguments")
	}

	fields := make([]int64, 7)
	names := []string{"year", "month", "day", "hour", "minute", "second", "nanosecond"}
	for idx, name := range names {
		if idx >= len(args) {
			break
		}
		val, err := strconv.ParseInt(args.Get(idx), 10, 64)
		if err != nil {
			return civtime.CalendarTime{}, fmt.Errorf("parsing %s argument %q: %w", name, args.Get(idx), err)
		}
		fields[idx] = val
	}

	return civtime.CalendarTime{
		Year:       int(fields[0]) - 1900,
		Month:      int(fields[1]) - 1,
		DayOfMonth: int(fields[2]),
		Hour:       int(fields[3]),
		Minute:     int(fields[4]),
		Second:     int(fields[5]),
		Nanosecond: int32(fields[6]),
	}, nil
}

func encode(ctx *cli.Context) (Err error) {
	ct, err := parseCalendarArgs(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("strict") {
		if err := ct.ValidateFields(); err != nil {
			return err
		}
	}

	var instant civtime.Instant
	if ctx.Bool("local") {
		instant, err = civtime.EncodeLocal(ct)
		if err != nil {
			return fmt.Errorf("encode local: %w", err)
		}
	} else {
		instant = civtime.EncodeUTC(ct)
	}
	log.Debugf("encoded %s to instant {%d, %d}", ct, instant.Seconds, instant.Nanoseconds)

	w, cleanup, err := outputWriter(ctx)
	if err != nil {
		return err
	}
	defer cleanup(&Err)

	human := fmt.Sprintf("%d %d", instant.Seconds, instant.Nanoseconds)
	return emit(w, ctx, instantJSON{Seconds: instant.Seconds, Nanoseconds: instant.Nanoseconds}, human)
}
