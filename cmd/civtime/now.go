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
	"fmt"

	"github.com/urfave/cli"

	"github.com/civtime/civtime"
)

var nowCommand = cli.Command{
	Name:  "now",
	Usage: "reads the realtime clock and prints it as an epoch instant",
	Description: `Prints the current reading of the realtime clock as
"<seconds> <nanoseconds>". With --decode the instant is additionally decoded
to calendar time (in UTC, or with --local in the host local time zone).`,

	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "decode",
			Usage: "also decode the instant to calendar time",
		},
		cli.BoolFlag{
			Name:  "local",
			Usage: "decode in the host local time zone instead of UTC (implies --decode)",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "output the result as a JSON encoded blob",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "write the result to a file instead of stdout",
		},
	},

	Action: now,
}

type nowJSON struct {
	Instant  instantJSON   `json:"instant"`
	Calendar *calendarJSON `json:"calendar,omitempty"`
}

func now(ctx *cli.Context) (Err error) {
	instant := civtime.Now()

	out := nowJSON{
		Instant: instantJSON{Seconds: instant.Seconds, Nanoseconds: instant.Nanoseconds},
	}
	human := fmt.Sprintf("%d %d", instant.Seconds, instant.Nanoseconds)

	if ctx.Bool("decode") || ctx.Bool("local") {
		var ct civtime.CalendarTime
		if ctx.Bool("local") {
			var err error
			ct, err = civtime.DecodeLocal(instant)
			if err != nil {
				return fmt.Errorf("decode local: %w", err)
			}
		} else {
			ct = civtime.DecodeUTC(instant)
		}
		calendar := toCalendarJSON(ct)
		out.Calendar = &calendar
		human = fmt.Sprintf("%s (%s)", human, ct)
	}

	w, cleanup, err := outputWriter(ctx)
	if err != nil {
		return err
	}
	defer cleanup(&Err)

	return emit(w, ctx, out, human)
}
