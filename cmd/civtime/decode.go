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

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/civtime/civtime"
)

var decodeCommand = cli.Command{
	Name:  "decode",
	Usage: "converts an epoch instant to broken-down calendar time",
	ArgsUsage: `<seconds> [nanoseconds]

Where "<seconds>" is a signed count of seconds since the Unix epoch
(1970-01-01T00:00:00 UTC) and "[nanoseconds]" is an optional fraction in
[0, 999999999]. The default calendar is UTC; pass --local to decode in the
host-configured local time zone instead.`,

	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "local",
			Usage: "decode in the host local time zone instead of UTC",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "output the calendar fields as a JSON encoded blob",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "write the result to a file instead of stdout",
		},
	},

	Action: decode,
}

func decode(ctx *cli.Context) (Err error) {
	instant, err := parseInstantArgs(ctx)
	if err != nil {
		return err
	}

	var ct civtime.CalendarTime
	if ctx.Bool("local") {
		ct, err = civtime.DecodeLocal(instant)
		if err != nil {
			return fmt.Errorf("decode local: %w", err)
		}
	} else {
		ct = civtime.DecodeUTC(instant)
	}
	log.Debugf("decoded instant {%d, %d} to %s", instant.Seconds, instant.Nanoseconds, ct)

	w, cleanup, err := outputWriter(ctx)
	if err != nil {
		return err
	}
	defer cleanup(&Err)

	return emit(w, ctx, toCalendarJSON(ct), ct.String())
}
