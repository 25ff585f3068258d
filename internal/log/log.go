// Copyright (C) 2026  Nexedi SA and Contributors.
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Package log provides leveled logging prefixed with current task.
//
// Tasks are tracked in contexts: see WithTask and Running.
//
// Messages go to glog; its flags (-v, -logtostderr, -log_dir, ...) control
// where they end up and which verbose ones are emitted.
package log

import (
	"context"
	"fmt"

	"github.com/golang/glog"
)

// withTask prepends current task stack of ctx to argv.
func withTask(ctx context.Context, argv ...interface{}) []interface{} {
	prefix := CurrentTask(ctx).String()
	if prefix == "" {
		return argv
	}

	if len(argv) != 0 {
		prefix += ": "
	}

	return append([]interface{}{prefix}, argv...)
}

// Depth logs with call-site reported that many frames above the caller.
type Depth int

func (d Depth) Infof(ctx context.Context, format string, argv ...interface{}) {
	glog.InfoDepth(int(d+1), withTask(ctx, fmt.Sprintf(format, argv...))...)
}

func (d Depth) Warning(ctx context.Context, argv ...interface{}) {
	glog.WarningDepth(int(d+1), withTask(ctx, argv...)...)
}

func (d Depth) Error(ctx context.Context, argv ...interface{}) {
	glog.ErrorDepth(int(d+1), withTask(ctx, argv...)...)
}

func Error(ctx context.Context, argv ...interface{}) { Depth(1).Error(ctx, argv...) }

func Infof(ctx context.Context, format string, argv ...interface{}) {
	Depth(1).Infof(ctx, format, argv...)
}

// Verbose logs only if glog verbosity is at least its level.
type Verbose bool

// V reports whether verbosity at level is enabled, as glog.V does.
func V(level glog.Level) Verbose {
	return Verbose(glog.V(level))
}

func (v Verbose) Infof(ctx context.Context, format string, argv ...interface{}) {
	if v {
		Depth(1).Infof(ctx, format, argv...)
	}
}

// Running pushes task name to ctx's operational stack, logs its start and
// returns function to log its end and prefix error with the task.
//
// Use like this:
//
//	defer log.Running(&ctx, "bench")(&err)
func Running(ctxp *context.Context, name string) func(*error) {
	ctx := WithTask(*ctxp, name)
	*ctxp = ctx
	V(1).Infof(ctx, "start")

	return func(errp *error) {
		if *errp != nil {
			Depth(1).Warning(ctx, *errp)
		} else {
			V(1).Infof(ctx, "done")
		}

		// not *ctxp: it could be changed by the time we run
		ErrContext(errp, ctx)
	}
}

func Flush() { glog.Flush() }
