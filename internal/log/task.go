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

package log
// operational task stack carried in contexts

import (
	"context"
	"fmt"

	"lab.nexedi.com/kirr/go123/xerr"
)

// Task is a named step of work, e.g. "bench" or "list 3".
//
// Tasks nest: a task started under another one becomes its child, and the
// whole stack is rendered as "bench: list 3". Messages and errors are
// prefixed with that rendering.
type Task struct {
	Parent *Task
	Name   string
}

type taskKey struct{}

// WithTask returns ctx with task name pushed on top of ctx's task stack.
func WithTask(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, taskKey{}, &Task{Parent: CurrentTask(ctx), Name: name})
}

// WithTaskf is WithTask cousin with formatting support.
func WithTaskf(ctx context.Context, format string, argv ...interface{}) context.Context {
	return WithTask(ctx, fmt.Sprintf(format, argv...))
}

// CurrentTask returns top of ctx's task stack, or nil.
func CurrentTask(ctx context.Context) *Task {
	t, _ := ctx.Value(taskKey{}).(*Task)
	return t
}

// ErrContext prefixes non-nil *errp with name of ctx's current task.
//
//	defer log.ErrContext(&err, ctx)
func ErrContext(errp *error, ctx context.Context) {
	if t := CurrentTask(ctx); t != nil {
		xerr.Context(errp, t.Name)
	}
}

// String renders the task stack from its root down to t, "" for nil t.
func (t *Task) String() string {
	s := ""
	for ; t != nil; t = t.Parent {
		if s == "" {
			s = t.Name
		} else {
			s = t.Name + ": " + s
		}
	}
	return s
}
