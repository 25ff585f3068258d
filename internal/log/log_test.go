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

import (
	"context"
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestWithTask(t *testing.T) {
	ctx := context.Background()

	testv := []struct {
		ctx  context.Context
		argv []interface{}
		want []interface{}
	}{
		{ctx, []interface{}{"hello"}, []interface{}{"hello"}},
		{WithTask(ctx, "sort"), []interface{}{"hello", 1}, []interface{}{"sort: ", "hello", 1}},
		{WithTask(ctx, "sort"), nil, []interface{}{"sort"}},
		{WithTask(WithTask(ctx, "bench"), "list 2"), []interface{}{"ok"}, []interface{}{"bench: list 2: ", "ok"}},
	}

	for _, tt := range testv {
		got := withTask(tt.ctx, tt.argv...)
		if diff := pretty.Compare(tt.want, got); diff != "" {
			t.Errorf("withTask %v:\n%s", tt.argv, diff)
		}
	}
}

func TestRunning(t *testing.T) {
	ctx := context.Background()

	f := func(fail bool) (err error) {
		defer Running(&ctx, "merge")(&err)
		if CurrentTask(ctx).String() != "merge" {
			t.Errorf("task inside Running: %q", CurrentTask(ctx))
		}
		if fail {
			return errors.New("boom")
		}
		return nil
	}

	if err := f(false); err != nil {
		t.Fatalf("ok run: %v", err)
	}

	ctx = context.Background()
	err := f(true)
	if err == nil || err.Error() != "merge: boom" {
		t.Fatalf("failed run: got %v  ; want \"merge: boom\"", err)
	}
}

func TestLogEntries(t *testing.T) {
	ctx := WithTaskf(context.Background(), "list %d", 1)

	// all entries accept task contexts and do not panic; where the
	// messages go is glog's business.
	Infof(ctx, "sorted %d items", 3)
	Error(ctx, errors.New("result is not sorted"))
	V(1).Infof(ctx, "verbose %d", 1)
	Depth(0).Warning(ctx, "warning")
	Flush()
}
