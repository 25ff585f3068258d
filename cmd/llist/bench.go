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

package main
// bench command

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"lab.nexedi.com/kirr/go123/prog"
	"lab.nexedi.com/kirr/go123/xerr"

	"lab.nexedi.com/kirr/llist/internal/fixture"
	"lab.nexedi.com/kirr/llist/internal/log"
	"lab.nexedi.com/kirr/llist/list"
)

// BenchParams describe what Bench does.
type BenchParams struct {
	Lists   int   // how many lists to sort
	N       int   // items in each list
	Workers int   // how many lists are sorted in parallel
	Seed    int64 // list i is filled from seed Seed+i
}

// BenchResult is what Bench measured.
type BenchResult struct {
	Lists int
	Items int           // total over all lists
	Sort  time.Duration // total time spent in list.Sort
}

func (r BenchResult) String() string {
	perItem := 0.
	if r.Items != 0 {
		perItem = float64(r.Sort.Nanoseconds()) / float64(r.Items)
	}
	return fmt.Sprintf("sorted %d lists, %d items in %s  (%.1f ns/item)", r.Lists, r.Items, r.Sort, perItem)
}

// Bench sorts p.Lists random lists with p.Workers workers and verifies every result.
//
// Every list is built, sorted and verified by only one worker.
func Bench(ctx context.Context, p BenchParams) (_ BenchResult, err error) {
	defer log.Running(&ctx, "bench")(&err)

	if p.Lists < 0 || p.N < 0 {
		return BenchResult{}, fmt.Errorf("invalid size: %d lists x %d items", p.Lists, p.N)
	}
	if p.Workers < 1 {
		p.Workers = 1
	}

	sortTime := make([]time.Duration, p.Lists)
	sem := make(chan struct{}, p.Workers)

	wg, ctx := errgroup.WithContext(ctx)
loop:
	for i := 0; i < p.Lists; i++ {
		i := i
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Go(func() error {
			defer func() { <-sem }()
			ctx := log.WithTaskf(ctx, "list %d", i)

			dt, err := benchOne(ctx, p.N, p.Seed+int64(i))
			if err != nil {
				log.Error(ctx, err)
				return err
			}
			sortTime[i] = dt
			return nil
		})
	}

	err = wg.Wait()
	if err != nil {
		return BenchResult{}, err
	}

	r := BenchResult{Lists: p.Lists, Items: p.Lists * p.N}
	for _, dt := range sortTime {
		r.Sort += dt
	}
	log.Infof(ctx, "%s", r)
	return r, nil
}

// benchOne builds one random list, sorts it and verifies the result.
func benchOne(ctx context.Context, n int, seed int64) (_ time.Duration, err error) {
	defer log.ErrContext(&err, ctx)

	valuev := fixture.NewRand(seed).Ints(n, 0)
	head, _ := fixture.Build(valuev)

	t0 := time.Now()
	sorted := list.Sort(head, list.CmpItem)
	dt := time.Since(t0)

	o := SortOptions{Check: true}
	var errv xerr.Errorv
	errv.Appendif(o.verify(sorted, valuev))
	if l := sorted.Len(); l != n {
		errv.Appendf("len = %d  ; want %d", l, n)
	}
	if err := errv.Err(); err != nil {
		return 0, err
	}

	log.V(2).Infof(ctx, "sorted %d items in %s", n, dt)
	return dt, nil
}

// ----------------------------------------

const benchSummary = "measure sorting of many random lists"

func benchUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: llist bench [OPTIONS]
Sort many random lists in parallel, verify them and report timing.

Every list is handled by exactly one worker; lists are never shared.

Options:

    -lists  <L>     number of lists                 (default 16)
    -n      <N>     number of items in each list    (default 10000)
    -j      <J>     number of parallel workers      (default 4)
    -seed   <S>     seed of the first list          (default 1)
    -h  --help      show this help

Use -v=1 or -v=2 to log progress.
`)
}

func benchMain(argv []string) {
	var p BenchParams
	flags := flag.FlagSet{Usage: func() { benchUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.IntVar(&p.Lists, "lists", 16, "number of lists")
	flags.IntVar(&p.N, "n", 10000, "number of items in each list")
	flags.IntVar(&p.Workers, "j", 4, "number of parallel workers")
	flags.Int64Var(&p.Seed, "seed", 1, "seed of the first list")
	flags.Parse(argv[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		prog.Exit(2)
	}

	r, err := Bench(context.Background(), p)
	log.Flush()
	if err != nil {
		prog.Fatal(err)
	}
	fmt.Println(r)
}
