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

// Llist is a driver program to exercise intrusive lists: build, sort and
// merge them and measure sorting.
package main

import "lab.nexedi.com/kirr/go123/prog"

var commands = prog.CommandRegistry{
	// NOTE the order commands are listed here is the order how they will appear in help
	{Name: "demo", Summary: demoSummary, Usage: demoUsage, Main: demoMain},
	{Name: "sort", Summary: sortSummary, Usage: sortUsage, Main: sortMain},
	{Name: "merge", Summary: mergeSummary, Usage: mergeUsage, Main: mergeMain},
	{Name: "bench", Summary: benchSummary, Usage: benchUsage, Main: benchMain},
}

var helpTopics = prog.HelpRegistry{
	{Name: "values", Summary: "specifying list values", Text: helpValues},
}

const helpValues =
`Commands that take list values accept them as arguments separated by commas
and/or spaces, for example

	llist sort 10,1,22
	llist sort 10 1 22
	llist merge "1, 2, 3" 10,11,12

Values are signed integers. When a command supports random values instead,
they are generated from -seed so that runs are reproducible.
`

func main() {
	prog := prog.MainProg{
		Name:       "llist",
		Summary:    "Llist is a tool to build, sort and merge intrusive lists",
		Commands:   commands,
		HelpTopics: helpTopics,
	}

	prog.Main()
}
