// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/inp"
	"github.com/e1tester2019/gowell/out"
	"github.com/e1tester2019/gowell/trip"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	showLayers := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGowell -- Trip Hydraulics Simulator\n")
		io.Pf("Copyright 2019 The Gowell Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"show final layer stacks", "showLayers", showLayers,
		))
	}

	// input data
	sim, err := inp.ReadTrip(fnamepath)
	if err != nil {
		chk.Panic("cannot read trip file:\n%v", err)
	}

	// run simulation
	m, err := trip.NewMain(sim, verbose)
	if err != nil {
		chk.Panic("cannot initialise trip engine:\n%v", err)
	}
	if err := m.Run(context.Background()); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report
	out.Report(m)
	if showLayers && len(m.Steps) > 0 {
		out.Layers(m.Steps[len(m.Steps)-1])
	}
}
