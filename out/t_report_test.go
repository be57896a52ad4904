// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/e1tester2019/gowell/inp"
	"github.com/e1tester2019/gowell/trip"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// smallRun executes a short trip-out used by the reporting tests
func smallRun(tst *testing.T) *trip.Main {
	sim := &inp.Simulation{
		Dstr: inp.DrillString{{Top: 0, Length: 1000, OD: 0.127, ID: 0.1086}},
		Ann:  inp.Annulus{{Top: 0, Length: 1000, ID: 0.216}},
		Muds: []*inp.Mud{{Name: "active", Density: 1200, Pv: 0.02, Yp: 10}},
	}
	sim.Trip.SetDefault()
	sim.Trip.StartMD = 1000
	sim.Trip.EndMD = 0
	sim.Trip.Step = 250
	sim.Trip.Speed = -0.5
	sim.Trip.TargetESD = 1200
	sim.Trip.ControlMD = 1000
	sim.Trip.ActiveMud = "active"

	m, err := trip.NewMain(sim, false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return nil
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return nil
	}
	return m
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. step table and run report")

	m := smallRun(tst)
	if m == nil {
		return
	}
	if len(m.Steps) != 5 {
		tst.Errorf("expected 5 steps; got %d\n", len(m.Steps))
		return
	}

	Table(m.Steps)
	Layers(m.Steps[len(m.Steps)-1])
	Report(m)

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotESD(m.Steps, "/tmp/gowell", "report01_esd")
		PlotSurfPress(m.Steps, "/tmp/gowell", "report01_sbp")
	}
}
