// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. trip definition file")

	sim, err := ReadTrip("data/tripout3000.json")
	if err != nil {
		tst.Errorf("cannot read trip file: %v\n", err)
		return
	}
	io.Pf("key = %q  desc = %q\n", sim.Key, sim.Trip.Desc)

	chk.String(tst, sim.Key, "tripout3000")
	chk.Float64(tst, "startmd", 1e-15, sim.Trip.StartMD, 3000)
	chk.Float64(tst, "step", 1e-15, sim.Trip.Step, 100)
	chk.Float64(tst, "ecc default kept", 1e-15, sim.Trip.Ecc, 1.0)
	if !sim.Trip.TripOut() {
		tst.Errorf("run must be trip-out\n")
		return
	}

	m := sim.ActiveMud()
	if m == nil {
		tst.Errorf("active mud not resolved\n")
		return
	}
	chk.Float64(tst, "mud density", 1e-15, m.Density, 1200)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. fatal input validation")

	sim := testSim()
	sim.Trip.Step = 0
	if err := sim.Validate(); err == nil {
		tst.Errorf("zero depth step must be rejected\n")
		return
	}

	sim = testSim()
	sim.Trip.Speed = 0.5 // positive = running in, but the range trips out
	if err := sim.Validate(); err == nil {
		tst.Errorf("sign-inconsistent trip speed must be rejected\n")
		return
	}

	sim = testSim()
	sim.Trip.EndMD = sim.Trip.StartMD
	if err := sim.Validate(); err == nil {
		tst.Errorf("start == end must be rejected\n")
		return
	}

	if err := testSim().Validate(); err != nil {
		tst.Errorf("good input failed validation: %v\n", err)
	}
}
