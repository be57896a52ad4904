// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// testSim returns a complete simulation input for snapshot tests
func testSim() *Simulation {
	o := &Simulation{
		Dstr: DrillString{{Top: 0, Length: 3000, OD: 0.127, ID: 0.1086}},
		Ann:  Annulus{{Top: 0, Length: 3000, ID: 0.216}},
		Muds: []*Mud{{Name: "active", Density: 1200, Pv: 0.02, Yp: 10}},
		Srv: &Survey{Stations: []*Station{
			{MD: 1000, TVD: 1000, Inc: 0},
			{MD: 3000, TVD: 2800, Inc: 30},
		}},
	}
	o.Trip.SetDefault()
	o.Trip.StartMD = 3000
	o.Trip.EndMD = 0
	o.Trip.Step = 100
	o.Trip.Speed = -0.5
	o.Trip.TargetESD = 1200
	return o
}

func Test_frozen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frozen01. hash idempotence and sensitivity")

	sim := testSim()
	f1 := Freeze(sim)
	f2 := Freeze(sim)
	io.Pf("hash = %s\n", f1.ShortHash())
	if f1.Hash() != f2.Hash() {
		tst.Errorf("hashing the same input twice must give identical hashes\n")
		return
	}
	if f1.ShortHash() != f2.ShortHash() {
		tst.Errorf("short hashes differ\n")
		return
	}

	// a 0.0002 m change in one annulus ID flips the hash
	sim.Ann[0].ID += 0.0002
	f3 := Freeze(sim)
	if f1.Hash() == f3.Hash() {
		tst.Errorf("changed geometry must change the hash\n")
		return
	}

	// the snapshot itself kept the original value
	chk.Float64(tst, "frozen ID", 1e-15, f1.Ann[0].ID, 0.216)
}

func Test_frozen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frozen02. staleness and the advisory diff")

	sim := testSim()
	f := Freeze(sim)
	if f.Stale(sim) {
		tst.Errorf("unchanged input must not be stale\n")
		return
	}
	if n := len(f.Diff(sim)); n != 0 {
		tst.Errorf("unchanged input produced %d diff entries\n", n)
		return
	}

	// density delta beyond 1 kg/m³ is reported
	sim.Muds[0].Density += 5
	if !f.Stale(sim) {
		tst.Errorf("changed density must be stale\n")
		return
	}
	changes := f.Diff(sim)
	if len(changes) != 1 {
		tst.Errorf("expected 1 diff entry; got %d\n", len(changes))
		return
	}
	io.Pf("diff: %v\n", changes)

	// a density delta below tolerance flips the hash but not the diff
	sim2 := testSim()
	f2 := Freeze(sim2)
	sim2.Muds[0].Density += 0.5
	if !f2.Stale(sim2) {
		tst.Errorf("any numeric change must flip the hash\n")
		return
	}
	if n := len(f2.Diff(sim2)); n != 0 {
		tst.Errorf("sub-tolerance change must not appear in the diff; got %d entries\n", n)
		return
	}

	// section count change
	sim3 := testSim()
	f3 := Freeze(sim3)
	sim3.Ann = append(sim3.Ann, &AnnulusSection{Top: 3000, Length: 500, ID: 0.216})
	changes = f3.Diff(sim3)
	if len(changes) != 1 {
		tst.Errorf("expected 1 diff entry for section count; got %d\n", len(changes))
	}
}
