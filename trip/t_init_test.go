// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// refSim returns the reference trip-out scenario: 3000 m vertical
// well, 0.216 m hole, 0.127 × 0.1086 m pipe, 1200 kg/m³ mud with
// PV 0.02 Pa·s and YP 10 Pa, trip speed 0.5 m/min, closed pipe end
func refSim() *inp.Simulation {
	o := &inp.Simulation{
		Dstr: inp.DrillString{{Top: 0, Length: 3000, OD: 0.127, ID: 0.1086}},
		Ann:  inp.Annulus{{Top: 0, Length: 3000, ID: 0.216}},
		Muds: []*inp.Mud{{Name: "active", Density: 1200, Pv: 0.02, Yp: 10}},
	}
	o.Trip.SetDefault()
	o.Trip.StartMD = 3000
	o.Trip.EndMD = 0
	o.Trip.Step = 100
	o.Trip.Speed = -0.5
	o.Trip.TargetESD = 1200
	o.Trip.ControlMD = 3000
	o.Trip.ActiveMud = "active"
	return o
}
