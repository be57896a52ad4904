// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of trip runs: step tables,
// summary reports and plots
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/trip"
)

// Table prints the step table of a run
func Table(steps []*trip.Step) {
	io.Pf("%5s%10s%10s%10s%10s%10s%10s%10s%12s\n",
		"step", "bitMD", "bitTVD", "SBP", "ESDctl", "ESDbit", "swab", "stepVol", "float")
	io.Pf("%5s%10s%10s%10s%10s%10s%10s%10s%12s\n",
		"", "[m]", "[m]", "[kPa]", "[kg/m³]", "[kg/m³]", "[kPa]", "[m³]", "")
	for _, s := range steps {
		io.Pf("%5d%10.1f%10.1f%10.2f%10.1f%10.1f%10.2f%10.4f%12s\n",
			s.Index, s.BitMD, s.BitTVD, s.SurfPress, s.ESDControl, s.ESDBit, s.Swab, s.StepVol, s.FloatState())
	}
}

// Layers prints the three layer stacks of one step
func Layers(s *trip.Step) {
	show := func(name string, stk trip.Stack) {
		io.Pf("%s:\n", name)
		for i, l := range stk {
			io.Pf("  %2d: %8.1f → %8.1f m  ρ=%7.1f kg/m³  V=%8.4f m³\n",
				i, l.TopMD, l.BotMD, l.Density, l.Volume)
		}
	}
	io.Pf("step %d (bit at %g m):\n", s.Index, s.BitMD)
	show("string", s.LayString)
	show("annulus", s.LayAnnulus)
	show("pocket", s.LayPocket)
}

// Report prints the step table followed by the run summary
func Report(m *trip.Main) {
	Table(m.Steps)
	io.Pf("\n")
	if m.Summary != nil {
		m.Summary.Print()
	}
}
