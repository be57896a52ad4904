// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

import (
	"github.com/cpmech/gosl/io"
)

// Summary holds aggregate results of one run
type Summary struct {
	Nsteps   int      // number of emitted steps
	MaxESD   float64  // maximum equivalent density at control depth [kg/m³]
	MinESD   float64  // minimum equivalent density at control depth [kg/m³]
	MaxSurf  float64  // maximum required surface back-pressure [kPa]
	TotalVol float64  // total backfill (trip-out) or returns (trip-in) [m³]
	TotalPit float64  // net pit gain [m³]
	Warnings []string // recoverable degradations collected during the run
}

// NewSummary computes the aggregates over the emitted steps
func NewSummary(steps []*Step, warnings []string) (o *Summary) {
	o = new(Summary)
	o.Warnings = warnings
	o.Nsteps = len(steps)
	for i, s := range steps {
		if i == 0 || s.ESDControl > o.MaxESD {
			o.MaxESD = s.ESDControl
		}
		if i == 0 || s.ESDControl < o.MinESD {
			o.MinESD = s.ESDControl
		}
		if s.SurfPress > o.MaxSurf {
			o.MaxSurf = s.SurfPress
		}
	}
	if n := len(steps); n > 0 {
		o.TotalVol = steps[n-1].CumVol
		o.TotalPit = steps[n-1].CumPitGain
	}
	return
}

// Print shows the summary
func (o *Summary) Print() {
	io.Pf("nsteps        = %d\n", o.Nsteps)
	io.Pf("max ESD       = %g kg/m³\n", o.MaxESD)
	io.Pf("min ESD       = %g kg/m³\n", o.MinESD)
	io.Pf("max back-pres = %g kPa\n", o.MaxSurf)
	io.Pf("total volume  = %g m³\n", o.TotalVol)
	io.Pf("net pit gain  = %g m³\n", o.TotalPit)
	for _, w := range o.Warnings {
		io.Pforan("warning: %s\n", w)
	}
}
