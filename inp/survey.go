// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Station holds one directional-survey station
type Station struct {
	MD  float64 `json:"md"`  // measured depth [m]
	TVD float64 `json:"tvd"` // true vertical depth [m]
	Inc float64 `json:"inc"` // inclination from vertical [deg]
}

// Survey holds an ordered list of survey stations. Stations must be
// strictly increasing in MD and non-decreasing in TVD.
type Survey struct {
	Stations []*Station `json:"stations"`
}

// Validate checks monotonicity of the stations
func (o *Survey) Validate() (err error) {
	for i, s := range o.Stations {
		if i > 0 {
			if s.MD <= o.Stations[i-1].MD {
				return chk.Err("survey station %d: MD %g is not increasing", i, s.MD)
			}
			if s.TVD < o.Stations[i-1].TVD {
				return chk.Err("survey station %d: TVD %g decreases", i, s.TVD)
			}
		}
	}
	return
}

// TVD interpolates true vertical depth at measured depth md.
// Linear interpolation between stations; clamps to the first/last
// station outside the surveyed range.
func (o *Survey) TVD(md float64) float64 {
	n := len(o.Stations)
	if n == 0 {
		return md // no directional data => vertical well
	}
	if md <= o.Stations[0].MD {
		if o.Stations[0].MD > 0 {
			// linear from surface to first station
			return o.Stations[0].TVD * md / o.Stations[0].MD
		}
		return o.Stations[0].TVD
	}
	for i := 1; i < n; i++ {
		a, b := o.Stations[i-1], o.Stations[i]
		if md <= b.MD {
			t := (md - a.MD) / (b.MD - a.MD)
			return a.TVD + t*(b.TVD-a.TVD)
		}
	}
	return o.Stations[n-1].TVD
}

// Heel locates the heel of the well: the first station with
// inclination ≥ 90°, or the station of maximum inclination if none
// reaches 90°. With no directional data the heel falls back to 70% of
// totalDepth and a warning is returned.
func (o *Survey) Heel(totalDepth float64) (md, tvd float64, warning string) {
	if o == nil || len(o.Stations) == 0 {
		md = 0.7 * totalDepth
		tvd = md
		warning = io.Sf("no directional data: heel assumed at 70%% of total depth (%g m)", md)
		return
	}
	imax := 0
	for i, s := range o.Stations {
		if s.Inc >= 90.0 {
			return s.MD, s.TVD, ""
		}
		if s.Inc > o.Stations[imax].Inc {
			imax = i
		}
	}
	s := o.Stations[imax]
	return s.MD, s.TVD, ""
}
