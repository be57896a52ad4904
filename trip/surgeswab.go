// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

import (
	"math"

	"github.com/e1tester2019/gowell/inp"
	"github.com/e1tester2019/gowell/mrheo"
)

// ClingingConstant computes Burkhardt's clinging constant for mud
// dragged along by a moving pipe
//
//	Kc = 0.45 + 0.45·(pipeOD/holeID)²
//
// The degenerate case pipeOD ≥ holeID returns the base value 0.45.
func ClingingConstant(pipeOD, holeID float64) float64 {
	if holeID <= 0 || pipeOD >= holeID {
		return 0.45
	}
	r := pipeOD / holeID
	return 0.45 + 0.45*r*r
}

// SurgeSwab computes surge and swab pressures for a moving pipe. It is
// a pure function of its inputs and may run concurrently with other
// calculators or engine runs.
type SurgeSwab struct {
	W       *inp.Wellbore // wellbore geometry and survey
	Density float64       // mud density [kg/m³]
	Rheo    mrheo.Bingham // Bingham parameters of the active mud
	Speed   float64       // trip speed [m/min]; sign ignored, magnitude used
	PipeEnd string        // inp.PipeEndClosed or inp.PipeEndOpen
	Ecc     float64       // eccentricity factor (≥1)
	Cling   float64       // manual clinging constant; 0 => Burkhardt
}

// SSPoint holds the surge/swab result at one bit depth
type SSPoint struct {
	BitMD     float64      // bit measured depth [m]
	BitTVD    float64      // bit true vertical depth [m]
	Surge     float64      // cumulative surge pressure (positive) [kPa]
	Swab      float64      // cumulative swab pressure (negative) [kPa]
	DeltaESD  float64      // equivalent-density delta of the loss [kg/m³]
	VelAtBit  float64      // annular velocity at the bit's segment [m/s]
	Regime    mrheo.Regime // flow regime at the bit's segment
	ClingUsed float64      // clinging constant at the bit's segment
}

// displacementArea returns the pipe displacement area from the
// pipe-end type [m²]
func (o *SurgeSwab) displacementArea(sec inp.StringSection) float64 {
	if o.PipeEnd == inp.PipeEndOpen {
		return sec.SteelArea()
	}
	return sec.BodyArea()
}

// At computes the surge/swab pressures with the bit at bitMD. When no
// drill-string section covers the bit depth all pressures are zero:
// tripping plans may legitimately query beyond defined geometry, so
// this is graceful degradation, not an error.
func (o *SurgeSwab) At(bitMD float64) (pt SSPoint) {
	pt.BitMD = bitMD
	pt.BitTVD = o.W.TVD(bitMD)

	bitSec, found := o.W.Dstr.SectionAt(bitMD)
	if !found {
		return
	}
	adisp := o.displacementArea(bitSec)
	vtrip := math.Abs(o.Speed) / 60.0 // m/min → m/s

	var loss float64
	for _, a := range o.W.Ann {
		if a.Top >= bitMD {
			continue
		}
		length := math.Min(a.Bottom(), bitMD) - a.Top
		if length <= 0 {
			continue
		}
		mid := a.Top + length/2.0
		ps, ok := o.W.Dstr.SectionAt(mid)
		if !ok {
			continue // no pipe alongside this segment
		}
		aflow := a.HoleArea() - ps.BodyArea()
		if aflow <= 0 {
			continue
		}
		kc := o.Cling
		if kc <= 0 {
			kc = ClingingConstant(ps.OD, a.ID)
		}
		vel := vtrip * (1.0 + kc) * (adisp / aflow) * o.Ecc
		dh := mrheo.HydraulicDiameter(a.ID, ps.OD)
		segLoss, regime := mrheo.SegmentLoss(o.Density, vel, dh, o.Rheo.Pv, o.Rheo.Yp, length)
		loss += segLoss

		// report conditions at the bit's own segment
		if bitMD <= a.Bottom() && bitMD > a.Top {
			pt.VelAtBit = vel
			pt.Regime = regime
			pt.ClingUsed = kc
		}
	}

	pt.Surge = loss
	pt.Swab = -loss
	pt.DeltaESD = DensityFromPress(loss, pt.BitTVD)
	return
}

// Profile computes surge/swab points over a range of bit depths. The
// walk direction follows the ordering of startMD and endMD; the final
// point is clipped to land exactly on endMD.
func (o *SurgeSwab) Profile(startMD, endMD, step float64) (pts []SSPoint) {
	if step <= 0 {
		return
	}
	down := endMD >= startMD
	md := startMD
	for {
		pts = append(pts, o.At(md))
		if down {
			if md >= endMD {
				return
			}
			md = math.Min(md+step, endMD)
		} else {
			if md <= endMD {
				return
			}
			md = math.Max(md-step, endMD)
		}
	}
}
