// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form and offline solutions supporting
// trip planning: the hydrostatic mud column reference and the
// kill-mud/slug optimizer
package ana

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/e1tester2019/gowell/trip"
)

// MudColumn computes pressure (p) and density (ρ) of a mud column
// along true vertical depth (h). The closed-form solution is:
//
//	ρ(p) = ρ0 + C・(p - p0)   thus   dρ/dp = C
//	dp   = ρ(p)・g・dh / 1000
//	p(h) = p0 + (ρ0/C)・(exp(C・g・h/1000) - 1)
//
// With C = 0 the column is incompressible and p(h) = ρ0·g·h/1000.
// Tests use this as the reference for the hydrostatic sanity of the
// pressure-balance solver.
type MudColumn struct {
	R0 float64 // density at surface [kg/m³]
	P0 float64 // pressure at surface [kPa]
	C  float64 // compressibility [kg/m³ per kPa]; 0 => incompressible
}

// Calc computes pressure and density at true vertical depth h
func (o MudColumn) Calc(h float64) (p, r float64) {
	if o.C == 0 {
		p = o.P0 + trip.PressFromHead(o.R0, h)
		r = o.R0
		return
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*trip.Grav*h/1000.0)-1.0)
	r = o.R0 + o.C*(p-o.P0)
	return
}

// ESD computes the equivalent static density at depth h (the density
// of the uniform column producing the same pressure); returns the
// surface density at h = 0
func (o MudColumn) ESD(h float64) float64 {
	if h <= 0 {
		return o.R0
	}
	p, _ := o.Calc(h)
	return trip.DensityFromPress(p-o.P0, h)
}

// Plot plots pressure and density along the column depth
func (o MudColumn) Plot(dirout, fnkey string, hmax float64, np int) {

	H := utl.LinSpace(0, hmax, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, h := range H {
		P[i], R[i] = o.Calc(h)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(P, H, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$p$ [kPa]", "$h$ [m]", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(R, H, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$\\rho$ [kg/m³]", "$h$ [m]", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
