// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trip implements the depth-marching trip hydraulics engine:
// fluid-layer stacks in the string, the annulus and the pocket, the
// float-valve model, the surge/swab calculator and the pressure
// balance solver
package trip

// Grav is the standard gravity acceleration [m/s²]
const Grav = 9.80665

// PressFromHead converts a fluid head to pressure [kPa]
//
//	P = ρ·g·h / 1000
//
// with ρ in kg/m³ and h the true vertical height in m. Every component
// of the engine converts heads through this single function so that
// the pressure/density/TVD arithmetic stays numerically consistent.
func PressFromHead(density, tvd float64) float64 {
	return density * Grav * tvd / 1000.0
}

// DensityFromPress converts a pressure at a true vertical depth to the
// equivalent density [kg/m³]. A zero (or negative) TVD returns zero;
// callers substitute the base mud density for the surface point.
func DensityFromPress(pressKPa, tvd float64) float64 {
	if tvd <= 0 {
		return 0
	}
	return pressKPa * 1000.0 / (Grav * tvd)
}
