// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"math"
)

// Regime labels the flow regime selected for an annulus segment
type Regime int

const (
	RegimeNone      Regime = iota // no flow / no geometry
	RegimeLaminar                 // laminar term dominated
	RegimeTurbulent               // turbulent term dominated
)

// String returns a label for the regime
func (r Regime) String() string {
	switch r {
	case RegimeLaminar:
		return "laminar"
	case RegimeTurbulent:
		return "turbulent"
	}
	return "none"
}

// HydraulicDiameter returns the equivalent diameter of an annulus:
// hole (or casing) inner diameter minus pipe outer diameter [m]
func HydraulicDiameter(annID, strOD float64) float64 {
	return annID - strOD
}

// Reynolds computes the Reynolds number of annular flow
//
//	Re = ρ·v·dh / μp
func Reynolds(density, velocity, dh, pv float64) float64 {
	if pv <= 0 {
		return 0
	}
	return density * velocity * dh / pv
}

// Hedstrom computes the Hedstrom number of a Bingham fluid
//
//	He = ρ·τy·dh² / μp²
func Hedstrom(density, dh, pv, yp float64) float64 {
	if pv <= 0 {
		return 0
	}
	return density * yp * dh * dh / (pv * pv)
}

// ReCritical returns the critical Reynolds number as a function of
// the Hedstrom number
//
//	Re_crit = 2100·(1 + 0.05·He^0.3)
func ReCritical(he float64) float64 {
	if he < 0 {
		he = 0
	}
	return 2100.0 * (1.0 + 0.05*math.Pow(he, 0.3))
}

// GradientLaminar computes the laminar annular pressure gradient of a
// Bingham fluid using the narrow-slot form [Pa/m]
//
//	dP/dL = 48·μp·v/dh² + 6·τy/dh
func GradientLaminar(velocity, dh, pv, yp float64) float64 {
	if dh <= 0 || velocity <= 0 {
		return 0
	}
	return 48.0*pv*velocity/(dh*dh) + 6.0*yp/dh
}

// GradientTurbulent computes the turbulent annular pressure gradient
// using the Fanning friction factor correlation f = 0.079·Re^-0.25
// [Pa/m]
//
//	dP/dL = 2·f·ρ·v²/dh
func GradientTurbulent(density, velocity, dh, pv float64) float64 {
	if dh <= 0 || velocity <= 0 {
		return 0
	}
	re := Reynolds(density, velocity, dh, pv)
	if re <= 0 {
		return 0
	}
	f := 0.079 * math.Pow(re, -0.25)
	return 2.0 * f * density * velocity * velocity / dh
}

// SegmentLoss computes the frictional pressure loss over one annulus
// segment [kPa] and reports the regime whose gradient dominated.
//
// The selected gradient is the maximum of the laminar and turbulent
// terms. This smooth-transition rule follows the observed behaviour of
// field calculations around Re_crit rather than a sharp cutoff; treat
// it as a modelling choice to be validated against field data.
func SegmentLoss(density, velocity, dh, pv, yp, length float64) (lossKPa float64, regime Regime) {
	if dh <= 0 || velocity <= 0 || length <= 0 {
		return 0, RegimeNone
	}
	glam := GradientLaminar(velocity, dh, pv, yp)
	gtur := GradientTurbulent(density, velocity, dh, pv)
	g := glam
	regime = RegimeLaminar
	if gtur > glam {
		g = gtur
		regime = RegimeTurbulent
	}
	lossKPa = g * length / 1000.0
	return
}
