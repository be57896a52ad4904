// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"

	"github.com/e1tester2019/gowell/trip"
)

// PlotESD plots the equivalent static density at the control depth
// versus bit measured depth
func PlotESD(steps []*trip.Step, dirout, fnkey string) {
	n := len(steps)
	X := make([]float64, n)
	Y := make([]float64, n)
	for i, s := range steps {
		X[i] = s.ESDControl
		Y[i] = s.BitMD
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", L: "ESD @ control"})
	plt.Gll("$ESD$ [kg/m³]", "bit MD [m]", nil)
	plt.Save(dirout, fnkey)
}

// PlotSurfPress plots the required surface back-pressure versus bit
// measured depth
func PlotSurfPress(steps []*trip.Step, dirout, fnkey string) {
	n := len(steps)
	X := make([]float64, n)
	Y := make([]float64, n)
	for i, s := range steps {
		X[i] = s.SurfPress
		Y[i] = s.BitMD
	}
	plt.Plot(X, Y, &plt.A{C: "r", Ls: "-", L: "back-pressure"})
	plt.Gll("$P_{surf}$ [kPa]", "bit MD [m]", nil)
	plt.Save(dirout, fnkey)
}
