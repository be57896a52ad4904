// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mrheo implements mud rheology models (Bingham plastic and
// power law) and the annular friction correlations used by the trip
// hydraulics calculations
package mrheo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Fann viscometer constants: shear stress per dial degree [Pa] and the
// shear rates of the two standard rotor speeds [1/s]
const (
	DialStress = 0.478  // τ = DialStress·θ [Pa]
	Rate600    = 1022.0 // shear rate at 600 rpm [1/s]
	Rate300    = 511.0  // shear rate at 300 rpm [1/s]
)

// Model defines the rheology model interface
type Model interface {
	Init(prms dbf.Params) error             // initialises model with parameters
	GetPrms(example bool) dbf.Params        // gets (an example of) parameters
	FitDials(d600, d300 float64) bool       // fits parameters from two Fann dial readings; false if undetermined
	WallStress(rate float64) float64        // computes wall shear stress at shear rate [Pa]
	ApparentViscosity(rate float64) float64 // computes effective viscosity at shear rate [Pa·s]
}

// allocators holds all available rheology models
var allocators = make(map[string]func() Model)

// New allocates a rheology model by name; e.g. "bingham", "powerlaw"
func New(name string) Model {
	if alloc, ok := allocators[name]; ok {
		return alloc()
	}
	chk.Panic("cannot find rheology model named %q", name)
	return nil
}
