// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Bingham implements the Bingham-plastic rheology model:
//
//	τ = τy + μp·γ̇
type Bingham struct {
	Pv float64 // plastic viscosity μp [Pa·s]
	Yp float64 // yield point τy [Pa]
}

// add model to factory
func init() {
	allocators["bingham"] = func() Model { return new(Bingham) }
}

// Init initialises model
func (o *Bingham) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pv":
			o.Pv = p.V
		case "yp":
			o.Yp = p.V
		default:
			return chk.Err("bingham: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Bingham) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pv", V: 0.02}, // [Pa·s]
			&dbf.P{N: "yp", V: 10.0}, // [Pa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "pv", V: o.Pv},
		&dbf.P{N: "yp", V: o.Yp},
	}
}

// FitDials fits PV and YP from the two standard Fann dial readings
// using the two-point relations
//
//	μp = (τ600 − τ300) / (γ̇600 − γ̇300)
//	τy = τ300 − μp·γ̇300
//
// Returns false (undetermined) when either dial reading is non-positive;
// parameters are left unchanged in that case.
func (o *Bingham) FitDials(d600, d300 float64) bool {
	if d600 <= 0 || d300 <= 0 {
		return false
	}
	t600 := DialStress * d600
	t300 := DialStress * d300
	o.Pv = (t600 - t300) / (Rate600 - Rate300)
	o.Yp = t300 - o.Pv*Rate300
	if o.Yp < 0 {
		o.Yp = 0
	}
	return true
}

// WallStress computes the wall shear stress at the given shear rate
func (o Bingham) WallStress(rate float64) float64 {
	return o.Yp + o.Pv*rate
}

// ApparentViscosity computes the effective viscosity at the given
// shear rate; falls back to the plastic viscosity at zero rate
func (o Bingham) ApparentViscosity(rate float64) float64 {
	if rate <= 0 {
		return o.Pv
	}
	return o.WallStress(rate) / rate
}
