// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrheo

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PowerLaw implements the power-law (Ostwald-de Waele) rheology model:
//
//	τ = K·γ̇ⁿ
type PowerLaw struct {
	N float64 // flow behaviour index n [-]
	K float64 // consistency index K [Pa·sⁿ]
}

// add model to factory
func init() {
	allocators["powerlaw"] = func() Model { return new(PowerLaw) }
}

// Init initialises model
func (o *PowerLaw) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "n":
			o.N = p.V
		case "k":
			o.K = p.V
		default:
			return chk.Err("powerlaw: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PowerLaw) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "n", V: 0.65}, // [-]
			&dbf.P{N: "k", V: 0.35}, // [Pa·sⁿ]
		}
	}
	return dbf.Params{
		&dbf.P{N: "n", V: o.N},
		&dbf.P{N: "k", V: o.K},
	}
}

// FitDials fits n and K from the two standard Fann dial readings:
//
//	n = 3.32·log10(θ600/θ300)
//	K = τ300 / γ̇300ⁿ
//
// Returns false (undetermined) when either dial reading is non-positive
// or the readings are equal (zero slope); parameters are unchanged then.
func (o *PowerLaw) FitDials(d600, d300 float64) bool {
	if d600 <= 0 || d300 <= 0 {
		return false
	}
	n := 3.32 * math.Log10(d600/d300)
	if n <= 0 {
		return false
	}
	o.N = n
	o.K = DialStress * d300 / math.Pow(Rate300, n)
	return true
}

// WallStress computes the wall shear stress at the given shear rate
func (o PowerLaw) WallStress(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return o.K * math.Pow(rate, o.N)
}

// ApparentViscosity computes the effective viscosity at the given
// shear rate; falls back to the consistency index at zero rate
func (o PowerLaw) ApparentViscosity(rate float64) float64 {
	if rate <= 0 {
		return o.K
	}
	return o.WallStress(rate) / rate
}
