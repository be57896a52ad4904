// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/mrheo"
)

// Mud holds one mud record. Rheology may be given directly (Bingham
// pair and/or power-law pair) or via the two standard Fann dial
// readings, from which either pair is derivable.
type Mud struct {
	Name    string  `json:"name"`    // mud name; e.g. "active", "kill", "slug"
	Density float64 `json:"density"` // density [kg/m³]
	Pv      float64 `json:"pv"`      // plastic viscosity [Pa·s]; 0 => derive
	Yp      float64 `json:"yp"`      // yield point [Pa]; 0 => derive
	N       float64 `json:"n"`       // power-law exponent [-]; 0 => derive
	K       float64 `json:"k"`       // power-law consistency [Pa·sⁿ]; 0 => derive
	Dial600 float64 `json:"dial600"` // Fann dial reading at 600 rpm
	Dial300 float64 `json:"dial300"` // Fann dial reading at 300 rpm
	Color   string  `json:"color"`   // display tag (optional)
}

// Validate checks the mud record
func (o *Mud) Validate() (err error) {
	if o.Density <= 0 {
		return chk.Err("mud %q has non-positive density %g", o.Name, o.Density)
	}
	return
}

// Bingham resolves the Bingham-plastic parameters of this mud.
// Priority: explicit PV/YP, then the Fann dial fit, then the supplied
// defaults (with a warning). A degenerate dial pair never fails.
func (o *Mud) Bingham(defPv, defYp float64) (mdl mrheo.Bingham, warning string) {
	if o.Pv > 0 {
		mdl.Pv = o.Pv
		mdl.Yp = o.Yp
		return
	}
	if mdl.FitDials(o.Dial600, o.Dial300) {
		return
	}
	mdl.Pv = defPv
	mdl.Yp = defYp
	warning = io.Sf("mud %q: rheology undetermined; using default PV=%g Pa·s YP=%g Pa", o.Name, defPv, defYp)
	return
}

// PowerLaw resolves the power-law parameters of this mud.
// Priority: explicit n/K, then the Fann dial fit, then defaults.
func (o *Mud) PowerLaw(defN, defK float64) (mdl mrheo.PowerLaw, warning string) {
	if o.N > 0 && o.K > 0 {
		mdl.N = o.N
		mdl.K = o.K
		return
	}
	if mdl.FitDials(o.Dial600, o.Dial300) {
		return
	}
	mdl.N = defN
	mdl.K = defK
	warning = io.Sf("mud %q: rheology undetermined; using default n=%g K=%g", o.Name, defN, defK)
	return
}
