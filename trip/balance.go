// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

// Hydrostatic computes the summed hydrostatic pressure of the given
// stacks down to measured depth md [kPa]. Layers fully above md
// contribute their whole head; a layer straddling md contributes the
// head between its top and md. Layers below md are ignored.
func Hydrostatic(md float64, tvdfcn func(md float64) float64, stacks ...Stack) (p float64) {
	for _, stk := range stacks {
		for _, l := range stk {
			switch {
			case l.BotMD <= md:
				p += l.Press()
			case l.TopMD < md:
				p += PressFromHead(l.Density, tvdfcn(md)-l.TopTVD)
			}
		}
	}
	return
}

// Balance holds the pressure-balance solver configuration
type Balance struct {
	TargetESD   float64 // target equivalent static density at control depth [kg/m³]
	ControlMD   float64 // control measured depth [m]
	ControlTVD  float64 // control true vertical depth [m]
	BaseDensity float64 // base mud density; fallback for degenerate depths [kg/m³]
	AllowNeg    bool    // allow negative (held-open) back-pressure
}

// BalanceResult holds the solved pressures and equivalent densities of
// one step
type BalanceResult struct {
	HydroControl float64 // hydrostatic sum to control depth [kPa]
	HydroBit     float64 // hydrostatic sum to bit depth [kPa]
	SurfPress    float64 // required surface back-pressure [kPa]
	ESDControl   float64 // equivalent static density at control depth [kg/m³]
	ESDBit       float64 // equivalent static density at bit depth [kg/m³]
	Warning      string  // non-empty when a fallback was applied
}

// Solve computes the required surface back-pressure and the resulting
// equivalent densities at the bit and the control depth.
//
//	SurfPress = targetESD·g·controlTVD/1000 − hydrostatic(control) + dynPress
//
// dynPress carries the active surge/swab correction (positive when the
// back-pressure must compensate a swab). The result is clamped to ≥ 0
// unless AllowNeg is set. A zero control or bit TVD degrades to the
// base mud density instead of dividing by zero.
func (o *Balance) Solve(ann, pocket Stack, bitMD, bitTVD float64, tvdfcn func(md float64) float64, dynPress float64) (res BalanceResult) {

	res.HydroControl = Hydrostatic(o.ControlMD, tvdfcn, ann, pocket)
	res.HydroBit = Hydrostatic(bitMD, tvdfcn, ann, pocket)

	// required back-pressure
	res.SurfPress = PressFromHead(o.TargetESD, o.ControlTVD) - res.HydroControl + dynPress
	if res.SurfPress < 0 && !o.AllowNeg {
		res.SurfPress = 0
	}

	// equivalent density at control depth
	if o.ControlTVD <= 0 {
		res.ESDControl = o.BaseDensity
		res.Warning = "zero-height control column: using base mud density"
	} else {
		res.ESDControl = DensityFromPress(res.HydroControl+res.SurfPress, o.ControlTVD)
	}

	// equivalent density at bit depth
	if bitTVD <= 0 {
		res.ESDBit = o.BaseDensity
	} else {
		res.ESDBit = DensityFromPress(res.HydroBit+res.SurfPress, bitTVD)
	}
	return
}
