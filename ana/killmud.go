// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/inp"
	"github.com/e1tester2019/gowell/trip"
)

// plausible band for a computed kill-mud density [kg/m³]
const (
	KillDensMin = 800.0
	KillDensMax = 2500.0
)

// minimum layer height that can be solved reliably [m]
const minSolveHeight = 0.1

// KillMud solves for the density of a kill-mud layer that, together
// with user-chosen slugs, achieves a target equivalent static density
// at a control depth. It is an offline solver over the static
// geometry, independent of the marching engine, and a pure function of
// its inputs.
type KillMud struct {
	W          *inp.Wellbore // wellbore geometry and survey
	BaseDens   float64       // base (active) mud density [kg/m³]
	TargetESD  float64       // target equivalent static density at control depth [kg/m³]
	ControlMD  float64       // control measured depth [m]
	CrackPress float64       // float-valve crack pressure [kPa]
	Slug1Vol   float64       // first slug volume [m³]
	Slug1Dens  float64       // first slug density [kg/m³]
	Slug2Vol   float64       // second slug volume [m³]
	Slug2Dens  float64       // second slug density [kg/m³]
}

// KillMudResult holds the solved kill-mud density and the
// intermediate quantities of the hydrostatic balance
type KillMudResult struct {
	HeelMD     float64    // heel measured depth [m]
	HeelTVD    float64    // heel true vertical depth [m]
	EffESD     float64    // effective ESD including the crack-pressure term [kg/m³]
	Drop1      float64    // drop height caused by the first slug [m]
	Drop2      float64    // drop height caused by the second slug [m]
	DrainedVol float64    // string volume drained by the U-tube effect [m³]
	KillVol    float64    // required kill-mud volume [m³]
	KillDens   float64    // solved kill-mud density [kg/m³]
	Layers     trip.Stack // resulting annulus layers, surface first
	Warnings   []string   // recoverable degradations
}

// slugExtent returns the measured-depth bottom of a slug of the given
// volume whose top sits at topMD inside the string
func (o *KillMud) slugExtent(topMD, vol float64) float64 {
	bot, _ := o.W.SpanDown(topMD, o.W.Dstr.Bottom(), vol, o.W.StringCap)
	return bot
}

// dropHeight computes the fall of the fluid level in the string caused
// by a heavy slug draining through it (the U-tube effect)
//
//	drop = (slugDens − effESD)·Δh_TVD / effESD
func dropHeight(slugDens, effESD, tvdHeight float64) float64 {
	if effESD <= 0 || slugDens <= effESD {
		return 0
	}
	return (slugDens - effESD) * tvdHeight / effESD
}

// Solve computes the kill-mud density. All degenerate inputs degrade
// with warnings; Solve never fails.
func (o *KillMud) Solve() (res KillMudResult) {

	td := o.W.Ann.Bottom()
	var warn string
	res.HeelMD, res.HeelTVD, warn = o.W.Srv.Heel(td)
	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	// effective ESD carries the crack-pressure term to the heel
	res.EffESD = o.TargetESD + trip.DensityFromPress(o.CrackPress, res.HeelTVD)
	if res.EffESD <= 0 {
		res.EffESD = o.BaseDens
		res.Warnings = append(res.Warnings, "degenerate effective ESD: using base mud density")
	}

	// slug extents in the string and their TVD heights
	tvd := o.W.TVD
	bot1 := o.slugExtent(0, o.Slug1Vol)
	bot2 := o.slugExtent(bot1, o.Slug2Vol)
	h1 := tvd(bot1) - tvd(0)
	h2 := tvd(bot2) - tvd(bot1)

	// U-tube drop heights and the drained string volume
	res.Drop1 = dropHeight(o.Slug1Dens, res.EffESD, h1)
	res.Drop2 = dropHeight(o.Slug2Dens, res.EffESD, h2)
	strCapSurf := o.W.StringCap(0)
	res.DrainedVol = (res.Drop1 + res.Drop2) * strCapSurf

	// kill volume: steel displacement of the full string plus the
	// drained volume
	var steelVol float64
	for _, s := range o.W.Dstr {
		steelVol += s.SteelArea() * s.Length
	}
	res.KillVol = steelVol + res.DrainedVol

	// annulus layers, surface first: kill mud on top (pumped last),
	// then the slugs, then base mud down to the control depth
	annCapSurf := o.W.AnnCap(0, td)
	if annCapSurf <= 0 {
		res.Warnings = append(res.Warnings, "no annulus capacity at surface: cannot place layers; using base mud density")
		res.KillDens = o.BaseDens
		return
	}
	bounds := []float64{0}
	add := func(vol float64) {
		bounds = append(bounds, bounds[len(bounds)-1]+vol/annCapSurf)
	}
	add(res.KillVol)
	add(o.Slug2Vol)
	add(o.Slug1Vol)
	dens := []float64{0, o.Slug2Dens, o.Slug1Dens} // kill density unknown
	ctvd := tvd(o.ControlMD)

	var knownP float64
	for i := 1; i < len(bounds); i++ {
		top, bot := bounds[i-1], bounds[i]
		l := trip.Layer{
			Side: trip.SideAnnulus, TopMD: top, BotMD: bot,
			TopTVD: tvd(top), BotTVD: tvd(bot),
			Density: dens[i-1],
			Volume:  (bot - top) * annCapSurf,
		}
		res.Layers = append(res.Layers, l)
		if i > 1 {
			knownP += l.Press()
		}
	}

	// base mud from the last slug down to the control depth
	last := bounds[len(bounds)-1]
	if o.ControlMD > last {
		l := trip.Layer{
			Side: trip.SideAnnulus, TopMD: last, BotMD: o.ControlMD,
			TopTVD: tvd(last), BotTVD: ctvd,
			Density: o.BaseDens,
			Volume:  o.W.VolumeBetween(last, o.ControlMD, func(md float64) float64 { return o.W.AnnCap(md, td) }),
		}
		res.Layers = append(res.Layers, l)
		knownP += l.Press()
	}

	// linear solve for the kill-mud density. The kill layer is always
	// the first constructed layer, but it may be degenerate (no string,
	// zero volume) and then gets pruned along with the empty slugs
	killHeight := res.Layers[0].Height()
	res.Layers = res.Layers.Prune()
	if killHeight < minSolveHeight {
		res.Warnings = append(res.Warnings, io.Sf("kill layer height %.3g m is too small to solve reliably; using base mud density", killHeight))
		res.KillDens = o.BaseDens
		return
	}
	targetP := trip.PressFromHead(o.TargetESD, ctvd)
	res.KillDens = trip.DensityFromPress(targetP-knownP, killHeight)

	// clamp to the plausible band; the run stays valid but flagged
	if res.KillDens < KillDensMin {
		res.Warnings = append(res.Warnings, io.Sf("computed kill density %.1f kg/m³ below plausible band; clamped to %.0f", res.KillDens, KillDensMin))
		res.KillDens = KillDensMin
	}
	if res.KillDens > KillDensMax {
		res.Warnings = append(res.Warnings, io.Sf("computed kill density %.1f kg/m³ above plausible band; clamped to %.0f", res.KillDens, KillDensMax))
		res.KillDens = KillDensMax
	}
	res.Layers[0].Density = res.KillDens
	return
}
