// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

import (
	"context"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/inp"
	"github.com/e1tester2019/gowell/mrheo"
)

// Step holds the result of one depth increment of the marching engine.
// Steps are produced strictly in execution order and are immutable
// once emitted: later reconciliation against observed field values
// must never overwrite the simulated fields.
type Step struct {
	Index      int     // 0-based step index
	BitMD      float64 // bit measured depth [m]
	BitTVD     float64 // bit true vertical depth [m]
	TargetP    float64 // target pressure at control depth [kPa]
	SurfPress  float64 // required surface back-pressure [kPa]
	ESDControl float64 // equivalent static density at control depth [kg/m³]
	ESDBit     float64 // equivalent static density at bit [kg/m³]
	FloatOpen  float64 // float-valve open fraction: 0 = fully closed, 1 = fully open
	Surge      float64 // surge pressure at this depth [kPa]
	Swab       float64 // swab pressure at this depth (negative) [kPa]
	StepVol    float64 // backfill (trip-out) or returns (trip-in) this step [m³]
	CumVol     float64 // cumulative backfill/returns [m³]
	PitGain    float64 // pit gain this step: negative = pumped from pits [m³]
	CumPitGain float64 // cumulative pit gain [m³]
	LayString  Stack   // fluid layers inside the string
	LayAnnulus Stack   // fluid layers in the annulus
	LayPocket  Stack   // fluid layers in the pocket below the bit
}

// FloatState returns a label for the float-valve state of the step
func (o *Step) FloatState() string {
	if o.FloatOpen <= 0 {
		return "closed"
	}
	return io.Sf("open(%.2f)", o.FloatOpen)
}

// Main holds all data for one trip simulation run. A Main owns its
// layer stacks and cumulative totals: concurrent runs must each use
// their own Main. The marching loop itself is inherently sequential.
type Main struct {

	// input
	Sim     *inp.Simulation // simulation input data
	W       *inp.Wellbore   // wellbore geometry bundle
	Mud     *inp.Mud        // active mud record
	Rheo    mrheo.Bingham   // resolved Bingham parameters of the active mud
	Bal     Balance         // pressure-balance solver
	SS      *SurgeSwab      // surge/swab calculator
	ShowMsg bool            // show messages

	// results
	Steps    []*Step  // emitted steps, strictly increasing index
	Summary  *Summary // run aggregates; set by Run
	Warnings []string // recoverable degradations collected during the run

	// current state
	bitMD  float64
	strStk Stack
	annStk Stack
	pocStk Stack
	surf   float64 // surface back-pressure of previous step
	cumVol float64
	cumPit float64
}

// NewMain allocates and initialises a trip engine from the simulation
// input. Fatal input conditions (non-terminating stepping) are
// rejected here, before the run starts.
func NewMain(sim *inp.Simulation, verbose bool) (o *Main, err error) {
	if err = sim.Validate(); err != nil {
		return nil, err
	}
	o = new(Main)
	o.Sim = sim
	o.W = sim.Wellbore()
	o.ShowMsg = verbose

	o.Mud = sim.ActiveMud()
	if o.Mud == nil {
		return nil, chk.Err("simulation has no mud records")
	}
	var warn string
	o.Rheo, warn = o.Mud.Bingham(sim.Trip.DefPv, sim.Trip.DefYp)
	if warn != "" {
		o.Warnings = append(o.Warnings, warn)
	}

	cmd := sim.Trip.ControlMD
	if cmd <= 0 {
		cmd = sim.Trip.StartMD
	}
	o.Bal = Balance{
		TargetESD:   sim.Trip.TargetESD,
		ControlMD:   cmd,
		ControlTVD:  o.W.TVD(cmd),
		BaseDensity: o.Mud.Density,
		AllowNeg:    sim.Trip.AllowNegBP,
	}

	o.SS = &SurgeSwab{
		W:       o.W,
		Density: o.Mud.Density,
		Rheo:    o.Rheo,
		Speed:   sim.Trip.Speed,
		PipeEnd: sim.Trip.PipeEnd,
		Ecc:     sim.Trip.Ecc,
		Cling:   sim.Trip.Cling,
	}

	o.initStacks()
	o.surf = sim.Trip.BackPress0
	if o.ShowMsg {
		io.Pf("> Trip engine initialised: %g → %g m, step %g m\n", sim.Trip.StartMD, sim.Trip.EndMD, sim.Trip.Step)
	}
	return
}

// initStacks fills the three columns with the active mud at the start
// bit depth
func (o *Main) initStacks() {
	bit := o.Sim.Trip.StartMD
	td := o.W.Ann.Bottom()
	tvd := o.W.TVD
	dens := o.Mud.Density
	o.bitMD = bit

	if bit > 0 {
		annVol := o.W.VolumeBetween(0, bit, func(md float64) float64 { return o.W.AnnCap(md, bit) })
		o.annStk = Stack{{
			Side: SideAnnulus, TopMD: 0, BotMD: bit,
			TopTVD: 0, BotTVD: tvd(bit),
			Density: dens, Volume: annVol, Color: o.Mud.Color,
		}}
		strVol := o.W.VolumeBetween(0, bit, o.W.StringCap)
		o.strStk = Stack{{
			Side: SideString, TopMD: 0, BotMD: bit,
			TopTVD: 0, BotTVD: tvd(bit),
			Density: dens, Volume: strVol, Color: o.Mud.Color,
		}}
	}
	if td > bit {
		pocVol := o.W.VolumeBetween(bit, td, o.W.HoleCap)
		o.pocStk = Stack{{
			Side: SidePocket, TopMD: bit, BotMD: td,
			TopTVD: tvd(bit), BotTVD: tvd(td),
			Density: dens, Volume: pocVol, Color: o.Mud.Color,
		}}
	}
}

// Run executes the depth march. The loop checks ctx between steps and
// returns the partial step list (with a warning) when cancelled. The
// loop never overshoots: the final step size is clipped to land
// exactly on the end depth.
func (o *Main) Run(ctx context.Context) (err error) {
	t := &o.Sim.Trip
	out := t.TripOut()
	bit := t.StartMD

	// step 0: state at start depth, no movement
	o.emit(bit, 0, 0, SSPoint{BitMD: bit, BitTVD: o.W.TVD(bit)})

	for {
		select {
		case <-ctx.Done():
			o.Warnings = append(o.Warnings, io.Sf("run cancelled at bit depth %g m; partial results kept", bit))
			o.finish()
			return nil
		default:
		}

		var dz float64
		if out {
			if bit <= t.EndMD {
				break
			}
			dz = math.Min(t.Step, bit-t.EndMD)
			bit -= dz
		} else {
			if bit >= t.EndMD {
				break
			}
			dz = math.Min(t.Step, t.EndMD-bit)
			bit += dz
		}

		// float-valve state from the differential of the previous step
		fopen := o.floatFraction()

		// displacement and stack updates
		var stepVol float64
		if out {
			stepVol = o.pullStep(bit, dz, fopen)
		} else {
			stepVol = o.runInStep(bit, dz, fopen)
		}

		// surge/swab at the new bit depth
		ss := o.SS.At(bit)

		o.emit(bit, stepVol, fopen, ss)
	}
	o.finish()
	return
}

// floatFraction computes the float-valve open fraction from the
// pressure differential across the valve at the bit. The valve is not
// sticky: the fraction is recomputed every step and may re-close.
func (o *Main) floatFraction() float64 {
	crack := o.Sim.Trip.CrackPress
	inside := Hydrostatic(o.bitMD, o.W.TVD, o.strStk)
	outside := Hydrostatic(o.bitMD, o.W.TVD, o.annStk, o.pocStk) + o.surf
	dp := inside - outside
	if dp <= crack {
		return 0
	}
	ref := crack
	if ref < 1.0 {
		ref = 1.0 // kPa; avoids dividing by a zero threshold
	}
	f := (dp - crack) / ref
	if f > 1 {
		f = 1
	}
	return f
}

// effectiveArea returns the pipe displacement area given the pipe-end
// type and the float open fraction [m²]
func (o *Main) effectiveArea(sec inp.StringSection, fopen float64) float64 {
	if o.Sim.Trip.PipeEnd == inp.PipeEndOpen {
		return sec.SteelArea()
	}
	// closed end: full body unless the float passes bore fluid
	return sec.BodyArea() - fopen*sec.BoreArea()
}

// pullStep updates the stacks for one trip-out increment: bit moved up
// from bit+dz to bit. Returns the backfill volume pumped this step.
func (o *Main) pullStep(bit, dz, fopen float64) (stepVol float64) {
	oldBit := bit + dz
	tvd := o.W.TVD

	sec, found := o.W.Dstr.SectionAt(oldBit)
	if !found {
		// no pipe at this depth: nothing displaced, stacks unchanged
		o.bitMD = bit
		return 0
	}
	stepVol = o.effectiveArea(sec, fopen) * dz

	annCap := func(md float64) float64 { return o.W.AnnCap(md, bit) }
	volAnn := func(a, b float64) float64 { return o.W.VolumeBetween(a, b, annCap) }

	// annulus fluid between the new and old bit depths joins the pocket
	upper, lower := o.annStk.SplitAt(bit, tvd, volAnn)

	// fluid drains from the annulus bottom to fill the vacated pipe
	// volume; it lands on top of the pocket
	upper, drained := takeBottom(upper, stepVol)
	if short := stepVol - drained.TotalVolume(); short > minLayerVol {
		o.Warnings = append(o.Warnings, io.Sf("annulus above bit %g m holds %.4g m³ less than the vacated pipe volume; pocket under-filled", bit, short))
	}

	newPocket := append(Stack{}, drained...)
	newPocket = append(newPocket, lower...)
	newPocket = append(newPocket, o.pocStk...)
	newPocket = newPocket.Retag(SidePocket)
	o.pocStk = o.relayoutPocket(newPocket, bit)

	// backfill mud is pumped at the top of the annulus
	if stepVol > 0 {
		upper = upper.PushTop(Layer{
			Side: SideAnnulus, Density: o.Mud.Density,
			Volume: stepVol, Color: o.Mud.Color,
		})
	}
	o.annStk = o.relayoutAnnulus(upper, bit)

	// string contents ride with the pipe; the fraction passing the
	// open float stays behind and drains into the pocket
	shift := dz * (1.0 - fopen)
	strStk := o.strStk.Clone()
	for i := range strStk {
		strStk[i].TopMD -= shift
		strStk[i].BotMD -= shift
	}
	strCap := o.W.StringCap
	volStr := func(a, b float64) float64 { return o.W.VolumeBetween(a, b, strCap) }
	kept, passed := strStk.SplitAt(bit, tvd, volStr)
	if passed.TotalVolume() > minLayerVol {
		poc := append(passed.Retag(SidePocket), o.pocStk...)
		o.pocStk = o.relayoutPocket(poc, bit)
	}
	o.strStk = o.relayoutString(kept, bit)

	o.bitMD = bit
	return
}

// runInStep updates the stacks for one trip-in increment: bit moved
// down from bit-dz to bit. Returns the volume of returns produced at
// surface this step.
func (o *Main) runInStep(bit, dz, fopen float64) (stepVol float64) {
	oldBit := bit - dz
	tvd := o.W.TVD

	sec, found := o.W.Dstr.SectionAt(oldBit)
	if !found {
		o.bitMD = bit
		return 0
	}
	stepVol = o.effectiveArea(sec, fopen) * dz

	// pocket fluid between the old and new bit depths moves around the
	// pipe into the annulus bottom
	holeVol := func(a, b float64) float64 { return o.W.VolumeBetween(a, b, o.W.HoleCap) }
	entered, remaining := o.pocStk.SplitAt(bit, tvd, holeVol)
	o.pocStk = o.relayoutPocket(remaining, bit)

	ann := o.annStk.Clone()
	ann = append(ann, entered.Retag(SideAnnulus)...)

	// the displaced volume overflows at surface as returns
	ann, _ = takeTop(ann, stepVol)
	o.annStk = o.relayoutAnnulus(ann, bit)

	// string contents ride down with the pipe
	shift := dz * (1.0 - fopen)
	strStk := o.strStk.Clone()
	for i := range strStk {
		strStk[i].TopMD += shift
		strStk[i].BotMD += shift
	}
	o.strStk = o.relayoutString(strStk, bit)

	o.bitMD = bit
	return
}

// relayoutAnnulus recomputes annulus extents from the layer volumes,
// laying the stack down from surface
func (o *Main) relayoutAnnulus(stk Stack, bit float64) Stack {
	annCap := func(md float64) float64 { return o.W.AnnCap(md, bit) }
	span := func(top, vol float64) float64 {
		b, _ := o.W.SpanDown(top, o.W.Ann.Bottom(), vol, annCap)
		return b
	}
	return stk.Relayout(stk.TopMD(), span, o.W.TVD).Merge().Prune()
}

// relayoutPocket recomputes pocket extents from the layer volumes,
// laying the stack down from the bit
func (o *Main) relayoutPocket(stk Stack, bit float64) Stack {
	span := func(top, vol float64) float64 {
		b, _ := o.W.SpanDown(top, o.W.Ann.Bottom(), vol, o.W.HoleCap)
		return b
	}
	return stk.Relayout(bit, span, o.W.TVD).Merge().Prune()
}

// relayoutString recomputes string extents from the layer volumes
func (o *Main) relayoutString(stk Stack, bit float64) Stack {
	top := stk.TopMD()
	if top < 0 {
		top = 0
	}
	span := func(t, vol float64) float64 {
		b, _ := o.W.SpanDown(t, bit, vol, o.W.StringCap)
		return b
	}
	return stk.Relayout(top, span, o.W.TVD).Merge().Prune()
}

// emit solves the pressure balance and appends one immutable step
func (o *Main) emit(bit, stepVol, fopen float64, ss SSPoint) {
	out := o.Sim.Trip.TripOut()

	// dynamic correction: compensate swab when pulling, credit surge
	// when running in
	var dyn float64
	if out {
		dyn = ss.Surge // magnitude of the loss
	} else {
		dyn = -ss.Surge
	}

	res := o.Bal.Solve(o.annStk, o.pocStk, bit, o.W.TVD(bit), o.W.TVD, dyn)
	if res.Warning != "" {
		o.Warnings = append(o.Warnings, res.Warning)
	}
	o.surf = res.SurfPress

	o.cumVol += stepVol
	pit := stepVol
	if out {
		pit = -stepVol // backfill is pumped from the pits
	}
	o.cumPit += pit

	s := &Step{
		Index:      len(o.Steps),
		BitMD:      bit,
		BitTVD:     o.W.TVD(bit),
		TargetP:    PressFromHead(o.Bal.TargetESD, o.Bal.ControlTVD),
		SurfPress:  res.SurfPress,
		ESDControl: res.ESDControl,
		ESDBit:     res.ESDBit,
		FloatOpen:  fopen,
		Surge:      ss.Surge,
		Swab:       ss.Swab,
		StepVol:    stepVol,
		CumVol:     o.cumVol,
		PitGain:    pit,
		CumPitGain: o.cumPit,
		LayString:  o.strStk.Clone(),
		LayAnnulus: o.annStk.Clone(),
		LayPocket:  o.pocStk.Clone(),
	}
	o.Steps = append(o.Steps, s)

	if o.ShowMsg {
		io.Pf("> step %3d: bit=%8.1f m  SBP=%8.2f kPa  ESD=%7.1f kg/m³  float=%s\n",
			s.Index, s.BitMD, s.SurfPress, s.ESDControl, s.FloatState())
	}
}

// finish computes the run summary
func (o *Main) finish() {
	o.Summary = NewSummary(o.Steps, o.Warnings)
	if o.ShowMsg {
		io.PfGreen("> Run finished: %d steps\n", len(o.Steps))
	}
}

// takeBottom removes the given volume from the bottom of the stack,
// returning the kept upper part and the removed layers (surface-first
// order). A straddling layer is split pro-rata by volume.
func takeBottom(stk Stack, vol float64) (kept, taken Stack) {
	rem := vol
	kept = stk.Clone()
	for rem > minLayerVol && len(kept) > 0 {
		last := kept[len(kept)-1]
		if last.Volume <= rem+minLayerVol {
			taken = append(Stack{last}, taken...)
			kept = kept[:len(kept)-1]
			rem -= last.Volume
			continue
		}
		frac := rem / last.Volume
		cut := last.BotMD - frac*(last.BotMD-last.TopMD)
		cutTVD := last.BotTVD - frac*(last.BotTVD-last.TopTVD)
		part := last
		part.TopMD = cut
		part.TopTVD = cutTVD
		part.Volume = rem
		kept[len(kept)-1].BotMD = cut
		kept[len(kept)-1].BotTVD = cutTVD
		kept[len(kept)-1].Volume -= rem
		taken = append(Stack{part}, taken...)
		rem = 0
	}
	return
}

// takeTop removes the given volume from the top of the stack,
// returning the kept lower part and the removed layers
func takeTop(stk Stack, vol float64) (kept, taken Stack) {
	rem := vol
	kept = stk.Clone()
	for rem > minLayerVol && len(kept) > 0 {
		first := kept[0]
		if first.Volume <= rem+minLayerVol {
			taken = append(taken, first)
			kept = kept[1:]
			rem -= first.Volume
			continue
		}
		frac := rem / first.Volume
		cut := first.TopMD + frac*(first.BotMD-first.TopMD)
		cutTVD := first.TopTVD + frac*(first.BotTVD-first.TopTVD)
		part := first
		part.BotMD = cut
		part.BotTVD = cutTVD
		part.Volume = rem
		kept[0].TopMD = cut
		kept[0].TopTVD = cutTVD
		kept[0].Volume -= rem
		taken = append(taken, part)
		rem = 0
	}
	return
}
