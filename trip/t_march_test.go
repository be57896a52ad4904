// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/e1tester2019/gowell/inp"
)

func Test_march01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march01. reference trip-out: 3000 m to surface")

	m, err := NewMain(refSim(), chk.Verbose)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}

	// 30 moves of 100 m plus the initial state
	if len(m.Steps) != 31 {
		tst.Errorf("expected 31 steps; got %d\n", len(m.Steps))
		return
	}
	chk.Float64(tst, "first bit depth", 1e-15, m.Steps[0].BitMD, 3000)
	chk.Float64(tst, "final bit depth", 1e-15, m.Steps[30].BitMD, 0)

	// closed pipe end and a closed float: each step displaces the full
	// pipe body cross-section
	body := math.Pi * 0.127 * 0.127 / 4.0
	var cum float64
	for i, s := range m.Steps {
		if s.Index != i {
			tst.Errorf("step indexes must be strictly increasing\n")
			return
		}
		if i > 0 {
			if s.BitMD >= m.Steps[i-1].BitMD {
				tst.Errorf("bit depth must decrease while pulling out\n")
				return
			}
			chk.Float64(tst, io.Sf("step %d volume", i), 1e-12, s.StepVol, body*100)
			chk.Float64(tst, io.Sf("step %d float", i), 1e-15, s.FloatOpen, 0)
		}
		cum += s.StepVol
		chk.Float64(tst, io.Sf("step %d cumvol", i), 1e-12, s.CumVol, cum)
		chk.Float64(tst, io.Sf("step %d pit", i), 1e-12, s.PitGain, -s.StepVol)
		if s.SurfPress < 0 {
			tst.Errorf("back-pressure must not be negative by default\n")
			return
		}
		if s.ESDControl < 1200-1e-9 {
			tst.Errorf("ESD at control fell below target: %v\n", s.ESDControl)
			return
		}
	}

	// at surface there is no swab to compensate: the well stands dead on
	// the mud column alone
	last := m.Steps[30]
	chk.Float64(tst, "final SBP", 1e-9, last.SurfPress, 0)
	chk.Float64(tst, "final ESD", 1e-6, last.ESDControl, 1200)

	// summary aggregates
	chk.Int(tst, "summary nsteps", m.Summary.Nsteps, 31)
	chk.Float64(tst, "summary volume", 1e-12, m.Summary.TotalVol, cum)
	chk.Float64(tst, "summary pit", 1e-12, m.Summary.TotalPit, -cum)
	if m.Summary.MaxSurf <= 0 {
		tst.Errorf("swab compensation must require back-pressure at depth\n")
	}
	if chk.Verbose {
		m.Summary.Print()
	}
}

func Test_march02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march02. fluid volume conservation")

	m, err := NewMain(refSim(), false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}

	// the only fluid entering the system is the backfill; everything
	// else just moves between the string, the annulus and the pocket
	s0 := m.Steps[0]
	total0 := s0.LayString.TotalVolume() + s0.LayAnnulus.TotalVolume() + s0.LayPocket.TotalVolume()
	for _, s := range m.Steps {
		total := s.LayString.TotalVolume() + s.LayAnnulus.TotalVolume() + s.LayPocket.TotalVolume()
		chk.Float64(tst, io.Sf("step %d total fluid", s.Index), 1e-9, total, total0+s.CumVol)
	}

	// the final pocket holds the whole open hole
	last := m.Steps[len(m.Steps)-1]
	hole := math.Pi * 0.216 * 0.216 / 4.0
	chk.Float64(tst, "final pocket volume", 1e-9, last.LayPocket.TotalVolume(), hole*3000)
	chk.Float64(tst, "final pocket bottom", 1e-9, last.LayPocket.BotMD(), 3000)
}

func Test_march03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march03. step clipping and cancellation")

	// a step size that does not divide the range: the last step is
	// clipped to land exactly on the end depth
	sim := refSim()
	sim.Trip.Step = 700
	m, err := NewMain(sim, false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	if len(m.Steps) != 6 {
		tst.Errorf("expected 6 steps (4×700 + 200 + start); got %d\n", len(m.Steps))
		return
	}
	chk.Float64(tst, "clipped landing", 1e-15, m.Steps[5].BitMD, 0)
	chk.Float64(tst, "clipped step size", 1e-12, m.Steps[5].StepVol, math.Pi*0.127*0.127/4.0*200)

	// a cancelled context keeps the partial results and warns
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err = NewMain(refSim(), false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(ctx); err != nil {
		tst.Errorf("cancelled run must not fail: %v\n", err)
		return
	}
	if len(m.Steps) != 1 {
		tst.Errorf("cancelled run must keep the initial step only; got %d\n", len(m.Steps))
		return
	}
	if len(m.Summary.Warnings) == 0 {
		tst.Errorf("cancellation must leave a warning\n")
	}
}

func Test_march04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march04. fatal initialisation errors")

	sim := refSim()
	sim.Trip.Step = 0
	if _, err := NewMain(sim, false); err == nil {
		tst.Errorf("zero depth step must be fatal\n")
		return
	}

	sim = refSim()
	sim.Muds = nil
	if _, err := NewMain(sim, false); err == nil {
		tst.Errorf("missing mud records must be fatal\n")
		return
	}

	sim = refSim()
	sim.Trip.PipeEnd = "welded"
	if _, err := NewMain(sim, false); err == nil {
		tst.Errorf("unknown pipe end must be fatal\n")
	}
}

func Test_march05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march05. trip-in produces returns at surface")

	sim := refSim()
	sim.Trip.StartMD = 500
	sim.Trip.EndMD = 1500
	sim.Trip.Step = 250
	sim.Trip.Speed = 0.5
	sim.Trip.ControlMD = 3000

	m, err := NewMain(sim, false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	if len(m.Steps) != 5 {
		tst.Errorf("expected 5 steps; got %d\n", len(m.Steps))
		return
	}
	chk.Float64(tst, "final bit depth", 1e-15, m.Steps[4].BitMD, 1500)

	body := math.Pi * 0.127 * 0.127 / 4.0
	for i, s := range m.Steps {
		if i == 0 {
			continue
		}
		if s.BitMD <= m.Steps[i-1].BitMD {
			tst.Errorf("bit depth must increase while running in\n")
			return
		}
		chk.Float64(tst, io.Sf("step %d returns", i), 1e-12, s.StepVol, body*250)
		chk.Float64(tst, io.Sf("step %d pit gain", i), 1e-12, s.PitGain, s.StepVol)
	}
	chk.Float64(tst, "net pit gain", 1e-12, m.Summary.TotalPit, body*1000)

	// surging down a closed pipe raises the equivalent density at the
	// bit above the static column
	if m.Steps[2].Surge <= 0 {
		tst.Errorf("running in must surge; got %v\n", m.Steps[2].Surge)
	}
}

func Test_march06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("march06. tight annulus cannot fill the vacated pipe")

	// the pipe body displaces more than the whole annulus above the bit
	// holds: the drain comes up short and the run must say so
	sim := refSim()
	sim.Ann = inp.Annulus{{Top: 0, Length: 1000, ID: 0.15}}
	sim.Dstr = inp.DrillString{{Top: 0, Length: 1000, OD: 0.127, ID: 0.1086}}
	sim.Trip.StartMD = 1000
	sim.Trip.EndMD = 0
	sim.Trip.Step = 500
	sim.Trip.ControlMD = 1000

	m, err := NewMain(sim, false)
	if err != nil {
		tst.Errorf("cannot initialise engine: %v\n", err)
		return
	}
	if err := m.Run(context.Background()); err != nil {
		tst.Errorf("run failed: %v\n", err)
		return
	}
	chk.Float64(tst, "final bit depth", 1e-15, m.Steps[len(m.Steps)-1].BitMD, 0)

	body := math.Pi * 0.127 * 0.127 / 4.0
	annCap := math.Pi * (0.15*0.15 - 0.127*0.127) / 4.0
	if body*500 <= annCap*500 {
		tst.Errorf("scenario must displace more than the annulus holds\n")
		return
	}
	if len(m.Warnings) == 0 {
		tst.Errorf("under-filled pocket must leave a warning\n")
	}
}
