// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Pipe-end types: a closed end displaces the full pipe OD; an open end
// displaces the pipe wall only
const (
	PipeEndClosed = "closed"
	PipeEndOpen   = "open"
)

// TripData holds the configuration of one trip run
type TripData struct {
	Desc       string  `json:"desc"`       // description of run
	StartMD    float64 `json:"startmd"`    // bit measured depth at start [m]
	EndMD      float64 `json:"endmd"`      // bit measured depth at end [m]
	Step       float64 `json:"step"`       // depth step size (positive) [m]
	Speed      float64 `json:"speed"`      // trip speed [m/min]; positive = running in
	TargetESD  float64 `json:"targetesd"`  // target equivalent static density at control depth [kg/m³]
	ControlMD  float64 `json:"controlmd"`  // control measured depth [m]; 0 => start depth
	CrackPress float64 `json:"crackpress"` // float-valve crack pressure threshold [kPa]
	BackPress0 float64 `json:"backpress0"` // initial surface back-pressure [kPa]
	PipeEnd    string  `json:"pipeend"`    // "closed" or "open"
	Ecc        float64 `json:"ecc"`        // eccentricity factor (≥1)
	Cling      float64 `json:"cling"`      // manual clinging constant; 0 => Burkhardt
	ActiveMud  string  `json:"activemud"`  // name of active (backfill) mud
	AllowNegBP bool    `json:"allownegbp"` // allow negative (held-open) back-pressure
	DefPv      float64 `json:"defpv"`      // default plastic viscosity for undetermined rheology [Pa·s]
	DefYp      float64 `json:"defyp"`      // default yield point for undetermined rheology [Pa]
}

// SetDefault sets default values
func (o *TripData) SetDefault() {
	o.PipeEnd = PipeEndClosed
	o.Ecc = 1.0
	o.DefPv = 0.02
	o.DefYp = 5.0
}

// TripOut tells whether this run pulls pipe out of the hole
func (o *TripData) TripOut() bool { return o.EndMD < o.StartMD }

// Validate rejects configurations that would make the depth march
// non-terminating. These are the only fatal input conditions; every
// other degenerate input degrades gracefully during the run.
func (o *TripData) Validate() (err error) {
	if math.IsNaN(o.Step) || o.Step <= 0 {
		return chk.Err("depth step must be positive; got %v", o.Step)
	}
	if o.StartMD == o.EndMD {
		return chk.Err("start and end depths are both %g; nothing to march", o.StartMD)
	}
	if o.StartMD < 0 || o.EndMD < 0 {
		return chk.Err("negative bit depth (start=%g end=%g)", o.StartMD, o.EndMD)
	}
	if o.Speed != 0 {
		runningIn := o.Speed > 0
		if runningIn == o.TripOut() {
			return chk.Err("trip speed sign (%g m/min) disagrees with depth range %g → %g m", o.Speed, o.StartMD, o.EndMD)
		}
	}
	if o.PipeEnd != PipeEndClosed && o.PipeEnd != PipeEndOpen {
		return chk.Err("unknown pipe end type %q", o.PipeEnd)
	}
	if o.Ecc < 1.0 {
		return chk.Err("eccentricity factor must be ≥ 1; got %g", o.Ecc)
	}
	return
}

// Simulation holds all input data of one trip simulation
type Simulation struct {

	// input
	Dstr DrillString `json:"dstring"` // drill-string sections
	Ann  Annulus     `json:"annulus"` // annulus sections
	Srv  *Survey     `json:"survey"`  // directional survey (optional)
	Muds []*Mud      `json:"muds"`    // mud records
	Trip TripData    `json:"trip"`    // trip configuration

	// derived
	Key string // simulation key; e.g. tripout01.json => tripout01
}

// ReadTrip reads a trip simulation definition from a JSON file
func ReadTrip(path string) (*Simulation, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, chk.Err("cannot read trip file %q", path)
	}
	b := io.ReadFile(path)
	var o Simulation
	o.Trip.SetDefault()
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot unmarshal trip file %q: %v", path, err)
	}
	o.Key = io.FnKey(path)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Validate checks all input data
func (o *Simulation) Validate() (err error) {
	if err = o.Dstr.Validate(); err != nil {
		return
	}
	if err = o.Ann.Validate(); err != nil {
		return
	}
	if o.Srv != nil {
		if err = o.Srv.Validate(); err != nil {
			return
		}
	}
	for _, m := range o.Muds {
		if err = m.Validate(); err != nil {
			return
		}
	}
	return o.Trip.Validate()
}

// Wellbore returns the wellbore geometry bundle
func (o *Simulation) Wellbore() *Wellbore {
	return &Wellbore{Dstr: o.Dstr, Ann: o.Ann, Srv: o.Srv}
}

// MudByName returns the mud record with the given name; nil if absent
func (o *Simulation) MudByName(name string) *Mud {
	for _, m := range o.Muds {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// ActiveMud returns the configured active mud, or the first mud record
// when the name is not set; nil when there are no muds at all
func (o *Simulation) ActiveMud() *Mud {
	if m := o.MudByName(o.Trip.ActiveMud); m != nil {
		return m
	}
	if len(o.Muds) > 0 {
		return o.Muds[0]
	}
	return nil
}
