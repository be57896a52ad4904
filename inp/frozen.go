// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/cpmech/gosl/io"
)

// Staleness tolerances for the advisory diff list
const (
	diffTolGeom = 1e-4 // geometry delta [m]
	diffTolDens = 1.0  // density delta [kg/m³]
)

// Frozen holds a self-contained copy of the geometry/mud/survey state
// captured when a simulation run is saved. Two snapshots are equal iff
// their content hashes match; the hash covers every numeric field of
// every frozen entity in the fixed order geometry → mud → survey.
type Frozen struct {
	Dstr DrillString `json:"dstring"`
	Ann  Annulus     `json:"annulus"`
	Muds []*Mud      `json:"muds"`
	Srv  *Survey     `json:"survey"`
}

// Freeze captures a deep copy of the simulation input
func Freeze(sim *Simulation) (o *Frozen) {
	o = new(Frozen)
	for _, s := range sim.Dstr {
		c := *s
		o.Dstr = append(o.Dstr, &c)
	}
	for _, s := range sim.Ann {
		c := *s
		o.Ann = append(o.Ann, &c)
	}
	for _, m := range sim.Muds {
		c := *m
		o.Muds = append(o.Muds, &c)
	}
	if sim.Srv != nil {
		o.Srv = new(Survey)
		for _, st := range sim.Srv.Stations {
			c := *st
			o.Srv.Stations = append(o.Srv.Stations, &c)
		}
	}
	return
}

// Hash computes the content hash of the snapshot. The hash is stable
// for identical numeric content regardless of memory identity: each
// float64 is serialized as its big-endian IEEE-754 bits.
func (o *Frozen) Hash() [sha256.Size]byte {
	h := sha256.New()
	put := func(v float64) {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	}
	for _, s := range o.Dstr {
		put(s.Top)
		put(s.Length)
		put(s.OD)
		put(s.ID)
	}
	for _, s := range o.Ann {
		put(s.Top)
		put(s.Length)
		put(s.ID)
		put(s.OD)
		if s.Cased {
			put(1)
		} else {
			put(0)
		}
	}
	for _, m := range o.Muds {
		put(m.Density)
		put(m.Pv)
		put(m.Yp)
		put(m.N)
		put(m.K)
		put(m.Dial600)
		put(m.Dial300)
	}
	if o.Srv != nil {
		for _, st := range o.Srv.Stations {
			put(st.MD)
			put(st.TVD)
			put(st.Inc)
		}
	}
	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	return sum
}

// ShortHash returns the display form of the content hash: the first
// eight bytes in hex
func (o *Frozen) ShortHash() string {
	sum := o.Hash()
	return hex.EncodeToString(sum[:8])
}

// Stale tells whether the current simulation input differs from the
// snapshot (by content hash)
func (o *Frozen) Stale(sim *Simulation) bool {
	cur := Freeze(sim)
	return o.Hash() != cur.Hash()
}

// Diff returns a human-readable list of what changed between the
// snapshot and the current simulation input. The list is advisory
// text for the operator; the engine never consumes it.
func (o *Frozen) Diff(sim *Simulation) (changes []string) {
	cur := Freeze(sim)

	// geometry: drill string
	if len(o.Dstr) != len(cur.Dstr) {
		changes = append(changes, io.Sf("drill-string section count changed: %d → %d", len(o.Dstr), len(cur.Dstr)))
	} else {
		for i := range o.Dstr {
			a, b := o.Dstr[i], cur.Dstr[i]
			if delta(a.Top, b.Top) > diffTolGeom || delta(a.Length, b.Length) > diffTolGeom ||
				delta(a.OD, b.OD) > diffTolGeom || delta(a.ID, b.ID) > diffTolGeom {
				changes = append(changes, io.Sf("drill-string section %d geometry changed", i))
			}
		}
	}

	// geometry: annulus
	if len(o.Ann) != len(cur.Ann) {
		changes = append(changes, io.Sf("annulus section count changed: %d → %d", len(o.Ann), len(cur.Ann)))
	} else {
		for i := range o.Ann {
			a, b := o.Ann[i], cur.Ann[i]
			if delta(a.Top, b.Top) > diffTolGeom || delta(a.Length, b.Length) > diffTolGeom ||
				delta(a.ID, b.ID) > diffTolGeom || delta(a.OD, b.OD) > diffTolGeom || a.Cased != b.Cased {
				changes = append(changes, io.Sf("annulus section %d geometry changed", i))
			}
		}
	}

	// muds
	if len(o.Muds) != len(cur.Muds) {
		changes = append(changes, io.Sf("mud count changed: %d → %d", len(o.Muds), len(cur.Muds)))
	} else {
		for i := range o.Muds {
			a, b := o.Muds[i], cur.Muds[i]
			if delta(a.Density, b.Density) > diffTolDens {
				changes = append(changes, io.Sf("mud %q density changed: %g → %g kg/m³", a.Name, a.Density, b.Density))
			}
		}
	}

	// survey
	na, nb := 0, 0
	if o.Srv != nil {
		na = len(o.Srv.Stations)
	}
	if cur.Srv != nil {
		nb = len(cur.Srv.Stations)
	}
	if na != nb {
		changes = append(changes, io.Sf("survey station count changed: %d → %d", na, nb))
	}
	return
}

// delta returns |a-b|
func delta(a, b float64) float64 { return math.Abs(a - b) }
