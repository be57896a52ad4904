// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data for trip simulations: wellbore
// geometry, directional surveys, mud records and run configurations
package inp

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// StringSection holds one drill-string (or casing-string) section.
// Sections are ordered by top depth and must not overlap. Bottom depth
// is always derived as Top + Length.
type StringSection struct {
	Top    float64 `json:"top"`    // measured depth of top of section [m]
	Length float64 `json:"length"` // section length [m]
	OD     float64 `json:"od"`     // outer diameter [m]
	ID     float64 `json:"id"`     // inner diameter [m]
}

// AnnulusSection holds one annulus (open-hole or cased-hole) section
type AnnulusSection struct {
	Top    float64 `json:"top"`    // measured depth of top of section [m]
	Length float64 `json:"length"` // section length [m]
	ID     float64 `json:"id"`     // inner diameter of hole or casing [m]
	OD     float64 `json:"od"`     // outer diameter of casing; 0 for open hole [m]
	Cased  bool    `json:"cased"`  // section is cased
}

// Bottom returns the measured depth at the bottom of the section
func (o StringSection) Bottom() float64 { return o.Top + o.Length }

// Bottom returns the measured depth at the bottom of the section
func (o AnnulusSection) Bottom() float64 { return o.Top + o.Length }

// BoreArea returns the internal flow area of the string section [m²]
func (o StringSection) BoreArea() float64 { return math.Pi * o.ID * o.ID / 4.0 }

// SteelArea returns the cross-sectional area of the pipe wall [m²]
func (o StringSection) SteelArea() float64 {
	return math.Pi * (o.OD*o.OD - o.ID*o.ID) / 4.0
}

// BodyArea returns the full closed-end displacement area of the pipe [m²]
func (o StringSection) BodyArea() float64 { return math.Pi * o.OD * o.OD / 4.0 }

// HoleArea returns the open-hole flow area of the annulus section [m²]
func (o AnnulusSection) HoleArea() float64 { return math.Pi * o.ID * o.ID / 4.0 }

// DrillString is an ordered list of string sections spanning surface to
// the bottom of the string
type DrillString []*StringSection

// Annulus is an ordered list of annulus sections spanning surface to
// total depth
type Annulus []*AnnulusSection

// SectionAt returns the string section covering measured depth md.
// found is false when no section covers md; callers must handle this
// case explicitly (tripping plans may query beyond defined geometry).
func (o DrillString) SectionAt(md float64) (sec StringSection, found bool) {
	for _, s := range o {
		if md >= s.Top && md <= s.Bottom() {
			return *s, true
		}
	}
	return
}

// SectionAt returns the annulus section covering measured depth md
func (o Annulus) SectionAt(md float64) (sec AnnulusSection, found bool) {
	for _, s := range o {
		if md >= s.Top && md <= s.Bottom() {
			return *s, true
		}
	}
	return
}

// Bottom returns the measured depth at the bottom of the deepest section
func (o DrillString) Bottom() (b float64) {
	for _, s := range o {
		if s.Bottom() > b {
			b = s.Bottom()
		}
	}
	return
}

// Bottom returns the measured depth at the bottom of the deepest section
func (o Annulus) Bottom() (b float64) {
	for _, s := range o {
		if s.Bottom() > b {
			b = s.Bottom()
		}
	}
	return
}

// Validate checks ordering, overlap and diameters
func (o DrillString) Validate() (err error) {
	for i, s := range o {
		if s.Length <= 0 {
			return chk.Err("drill-string section %d has non-positive length %g", i, s.Length)
		}
		if s.ID <= 0 || s.OD <= s.ID {
			return chk.Err("drill-string section %d has inconsistent diameters OD=%g ID=%g", i, s.OD, s.ID)
		}
		if i > 0 && s.Top < o[i-1].Bottom()-1e-9 {
			return chk.Err("drill-string sections %d and %d overlap", i-1, i)
		}
	}
	return
}

// Validate checks ordering, overlap and diameters
func (o Annulus) Validate() (err error) {
	for i, s := range o {
		if s.Length <= 0 {
			return chk.Err("annulus section %d has non-positive length %g", i, s.Length)
		}
		if s.ID <= 0 {
			return chk.Err("annulus section %d has non-positive inner diameter %g", i, s.ID)
		}
		if i > 0 && s.Top < o[i-1].Bottom()-1e-9 {
			return chk.Err("annulus sections %d and %d overlap", i-1, i)
		}
	}
	return
}

// Wellbore bundles the geometry and the directional survey of one well.
// All capacity functions return m³ per metre of measured depth and are
// piecewise constant between section boundaries.
type Wellbore struct {
	Dstr DrillString // drill string, surface to bit
	Ann  Annulus     // annulus, surface to total depth
	Srv  *Survey     // directional survey (may be nil => vertical well)
}

// TVD returns true vertical depth at measured depth md
func (o *Wellbore) TVD(md float64) float64 {
	if o.Srv == nil {
		return md
	}
	return o.Srv.TVD(md)
}

// StringCap returns the internal capacity of the string at md [m³/m];
// zero when no section covers md
func (o *Wellbore) StringCap(md float64) float64 {
	if s, found := o.Dstr.SectionAt(md); found {
		return s.BoreArea()
	}
	return 0
}

// AnnCap returns the annular capacity at md with the pipe in the hole
// down to bitMD [m³/m]. Below the bit the full hole capacity is used.
func (o *Wellbore) AnnCap(md, bitMD float64) float64 {
	a, found := o.Ann.SectionAt(md)
	if !found {
		return 0
	}
	a2 := a.HoleArea()
	if md <= bitMD {
		if s, ok := o.Dstr.SectionAt(md); ok {
			a2 -= s.BodyArea()
		}
	}
	if a2 < 0 {
		a2 = 0
	}
	return a2
}

// HoleCap returns the full open-hole capacity at md [m³/m]
func (o *Wellbore) HoleCap(md float64) float64 {
	if a, found := o.Ann.SectionAt(md); found {
		return a.HoleArea()
	}
	return 0
}

// breakpoints collects all section boundaries within [a,b]
func (o *Wellbore) breakpoints(a, b float64) (pts []float64) {
	pts = append(pts, a, b)
	add := func(x float64) {
		if x > a && x < b {
			pts = append(pts, x)
		}
	}
	for _, s := range o.Dstr {
		add(s.Top)
		add(s.Bottom())
	}
	for _, s := range o.Ann {
		add(s.Top)
		add(s.Bottom())
	}
	sort.Float64s(pts)
	return
}

// VolumeBetween integrates a piecewise-constant capacity function over
// the measured-depth interval [mdA, mdB] (order-insensitive) [m³]
func (o *Wellbore) VolumeBetween(mdA, mdB float64, capfcn func(md float64) float64) (vol float64) {
	a, b := mdA, mdB
	if a > b {
		a, b = b, a
	}
	pts := o.breakpoints(a, b)
	for i := 1; i < len(pts); i++ {
		mid := (pts[i-1] + pts[i]) / 2.0
		vol += capfcn(mid) * (pts[i] - pts[i-1])
	}
	return
}

// SpanUp returns the measured depth of the top of a fluid column with
// the given volume whose bottom sits at botMD, using the capacity
// function. If the column would extend above surface the top clamps to
// zero and the leftover volume is returned.
func (o *Wellbore) SpanUp(botMD, volume float64, capfcn func(md float64) float64) (topMD, leftover float64) {
	pts := o.breakpoints(0, botMD)
	rem := volume
	topMD = botMD
	for i := len(pts) - 1; i > 0; i-- {
		lo, hi := pts[i-1], pts[i]
		mid := (lo + hi) / 2.0
		c := capfcn(mid)
		seg := c * (hi - lo)
		if c <= 0 {
			topMD = lo
			continue
		}
		if rem <= seg {
			topMD = hi - rem/c
			return topMD, 0
		}
		rem -= seg
		topMD = lo
	}
	return 0, rem
}

// SpanDown returns the measured depth of the bottom of a fluid column
// with the given volume whose top sits at topMD. If the column would
// extend below maxMD the bottom clamps to maxMD and the leftover volume
// is returned.
func (o *Wellbore) SpanDown(topMD, maxMD, volume float64, capfcn func(md float64) float64) (botMD, leftover float64) {
	pts := o.breakpoints(topMD, maxMD)
	rem := volume
	botMD = topMD
	for i := 1; i < len(pts); i++ {
		lo, hi := pts[i-1], pts[i]
		mid := (lo + hi) / 2.0
		c := capfcn(mid)
		seg := c * (hi - lo)
		if c <= 0 {
			botMD = hi
			continue
		}
		if rem <= seg {
			botMD = lo + rem/c
			return botMD, 0
		}
		rem -= seg
		botMD = hi
	}
	return maxMD, rem
}
