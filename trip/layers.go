// Copyright 2019 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trip

// Side identifies which column a fluid layer belongs to
type Side int

const (
	SideString  Side = iota // inside the drill string
	SideAnnulus             // annulus between string and hole
	SidePocket              // displaced volume below the bit
)

// String returns a label for the side
func (s Side) String() string {
	switch s {
	case SideString:
		return "string"
	case SideAnnulus:
		return "annulus"
	case SidePocket:
		return "pocket"
	}
	return "unknown"
}

// tolerances for layer bookkeeping
const (
	mergeDensTol = 0.1   // densities closer than this merge [kg/m³]
	minLayerLen  = 1e-9  // layers shorter than this are pruned [m]
	minLayerVol  = 1e-12 // layers smaller than this are pruned [m³]
)

// Layer holds one fluid segment inside a column. Layers within one
// stack are contiguous and non-overlapping by measured depth, ordered
// from surface (index 0) downward. Volume is the authoritative
// quantity; measured/vertical extents are derived from it whenever a
// stack is laid out against the wellbore geometry.
type Layer struct {
	Side    Side    // column this layer lives in
	TopMD   float64 // measured depth of top [m]
	BotMD   float64 // measured depth of bottom [m]
	TopTVD  float64 // true vertical depth of top [m]
	BotTVD  float64 // true vertical depth of bottom [m]
	Density float64 // fluid density [kg/m³]
	Volume  float64 // fluid volume [m³]
	Color   string  // display tag (optional)
}

// Height returns the vertical height of the layer [m]
func (o Layer) Height() float64 { return o.BotTVD - o.TopTVD }

// Press returns the hydrostatic pressure contribution of the layer [kPa]
func (o Layer) Press() float64 { return PressFromHead(o.Density, o.Height()) }

// Stack is an ordered sequence of fluid layers, surface first. All
// operations are value-semantics: they return new stacks and never
// mutate the receiver, so a step's stacks can be kept as an immutable
// snapshot while the next step is computed.
type Stack []Layer

// Clone returns a deep copy of the stack
func (o Stack) Clone() Stack {
	c := make(Stack, len(o))
	copy(c, o)
	return c
}

// TotalVolume returns the summed volume of all layers [m³]
func (o Stack) TotalVolume() (v float64) {
	for _, l := range o {
		v += l.Volume
	}
	return
}

// TopMD returns the measured depth of the top of the stack; zero for
// an empty stack
func (o Stack) TopMD() float64 {
	if len(o) == 0 {
		return 0
	}
	return o[0].TopMD
}

// BotMD returns the measured depth of the bottom of the stack; zero
// for an empty stack
func (o Stack) BotMD() float64 {
	if len(o) == 0 {
		return 0
	}
	return o[len(o)-1].BotMD
}

// PushTop returns a new stack with the layer prepended at the surface
// end
func (o Stack) PushTop(l Layer) Stack {
	c := make(Stack, 0, len(o)+1)
	c = append(c, l)
	c = append(c, o...)
	return c
}

// Append returns a new stack with the layer added at the bottom end
func (o Stack) Append(l Layer) Stack {
	c := o.Clone()
	return append(c, l)
}

// Merge returns a new stack with adjacent layers of near-identical
// density combined. Extents span both layers; volumes add.
func (o Stack) Merge() Stack {
	if len(o) < 2 {
		return o.Clone()
	}
	c := make(Stack, 0, len(o))
	c = append(c, o[0])
	for _, l := range o[1:] {
		last := &c[len(c)-1]
		if diff := l.Density - last.Density; diff < mergeDensTol && diff > -mergeDensTol {
			last.BotMD = l.BotMD
			last.BotTVD = l.BotTVD
			last.Volume += l.Volume
			continue
		}
		c = append(c, l)
	}
	return c
}

// Prune returns a new stack with degenerate (zero-length or
// zero-volume) layers removed
func (o Stack) Prune() Stack {
	c := make(Stack, 0, len(o))
	for _, l := range o {
		if l.BotMD-l.TopMD < minLayerLen || l.Volume < minLayerVol {
			continue
		}
		c = append(c, l)
	}
	return c
}

// SplitAt returns the parts of the stack above and below measured
// depth md. A layer straddling md is split; the partial volumes are
// computed with volBetween, which integrates the column capacity over
// a measured-depth interval.
func (o Stack) SplitAt(md float64, tvdfcn func(md float64) float64, volBetween func(a, b float64) float64) (upper, lower Stack) {
	for _, l := range o {
		switch {
		case l.BotMD <= md+minLayerLen:
			upper = append(upper, l)
		case l.TopMD >= md-minLayerLen:
			lower = append(lower, l)
		default:
			tvdAt := tvdfcn(md)
			up := l
			up.BotMD = md
			up.BotTVD = tvdAt
			up.Volume = volBetween(l.TopMD, md)
			lo := l
			lo.TopMD = md
			lo.TopTVD = tvdAt
			lo.Volume = l.Volume - up.Volume
			if lo.Volume < 0 {
				lo.Volume = 0
			}
			upper = append(upper, up)
			lower = append(lower, lo)
		}
	}
	return
}

// Relayout returns a new stack with the measured and vertical extents
// recomputed from the layer volumes, laying the stack downward from
// topMD. spanDown inverts a volume into a bottom depth for a column
// whose top sits at the given measured depth. Layers that no longer
// fit (zero leftover capacity) keep degenerate extents and are pruned
// by the caller.
func (o Stack) Relayout(topMD float64, spanDown func(top, vol float64) (bot float64), tvdfcn func(md float64) float64) Stack {
	c := make(Stack, 0, len(o))
	top := topMD
	for _, l := range o {
		bot := spanDown(top, l.Volume)
		n := l
		n.TopMD = top
		n.BotMD = bot
		n.TopTVD = tvdfcn(top)
		n.BotTVD = tvdfcn(bot)
		c = append(c, n)
		top = bot
	}
	return c
}

// Retag returns a new stack with every layer assigned to the given
// side
func (o Stack) Retag(side Side) Stack {
	c := o.Clone()
	for i := range c {
		c[i].Side = side
	}
	return c
}
