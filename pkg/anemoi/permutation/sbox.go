package permutation

import "github.com/dannywillems/anemoi/pkg/anemoi/field"

// ApplySBox applies the flystel S-box in place to state, which must have
// length p.M. It operates on the two halves X = state[0:c], Y = state[c:m]
// componentwise:
//
//	X <- X - g*Y^2
//	X <- X^(1/alpha)
//	Y <- Y - X
//	X <- X + g*Y^2 + delta
//
// each line using the X/Y produced by the line above it.
func ApplySBox(p *Params, state []field.Element) {
	c := p.C
	x := state[:c]
	y := state[c:]

	for i := 0; i < c; i++ {
		gy2 := p.Generator.Mul(y[i].Square())
		x[i] = x[i].Sub(gy2)
	}

	for i := 0; i < c; i++ {
		x[i] = ExpInvAlpha(p, x[i])
	}

	for i := 0; i < c; i++ {
		y[i] = y[i].Sub(x[i])
	}

	for i := 0; i < c; i++ {
		gy2 := p.Generator.Mul(y[i].Square())
		x[i] = x[i].Add(gy2).Add(p.Delta)
	}
}
