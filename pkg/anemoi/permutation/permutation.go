package permutation

import "github.com/dannywillems/anemoi/pkg/anemoi/field"

// ApplyRound runs round i of the permutation in place: add the round
// constants for step i, diffuse, then apply the S-box.
func ApplyRound(p *Params, state []field.Element, step int) {
	addRoundConstants(p, state, step)
	ApplyMDS(p, state)
	ApplySBox(p, state)
}

// ApplyPermutation runs the full Anemoi permutation in place: NumRounds
// rounds of (add constants, MDS, S-box), followed by one trailing MDS layer
// with no S-box and no round constants after it.
func ApplyPermutation(p *Params, state []field.Element) {
	if len(state) != p.M {
		panic("permutation: state has wrong width")
	}
	for i := 0; i < p.NumRounds; i++ {
		ApplyRound(p, state, i)
	}
	ApplyMDS(p, state)
}

// Trace runs the permutation and returns the state after every round,
// including the initial state at index 0 and the final post-trailing-MDS
// state at index NumRounds+1. It exists for callers that need an
// intermediate execution record (e.g. arithmetization tooling), adapted
// from the teacher's own round-by-round Trace.
func Trace(p *Params, state []field.Element) [][]field.Element {
	trace := make([][]field.Element, p.NumRounds+2)
	trace[0] = append([]field.Element(nil), state...)

	work := append([]field.Element(nil), state...)
	for i := 0; i < p.NumRounds; i++ {
		ApplyRound(p, work, i)
		trace[i+1] = append([]field.Element(nil), work...)
	}
	ApplyMDS(p, work)
	trace[p.NumRounds+1] = append([]field.Element(nil), work...)

	return trace
}

func addRoundConstants(p *Params, state []field.Element, step int) {
	c := p.C
	cc := p.RoundConstantsC[step]
	dd := p.RoundConstantsD[step]
	for i := 0; i < c; i++ {
		state[i] = state[i].Add(cc[i])
		state[c+i] = state[c+i].Add(dd[i])
	}
}
