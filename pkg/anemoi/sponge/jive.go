package sponge

import (
	"fmt"

	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
)

// Compress is the Jive fixed-width compression mode: given exactly p.M
// elements, permute them and field-add each pre/post pair across the two
// halves, producing p.C elements. It is CompressK(elems, 2).
func Compress(p *permutation.Params, elems []field.Element) []field.Element {
	return CompressK(p, elems, 2)
}

// CompressK generalizes Compress to any k dividing p.M, collapsing the
// state by a factor of k instead of 2. Both length mismatches and a k that
// does not divide m are programmer errors (never raised from well-formed
// callers), so they panic rather than return an error, matching the
// library's InvariantViolation policy for misuse that is never reachable
// from untrusted input.
func CompressK(p *permutation.Params, elems []field.Element, k int) []field.Element {
	if len(elems) != p.M {
		panic(fmt.Sprintf("sponge: compress_%d requires exactly %d elements, got %d", k, p.M, len(elems)))
	}
	if k < 1 || k > p.M || p.M%k != 0 {
		panic(fmt.Sprintf("sponge: compress_%d: k must divide m=%d and satisfy 1<=k<=m", k, p.M))
	}

	state := append([]field.Element(nil), elems...)
	permutation.ApplyPermutation(p, state)

	q := p.M / k
	result := make([]field.Element, q)
	for i := 0; i < q; i++ {
		acc := p.Field.Zero()
		for j := 0; j < k; j++ {
			idx := i + q*j
			acc = acc.Add(elems[idx]).Add(state[idx])
		}
		result[i] = acc
	}
	return result
}
