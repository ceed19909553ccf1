// Package edonbls12377 instantiates Anemoi over the base field of
// ed_on_bls12_377 (the twisted-Edwards curve defined over BLS12-377's
// scalar field, so it shares exactly that field) with a 2-element state
// (1 column, rate 1) — the smallest instance in this library, with 18
// rounds, matching the upstream round_constants.rs table's length.
package edonbls12377

import (
	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
	"github.com/dannywillems/anemoi/pkg/anemoi/sponge"
)

const (
	StateWidth = 2
	NumColumns = StateWidth / 2
	RateWidth  = NumColumns
	DigestSize = RateWidth
	NumRounds  = 18
	Alpha      = 5
)

// Params is this instance's permutation configuration. roundConstantsC/D
// (round_constants.go) are literal, transcribed from the upstream source;
// no sbox.rs was retrieved for this field, so the S-box generator and delta
// are label-derived rather than literal — see DESIGN.md.
var Params = permutation.New(field.BLS12377, StateWidth, NumRounds, Alpha, permutation.LiteralConstants{
	RoundConstantsC: roundConstantsC,
	RoundConstantsD: roundConstantsD,
}, "anemoi-edonbls12377-2")

func HashBytes(data []byte) sponge.Digest {
	return sponge.HashBytes(Params, data)
}

func HashField(elems []field.Element) sponge.Digest {
	return sponge.HashField(Params, elems)
}

func Merge(d0, d1 sponge.Digest) sponge.Digest {
	return sponge.Merge(Params, d0, d1)
}

func Compress(elems []field.Element) []field.Element {
	return sponge.Compress(Params, elems)
}

func CompressK(elems []field.Element, k int) []field.Element {
	return sponge.CompressK(Params, elems, k)
}
