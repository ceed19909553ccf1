// Package vesta instantiates Anemoi over the Vesta base field (one of the
// Pasta curves used by Halo2-style proof systems) with an 8-element state
// (4 columns, rate 4). No corpus field library covers Pasta, so this
// instance runs on field.Vesta's generic math/big backend.
package vesta

import (
	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
	"github.com/dannywillems/anemoi/pkg/anemoi/sponge"
)

const (
	StateWidth = 8
	NumColumns = StateWidth / 2
	RateWidth  = NumColumns
	DigestSize = RateWidth
	NumRounds  = 10
	Alpha      = 5
)

// Params is this instance's permutation configuration. roundConstantsC/D
// (round_constants.go) are literal, transcribed from the upstream source;
// no sbox-equivalent module was retrieved for Vesta, so the S-box generator
// and delta are label-derived rather than literal — see DESIGN.md.
var Params = permutation.New(field.Vesta, StateWidth, NumRounds, Alpha, permutation.LiteralConstants{
	RoundConstantsC: roundConstantsC,
	RoundConstantsD: roundConstantsD,
}, "anemoi-vesta-8")

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
