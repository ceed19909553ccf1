// Package bls12377 instantiates Anemoi over the BLS12-377 scalar field with
// a 4-element state (2 columns, rate 2). This instance uses ALPHA = 3,
// unlike the ALPHA = 5 used by the other instances in this library.
package bls12377

import (
	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
	"github.com/dannywillems/anemoi/pkg/anemoi/sponge"
)

const (
	StateWidth = 4
	NumColumns = StateWidth / 2
	RateWidth  = NumColumns
	DigestSize = RateWidth
	NumRounds  = 12
	Alpha      = 3
)

// Params is this instance's permutation configuration. No module for this
// exact (field, state width) pair was retrieved from the source — only a
// near-empty mod.rs stub declaring its submodules — so its round constants,
// S-box generator, and delta are all label-derived rather than literal.
// Contrast the bn254, ed_on_bls12_377, and vesta instances, which carry at
// least one literal constant table transcribed from source; see DESIGN.md.
var Params = permutation.New(field.BLS12377, StateWidth, NumRounds, Alpha, permutation.LiteralConstants{}, "anemoi-bls12377-4")

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
