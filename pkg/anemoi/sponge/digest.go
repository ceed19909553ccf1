// Package sponge implements the Anemoi sponge construction: byte and
// field-element absorption/squeezing, the two-digest merge primitive, and
// Jive compression, all generic over a permutation.Params instance.
package sponge

import (
	"strings"

	"github.com/dannywillems/anemoi/pkg/anemoi/field"
)

// Digest is the output of a hash or compression call: an ordered tuple of
// field elements, length fixed by the instance's DIGEST_SIZE. Unlike the
// teacher's fixed [5]field.Element array, Digest here is a slice because
// digest width varies by instance (1, 2, 4, or 6 elements across the
// instances in this library).
type Digest []field.Element

// Equal reports whether two digests hold the same elements in the same
// order. Digests of different lengths are never equal.
func (d Digest) Equal(other Digest) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every element of the digest is zero.
func (d Digest) IsZero() bool {
	for _, e := range d {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// String renders the digest as its comma-separated element values.
func (d Digest) String() string {
	values := make([]string, len(d))
	for i, e := range d {
		values[i] = e.String()
	}
	return strings.Join(values, ",")
}

// Bytes concatenates each element's canonical little-endian encoding.
func (d Digest) Bytes() []byte {
	if len(d) == 0 {
		return nil
	}
	elemBytes := len(d[0].Bytes())
	out := make([]byte, 0, elemBytes*len(d))
	for _, e := range d {
		out = append(out, e.Bytes()...)
	}
	return out
}

// Clone returns an independent copy of the digest.
func (d Digest) Clone() Digest {
	out := make(Digest, len(d))
	copy(out, d)
	return out
}
