package sponge

import (
	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
)

// HashBytes sponges an arbitrary byte string into a Digest of
// p.C (= DIGEST_SIZE) field elements.
//
// Bytes are chunked B = ElementBytes-1 at a time so every chunk decodes to
// a valid element without risking a value at or above the field's modulus.
// The last chunk is padded with a 0x01 sentinel when short, or with a
// single zero byte otherwise; this, plus the sigma bit folded into the
// capacity below, is what keeps hash(a) and hash(a with trailing zero
// bytes) from colliding.
func HashBytes(p *permutation.Params, data []byte) Digest {
	elemBytes := p.Field.ElementBytes()
	elems := padBytesToElements(p.Field, data, elemBytes)
	return absorbAndSqueeze(p, elems)
}

// HashField sponges a sequence of field elements directly (no byte
// decoding) into a Digest.
func HashField(p *permutation.Params, elems []field.Element) Digest {
	return absorbAndSqueeze(p, elems)
}

// padBytesToElements splits data into B = elemBytes-1 byte chunks and
// decodes each into a field element, applying the tail padding rule from
// the sponge's byte-mode absorption: a full B-byte chunk (last or not) is
// padded with a single trailing zero byte, while a short final chunk gets
// a 0x01 sentinel immediately after its payload. Empty input yields exactly
// one (empty, sentinel-padded) chunk.
func padBytesToElements(f field.Field, data []byte, elemBytes int) []field.Element {
	b := elemBytes - 1
	if b <= 0 {
		panic("sponge: field element width must be at least 2 bytes")
	}

	var chunks [][]byte
	if len(data) == 0 {
		chunks = [][]byte{{}}
	} else {
		for i := 0; i < len(data); i += b {
			end := i + b
			if end > len(data) {
				end = len(data)
			}
			chunks = append(chunks, data[i:end])
		}
	}

	elems := make([]field.Element, len(chunks))
	for i, chunk := range chunks {
		buf := make([]byte, elemBytes)
		copy(buf, chunk)
		isLast := i == len(chunks)-1
		if isLast && len(chunk) < b {
			buf[len(chunk)] = 0x01
		}
		e, err := f.FromBytes(buf)
		if err != nil {
			panic("sponge: padded chunk failed to decode: " + err.Error())
		}
		elems[i] = e
	}
	return elems
}

// absorbAndSqueeze runs the shared absorb/permute/squeeze sequence used by
// both byte-mode and field-mode hashing.
func absorbAndSqueeze(p *permutation.Params, elems []field.Element) Digest {
	r := p.C
	n := len(elems)

	state := freshState(p)
	idx := 0
	for _, e := range elems {
		state[idx] = state[idx].Add(e)
		idx++
		if idx == r {
			permutation.ApplyPermutation(p, state)
			idx = 0
		}
	}

	sigma := uint64(0)
	if n%r == 0 {
		sigma = 1
	}
	state[p.M-1] = state[p.M-1].Add(p.Field.FromUint64(sigma))

	if sigma == 0 {
		state[idx] = state[idx].Add(p.Field.One())
		permutation.ApplyPermutation(p, state)
	}

	digest := make(Digest, p.C)
	copy(digest, state[:p.C])
	return digest
}

// Merge hashes two digests into one, the two-to-one primitive Merkle
// constructions build on. d0 occupies the first DIGEST_SIZE state slots and
// d1 the next DIGEST_SIZE slots.
func Merge(p *permutation.Params, d0, d1 Digest) Digest {
	state := freshState(p)
	copy(state[:p.C], d0)
	copy(state[p.C:2*p.C], d1)
	permutation.ApplyPermutation(p, state)

	digest := make(Digest, p.C)
	copy(digest, state[:p.C])
	return digest
}

func freshState(p *permutation.Params) []field.Element {
	state := make([]field.Element, p.M)
	zero := p.Field.Zero()
	for i := range state {
		state[i] = zero
	}
	return state
}
