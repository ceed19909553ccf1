package bn254

import (
	"testing"

	"github.com/dannywillems/anemoi/pkg/anemoi/field"
)

// TestSBoxConstantsMatchUpstreamLiterals pins this instance's generator and
// delta to the literal values transcribed from sbox.rs, so a regression
// back to a label-derived or Alpha-duplicating value would be caught here.
func TestSBoxConstantsMatchUpstreamLiterals(t *testing.T) {
	wantGenerator := field.BN254.FromUint64(3)
	if !Params.Generator.Equal(wantGenerator) {
		t.Errorf("Generator = %s, want %s", Params.Generator, wantGenerator)
	}
	if Params.Generator.Equal(field.BN254.FromUint64(Alpha)) {
		t.Error("Generator must not equal Alpha; the source's real BETA is 3, not 5")
	}

	wantDelta := field.MustFromDecimal(field.BN254, deltaLiteral)
	if !Params.Delta.Equal(wantDelta) {
		t.Errorf("Delta = %s, want %s", Params.Delta, wantDelta)
	}
}

func TestHashBytesIsDeterministic(t *testing.T) {
	a := HashBytes([]byte("anemoi over bn254"))
	b := HashBytes([]byte("anemoi over bn254"))
	if !a.Equal(b) {
		t.Fatal("HashBytes is not deterministic")
	}
	if len(a) != DigestSize {
		t.Fatalf("digest length = %d, want %d", len(a), DigestSize)
	}
}

func TestHashBytesDiffersAcrossInputs(t *testing.T) {
	a := HashBytes([]byte("left"))
	b := HashBytes([]byte("right"))
	if a.Equal(b) {
		t.Fatal("distinct inputs produced the same digest")
	}
}

func TestMergeOutputWidthAndDistinctness(t *testing.T) {
	d0 := HashBytes([]byte("left"))
	d1 := HashBytes([]byte("right"))
	m := Merge(d0, d1)
	if len(m) != DigestSize {
		t.Fatalf("merged digest length = %d, want %d", len(m), DigestSize)
	}
	if m.Equal(d0) || m.Equal(d1) {
		t.Fatal("merge output trivially equals one of its inputs")
	}
}

func TestCompressOutputWidth(t *testing.T) {
	elems := make([]field.Element, StateWidth)
	for i := range elems {
		elems[i] = Params.Field.FromUint64(uint64(i))
	}
	out := Compress(elems)
	if len(out) != NumColumns {
		t.Fatalf("Compress output length = %d, want %d", len(out), NumColumns)
	}
}
