package sponge

import (
	"testing"

	"github.com/dannywillems/anemoi/pkg/anemoi/field"
	"github.com/dannywillems/anemoi/pkg/anemoi/permutation"
)

func testParamsSet() map[string]*permutation.Params {
	bn254Literals := permutation.LiteralConstants{
		Generator: "3",
		Delta:     "13889069884145658930708627119177546823333679101451701042445263285558078684473",
	}
	return map[string]*permutation.Params{
		"bn254-m12":   permutation.New(field.BN254, 12, 14, 5, bn254Literals, "sponge-test-bn254-m12"),
		"bls12377-m4": permutation.New(field.BLS12377, 4, 12, 3, permutation.LiteralConstants{}, "sponge-test-bls12377-m4"),
		"bls12377-m2": permutation.New(field.BLS12377, 2, 18, 5, permutation.LiteralConstants{}, "sponge-test-bls12377-m2"),
		"vesta-m8":    permutation.New(field.Vesta, 8, 10, 5, permutation.LiteralConstants{}, "sponge-test-vesta-m8"),
	}
}

func TestDigestWidthMatchesRate(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			d := HashBytes(p, []byte("anemoi"))
			if len(d) != p.C {
				t.Fatalf("len(digest) = %d, want %d", len(d), p.C)
			}
		})
	}
}

func TestHashBytesPaddingDomainSeparation(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			inputs := [][]byte{
				{},
				{0x00},
				{0x01, 0x02, 0x03},
			}
			for _, a := range inputs {
				b := append(append([]byte(nil), a...), 0x00)
				da := HashBytes(p, a)
				db := HashBytes(p, b)
				if da.Equal(db) {
					t.Errorf("hash(%v) collides with hash(%v || 0x00)", a, b)
				}
			}
		})
	}
}

func TestHashBytesDiffersOnLongerInput(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			elemBytes := p.Field.ElementBytes()
			b := elemBytes - 1

			exact := make([]byte, b)
			for i := range exact {
				exact[i] = byte(i + 1)
			}
			short := exact[:b-1]

			dExact := HashBytes(p, exact)
			dShort := HashBytes(p, short)
			if dExact.Equal(dShort) {
				t.Error("full-width chunk and short chunk produced the same digest")
			}
		})
	}
}

func TestHashFieldSigmaInvariant(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			aligned := make([]field.Element, p.C)
			for i := range aligned {
				aligned[i] = p.Field.FromUint64(uint64(i + 1))
			}
			// For the rate-1 instance (bls12377-m2) every length is a
			// multiple of the rate, so there both inputs take the sigma = 1
			// path and only the length difference is checked.
			unaligned := append(append([]field.Element(nil), aligned...), p.Field.FromUint64(99))

			dAligned := HashField(p, aligned)
			dUnaligned := HashField(p, unaligned)
			if dAligned.Equal(dUnaligned) {
				t.Error("aligned and unaligned field-mode inputs collided")
			}
		})
	}
}

func TestMergeIsDeterministicAndOrderSensitive(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			d0 := HashBytes(p, []byte("left"))
			d1 := HashBytes(p, []byte("right"))

			m1 := Merge(p, d0, d1)
			m2 := Merge(p, d0, d1)
			if !m1.Equal(m2) {
				t.Fatal("Merge is not deterministic")
			}

			mSwapped := Merge(p, d1, d0)
			if m1.Equal(mSwapped) {
				t.Error("Merge(d0, d1) == Merge(d1, d0); merge should be order-sensitive")
			}
		})
	}
}

func TestCompressEqualsCompressK2(t *testing.T) {
	for name, p := range testParamsSet() {
		p := p
		t.Run(name, func(t *testing.T) {
			elems := make([]field.Element, p.M)
			for i := range elems {
				elems[i] = p.Field.FromUint64(uint64(i))
			}

			a := Compress(p, elems)
			b := CompressK(p, elems, 2)
			if len(a) != len(b) {
				t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
			}
			for i := range a {
				if !a[i].Equal(b[i]) {
					t.Errorf("Compress and CompressK(.,2) disagree at index %d", i)
				}
			}
			if len(a) != p.C {
				t.Errorf("Compress output length = %d, want %d", len(a), p.C)
			}
		})
	}
}

func TestCompressKPanicsOnMismatch(t *testing.T) {
	p := permutation.New(field.BN254, 12, 14, 5, permutation.LiteralConstants{
		Generator: "3",
		Delta:     "13889069884145658930708627119177546823333679101451701042445263285558078684473",
	}, "sponge-test-panic")

	t.Run("wrong length", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for wrong-length input")
			}
		}()
		CompressK(p, make([]field.Element, p.M-1), 2)
	})

	t.Run("k does not divide m", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for k not dividing m")
			}
		}()
		CompressK(p, make([]field.Element, p.M), 5)
	})
}
