package field

import (
	"fmt"
	"math/big"
)

// vestaModulus is the base field of the Vesta curve, one of the Pasta
// curve pair used by Halo2-style proof systems:
//
//	p = 28948022309329048855892746252171976963363056481941647379679742748393362948097
//
// No example in the retrieved corpus carries a Pasta/Vesta field-arithmetic
// library (gnark-crypto, the domain dependency used for bn254 and
// bls12-377, ships no Pasta curves), so this instance falls back to the
// standard library's math/big — the one standard-library-justified
// component of the domain stack; see DESIGN.md.
var vestaModulus, _ = new(big.Int).SetString(
	"28948022309329048855892746252171976963363056481941647379679742748393362948097", 10)

// Vesta is the Vesta base field, backed by a generic big.Int field.
var Vesta Field = NewBigField("vesta.fp", vestaModulus, 32)

// bigField is a generic prime-field implementation over an arbitrary
// modulus, backed by math/big. It exists to serve instances for which no
// ecosystem finite-field library was found in the corpus.
type bigField struct {
	name    string
	modulus *big.Int
	bytes   int
}

// NewBigField constructs a generic Field over F_p for the given modulus,
// with elements canonically encoded in elemBytes little-endian bytes.
func NewBigField(name string, modulus *big.Int, elemBytes int) Field {
	return &bigField{name: name, modulus: modulus, bytes: elemBytes}
}

func (f *bigField) Name() string { return f.name }

func (f *bigField) Zero() Element { return bigElement{f, big.NewInt(0)} }

func (f *bigField) One() Element { return bigElement{f, big.NewInt(1)} }

func (f *bigField) FromUint64(v uint64) Element {
	return bigElement{f, new(big.Int).SetUint64(v)}
}

func (f *bigField) FromBytes(data []byte) (Element, error) {
	if len(data) != f.bytes {
		return nil, fmt.Errorf("field: %s element must be %d bytes, got %d", f.name, f.bytes, len(data))
	}
	v := LittleEndianToBigInt(data)
	v.Mod(v, f.modulus)
	return bigElement{f, v}, nil
}

func (f *bigField) ElementBytes() int { return f.bytes }

func (f *bigField) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// bigElement is an immutable F_p element; v is always kept reduced to
// [0, modulus).
type bigElement struct {
	f *bigField
	v *big.Int
}

func (e bigElement) reduce(v *big.Int) bigElement {
	v.Mod(v, e.f.modulus)
	return bigElement{e.f, v}
}

func (e bigElement) other(o Element) bigElement {
	oe, ok := o.(bigElement)
	if !ok || oe.f != e.f {
		panic("field: bigfield element operated with a value from a different field")
	}
	return oe
}

func (e bigElement) Add(o Element) Element {
	ov := e.other(o)
	return e.reduce(new(big.Int).Add(e.v, ov.v))
}

func (e bigElement) Sub(o Element) Element {
	ov := e.other(o)
	return e.reduce(new(big.Int).Sub(e.v, ov.v))
}

func (e bigElement) Mul(o Element) Element {
	ov := e.other(o)
	return e.reduce(new(big.Int).Mul(e.v, ov.v))
}

func (e bigElement) Square() Element {
	return e.reduce(new(big.Int).Mul(e.v, e.v))
}

func (e bigElement) Neg() Element {
	if e.v.Sign() == 0 {
		return e
	}
	return e.reduce(new(big.Int).Sub(e.f.modulus, e.v))
}

func (e bigElement) Pow(exp *big.Int) Element {
	return bigElement{e.f, new(big.Int).Exp(e.v, exp, e.f.modulus)}
}

func (e bigElement) Equal(o Element) bool {
	ov := e.other(o)
	return e.v.Cmp(ov.v) == 0
}

func (e bigElement) IsZero() bool { return e.v.Sign() == 0 }
func (e bigElement) IsOne() bool  { return e.v.Cmp(big.NewInt(1)) == 0 }

func (e bigElement) Bytes() []byte {
	return BigIntToLittleEndian(e.v, e.f.bytes)
}

func (e bigElement) String() string { return e.v.String() }
