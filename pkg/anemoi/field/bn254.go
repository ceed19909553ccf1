package field

import (
	"fmt"
	"math/big"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is the scalar field of the BN254 curve (a ~254-bit prime), backed by
// gnark-crypto's Montgomery-form fr.Element. This is the field the bn254
// Anemoi instance (m=12) runs over.
var BN254 Field = bn254Field{}

const bn254ElementBytes = 32

type bn254Field struct{}

func (bn254Field) Name() string { return "bn254.fr" }

func (bn254Field) Zero() Element {
	var e bn254fr.Element
	return bn254Element{e}
}

func (bn254Field) One() Element {
	var e bn254fr.Element
	e.SetOne()
	return bn254Element{e}
}

func (bn254Field) FromUint64(v uint64) Element {
	var e bn254fr.Element
	e.SetUint64(v)
	return bn254Element{e}
}

func (f bn254Field) FromBytes(data []byte) (Element, error) {
	if len(data) != bn254ElementBytes {
		return nil, fmt.Errorf("field: bn254 element must be %d bytes, got %d", bn254ElementBytes, len(data))
	}
	v := LittleEndianToBigInt(data)
	if v.Cmp(f.Modulus()) >= 0 {
		return nil, fmt.Errorf("field: bn254 value out of range")
	}
	var e bn254fr.Element
	e.SetBigInt(v)
	return bn254Element{e}, nil
}

func (bn254Field) ElementBytes() int { return bn254ElementBytes }

func (bn254Field) Modulus() *big.Int {
	return bn254fr.Modulus()
}

// bn254Element adapts gnark-crypto's bn254 fr.Element (a mutable, pointer-
// receiver value type) to the immutable field.Element interface, the same
// wrapping shape as the teacher's traits.BFieldElementAdapter.
type bn254Element struct {
	v bn254fr.Element
}

func (e bn254Element) other(o Element) bn254fr.Element {
	oe, ok := o.(bn254Element)
	if !ok {
		panic("field: bn254 element operated with a value from a different field")
	}
	return oe.v
}

func (e bn254Element) Add(o Element) Element {
	var r bn254fr.Element
	ov := e.other(o)
	r.Add(&e.v, &ov)
	return bn254Element{r}
}

func (e bn254Element) Sub(o Element) Element {
	var r bn254fr.Element
	ov := e.other(o)
	r.Sub(&e.v, &ov)
	return bn254Element{r}
}

func (e bn254Element) Mul(o Element) Element {
	var r bn254fr.Element
	ov := e.other(o)
	r.Mul(&e.v, &ov)
	return bn254Element{r}
}

func (e bn254Element) Square() Element {
	var r bn254fr.Element
	r.Square(&e.v)
	return bn254Element{r}
}

func (e bn254Element) Neg() Element {
	var r bn254fr.Element
	r.Neg(&e.v)
	return bn254Element{r}
}

func (e bn254Element) Pow(exp *big.Int) Element {
	var r bn254fr.Element
	r.Exp(e.v, exp)
	return bn254Element{r}
}

func (e bn254Element) Equal(o Element) bool {
	ov := e.other(o)
	return e.v.Equal(&ov)
}

func (e bn254Element) IsZero() bool { return e.v.IsZero() }
func (e bn254Element) IsOne() bool  { return e.v.IsOne() }

func (e bn254Element) Bytes() []byte {
	var bi big.Int
	e.v.BigInt(&bi)
	return BigIntToLittleEndian(&bi, bn254ElementBytes)
}

func (e bn254Element) String() string { return e.v.String() }
