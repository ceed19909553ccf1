package field

import (
	"fmt"
	"math/big"

	bls12377fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 is the scalar field of the BLS12-377 curve, backed by
// gnark-crypto's Montgomery-form fr.Element. The same field underlies two
// Anemoi instances here: bls12377 (m=4) and edonbls12377 (m=2) — the latter
// because ed_on_bls12_377, the twisted-Edwards curve defined over
// BLS12-377's scalar field, shares exactly this field as its base field.
var BLS12377 Field = bls12377Field{}

const bls12377ElementBytes = 32

type bls12377Field struct{}

func (bls12377Field) Name() string { return "bls12-377.fr" }

func (bls12377Field) Zero() Element {
	var e bls12377fr.Element
	return bls12377Element{e}
}

func (bls12377Field) One() Element {
	var e bls12377fr.Element
	e.SetOne()
	return bls12377Element{e}
}

func (bls12377Field) FromUint64(v uint64) Element {
	var e bls12377fr.Element
	e.SetUint64(v)
	return bls12377Element{e}
}

func (f bls12377Field) FromBytes(data []byte) (Element, error) {
	if len(data) != bls12377ElementBytes {
		return nil, fmt.Errorf("field: bls12-377 element must be %d bytes, got %d", bls12377ElementBytes, len(data))
	}
	v := LittleEndianToBigInt(data)
	if v.Cmp(f.Modulus()) >= 0 {
		return nil, fmt.Errorf("field: bls12-377 value out of range")
	}
	var e bls12377fr.Element
	e.SetBigInt(v)
	return bls12377Element{e}, nil
}

func (bls12377Field) ElementBytes() int { return bls12377ElementBytes }

func (bls12377Field) Modulus() *big.Int {
	return bls12377fr.Modulus()
}

type bls12377Element struct {
	v bls12377fr.Element
}

func (e bls12377Element) other(o Element) bls12377fr.Element {
	oe, ok := o.(bls12377Element)
	if !ok {
		panic("field: bls12-377 element operated with a value from a different field")
	}
	return oe.v
}

func (e bls12377Element) Add(o Element) Element {
	var r bls12377fr.Element
	ov := e.other(o)
	r.Add(&e.v, &ov)
	return bls12377Element{r}
}

func (e bls12377Element) Sub(o Element) Element {
	var r bls12377fr.Element
	ov := e.other(o)
	r.Sub(&e.v, &ov)
	return bls12377Element{r}
}

func (e bls12377Element) Mul(o Element) Element {
	var r bls12377fr.Element
	ov := e.other(o)
	r.Mul(&e.v, &ov)
	return bls12377Element{r}
}

func (e bls12377Element) Square() Element {
	var r bls12377fr.Element
	r.Square(&e.v)
	return bls12377Element{r}
}

func (e bls12377Element) Neg() Element {
	var r bls12377fr.Element
	r.Neg(&e.v)
	return bls12377Element{r}
}

func (e bls12377Element) Pow(exp *big.Int) Element {
	var r bls12377fr.Element
	r.Exp(e.v, exp)
	return bls12377Element{r}
}

func (e bls12377Element) Equal(o Element) bool {
	ov := e.other(o)
	return e.v.Equal(&ov)
}

func (e bls12377Element) IsZero() bool { return e.v.IsZero() }
func (e bls12377Element) IsOne() bool  { return e.v.IsOne() }

func (e bls12377Element) Bytes() []byte {
	var bi big.Int
	e.v.BigInt(&bi)
	return BigIntToLittleEndian(&bi, bls12377ElementBytes)
}

func (e bls12377Element) String() string { return e.v.String() }
