package permutation

import "github.com/dannywillems/anemoi/pkg/anemoi/field"

// ExpInvAlpha computes x^(p.InvAlpha) via square-and-multiply.
//
// The teacher's Arion ships a hand-tuned ~300-step addition chain for its
// own inverse exponent; that chain is specific to one fixed field and
// exponent, baked in at compile time. Anemoi here is generic over both
// field and instance, so the exponent is only known once Params is built.
// Square-and-multiply over InvAlpha's bits is the sanctioned substitute
// named for exactly this case: any correct chain is acceptable, and a
// bit-scan costs at most a small constant factor over a hand-tuned chain.
// It branches only on the public bits of InvAlpha, never on x, so it stays
// constant-time with respect to the field element being exponentiated.
func ExpInvAlpha(p *Params, x field.Element) field.Element {
	exp := p.InvAlpha
	result := p.Field.One()
	base := x
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}
