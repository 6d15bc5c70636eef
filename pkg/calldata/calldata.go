// Package calldata converts Groth16 BN254 proofs to and from the fixed
// eight-word layout taken by gnark's exported Solidity verifier:
// A.x, A.y, B.x1, B.x0, B.y1, B.y0, C.x, C.y.
package calldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
	"github.com/holiman/uint256"
)

// Words is the number of 256-bit words in an encoded proof.
const Words = 8

// ErrMalformed covers words that do not decode to valid curve points.
var ErrMalformed = errors.New("calldata: malformed proof")

// Proof is an encoded Groth16 proof.
type Proof [Words]uint256.Int

// FromGroth16 encodes a BN254 Groth16 proof.
func FromGroth16(p groth16.Proof) (Proof, error) {
	bp, ok := p.(*groth16_bn254.Proof)
	if !ok {
		return Proof{}, fmt.Errorf("calldata: unsupported proof type %T", p)
	}
	if len(bp.Commitments) != 0 {
		return Proof{}, errors.New("calldata: proofs with commitments have no fixed layout")
	}
	var out Proof
	for i, e := range []*fp.Element{
		&bp.Ar.X, &bp.Ar.Y,
		&bp.Bs.X.A1, &bp.Bs.X.A0,
		&bp.Bs.Y.A1, &bp.Bs.Y.A0,
		&bp.Krs.X, &bp.Krs.Y,
	} {
		b := e.Bytes()
		out[i].SetBytes32(b[:])
	}
	return out, nil
}

// Groth16 decodes p, checking every point lies on the curve and in the
// prime-order subgroup.
func (p Proof) Groth16() (groth16.Proof, error) {
	var elems [Words]fp.Element
	for i := range p {
		b := p[i].Bytes32()
		if err := elems[i].SetBytesCanonical(b[:]); err != nil {
			return nil, fmt.Errorf("%w: word %d: %v", ErrMalformed, i, err)
		}
	}

	out := new(groth16_bn254.Proof)
	out.Ar = curve.G1Affine{X: elems[0], Y: elems[1]}
	out.Bs.X.A1, out.Bs.X.A0 = elems[2], elems[3]
	out.Bs.Y.A1, out.Bs.Y.A0 = elems[4], elems[5]
	out.Krs = curve.G1Affine{X: elems[6], Y: elems[7]}

	if !out.Ar.IsOnCurve() || !out.Ar.IsInSubGroup() {
		return nil, fmt.Errorf("%w: A not in G1", ErrMalformed)
	}
	if !out.Bs.IsOnCurve() || !out.Bs.IsInSubGroup() {
		return nil, fmt.Errorf("%w: B not in G2", ErrMalformed)
	}
	if !out.Krs.IsOnCurve() || !out.Krs.IsInSubGroup() {
		return nil, fmt.Errorf("%w: C not in G1", ErrMalformed)
	}
	return out, nil
}

// Strings returns the words as decimal strings.
func (p Proof) Strings() []string {
	out := make([]string, Words)
	for i := range p {
		out[i] = p[i].Dec()
	}
	return out
}

// Parse reads eight decimal or 0x-hex words.
func Parse(words []string) (Proof, error) {
	if len(words) != Words {
		return Proof{}, fmt.Errorf("%w: %d words, want %d", ErrMalformed, len(words), Words)
	}
	var out Proof
	for i, s := range words {
		var (
			v   *uint256.Int
			err error
		)
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			v, err = uint256.FromHex(s)
		} else {
			v, err = uint256.FromDecimal(s)
		}
		if err != nil {
			return Proof{}, fmt.Errorf("%w: word %d: %v", ErrMalformed, i, err)
		}
		out[i] = *v
	}
	return out, nil
}

// Bigs returns the words as big integers.
func (p Proof) Bigs() []*big.Int {
	out := make([]*big.Int, Words)
	for i := range p {
		out[i] = p[i].ToBig()
	}
	return out
}

func (p Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Strings())
}

func (p *Proof) UnmarshalJSON(b []byte) error {
	var words []string
	if err := json.Unmarshal(b, &words); err != nil {
		return err
	}
	v, err := Parse(words)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PublicInputs lists the public part of w in declaration order.
func PublicInputs(w witness.Witness) ([]string, error) {
	public, err := w.Public()
	if err != nil {
		return nil, err
	}
	elems, ok := public.Vector().(fr.Vector)
	if !ok {
		return nil, fmt.Errorf("calldata: unexpected witness vector %T", public.Vector())
	}
	out := make([]string, len(elems))
	for i := range elems {
		out[i] = elems[i].String()
	}
	return out, nil
}
