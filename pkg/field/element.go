// Package field holds the BN254 scalar field helpers and the hash schemes
// shared by the commitment tree, the witness builder and the circuit.
package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrNotInField is returned for values outside [0, r).
var ErrNotInField = errors.New("field: value not in field")

// Modulus returns a copy of the scalar field modulus r.
func Modulus() *big.Int { return fr.Modulus() }

// FromBig converts v to a field element without reducing it.
func FromBig(v *big.Int) (fr.Element, error) {
	var e fr.Element
	if v == nil || v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return e, fmt.Errorf("%w: %v", ErrNotInField, v)
	}
	e.SetBigInt(v)
	return e, nil
}

// FromString parses a decimal or 0x-prefixed hex value.
func FromString(s string) (fr.Element, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return fr.Element{}, fmt.Errorf("field: cannot parse %q", s)
	}
	return FromBig(v)
}

// MustFromString is FromString for constants; it panics on bad input.
func MustFromString(s string) fr.Element {
	e, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return e
}

// FromUint64 returns v as a field element.
func FromUint64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// ToBig returns the canonical integer of e.
func ToBig(e fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}
