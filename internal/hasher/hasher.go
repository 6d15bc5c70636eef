// Package hasher exposes the in-circuit counterparts of the native hash
// schemes in pkg/field behind one function type.
package hasher

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/yourorg/zkcert/pkg/field"
)

// Func hashes field variables inside a circuit.
type Func func(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error)

// Poseidon is circomlib's Poseidon over BN254 for two or three inputs.
func Poseidon(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	return poseidon(api, inputs...)
}

// MiMC absorbs inputs in order into a fresh MiMC sponge.
func MiMC(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}
	h.Write(inputs...)
	return h.Sum(), nil
}

// For returns the gadget matching a native scheme.
func For(s field.Scheme) (Func, error) {
	switch s {
	case field.Poseidon:
		return Poseidon, nil
	case field.MiMC:
		return MiMC, nil
	}
	return nil, fmt.Errorf("hasher: no gadget for scheme %s", s)
}
