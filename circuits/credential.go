package circuits

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"

	"github.com/yourorg/zkcert/internal/hasher"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
)

func Curve() ecc.ID { return ecc.BN254 }

// CredentialCircuit proves that a commitment derived from private inputs sits
// in the tree with the public root, that its grade is at least MinThreshold
// and that Nullifier is bound to the commitment and nonce.
type CredentialCircuit struct {
	Root         frontend.Variable `gnark:",public"`
	Nullifier    frontend.Variable `gnark:",public"`
	MinThreshold frontend.Variable `gnark:",public"`

	Secret   frontend.Variable
	UserSalt frontend.Variable
	AppSalt  frontend.Variable
	Grade    frontend.Variable
	Nonce    frontend.Variable

	Siblings []frontend.Variable
	PathBits []frontend.Variable

	Scheme field.Scheme `gnark:"-"`
}

// NewCredentialCircuit returns a placeholder sized for a tree of depth.
func NewCredentialCircuit(depth int, scheme field.Scheme) *CredentialCircuit {
	return &CredentialCircuit{
		Siblings: make([]frontend.Variable, depth),
		PathBits: make([]frontend.Variable, depth),
		Scheme:   scheme,
	}
}

func (c *CredentialCircuit) Define(api frontend.API) error {
	if len(c.Siblings) == 0 || len(c.Siblings) != len(c.PathBits) {
		return fmt.Errorf("circuits: %d siblings for %d path bits", len(c.Siblings), len(c.PathBits))
	}
	hash, err := hasher.For(c.Scheme)
	if err != nil {
		return err
	}

	identity, err := hash(api, c.Secret, c.UserSalt)
	if err != nil {
		return err
	}
	commitment, err := hash(api, identity, c.AppSalt, c.Grade)
	if err != nil {
		return err
	}

	// membership
	node := commitment
	for i := range c.Siblings {
		api.AssertIsBoolean(c.PathBits[i])
		left := api.Select(c.PathBits[i], c.Siblings[i], node)
		right := api.Select(c.PathBits[i], node, c.Siblings[i])
		if node, err = hash(api, left, right); err != nil {
			return err
		}
	}
	api.AssertIsEqual(node, c.Root)

	// grade >= MinThreshold; both operands are bounded first so the
	// difference cannot wrap into a small value.
	nb := bits.WithNbDigits(credential.AttributeBits)
	bits.ToBinary(api, c.Grade, nb)
	bits.ToBinary(api, c.MinThreshold, nb)
	bits.ToBinary(api, api.Sub(c.Grade, c.MinThreshold), nb)

	nullifier, err := hash(api, commitment, c.Nonce)
	if err != nil {
		return err
	}
	api.AssertIsEqual(nullifier, c.Nullifier)
	return nil
}
