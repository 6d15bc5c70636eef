// Package credential evaluates the credential relation natively: it derives
// the identity commitment, the leaf commitment, the Merkle root reached
// through a sibling path and the nullifier, and reports when no satisfying
// assignment exists. It mirrors circuits.CredentialCircuit constraint by
// constraint.
package credential

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/tree"
)

// AttributeBits bounds grade and threshold; grade-threshold must fit too.
const AttributeBits = 64

// ErrWitnessUnsatisfiable marks private inputs for which the relation has no
// solution. It never leaves the holder.
var ErrWitnessUnsatisfiable = errors.New("credential: witness unsatisfiable")

// Witness is the holder's full input to the relation.
type Witness struct {
	Secret   fr.Element
	UserSalt fr.Element
	AppSalt  fr.Element
	Grade    fr.Element
	Nonce    fr.Element
	Path     tree.Path

	MinThreshold fr.Element

	// Nullifier and Root, when set, are claimed public values that the
	// derived ones must match.
	Nullifier *fr.Element
	Root      *fr.Element
}

// Public is the public part of a satisfied relation.
type Public struct {
	Root         fr.Element
	Nullifier    fr.Element
	MinThreshold fr.Element
}

// Evaluation holds every derived value.
type Evaluation struct {
	IdentityCommitment fr.Element
	Commitment         fr.Element
	Public             Public
}

// IdentityCommitment is H(secret, userSalt).
func IdentityCommitment(h field.Hasher, secret, userSalt fr.Element) (fr.Element, error) {
	return h.Hash(secret, userSalt)
}

// Commitment is H(identityCommitment, appSalt, grade), the tree leaf.
func Commitment(h field.Hasher, identity, appSalt, grade fr.Element) (fr.Element, error) {
	return h.Hash(identity, appSalt, grade)
}

// Nullifier is H(commitment, nonce).
func Nullifier(h field.Hasher, commitment, nonce fr.Element) (fr.Element, error) {
	return h.Hash(commitment, nonce)
}

// Evaluate runs the relation. It fails with ErrWitnessUnsatisfiable when a
// constraint does not hold and with a plain error when hashing fails.
func Evaluate(h field.Hasher, w Witness) (*Evaluation, error) {
	if len(w.Path.Siblings) == 0 || len(w.Path.Siblings) != len(w.Path.Bits) {
		return nil, fmt.Errorf("%w: malformed sibling path", ErrWitnessUnsatisfiable)
	}
	for i, b := range w.Path.Bits {
		if b > 1 {
			return nil, fmt.Errorf("%w: direction bit %d at level %d", ErrWitnessUnsatisfiable, b, i)
		}
	}

	identity, err := IdentityCommitment(h, w.Secret, w.UserSalt)
	if err != nil {
		return nil, err
	}
	commitment, err := Commitment(h, identity, w.AppSalt, w.Grade)
	if err != nil {
		return nil, err
	}
	root, err := w.Path.Fold(h, commitment)
	if err != nil {
		return nil, err
	}
	if w.Root != nil && !root.Equal(w.Root) {
		return nil, fmt.Errorf("%w: computed root %s differs from %s", ErrWitnessUnsatisfiable, root.String(), w.Root.String())
	}

	if err := checkThreshold(w.Grade, w.MinThreshold); err != nil {
		return nil, err
	}

	nullifier, err := Nullifier(h, commitment, w.Nonce)
	if err != nil {
		return nil, err
	}
	if w.Nullifier != nil && !nullifier.Equal(w.Nullifier) {
		return nil, fmt.Errorf("%w: nullifier mismatch", ErrWitnessUnsatisfiable)
	}

	return &Evaluation{
		IdentityCommitment: identity,
		Commitment:         commitment,
		Public: Public{
			Root:         root,
			Nullifier:    nullifier,
			MinThreshold: w.MinThreshold,
		},
	}, nil
}

func checkThreshold(grade, min fr.Element) error {
	g, m := field.ToBig(grade), field.ToBig(min)
	if g.BitLen() > AttributeBits {
		return fmt.Errorf("%w: grade exceeds %d bits", ErrWitnessUnsatisfiable, AttributeBits)
	}
	if m.BitLen() > AttributeBits {
		return fmt.Errorf("%w: threshold exceeds %d bits", ErrWitnessUnsatisfiable, AttributeBits)
	}
	if g.Cmp(m) < 0 {
		return fmt.Errorf("%w: grade below threshold", ErrWitnessUnsatisfiable)
	}
	return nil
}

// MaxAttribute is the largest grade or threshold the relation accepts.
func MaxAttribute() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), AttributeBits), big.NewInt(1))
}
