package witness

import (
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/zkcert/circuits"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/tree"
)

// Source serves the tree state a holder needs to locate its leaf. The
// registry serves it in-process and Remote serves it over JSON-RPC.
type Source interface {
	IndexOf(ctx context.Context, groupID uint64, leaf fr.Element) (uint64, error)
	SiblingPath(ctx context.Context, groupID uint64, index uint64) (tree.Path, error)
}

// Build evaluates the credential against path and packs the circuit
// assignment. It fails with credential.ErrWitnessUnsatisfiable before any
// proving work when the inputs cannot satisfy the circuit.
func Build(scheme field.Scheme, priv Private, path tree.Path, minThreshold fr.Element) (*Bundle, error) {
	h, err := field.NewHasher(scheme)
	if err != nil {
		return nil, err
	}
	ev, err := credential.Evaluate(h, credential.Witness{
		Secret:       priv.Secret,
		UserSalt:     priv.UserSalt,
		AppSalt:      priv.AppSalt,
		Grade:        priv.Grade,
		Nonce:        priv.Nonce,
		Path:         path,
		MinThreshold: minThreshold,
	})
	if err != nil {
		return nil, err
	}

	assignment := Assign(scheme, priv, path, ev.Public)
	full, err := frontend.NewWitness(assignment, circuits.Curve().ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness: %w", err)
	}

	return &Bundle{
		Full:       full,
		Public:     NewPublicInputs(ev.Public),
		Blueprint:  circuits.NewCredentialCircuit(len(path.Siblings), scheme),
		Assignment: assignment,
		Commitment: ev.Commitment,
		LeafIndex:  path.Index(),
	}, nil
}

// FromSource looks up the holder's commitment in group groupID and builds
// against the current sibling path.
func FromSource(
	ctx context.Context,
	src Source,
	groupID uint64,
	scheme field.Scheme,
	priv Private,
	minThreshold fr.Element,
) (*Bundle, error) {
	h, err := field.NewHasher(scheme)
	if err != nil {
		return nil, err
	}
	identity, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
	if err != nil {
		return nil, err
	}
	commitment, err := credential.Commitment(h, identity, priv.AppSalt, priv.Grade)
	if err != nil {
		return nil, err
	}

	index, err := src.IndexOf(ctx, groupID, commitment)
	if err != nil {
		return nil, fmt.Errorf("locate commitment: %w", err)
	}
	path, err := src.SiblingPath(ctx, groupID, index)
	if err != nil {
		return nil, fmt.Errorf("sibling path %d: %w", index, err)
	}
	return Build(scheme, priv, path, minThreshold)
}

// Assign fills a circuit assignment; it does not check satisfiability.
func Assign(scheme field.Scheme, priv Private, path tree.Path, pub credential.Public) *circuits.CredentialCircuit {
	c := circuits.NewCredentialCircuit(len(path.Siblings), scheme)
	c.Root = field.ToBig(pub.Root)
	c.Nullifier = field.ToBig(pub.Nullifier)
	c.MinThreshold = field.ToBig(pub.MinThreshold)
	c.Secret = field.ToBig(priv.Secret)
	c.UserSalt = field.ToBig(priv.UserSalt)
	c.AppSalt = field.ToBig(priv.AppSalt)
	c.Grade = field.ToBig(priv.Grade)
	c.Nonce = field.ToBig(priv.Nonce)
	for i := range path.Siblings {
		c.Siblings[i] = field.ToBig(path.Siblings[i])
		c.PathBits[i] = path.Bits[i]
	}
	return c
}

// PublicAssignment holds only the public values, for verifiers.
func PublicAssignment(depth int, scheme field.Scheme, pub credential.Public) *circuits.CredentialCircuit {
	c := circuits.NewCredentialCircuit(depth, scheme)
	c.Root = field.ToBig(pub.Root)
	c.Nullifier = field.ToBig(pub.Nullifier)
	c.MinThreshold = field.ToBig(pub.MinThreshold)
	return c
}
