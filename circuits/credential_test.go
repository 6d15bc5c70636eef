package circuits_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"

	"github.com/yourorg/zkcert/circuits"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/witness"
)

/* ---------------- reference vectors ---------------- */

const (
	depth        = 10
	refRoot      = "4068613235613342243794163368396056065476402536578893582255495660941022755827"
	refNullifier = "12814787478331773156215995380435585311823759424381788229928076957868900783128"
)

func refPrivate() witness.Private {
	return witness.Private{
		Secret:   field.FromUint64(1),
		UserSalt: field.FromUint64(2),
		AppSalt:  field.FromUint64(3),
		Grade:    field.FromUint64(70),
		Nonce:    field.FromUint64(4),
	}
}

func zeroPath() tree.Path {
	return tree.Path{Siblings: make([]fr.Element, depth), Bits: make([]uint8, depth)}
}

func refPublic(min uint64) credential.Public {
	return credential.Public{
		Root:         field.MustFromString(refRoot),
		Nullifier:    field.MustFromString(refNullifier),
		MinThreshold: field.FromUint64(min),
	}
}

func opts() []test.TestingOption {
	return []test.TestingOption{
		test.WithCurves(circuits.Curve()),
		test.WithBackends(backend.GROTH16),
	}
}

/* ---------------- tests ---------------- */

func TestCredentialReference(t *testing.T) {
	assert := test.NewAssert(t)

	w := witness.Assign(field.Poseidon, refPrivate(), zeroPath(), refPublic(50))
	assert.ProverSucceeded(circuits.NewCredentialCircuit(depth, field.Poseidon), w, opts()...)
}

func TestCredentialGradeBelowThreshold(t *testing.T) {
	assert := test.NewAssert(t)

	w := witness.Assign(field.Poseidon, refPrivate(), zeroPath(), refPublic(100))
	assert.ProverFailed(circuits.NewCredentialCircuit(depth, field.Poseidon), w, opts()...)
}

func TestCredentialGradeEqualsThreshold(t *testing.T) {
	assert := test.NewAssert(t)

	w := witness.Assign(field.Poseidon, refPrivate(), zeroPath(), refPublic(70))
	assert.NoError(test.IsSolved(circuits.NewCredentialCircuit(depth, field.Poseidon), w, circuits.Curve().ScalarField()))
}

func TestCredentialWrongNullifier(t *testing.T) {
	assert := test.NewAssert(t)

	pub := refPublic(50)
	pub.Nullifier = field.FromUint64(1)
	w := witness.Assign(field.Poseidon, refPrivate(), zeroPath(), pub)
	assert.ProverFailed(circuits.NewCredentialCircuit(depth, field.Poseidon), w, opts()...)
}

// Changing any private input while keeping the reference public values must
// break the relation.
func TestCredentialPerturbedPrivate(t *testing.T) {
	assert := test.NewAssert(t)
	blueprint := circuits.NewCredentialCircuit(depth, field.Poseidon)

	perturb := []func(p *witness.Private, path *tree.Path){
		func(p *witness.Private, _ *tree.Path) { p.Secret = field.FromUint64(5) },
		func(p *witness.Private, _ *tree.Path) { p.UserSalt = field.FromUint64(5) },
		func(p *witness.Private, _ *tree.Path) { p.AppSalt = field.FromUint64(5) },
		func(p *witness.Private, _ *tree.Path) { p.Grade = field.FromUint64(71) },
		func(p *witness.Private, _ *tree.Path) { p.Nonce = field.FromUint64(5) },
		func(_ *witness.Private, path *tree.Path) { path.Siblings[3] = field.FromUint64(5) },
		func(_ *witness.Private, path *tree.Path) { path.Bits[0] = 1 },
	}
	for i, f := range perturb {
		priv, path := refPrivate(), zeroPath()
		f(&priv, &path)
		w := witness.Assign(field.Poseidon, priv, path, refPublic(50))
		err := test.IsSolved(blueprint, w, circuits.Curve().ScalarField())
		assert.Error(err, "perturbation %d", i)
	}
}

// A grade that wraps modulo r must not pass the range check.
func TestCredentialGradeOutOfRange(t *testing.T) {
	assert := test.NewAssert(t)

	h, err := field.NewHasher(field.Poseidon)
	assert.NoError(err)

	priv := refPrivate()
	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)
	priv.Grade = minusOne

	id, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
	assert.NoError(err)
	c, err := credential.Commitment(h, id, priv.AppSalt, priv.Grade)
	assert.NoError(err)
	path := zeroPath()
	root, err := path.Fold(h, c)
	assert.NoError(err)
	n, err := credential.Nullifier(h, c, priv.Nonce)
	assert.NoError(err)

	pub := credential.Public{Root: root, Nullifier: n, MinThreshold: field.FromUint64(50)}
	w := witness.Assign(field.Poseidon, priv, path, pub)
	assert.Error(test.IsSolved(circuits.NewCredentialCircuit(depth, field.Poseidon), w, circuits.Curve().ScalarField()))
}

func TestCredentialNonBooleanBit(t *testing.T) {
	assert := test.NewAssert(t)

	path := zeroPath()
	path.Bits[0] = 2
	w := witness.Assign(field.Poseidon, refPrivate(), path, refPublic(50))
	assert.Error(test.IsSolved(circuits.NewCredentialCircuit(depth, field.Poseidon), w, circuits.Curve().ScalarField()))
}

func TestCredentialMiMCMember(t *testing.T) {
	assert := test.NewAssert(t)

	h, err := field.NewHasher(field.MiMC)
	assert.NoError(err)
	tr, err := tree.New(depth, h)
	assert.NoError(err)
	for i := uint64(1); i <= 3; i++ {
		_, err := tr.Insert(field.FromUint64(i))
		assert.NoError(err)
	}

	priv := refPrivate()
	id, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
	assert.NoError(err)
	c, err := credential.Commitment(h, id, priv.AppSalt, priv.Grade)
	assert.NoError(err)
	_, err = tr.Insert(c)
	assert.NoError(err)

	path, err := tr.SiblingPath(3)
	assert.NoError(err)
	b, err := witness.Build(field.MiMC, priv, path, field.FromUint64(60))
	assert.NoError(err)

	assert.ProverSucceeded(b.Blueprint, b.Assignment, opts()...)
}
