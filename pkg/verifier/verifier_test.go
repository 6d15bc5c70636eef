package verifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/prover"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/verifier"
	"github.com/yourorg/zkcert/pkg/witness"
)

const (
	depth        = 10
	refRoot      = "4068613235613342243794163368396056065476402536578893582255495660941022755827"
	refNullifier = "12814787478331773156215995380435585311823759424381788229928076957868900783128"
)

func referenceProof(t *testing.T) (groth16.VerifyingKey, calldata.Proof, credential.Public) {
	t.Helper()

	p, err := prover.Setup(depth, field.Poseidon)
	require.NoError(t, err)

	priv := witness.Private{
		Secret:   field.FromUint64(1),
		UserSalt: field.FromUint64(2),
		AppSalt:  field.FromUint64(3),
		Grade:    field.FromUint64(70),
		Nonce:    field.FromUint64(4),
	}
	path := tree.Path{Siblings: make([]fr.Element, depth), Bits: make([]uint8, depth)}
	b, err := witness.Build(field.Poseidon, priv, path, field.FromUint64(50))
	require.NoError(t, err)

	proof, err := p.Prove(b)
	require.NoError(t, err)
	pub, err := b.Public.Elements()
	require.NoError(t, err)

	return p.VerifyingKey(), proof, pub
}

func TestVerifyReference(t *testing.T) {
	vk, proof, pub := referenceProof(t)
	v := verifier.New(vk, depth, field.Poseidon)
	require.Equal(t, refRoot, pub.Root.String())
	require.Equal(t, refNullifier, pub.Nullifier.String())

	require.NoError(t, v.Verify(context.Background(), proof, pub))

	t.Run("other public values", func(t *testing.T) {
		for name, f := range map[string]func(p *credential.Public){
			"root":      func(p *credential.Public) { p.Root = field.FromUint64(1) },
			"nullifier": func(p *credential.Public) { p.Nullifier = field.FromUint64(1) },
			"threshold": func(p *credential.Public) { p.MinThreshold = field.FromUint64(60) },
		} {
			other := pub
			f(&other)
			err := v.Verify(context.Background(), proof, other)
			require.ErrorIs(t, err, verifier.ErrInvalidProof, name)
		}
	})

	t.Run("tampered proof", func(t *testing.T) {
		bad := proof
		bad[6], bad[0] = proof[0], proof[6]
		bad[7], bad[1] = proof[1], proof[7]
		require.ErrorIs(t, v.Verify(context.Background(), bad, pub), verifier.ErrInvalidProof)

		var zero calldata.Proof
		require.ErrorIs(t, v.Verify(context.Background(), zero, pub), verifier.ErrInvalidProof)

		bad = proof
		bad[3].AddUint64(&bad[3], 1)
		require.ErrorIs(t, v.Verify(context.Background(), bad, pub), verifier.ErrInvalidProof)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := v.Verify(ctx, proof, pub)
		require.ErrorIs(t, err, verifier.ErrInvalidProof)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("timeout", func(t *testing.T) {
		slow := verifier.New(vk, depth, field.Poseidon, verifier.WithTimeout(time.Nanosecond))
		err := slow.Verify(context.Background(), proof, pub)
		require.ErrorIs(t, err, verifier.ErrInvalidProof)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
