package main

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/verifier"
)

type recordingVerifier struct {
	calls []credential.Public
	err   error
}

func (r *recordingVerifier) Verify(_ context.Context, _ calldata.Proof, pub credential.Public) error {
	r.calls = append(r.calls, pub)
	return r.err
}

func TestCheckPinsCurrentRoot(t *testing.T) {
	ctx := context.Background()
	pub := credential.Public{
		Root:         field.FromUint64(7),
		Nullifier:    field.FromUint64(8),
		MinThreshold: field.FromUint64(50),
	}

	t.Run("offline", func(t *testing.T) {
		v := &recordingVerifier{}
		require.NoError(t, check(ctx, v, 0, calldata.Proof{}, pub, nil))
		require.Len(t, v.calls, 1)
	})

	t.Run("current root", func(t *testing.T) {
		v := &recordingVerifier{}
		current := field.FromUint64(7)
		require.NoError(t, check(ctx, v, 0, calldata.Proof{}, pub, &current))
		require.Len(t, v.calls, 1)
	})

	t.Run("stale root", func(t *testing.T) {
		v := &recordingVerifier{}
		current := field.FromUint64(9)
		err := check(ctx, v, 3, calldata.Proof{}, pub, &current)
		require.ErrorIs(t, err, errStaleRoot)
		require.Empty(t, v.calls)
	})

	t.Run("rejected", func(t *testing.T) {
		v := &recordingVerifier{err: verifier.ErrInvalidProof}
		var current fr.Element
		current.Set(&pub.Root)
		err := check(ctx, v, 0, calldata.Proof{}, pub, &current)
		require.ErrorIs(t, err, verifier.ErrInvalidProof)
	})
}
