package prover_test

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/prover"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/verifier"
	"github.com/yourorg/zkcert/pkg/witness"
)

const depth = 4

func member(t *testing.T, scheme field.Scheme) *witness.Bundle {
	t.Helper()
	h, err := field.NewHasher(scheme)
	require.NoError(t, err)
	tr, err := tree.New(depth, h)
	require.NoError(t, err)

	priv := witness.Private{
		Secret:   field.FromUint64(11),
		UserSalt: field.FromUint64(12),
		AppSalt:  field.FromUint64(13),
		Grade:    field.FromUint64(88),
		Nonce:    field.FromUint64(14),
	}
	for i := uint64(1); i <= 2; i++ {
		_, err := tr.Insert(field.FromUint64(i))
		require.NoError(t, err)
	}
	id, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
	require.NoError(t, err)
	c, err := credential.Commitment(h, id, priv.AppSalt, priv.Grade)
	require.NoError(t, err)
	_, err = tr.Insert(c)
	require.NoError(t, err)

	path, err := tr.SiblingPath(2)
	require.NoError(t, err)
	b, err := witness.Build(scheme, priv, path, field.FromUint64(80))
	require.NoError(t, err)
	return b
}

func TestProveAndVerify(t *testing.T) {
	for _, s := range []field.Scheme{field.Poseidon, field.MiMC} {
		p, err := prover.Setup(depth, s)
		require.NoError(t, err)

		b := member(t, s)
		proof, err := p.Prove(b)
		require.NoError(t, err, s)

		pub, err := b.Public.Elements()
		require.NoError(t, err)
		v := verifier.New(p.VerifyingKey(), depth, s)
		require.NoError(t, v.Verify(context.Background(), proof, pub), s)
	}
}

func TestProveRejectsOtherShape(t *testing.T) {
	p, err := prover.Setup(depth, field.Poseidon)
	require.NoError(t, err)

	_, err = p.Prove(member(t, field.MiMC))
	require.Error(t, err)

	_, err = p.Prove(nil)
	require.Error(t, err)
}

func TestLoadOrSetupCachesKeys(t *testing.T) {
	dir := t.TempDir()

	first, err := prover.LoadOrSetup(dir, depth, field.Poseidon)
	require.NoError(t, err)
	pkPath, vkPath := prover.KeyPaths(dir, depth, field.Poseidon)
	require.FileExists(t, pkPath)
	require.FileExists(t, vkPath)

	second, err := prover.LoadOrSetup(dir, depth, field.Poseidon)
	require.NoError(t, err)

	// a proof from the reloaded prover verifies under the first key
	b := member(t, field.Poseidon)
	proof, err := second.Prove(b)
	require.NoError(t, err)
	pub, err := b.Public.Elements()
	require.NoError(t, err)
	require.NoError(t, verifier.New(first.VerifyingKey(), depth, field.Poseidon).Verify(context.Background(), proof, pub))

	vk, err := prover.ReadVerifyingKey(vkPath)
	require.NoError(t, err)
	require.NoError(t, verifier.New(vk, depth, field.Poseidon).Verify(context.Background(), proof, pub))
}

func TestLoadMissingKeys(t *testing.T) {
	_, err := prover.Load(t.TempDir(), depth, field.Poseidon)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompileShared(t *testing.T) {
	var wg sync.WaitGroup
	counts := make([]int, 4)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ccs, err := prover.Compile(3, field.MiMC)
			if err == nil {
				counts[i] = ccs.GetNbConstraints()
			}
		}(i)
	}
	wg.Wait()
	for _, c := range counts {
		require.Positive(t, c)
		require.Equal(t, counts[0], c)
	}
}

func TestExportSolidity(t *testing.T) {
	p, err := prover.Setup(depth, field.Poseidon)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.ExportSolidity(&buf))
	require.Contains(t, buf.String(), "pragma solidity")
	require.Contains(t, buf.String(), "verifyProof")
}
