package rpcapi

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/verifier"
	"github.com/yourorg/zkcert/pkg/witness"
)

var (
	issuerKey   = mustKey("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	strangerKey = mustKey("8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a")
	issuer      = crypto.PubkeyToAddress(issuerKey.PublicKey)
	recipient   = common.HexToAddress("0x000000000000000000000000000000000000beef")
)

func mustKey(hex string) *ecdsa.PrivateKey {
	k, err := crypto.HexToECDSA(hex)
	if err != nil {
		panic(err)
	}
	return k
}

/* ---------------- fixtures ---------------- */

// rootVerifier accepts proofs whose first word is the root's low 64 bits.
type rootVerifier struct{}

func (rootVerifier) Verify(_ context.Context, p calldata.Proof, pub credential.Public) error {
	if p[0].Uint64() != field.ToBig(pub.Root).Uint64() {
		return fmt.Errorf("%w: root mismatch", verifier.ErrInvalidProof)
	}
	return nil
}

func proofFor(root fr.Element) calldata.Proof {
	var p calldata.Proof
	p[0].SetUint64(field.ToBig(root).Uint64())
	return p
}

func serve(t *testing.T, ws bool) (*registry.Registry, *Client) {
	t.Helper()
	reg, err := registry.New(rootVerifier{}, registry.WithDepth(5))
	require.NoError(t, err)
	t.Cleanup(func() { reg.Close() })

	srv, err := NewServer(reg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(srv.Stop)

	url := ""
	if ws {
		hs := httptest.NewServer(srv.WebsocketHandler([]string{"*"}))
		t.Cleanup(hs.Close)
		url = "ws://" + strings.TrimPrefix(hs.URL, "http://")
	} else {
		hs := httptest.NewServer(srv)
		t.Cleanup(hs.Close)
		url = hs.URL
	}

	c, err := Dial(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return reg, c
}

/* ---------------- tests ---------------- */

func TestGroupLifecycle(t *testing.T) {
	ctx := context.Background()
	_, c := serve(t, false)

	id, err := c.CreateGroup(ctx, issuerKey, "alumni")
	require.NoError(t, err)
	require.Zero(t, id)

	var root fr.Element
	for i := uint64(1); i <= 3; i++ {
		root, err = c.AddMember(ctx, issuerKey, id, field.FromUint64(i))
		require.NoError(t, err)
	}
	_, err = c.RemoveMember(ctx, issuerKey, id, field.FromUint64(2))
	require.NoError(t, err)
	root, err = c.AddMember(ctx, issuerKey, id, field.FromUint64(4))
	require.NoError(t, err)

	got, err := c.Root(ctx, id)
	require.NoError(t, err)
	require.True(t, got.Equal(&root))

	d, err := c.Depth(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 5, d)
	n, err := c.LeafCount(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
	next, err := c.NextIndex(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(4), next)

	v, err := c.ElementAt(ctx, id, 1)
	require.NoError(t, err)
	require.True(t, v.IsZero())

	idx, err := c.IndexOf(ctx, id, field.FromUint64(4))
	require.NoError(t, err)
	require.Equal(t, uint64(3), idx)

	path, err := c.SiblingPath(ctx, id, idx)
	require.NoError(t, err)
	h, err := field.NewHasher(field.Poseidon)
	require.NoError(t, err)
	folded, err := path.Fold(h, field.FromUint64(4))
	require.NoError(t, err)
	require.True(t, folded.Equal(&root))

	info, err := c.Group(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alumni", info.Description)
	require.Equal(t, issuer, info.Owner)
}

func TestErrorsCrossTheWire(t *testing.T) {
	ctx := context.Background()
	_, c := serve(t, false)

	id, err := c.CreateGroup(ctx, issuerKey, "staff")
	require.NoError(t, err)

	_, err = c.AddMember(ctx, strangerKey, id, field.FromUint64(1))
	require.ErrorIs(t, err, registry.ErrUnauthorized)

	_, err = c.Root(ctx, 9)
	require.ErrorIs(t, err, registry.ErrGroupNotFound)

	_, err = c.IndexOf(ctx, id, field.FromUint64(1))
	require.ErrorIs(t, err, tree.ErrNotFound)

	_, err = c.ElementAt(ctx, id, 1<<20)
	require.ErrorIs(t, err, tree.ErrIndexOutOfRange)

	_, err = c.QueryProof(ctx, recipient, 0)
	require.ErrorIs(t, err, registry.ErrProofNotFound)

	// a commitment outside the field is rejected as a bad parameter
	var res interface{}
	err = c.Client.CallContext(ctx, &res, "zkcert_addMember", Auth{Caller: issuer}, id, "0x"+strings.Repeat("f", 64))
	var re rpc.Error
	require.True(t, errors.As(err, &re))
	require.Equal(t, CodeInvalidParams, re.ErrorCode())
}

func TestVerifyOverRPC(t *testing.T) {
	ctx := context.Background()
	_, c := serve(t, false)

	id, err := c.CreateGroup(ctx, issuerKey, "alumni")
	require.NoError(t, err)
	root, err := c.AddMember(ctx, issuerKey, id, field.FromUint64(10))
	require.NoError(t, err)

	pub := witness.PublicInputs{Root: root.String(), Nullifier: "77", MinThreshold: "50"}
	idx, err := c.Verify(ctx, id, pub, proofFor(root), recipient, "ref-1")
	require.NoError(t, err)
	require.Zero(t, idx)

	_, err = c.Verify(ctx, id, pub, proofFor(root), recipient, "ref-2")
	require.ErrorIs(t, err, registry.ErrReplayedProof)

	pub.Nullifier = "78"
	_, err = c.Verify(ctx, id, pub, proofFor(field.FromUint64(1)), recipient, "ref-3")
	require.ErrorIs(t, err, registry.ErrInvalidProof)

	n, err := c.ProofCount(ctx, recipient)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	rec, err := c.QueryProof(ctx, recipient, 0)
	require.NoError(t, err)
	require.Equal(t, "ref-1", rec.Reference)
	require.Equal(t, "77", rec.Nullifier.String())
	require.True(t, rec.Root.Equal(&root))
}

func TestClientIsWitnessSource(t *testing.T) {
	ctx := context.Background()
	_, c := serve(t, false)

	priv := witness.Private{
		Secret:   field.FromUint64(1),
		UserSalt: field.FromUint64(2),
		AppSalt:  field.FromUint64(3),
		Grade:    field.FromUint64(70),
		Nonce:    field.FromUint64(4),
	}
	h, err := field.NewHasher(field.Poseidon)
	require.NoError(t, err)
	identity, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
	require.NoError(t, err)
	commitment, err := credential.Commitment(h, identity, priv.AppSalt, priv.Grade)
	require.NoError(t, err)

	id, err := c.CreateGroup(ctx, issuerKey, "alumni")
	require.NoError(t, err)
	_, err = c.AddMember(ctx, issuerKey, id, field.FromUint64(5))
	require.NoError(t, err)
	root, err := c.AddMember(ctx, issuerKey, id, commitment)
	require.NoError(t, err)

	var src witness.Source = c
	b, err := witness.FromSource(ctx, src, id, field.Poseidon, priv, field.FromUint64(60))
	require.NoError(t, err)
	require.Equal(t, root.String(), b.Public.Root)
	require.Equal(t, uint64(1), b.LeafIndex)
}

func TestSubscriptions(t *testing.T) {
	ctx := context.Background()
	_, c := serve(t, true)

	added := make(chan MemberEvent, 4)
	sub, err := c.SubscribeMemberAdded(ctx, added)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	verified := make(chan ProofVerifiedEvent, 4)
	vsub, err := c.SubscribeProofVerified(ctx, verified)
	require.NoError(t, err)
	defer vsub.Unsubscribe()

	id, err := c.CreateGroup(ctx, issuerKey, "alumni")
	require.NoError(t, err)
	root, err := c.AddMember(ctx, issuerKey, id, field.FromUint64(10))
	require.NoError(t, err)

	select {
	case ev := <-added:
		require.Equal(t, id, ev.GroupID)
		require.Zero(t, ev.Index)
		require.Equal(t, "10", (*big.Int)(ev.Commitment).String())
	case err := <-sub.Err():
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("no memberAdded notification")
	}

	pub := witness.PublicInputs{Root: root.String(), Nullifier: "1", MinThreshold: "50"}
	_, err = c.Verify(ctx, id, pub, proofFor(root), recipient, "ref")
	require.NoError(t, err)

	select {
	case ev := <-verified:
		require.Equal(t, recipient, ev.Recipient)
		require.Equal(t, "50", (*big.Int)(ev.MinThreshold).String())
	case <-time.After(5 * time.Second):
		t.Fatal("no proofVerified notification")
	}
}

func TestSignedMutations(t *testing.T) {
	ctx := context.Background()
	reg, err := registry.New(rootVerifier{}, registry.WithDepth(5))
	require.NoError(t, err)
	defer reg.Close()
	svc := NewService(reg, zerolog.Nop())

	auth, err := Sign(issuerKey, time.Minute, "createGroup", "alumni")
	require.NoError(t, err)
	id, err := svc.CreateGroup(ctx, auth, "alumni")
	require.NoError(t, err)
	info, err := reg.Group(ctx, id)
	require.NoError(t, err)
	require.Equal(t, issuer, info.Owner)

	t.Run("reused", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, auth, "alumni")
		require.ErrorIs(t, err, registry.ErrUnauthorized)
		require.Equal(t, uint64(1), reg.GroupCount())
	})

	commitment := field.FromUint64(7)
	wire := toWire(commitment)

	t.Run("other arguments", func(t *testing.T) {
		other := field.FromUint64(8)
		a, err := Sign(issuerKey, time.Minute, "addMember", id, other.Bytes())
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, a, id, wire)
		require.ErrorIs(t, err, registry.ErrUnauthorized)
	})

	t.Run("other method", func(t *testing.T) {
		a, err := Sign(issuerKey, time.Minute, "removeMember", id, commitment.Bytes())
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, a, id, wire)
		require.ErrorIs(t, err, registry.ErrUnauthorized)
	})

	t.Run("claimed caller", func(t *testing.T) {
		a, err := Sign(strangerKey, time.Minute, "addMember", id, commitment.Bytes())
		require.NoError(t, err)
		a.Caller = issuer
		_, err = svc.AddMember(ctx, a, id, wire)
		require.ErrorIs(t, err, registry.ErrUnauthorized)
	})

	t.Run("stranger", func(t *testing.T) {
		a, err := Sign(strangerKey, time.Minute, "addMember", id, commitment.Bytes())
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, a, id, wire)
		require.ErrorIs(t, err, registry.ErrUnauthorized)
	})

	t.Run("expiry", func(t *testing.T) {
		a, err := Sign(issuerKey, time.Minute, "addMember", id, commitment.Bytes())
		require.NoError(t, err)
		svc.auth.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		_, err = svc.AddMember(ctx, a, id, wire)
		svc.auth.now = time.Now
		require.ErrorIs(t, err, registry.ErrUnauthorized)

		far, err := Sign(issuerKey, time.Hour, "addMember", id, commitment.Bytes())
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, far, id, wire)
		require.ErrorIs(t, err, registry.ErrUnauthorized)
	})

	t.Run("wallet recovery id", func(t *testing.T) {
		a, err := Sign(issuerKey, time.Minute, "addMember", id, commitment.Bytes())
		require.NoError(t, err)
		a.Signature[crypto.RecoveryIDOffset] += 27
		root, err := svc.AddMember(ctx, a, id, wire)
		require.NoError(t, err)
		want, err := reg.Root(ctx, id)
		require.NoError(t, err)
		require.Equal(t, want.String(), (*big.Int)(root).String())
	})
}
