package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/store"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/verifier"
)

var (
	owner    = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	stranger = common.HexToAddress("0x0000000000000000000000000000000000000bad")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000a1ce0")
	ctx      = context.Background()
)

/* ---------------- stub verifier ---------------- */

// stubVerifier accepts a proof whose first word equals the low 64 bits of
// the root it is checked against.
type stubVerifier struct {
	mu    sync.Mutex
	calls []credential.Public
}

func (s *stubVerifier) Verify(_ context.Context, p calldata.Proof, pub credential.Public) error {
	s.mu.Lock()
	s.calls = append(s.calls, pub)
	s.mu.Unlock()
	if p[0].Uint64() != field.ToBig(pub.Root).Uint64() {
		return fmt.Errorf("%w: stub", verifier.ErrInvalidProof)
	}
	return nil
}

func stubProof(root fr.Element) calldata.Proof {
	var p calldata.Proof
	p[0].SetUint64(field.ToBig(root).Uint64())
	return p
}

func newRegistry(t *testing.T, opts ...Option) (*Registry, *stubVerifier) {
	t.Helper()
	v := &stubVerifier{}
	r, err := New(v, opts...)
	require.NoError(t, err)
	return r, v
}

func member(i uint64) fr.Element { return field.FromUint64(100 + i) }

/* ---------------- groups ---------------- */

func TestCreateGroup(t *testing.T) {
	r, _ := newRegistry(t)
	defer r.Close()

	ch := make(chan GroupCreated, 4)
	sub := r.SubscribeGroupCreated(ch)
	defer sub.Unsubscribe()

	for want := uint64(0); want < 3; want++ {
		id, err := r.CreateGroup(ctx, owner, fmt.Sprintf("group %d", want))
		require.NoError(t, err)
		require.Equal(t, want, id)
		ev := <-ch
		require.Equal(t, GroupCreated{GroupID: want, Owner: owner, Description: fmt.Sprintf("group %d", want)}, ev)
	}
	require.Equal(t, uint64(3), r.GroupCount())

	info, err := r.Group(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, owner, info.Owner)
	require.Equal(t, DefaultDepth, info.Depth)
	require.Zero(t, info.LeafCount)

	_, err = r.Group(ctx, 3)
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestMembership(t *testing.T) {
	r, _ := newRegistry(t, WithDepth(3))
	defer r.Close()

	added := make(chan MemberAdded, 8)
	removed := make(chan MemberRemoved, 8)
	defer r.SubscribeMemberAdded(added).Unsubscribe()
	defer r.SubscribeMemberRemoved(removed).Unsubscribe()

	id, err := r.CreateGroup(ctx, owner, "alumni")
	require.NoError(t, err)

	for i := uint64(0); i < 3; i++ {
		root, err := r.AddMember(ctx, owner, id, member(i))
		require.NoError(t, err)
		ev := <-added
		require.Equal(t, i, ev.Index)
		require.True(t, ev.Root.Equal(&root))
	}

	root, err := r.RemoveMember(ctx, owner, id, member(1))
	require.NoError(t, err)
	ev := <-removed
	require.Equal(t, uint64(1), ev.Index)
	require.Equal(t, member(1), ev.Commitment)

	cur, err := r.Root(ctx, id)
	require.NoError(t, err)
	require.True(t, cur.Equal(&root))

	n, err := r.LeafCount(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(2), n)
	next, err := r.NextIndex(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(3), next)

	v, err := r.ElementAt(ctx, id, 1)
	require.NoError(t, err)
	require.True(t, v.IsZero())
	_, err = r.IndexOf(ctx, id, member(1))
	require.ErrorIs(t, err, tree.ErrNotFound)

	idx, err := r.IndexOf(ctx, id, member(2))
	require.NoError(t, err)
	require.Equal(t, uint64(2), idx)

	// a re-added commitment gets a fresh slot
	_, err = r.AddMember(ctx, owner, id, member(1))
	require.NoError(t, err)
	idx, err = r.IndexOf(ctx, id, member(1))
	require.NoError(t, err)
	require.Equal(t, uint64(3), idx)

	path, err := r.SiblingPath(ctx, id, 3)
	require.NoError(t, err)
	h, err := field.NewHasher(field.Poseidon)
	require.NoError(t, err)
	folded, err := path.Fold(h, member(1))
	require.NoError(t, err)
	cur, err = r.Root(ctx, id)
	require.NoError(t, err)
	require.True(t, folded.Equal(&cur))

	d, err := r.Depth(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 3, d)
}

func TestOnlyOwnerMutates(t *testing.T) {
	r, _ := newRegistry(t)
	defer r.Close()

	id, err := r.CreateGroup(ctx, owner, "staff")
	require.NoError(t, err)
	_, err = r.AddMember(ctx, owner, id, member(0))
	require.NoError(t, err)
	before, err := r.Group(ctx, id)
	require.NoError(t, err)

	_, err = r.AddMember(ctx, stranger, id, member(1))
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = r.RemoveMember(ctx, stranger, id, member(0))
	require.ErrorIs(t, err, ErrUnauthorized)

	after, err := r.Group(ctx, id)
	require.NoError(t, err)
	require.Equal(t, before, after)

	_, err = r.AddMember(ctx, owner, 7, member(1))
	require.ErrorIs(t, err, ErrGroupNotFound)
	_, err = r.RemoveMember(ctx, owner, id, member(9))
	require.ErrorIs(t, err, tree.ErrNotFound)
}

func TestCapacity(t *testing.T) {
	r, _ := newRegistry(t, WithDepth(2))
	defer r.Close()

	id, err := r.CreateGroup(ctx, owner, "tiny")
	require.NoError(t, err)

	_, err = r.AddMember(ctx, owner, id, fr.Element{})
	require.ErrorIs(t, err, tree.ErrInvalidLeaf)

	for i := uint64(0); i < 4; i++ {
		_, err := r.AddMember(ctx, owner, id, member(i))
		require.NoError(t, err)
		_, err = r.AddMember(ctx, owner, id, member(i))
		if i < 3 {
			require.ErrorIs(t, err, tree.ErrLeafExists)
		}
	}
	root, err := r.Root(ctx, id)
	require.NoError(t, err)

	_, err = r.AddMember(ctx, owner, id, member(4))
	require.ErrorIs(t, err, tree.ErrCapacityExceeded)
	cur, err := r.Root(ctx, id)
	require.NoError(t, err)
	require.True(t, cur.Equal(&root))

	// removal does not free capacity
	_, err = r.RemoveMember(ctx, owner, id, member(0))
	require.NoError(t, err)
	_, err = r.AddMember(ctx, owner, id, member(4))
	require.ErrorIs(t, err, tree.ErrCapacityExceeded)
}

/* ---------------- proofs ---------------- */

func TestVerifyRecordsAndRejectsReplay(t *testing.T) {
	r, v := newRegistry(t)
	defer r.Close()

	verified := make(chan ProofVerified, 2)
	defer r.SubscribeProofVerified(verified).Unsubscribe()

	id, err := r.CreateGroup(ctx, owner, "alumni")
	require.NoError(t, err)
	root, err := r.AddMember(ctx, owner, id, member(0))
	require.NoError(t, err)

	req := VerifyRequest{
		GroupID:      id,
		Nullifier:    field.FromUint64(77),
		MinThreshold: field.FromUint64(50),
		Proof:        stubProof(root),
		Recipient:    alice,
		Reference:    "job-42",
	}
	idx, err := r.Verify(ctx, req)
	require.NoError(t, err)
	require.Zero(t, idx)

	require.Len(t, v.calls, 1)
	require.True(t, v.calls[0].Root.Equal(&root))
	require.Equal(t, field.FromUint64(77), v.calls[0].Nullifier)

	ev := <-verified
	require.Equal(t, id, ev.GroupID)
	require.Equal(t, alice, ev.Recipient)
	require.Equal(t, "50", ev.MinThreshold.String())

	rec, err := r.QueryProof(ctx, alice, 0)
	require.NoError(t, err)
	require.Equal(t, "job-42", rec.Reference)
	require.True(t, rec.Root.Equal(&root))
	_, err = r.QueryProof(ctx, alice, 1)
	require.ErrorIs(t, err, ErrProofNotFound)

	// replay fails before the verifier is consulted
	_, err = r.Verify(ctx, req)
	require.ErrorIs(t, err, ErrReplayedProof)
	require.Len(t, v.calls, 1)
	require.Equal(t, uint64(1), r.ProofCount(ctx, alice))
}

func TestVerifyUsesCurrentRoot(t *testing.T) {
	r, _ := newRegistry(t)
	defer r.Close()

	id, err := r.CreateGroup(ctx, owner, "alumni")
	require.NoError(t, err)
	old, err := r.AddMember(ctx, owner, id, member(0))
	require.NoError(t, err)
	_, err = r.AddMember(ctx, owner, id, member(1))
	require.NoError(t, err)

	_, err = r.Verify(ctx, VerifyRequest{
		GroupID:   id,
		Nullifier: field.FromUint64(1),
		Proof:     stubProof(old),
		Recipient: alice,
	})
	require.ErrorIs(t, err, ErrInvalidProof)
	require.Zero(t, r.ProofCount(ctx, alice))

	// a rejected proof leaves the nullifier unspent
	cur, err := r.Root(ctx, id)
	require.NoError(t, err)
	_, err = r.Verify(ctx, VerifyRequest{
		GroupID:   id,
		Nullifier: field.FromUint64(1),
		Proof:     stubProof(cur),
		Recipient: alice,
	})
	require.NoError(t, err)

	_, err = r.Verify(ctx, VerifyRequest{GroupID: 5, Recipient: alice})
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestNullifierScopedToGroup(t *testing.T) {
	r, _ := newRegistry(t)
	defer r.Close()

	for i := uint64(0); i < 2; i++ {
		id, err := r.CreateGroup(ctx, owner, "g")
		require.NoError(t, err)
		root, err := r.AddMember(ctx, owner, id, member(i))
		require.NoError(t, err)
		_, err = r.Verify(ctx, VerifyRequest{
			GroupID:   id,
			Nullifier: field.FromUint64(9),
			Proof:     stubProof(root),
			Recipient: alice,
		})
		require.NoError(t, err)
	}
	require.Equal(t, uint64(2), r.ProofCount(ctx, alice))
}

func TestNoVerifier(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Verify(ctx, VerifyRequest{})
	require.ErrorIs(t, err, ErrNoVerifier)
}

/* ---------------- persistence ---------------- */

func TestRestoreFromLevelDB(t *testing.T) {
	dir := t.TempDir()
	open := func() *Registry {
		s, err := store.OpenLevelDB(dir, 16, 16)
		require.NoError(t, err)
		r, _ := newRegistry(t, WithStore(s), WithDepth(4), WithZeroMode(tree.ZeroFlat))
		return r
	}

	r := open()
	id, err := r.CreateGroup(ctx, owner, "alumni")
	require.NoError(t, err)
	for i := uint64(0); i < 5; i++ {
		_, err := r.AddMember(ctx, owner, id, member(i))
		require.NoError(t, err)
	}
	_, err = r.RemoveMember(ctx, owner, id, member(2))
	require.NoError(t, err)
	root, err := r.Root(ctx, id)
	require.NoError(t, err)
	_, err = r.Verify(ctx, VerifyRequest{GroupID: id, Nullifier: field.FromUint64(3), Proof: stubProof(root), Recipient: alice})
	require.NoError(t, err)
	_, err = r.CreateGroup(ctx, stranger, "second")
	require.NoError(t, err)
	require.NoError(t, r.Close())

	r = open()
	defer r.Close()

	require.Equal(t, uint64(2), r.GroupCount())
	info, err := r.Group(ctx, id)
	require.NoError(t, err)
	require.True(t, info.Root.Equal(&root))
	require.Equal(t, uint64(4), info.LeafCount)
	require.Equal(t, uint64(5), info.NextIndex)
	require.Equal(t, "alumni", info.Description)

	_, err = r.IndexOf(ctx, id, member(2))
	require.ErrorIs(t, err, tree.ErrNotFound)

	rec, err := r.QueryProof(ctx, alice, 0)
	require.NoError(t, err)
	require.True(t, rec.Root.Equal(&root))

	_, err = r.Verify(ctx, VerifyRequest{GroupID: id, Nullifier: field.FromUint64(3), Proof: stubProof(root), Recipient: alice})
	require.ErrorIs(t, err, ErrReplayedProof)

	next, err := r.CreateGroup(ctx, owner, "third")
	require.NoError(t, err)
	require.Equal(t, uint64(2), next)
}

func TestRestoreRejectsOtherScheme(t *testing.T) {
	s := store.NewMemory()
	r, err := New(nil, WithStore(s))
	require.NoError(t, err)
	_, err = r.CreateGroup(ctx, owner, "g")
	require.NoError(t, err)

	_, err = New(nil, WithStore(s), WithScheme(field.MiMC))
	require.Error(t, err)
	require.NoError(t, r.Close())
}

func TestRestoreChecksStoredRoot(t *testing.T) {
	s := store.NewMemory()
	r, err := New(nil, WithStore(s), WithDepth(4))
	require.NoError(t, err)
	id, err := r.CreateGroup(ctx, owner, "g")
	require.NoError(t, err)
	_, err = r.AddMember(ctx, owner, id, member(0))
	require.NoError(t, err)

	r2, err := New(nil, WithStore(s), WithDepth(4))
	require.NoError(t, err)
	require.Equal(t, uint64(1), r2.GroupCount())

	groups, err := s.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	g := groups[0]
	g.Root[31] ^= 1
	b := s.NewBatch()
	b.PutGroup(g)
	require.NoError(t, b.Write())

	_, err = New(nil, WithStore(s), WithDepth(4))
	require.ErrorContains(t, err, "does not match its stored root")
	require.NoError(t, r.Close())
}

/* ---------------- concurrency ---------------- */

func TestConcurrentMutations(t *testing.T) {
	r, _ := newRegistry(t, WithDepth(6))
	defer r.Close()

	const groups, members = 4, 16
	for i := 0; i < groups; i++ {
		_, err := r.CreateGroup(ctx, owner, "g")
		require.NoError(t, err)
	}

	var eg errgroup.Group
	for g := uint64(0); g < groups; g++ {
		for m := uint64(0); m < members; m++ {
			g, m := g, m
			eg.Go(func() error {
				_, err := r.AddMember(ctx, owner, g, member(g*members+m))
				return err
			})
			eg.Go(func() error {
				_, err := r.Root(ctx, g)
				return err
			})
		}
	}
	require.NoError(t, eg.Wait())

	for g := uint64(0); g < groups; g++ {
		n, err := r.LeafCount(ctx, g)
		require.NoError(t, err)
		require.Equal(t, uint64(members), n)
	}

	// concurrent submissions of one nullifier: exactly one wins
	root, err := r.Root(ctx, 0)
	require.NoError(t, err)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Verify(ctx, VerifyRequest{GroupID: 0, Nullifier: field.FromUint64(1), Proof: stubProof(root), Recipient: alice})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else if !errors.Is(err, ErrReplayedProof) {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, accepted)
}

func TestEventsFollowCommitOrder(t *testing.T) {
	r, _ := newRegistry(t, WithDepth(6))
	defer r.Close()
	id, err := r.CreateGroup(ctx, owner, "g")
	require.NoError(t, err)

	const n = 32
	ch := make(chan MemberAdded)
	sub := r.SubscribeMemberAdded(ch)
	defer sub.Unsubscribe()

	got := make(chan []MemberAdded, 1)
	go func() {
		var evs []MemberAdded
		for ev := range ch {
			// reading the registry from a subscriber must not stall it
			if _, err := r.Root(ctx, id); err != nil {
				t.Error(err)
			}
			evs = append(evs, ev)
			if len(evs) == n {
				break
			}
		}
		got <- evs
	}()

	var eg errgroup.Group
	for i := uint64(0); i < n; i++ {
		i := i
		eg.Go(func() error {
			_, err := r.AddMember(ctx, owner, id, member(i))
			return err
		})
	}
	require.NoError(t, eg.Wait())
	evs := <-got

	h, err := field.NewHasher(field.Poseidon)
	require.NoError(t, err)
	replay, err := tree.New(6, h)
	require.NoError(t, err)
	for i, ev := range evs {
		require.Equal(t, uint64(i), ev.Index)
		root, err := replay.Insert(ev.Commitment)
		require.NoError(t, err)
		require.True(t, root.Equal(&ev.Root), "event %d carries a stale root", i)
	}
}
