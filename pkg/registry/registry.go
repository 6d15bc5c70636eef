// Package registry owns the credential groups: each group is a commitment
// tree administered by its owner. It verifies membership proofs against the
// current group root, rejects replayed nullifiers and records accepted
// proofs per recipient.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/rs/zerolog"

	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/ledger"
	"github.com/yourorg/zkcert/pkg/store"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/verifier"
)

// DefaultDepth is the depth of newly created group trees.
const DefaultDepth = 10

var (
	ErrUnauthorized  = errors.New("registry: caller is not the group owner")
	ErrGroupNotFound = errors.New("registry: group not found")
	ErrNoVerifier    = errors.New("registry: no proof verifier configured")

	ErrInvalidProof  = verifier.ErrInvalidProof
	ErrReplayedProof = ledger.ErrReplayedProof
	ErrProofNotFound = ledger.ErrNotFound
)

type group struct {
	mu          sync.RWMutex
	id          uint64
	description string
	owner       common.Address
	tree        *tree.Tree

	lastEvent chan struct{} // closed once the latest commit's event is sent
}

// GroupInfo is a read-only snapshot of a group.
type GroupInfo struct {
	ID          uint64
	Description string
	Owner       common.Address
	Depth       int
	Root        fr.Element
	LeafCount   uint64
	NextIndex   uint64
}

type Registry struct {
	mu     sync.RWMutex
	groups []*group

	depth  int
	mode   tree.ZeroMode
	scheme field.Scheme
	hasher field.Hasher

	verifier verifier.ProofVerifier
	ledger   *ledger.Ledger
	store    *store.Store
	log      zerolog.Logger

	scope        event.SubscriptionScope
	createdFeed  event.FeedOf[GroupCreated]
	addedFeed    event.FeedOf[MemberAdded]
	removedFeed  event.FeedOf[MemberRemoved]
	verifiedFeed event.FeedOf[ProofVerified]
}

type Option func(*Registry)

func WithDepth(d int) Option { return func(r *Registry) { r.depth = d } }

func WithZeroMode(m tree.ZeroMode) Option { return func(r *Registry) { r.mode = m } }

func WithScheme(s field.Scheme) Option { return func(r *Registry) { r.scheme = s } }

// WithStore persists state to s and restores whatever s already holds.
func WithStore(s *store.Store) Option { return func(r *Registry) { r.store = s } }

func WithLogger(l zerolog.Logger) Option { return func(r *Registry) { r.log = l } }

// New builds a registry that checks proofs with v. A nil v leaves Verify
// unavailable; every other operation works.
func New(v verifier.ProofVerifier, opts ...Option) (*Registry, error) {
	r := &Registry{
		depth:    DefaultDepth,
		mode:     tree.ZeroHashed,
		scheme:   field.Poseidon,
		verifier: v,
		ledger:   ledger.New(),
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.depth < 1 || r.depth > tree.MaxDepth {
		return nil, fmt.Errorf("%w: %d", tree.ErrInvalidDepth, r.depth)
	}
	h, err := field.NewHasher(r.scheme)
	if err != nil {
		return nil, err
	}
	r.hasher = h
	if r.store == nil {
		r.store = store.NewMemory()
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close ends all subscriptions and closes the store.
func (r *Registry) Close() error {
	r.scope.Close()
	return r.store.Close()
}

func (r *Registry) Scheme() field.Scheme { return r.scheme }

func (r *Registry) group(id uint64) (*group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id >= uint64(len(r.groups)) {
		return nil, fmt.Errorf("%w: %d", ErrGroupNotFound, id)
	}
	return r.groups[id], nil
}

func (r *Registry) meta(g *group, root fr.Element, leafCount, nextIndex uint64) store.Group {
	return store.Group{
		ID:          g.id,
		Description: g.description,
		Owner:       g.owner,
		Depth:       uint8(g.tree.Depth()),
		ZeroMode:    uint8(g.tree.Mode()),
		Scheme:      uint8(r.scheme),
		Root:        root.Bytes(),
		LeafCount:   leafCount,
		NextIndex:   nextIndex,
	}
}

// CreateGroup opens an empty group owned by caller and returns its id.
func (r *Registry) CreateGroup(ctx context.Context, caller common.Address, description string) (uint64, error) {
	t, err := tree.New(r.depth, r.hasher, tree.WithZeroMode(r.mode))
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	id := uint64(len(r.groups))
	g := &group{id: id, description: description, owner: caller, tree: t}

	b := r.store.NewBatch()
	b.PutGroup(r.meta(g, t.Root(), 0, 0))
	b.PutNextGroupID(id + 1)
	if err := b.Write(); err != nil {
		r.mu.Unlock()
		return 0, fmt.Errorf("persist group %d: %w", id, err)
	}
	r.groups = append(r.groups, g)
	r.mu.Unlock()

	r.log.Info().Uint64("group", id).Str("owner", caller.Hex()).Str("description", description).Msg("group created")
	r.createdFeed.Send(GroupCreated{GroupID: id, Owner: caller, Description: description})
	return id, nil
}

// AddMember appends commitment to group id and returns the new root.
func (r *Registry) AddMember(ctx context.Context, caller common.Address, id uint64, commitment fr.Element) (fr.Element, error) {
	return r.mutate(caller, id, func(t *tree.Tree) (*tree.Update, error) {
		return t.PrepareInsert(commitment)
	})
}

// RemoveMember zeroes commitment's slot in group id and returns the new root.
func (r *Registry) RemoveMember(ctx context.Context, caller common.Address, id uint64, commitment fr.Element) (fr.Element, error) {
	return r.mutate(caller, id, func(t *tree.Tree) (*tree.Update, error) {
		return t.PrepareRemove(commitment)
	})
}

func (r *Registry) mutate(caller common.Address, id uint64, prepare func(*tree.Tree) (*tree.Update, error)) (fr.Element, error) {
	g, err := r.group(id)
	if err != nil {
		return fr.Element{}, err
	}

	g.mu.Lock()
	if caller != g.owner {
		g.mu.Unlock()
		return fr.Element{}, fmt.Errorf("%w: group %d", ErrUnauthorized, id)
	}
	u, err := prepare(g.tree)
	if err != nil {
		g.mu.Unlock()
		return fr.Element{}, fmt.Errorf("group %d: %w", id, err)
	}
	b := r.store.NewBatch()
	b.PutNodes(id, u.Nodes)
	b.PutGroup(r.meta(g, u.Root, u.LeafCount(), u.NextIndex()))
	if err := b.Write(); err != nil {
		g.mu.Unlock()
		return fr.Element{}, fmt.Errorf("persist group %d: %w", id, err)
	}
	if err := g.tree.Apply(u); err != nil {
		g.mu.Unlock()
		return fr.Element{}, err
	}
	prev, done := g.order()
	g.mu.Unlock()

	publish(prev, done, func() {
		if u.Removed != nil {
			r.log.Info().Uint64("group", id).Uint64("index", u.Index).Msg("member removed")
			r.removedFeed.Send(MemberRemoved{GroupID: id, Index: u.Index, Commitment: *u.Removed, Root: u.Root})
		} else {
			r.log.Info().Uint64("group", id).Uint64("index", u.Index).Msg("member added")
			r.addedFeed.Send(MemberAdded{GroupID: id, Index: u.Index, Commitment: u.Leaf, Root: u.Root})
		}
	})
	return u.Root, nil
}

func (r *Registry) read(id uint64, f func(g *group) error) error {
	g, err := r.group(id)
	if err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return f(g)
}

// Group returns a snapshot of group id.
func (r *Registry) Group(ctx context.Context, id uint64) (GroupInfo, error) {
	var info GroupInfo
	err := r.read(id, func(g *group) error {
		info = GroupInfo{
			ID:          g.id,
			Description: g.description,
			Owner:       g.owner,
			Depth:       g.tree.Depth(),
			Root:        g.tree.Root(),
			LeafCount:   g.tree.LeafCount(),
			NextIndex:   g.tree.NextIndex(),
		}
		return nil
	})
	return info, err
}

// GroupCount returns the number of groups created so far.
func (r *Registry) GroupCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.groups))
}

func (r *Registry) Depth(ctx context.Context, id uint64) (int, error) {
	var d int
	err := r.read(id, func(g *group) error {
		d = g.tree.Depth()
		return nil
	})
	return d, err
}

// LeafCount counts live members; removed slots are not included.
func (r *Registry) LeafCount(ctx context.Context, id uint64) (uint64, error) {
	var n uint64
	err := r.read(id, func(g *group) error {
		n = g.tree.LeafCount()
		return nil
	})
	return n, err
}

func (r *Registry) NextIndex(ctx context.Context, id uint64) (uint64, error) {
	var n uint64
	err := r.read(id, func(g *group) error {
		n = g.tree.NextIndex()
		return nil
	})
	return n, err
}

func (r *Registry) Root(ctx context.Context, id uint64) (fr.Element, error) {
	var root fr.Element
	err := r.read(id, func(g *group) error {
		root = g.tree.Root()
		return nil
	})
	return root, err
}

func (r *Registry) ElementAt(ctx context.Context, id uint64, index uint64) (fr.Element, error) {
	var v fr.Element
	err := r.read(id, func(g *group) (err error) {
		v, err = g.tree.ElementAt(index)
		return err
	})
	return v, err
}

func (r *Registry) SiblingPath(ctx context.Context, id uint64, index uint64) (tree.Path, error) {
	var p tree.Path
	err := r.read(id, func(g *group) (err error) {
		p, err = g.tree.SiblingPath(index)
		return err
	})
	return p, err
}

func (r *Registry) IndexOf(ctx context.Context, id uint64, leaf fr.Element) (uint64, error) {
	var idx uint64
	err := r.read(id, func(g *group) (err error) {
		idx, err = g.tree.IndexOf(leaf)
		return err
	})
	return idx, err
}

// load restores groups and ledger from the store.
func (r *Registry) load() error {
	next, err := r.store.NextGroupID()
	if err != nil {
		return err
	}
	metas, err := r.store.Groups()
	if err != nil {
		return err
	}
	if uint64(len(metas)) != next {
		return fmt.Errorf("registry: store holds %d groups, expected %d", len(metas), next)
	}

	spent := make(map[uint64][]fr.Element, len(metas))
	for i, m := range metas {
		if m.ID != uint64(i) {
			return fmt.Errorf("registry: group %d stored out of order", m.ID)
		}
		if field.Scheme(m.Scheme) != r.scheme {
			return fmt.Errorf("registry: group %d uses %s, registry uses %s", m.ID, field.Scheme(m.Scheme), r.scheme)
		}
		nodes, err := r.store.Nodes(m.ID)
		if err != nil {
			return err
		}
		t, err := tree.Restore(int(m.Depth), r.hasher, nodes, m.NextIndex, tree.WithZeroMode(tree.ZeroMode(m.ZeroMode)))
		if err != nil {
			return fmt.Errorf("registry: restore group %d: %w", m.ID, err)
		}
		rt := t.Root()
		if rt.Bytes() != m.Root || t.LeafCount() != m.LeafCount {
			return fmt.Errorf("registry: group %d does not match its stored root", m.ID)
		}
		r.groups = append(r.groups, &group{id: m.ID, description: m.Description, owner: m.Owner, tree: t})

		if spent[m.ID], err = r.store.Nullifiers(m.ID); err != nil {
			return err
		}
	}

	recs, err := r.store.Records()
	if err != nil {
		return err
	}
	records := make([]ledger.Record, len(recs))
	for i, rec := range recs {
		if records[i], err = fromStored(rec); err != nil {
			return err
		}
	}
	r.ledger.Restore(records, spent)

	if len(r.groups) > 0 {
		r.log.Info().Int("groups", len(r.groups)).Int("proofs", len(records)).Msg("registry restored")
	}
	return nil
}
