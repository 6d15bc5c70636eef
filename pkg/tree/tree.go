// Package tree implements a fixed-depth incremental commitment tree over a
// two-to-one field hash, stored sparsely by (level, index).
//
// Level 0 holds the leaves, level Depth holds the root. Any node missing from
// the sparse map reads as that level's zero value. A Tree is not safe for
// concurrent use; callers serialize access.
package tree

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yourorg/zkcert/pkg/field"
)

// MaxDepth bounds the depth so indices fit comfortably in a uint64.
const MaxDepth = 32

var (
	ErrCapacityExceeded = errors.New("tree: capacity exceeded")
	ErrNotFound         = errors.New("tree: leaf not found")
	ErrLeafExists       = errors.New("tree: leaf already present")
	ErrInvalidLeaf      = errors.New("tree: zero leaf is reserved for removed slots")
	ErrIndexOutOfRange  = errors.New("tree: index out of range")
	ErrInvalidDepth     = errors.New("tree: invalid depth")
	ErrStaleUpdate      = errors.New("tree: update prepared against an older state")
)

// ZeroMode selects how empty subtrees are valued.
type ZeroMode uint8

const (
	// ZeroHashed values an empty level-(k+1) node as H(zero_k, zero_k).
	ZeroHashed ZeroMode = iota
	// ZeroFlat values every empty node as 0, like an unset storage slot.
	ZeroFlat
)

func (m ZeroMode) String() string {
	if m == ZeroFlat {
		return "flat"
	}
	return "hashed"
}

// ParseZeroMode maps a config name to a ZeroMode. Empty selects ZeroHashed.
func ParseZeroMode(name string) (ZeroMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hashed":
		return ZeroHashed, nil
	case "flat":
		return ZeroFlat, nil
	}
	return 0, fmt.Errorf("tree: unknown zero mode %q", name)
}

type nodeKey struct {
	level uint8
	index uint64
}

// Node is one stored tree node.
type Node struct {
	Level uint8
	Index uint64
	Value fr.Element
}

// Tree is a bounded append/remove Merkle tree.
type Tree struct {
	depth  int
	hasher field.Hasher
	mode   ZeroMode
	zeros  []fr.Element

	nodes  map[nodeKey]fr.Element
	leaves map[fr.Element]uint64 // live leaf value -> index

	next    uint64
	count   uint64
	version uint64
}

// Option configures a Tree.
type Option func(*Tree)

// WithZeroMode overrides the default ZeroHashed mode.
func WithZeroMode(m ZeroMode) Option {
	return func(t *Tree) { t.mode = m }
}

// New returns an empty tree of the given depth.
func New(depth int, h field.Hasher, opts ...Option) (*Tree, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if h == nil {
		return nil, errors.New("tree: nil hasher")
	}
	t := &Tree{
		depth:  depth,
		hasher: h,
		nodes:  make(map[nodeKey]fr.Element),
		leaves: make(map[fr.Element]uint64),
	}
	for _, o := range opts {
		o(t)
	}
	zeros, err := ZeroHashes(depth, h, t.mode)
	if err != nil {
		return nil, err
	}
	t.zeros = zeros
	return t, nil
}

// ZeroHashes returns the empty-subtree value of every level 0..depth.
func ZeroHashes(depth int, h field.Hasher, mode ZeroMode) ([]fr.Element, error) {
	zeros := make([]fr.Element, depth+1)
	if mode == ZeroFlat {
		return zeros, nil
	}
	for k := 0; k < depth; k++ {
		z, err := h.Hash(zeros[k], zeros[k])
		if err != nil {
			return nil, fmt.Errorf("tree: zero hash level %d: %w", k+1, err)
		}
		zeros[k+1] = z
	}
	return zeros, nil
}

func (t *Tree) Depth() int { return t.depth }
func (t *Tree) Capacity() uint64 { return uint64(1) << uint(t.depth) }
func (t *Tree) NextIndex() uint64 { return t.next }
func (t *Tree) LeafCount() uint64 { return t.count }
func (t *Tree) Mode() ZeroMode { return t.mode }
func (t *Tree) Hasher() field.Hasher { return t.hasher }
func (t *Tree) Zero(level int) fr.Element { return t.zeros[level] }

// Root returns the current root.
func (t *Tree) Root() fr.Element {
	return t.get(uint8(t.depth), 0)
}

// ElementAt returns the leaf stored at index; unused and removed slots read
// as the level-0 zero.
func (t *Tree) ElementAt(index uint64) (fr.Element, error) {
	if index >= t.Capacity() {
		return fr.Element{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return t.get(0, index), nil
}

// IndexOf returns the index of a live leaf.
func (t *Tree) IndexOf(leaf fr.Element) (uint64, error) {
	idx, ok := t.leaves[leaf]
	if !ok {
		return 0, ErrNotFound
	}
	return idx, nil
}

func (t *Tree) get(level uint8, index uint64) fr.Element {
	if v, ok := t.nodes[nodeKey{level, index}]; ok {
		return v
	}
	return t.zeros[level]
}

// Update is a prepared, not yet applied, mutation.
type Update struct {
	Index   uint64
	Leaf    fr.Element // value written at Index
	Removed *fr.Element
	Nodes   []Node // leaf first, root last
	Root    fr.Element

	next    uint64
	count   uint64
	version uint64
}

// NextIndex and LeafCount report the tree counters once u is applied.
func (u *Update) NextIndex() uint64 { return u.next }
func (u *Update) LeafCount() uint64 { return u.count }

// Insert appends leaf at NextIndex and returns the new root.
func (t *Tree) Insert(leaf fr.Element) (fr.Element, error) {
	u, err := t.PrepareInsert(leaf)
	if err != nil {
		return fr.Element{}, err
	}
	return u.Root, t.Apply(u)
}

// Remove overwrites leaf's slot with the zero sentinel and returns the new
// root. The slot is never handed out again.
func (t *Tree) Remove(leaf fr.Element) (fr.Element, error) {
	u, err := t.PrepareRemove(leaf)
	if err != nil {
		return fr.Element{}, err
	}
	return u.Root, t.Apply(u)
}

// PrepareInsert computes the effect of Insert without changing the tree.
func (t *Tree) PrepareInsert(leaf fr.Element) (*Update, error) {
	if t.next >= t.Capacity() {
		return nil, fmt.Errorf("%w: %d leaves", ErrCapacityExceeded, t.Capacity())
	}
	if leaf.Equal(&t.zeros[0]) {
		return nil, ErrInvalidLeaf
	}
	if idx, ok := t.leaves[leaf]; ok {
		return nil, fmt.Errorf("%w at index %d", ErrLeafExists, idx)
	}
	u, err := t.chain(t.next, leaf)
	if err != nil {
		return nil, err
	}
	u.next = t.next + 1
	u.count = t.count + 1
	return u, nil
}

// PrepareRemove computes the effect of Remove without changing the tree.
func (t *Tree) PrepareRemove(leaf fr.Element) (*Update, error) {
	idx, ok := t.leaves[leaf]
	if !ok {
		return nil, ErrNotFound
	}
	u, err := t.chain(idx, t.zeros[0])
	if err != nil {
		return nil, err
	}
	removed := leaf
	u.Removed = &removed
	u.next = t.next
	u.count = t.count - 1
	return u, nil
}

func (t *Tree) chain(index uint64, leaf fr.Element) (*Update, error) {
	u := &Update{
		Index:   index,
		Leaf:    leaf,
		Nodes:   make([]Node, 0, t.depth+1),
		version: t.version,
	}
	node := leaf
	idx := index
	u.Nodes = append(u.Nodes, Node{Level: 0, Index: idx, Value: node})
	for lvl := 0; lvl < t.depth; lvl++ {
		sib := t.get(uint8(lvl), idx^1)
		var err error
		if idx&1 == 0 {
			node, err = t.hasher.Hash(node, sib)
		} else {
			node, err = t.hasher.Hash(sib, node)
		}
		if err != nil {
			return nil, fmt.Errorf("tree: hash level %d: %w", lvl+1, err)
		}
		idx >>= 1
		u.Nodes = append(u.Nodes, Node{Level: uint8(lvl + 1), Index: idx, Value: node})
	}
	u.Root = node
	return u, nil
}

// Apply commits an update prepared against the current state.
func (t *Tree) Apply(u *Update) error {
	if u == nil || u.version != t.version {
		return ErrStaleUpdate
	}
	for _, n := range u.Nodes {
		t.nodes[nodeKey{n.Level, n.Index}] = n.Value
	}
	if u.Removed != nil {
		delete(t.leaves, *u.Removed)
	} else {
		t.leaves[u.Leaf] = u.Index
	}
	t.next = u.next
	t.count = u.count
	t.version++
	return nil
}

// Nodes returns every stored node ordered by level then index.
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.nodes))
	for k, v := range t.nodes {
		out = append(out, Node{Level: k.level, Index: k.index, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Restore rebuilds a tree from persisted nodes and its next leaf index.
func Restore(depth int, h field.Hasher, nodes []Node, next uint64, opts ...Option) (*Tree, error) {
	t, err := New(depth, h, opts...)
	if err != nil {
		return nil, err
	}
	if next > t.Capacity() {
		return nil, fmt.Errorf("%w: next index %d", ErrIndexOutOfRange, next)
	}
	for _, n := range nodes {
		if int(n.Level) > depth || n.Index >= uint64(1)<<uint(depth-int(n.Level)) {
			return nil, fmt.Errorf("%w: node (%d,%d)", ErrIndexOutOfRange, n.Level, n.Index)
		}
		t.nodes[nodeKey{n.Level, n.Index}] = n.Value
		if n.Level == 0 && n.Index < next && !n.Value.Equal(&t.zeros[0]) {
			t.leaves[n.Value] = n.Index
		}
	}
	t.next = next
	t.count = uint64(len(t.leaves))
	return t, nil
}
