package tree

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yourorg/zkcert/pkg/field"
)

// Path is a leaf-to-root authentication path. Bits[i] is 0 when the node at
// level i is a left child and 1 when it is a right child.
type Path struct {
	Siblings []fr.Element
	Bits     []uint8
}

// SiblingPath returns the authentication path of the slot at index.
func (t *Tree) SiblingPath(index uint64) (Path, error) {
	if index >= t.Capacity() {
		return Path{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	p := Path{
		Siblings: make([]fr.Element, t.depth),
		Bits:     make([]uint8, t.depth),
	}
	idx := index
	for lvl := 0; lvl < t.depth; lvl++ {
		p.Siblings[lvl] = t.get(uint8(lvl), idx^1)
		p.Bits[lvl] = uint8(idx & 1)
		idx >>= 1
	}
	return p, nil
}

// Fold hashes leaf up through the path and returns the resulting root.
func (p Path) Fold(h field.Hasher, leaf fr.Element) (fr.Element, error) {
	if len(p.Siblings) != len(p.Bits) {
		return fr.Element{}, errors.New("tree: path siblings and bits differ in length")
	}
	node := leaf
	for i, sib := range p.Siblings {
		var err error
		switch p.Bits[i] {
		case 0:
			node, err = h.Hash(node, sib)
		case 1:
			node, err = h.Hash(sib, node)
		default:
			return fr.Element{}, fmt.Errorf("tree: direction bit %d at level %d", p.Bits[i], i)
		}
		if err != nil {
			return fr.Element{}, err
		}
	}
	return node, nil
}

// Index recomputes the leaf index encoded by the direction bits.
func (p Path) Index() uint64 {
	var idx uint64
	for i := len(p.Bits) - 1; i >= 0; i-- {
		idx = idx<<1 | uint64(p.Bits[i]&1)
	}
	return idx
}
