package tree

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/field"
)

const (
	refCommitment = "60006026078093692816695823458380415376319091172243287451831605082846150052"
	refRoot       = "4068613235613342243794163368396056065476402536578893582255495660941022755827"
)

func poseidon(t *testing.T) field.Hasher {
	t.Helper()
	h, err := field.NewHasher(field.Poseidon)
	require.NoError(t, err)
	return h
}

func leaf(i int) fr.Element { return field.FromUint64(uint64(1000 + i)) }

func TestInsertDeterministic(t *testing.T) {
	h := poseidon(t)
	for _, mode := range []ZeroMode{ZeroHashed, ZeroFlat} {
		a, err := New(5, h, WithZeroMode(mode))
		require.NoError(t, err)
		b, err := New(5, h, WithZeroMode(mode))
		require.NoError(t, err)

		for i := 0; i < 13; i++ {
			ra, err := a.Insert(leaf(i))
			require.NoError(t, err)
			rb, err := b.Insert(leaf(i))
			require.NoError(t, err)
			require.True(t, ra.Equal(&rb), mode)
		}
		ra, rb := a.Root(), b.Root()
		require.True(t, ra.Equal(&rb))
		require.Equal(t, a.Nodes(), b.Nodes())
	}
}

func TestSiblingPathRoundTrip(t *testing.T) {
	for _, s := range []field.Scheme{field.Poseidon, field.MiMC} {
		h, err := field.NewHasher(s)
		require.NoError(t, err)
		for _, mode := range []ZeroMode{ZeroHashed, ZeroFlat} {
			tr, err := New(4, h, WithZeroMode(mode))
			require.NoError(t, err)
			for i := 0; i < 11; i++ {
				_, err := tr.Insert(leaf(i))
				require.NoError(t, err)
			}
			_, err = tr.Remove(leaf(3))
			require.NoError(t, err)

			root := tr.Root()
			for i := uint64(0); i < tr.NextIndex(); i++ {
				el, err := tr.ElementAt(i)
				require.NoError(t, err)
				p, err := tr.SiblingPath(i)
				require.NoError(t, err)
				require.Len(t, p.Siblings, 4)
				require.Equal(t, i, p.Index())

				got, err := p.Fold(h, el)
				require.NoError(t, err)
				require.True(t, got.Equal(&root), "scheme %s mode %s index %d", s, mode, i)
			}
		}
	}
}

func TestZeroHashes(t *testing.T) {
	h := poseidon(t)
	zeros, err := ZeroHashes(3, h, ZeroHashed)
	require.NoError(t, err)
	require.True(t, zeros[0].IsZero())
	for k := 0; k < 3; k++ {
		want, err := h.Hash(zeros[k], zeros[k])
		require.NoError(t, err)
		require.True(t, want.Equal(&zeros[k+1]))
	}

	tr, err := New(3, h)
	require.NoError(t, err)
	root := tr.Root()
	require.True(t, root.Equal(&zeros[3]))

	flat, err := ZeroHashes(3, h, ZeroFlat)
	require.NoError(t, err)
	for _, z := range flat {
		require.True(t, z.IsZero())
	}
}

func TestCapacityExceededLeavesStateUntouched(t *testing.T) {
	tr, err := New(2, poseidon(t))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := tr.Insert(leaf(i))
		require.NoError(t, err)
	}
	before := tr.Root()

	_, err = tr.Insert(leaf(99))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	after := tr.Root()
	require.True(t, before.Equal(&after))
	require.Equal(t, uint64(4), tr.NextIndex())
	require.Equal(t, uint64(4), tr.LeafCount())
	_, err = tr.IndexOf(leaf(99))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveNeverReusesIndex(t *testing.T) {
	tr, err := New(3, poseidon(t))
	require.NoError(t, err)
	_, err = tr.Insert(leaf(0))
	require.NoError(t, err)
	_, err = tr.Insert(leaf(1))
	require.NoError(t, err)

	before := tr.Root()
	_, err = tr.Remove(leaf(2))
	require.ErrorIs(t, err, ErrNotFound)

	root, err := tr.Remove(leaf(0))
	require.NoError(t, err)
	require.False(t, root.Equal(&before))
	require.Equal(t, uint64(1), tr.LeafCount())
	require.Equal(t, uint64(2), tr.NextIndex())

	el, err := tr.ElementAt(0)
	require.NoError(t, err)
	require.True(t, el.IsZero())
	_, err = tr.IndexOf(leaf(0))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = tr.Insert(leaf(0))
	require.NoError(t, err)
	idx, err := tr.IndexOf(leaf(0))
	require.NoError(t, err)
	require.Equal(t, uint64(2), idx)
}

func TestInsertRejectsZeroAndDuplicates(t *testing.T) {
	tr, err := New(3, poseidon(t))
	require.NoError(t, err)

	_, err = tr.Insert(fr.Element{})
	require.ErrorIs(t, err, ErrInvalidLeaf)

	_, err = tr.Insert(leaf(7))
	require.NoError(t, err)
	_, err = tr.Insert(leaf(7))
	require.ErrorIs(t, err, ErrLeafExists)
	require.Equal(t, uint64(1), tr.NextIndex())
}

func TestPrepareDoesNotMutate(t *testing.T) {
	tr, err := New(3, poseidon(t))
	require.NoError(t, err)
	before := tr.Root()

	u, err := tr.PrepareInsert(leaf(1))
	require.NoError(t, err)
	now := tr.Root()
	require.True(t, before.Equal(&now))
	require.Equal(t, uint64(0), tr.NextIndex())
	require.Len(t, u.Nodes, 4)

	other, err := tr.PrepareInsert(leaf(2))
	require.NoError(t, err)
	require.NoError(t, tr.Apply(u))
	require.ErrorIs(t, tr.Apply(other), ErrStaleUpdate)

	root := tr.Root()
	require.True(t, root.Equal(&u.Root))
}

func TestRestore(t *testing.T) {
	h := poseidon(t)
	tr, err := New(4, h, WithZeroMode(ZeroFlat))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err := tr.Insert(leaf(i))
		require.NoError(t, err)
	}
	_, err = tr.Remove(leaf(2))
	require.NoError(t, err)

	back, err := Restore(4, h, tr.Nodes(), tr.NextIndex(), WithZeroMode(ZeroFlat))
	require.NoError(t, err)

	want, got := tr.Root(), back.Root()
	require.True(t, want.Equal(&got))
	require.Equal(t, tr.LeafCount(), back.LeafCount())
	require.Equal(t, tr.NextIndex(), back.NextIndex())
	idx, err := back.IndexOf(leaf(5))
	require.NoError(t, err)
	require.Equal(t, uint64(5), idx)
	_, err = back.IndexOf(leaf(2))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = Restore(4, h, []Node{{Level: 1, Index: 8}}, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestReferenceGroupFlat(t *testing.T) {
	tr, err := New(10, poseidon(t), WithZeroMode(ZeroFlat))
	require.NoError(t, err)
	require.Equal(t, uint64(1024), tr.Capacity())

	root, err := tr.Insert(field.MustFromString(refCommitment))
	require.NoError(t, err)
	require.Equal(t, refRoot, root.String())
	require.Equal(t, uint64(1), tr.LeafCount())
	require.Equal(t, 10, tr.Depth())

	p, err := tr.SiblingPath(0)
	require.NoError(t, err)
	for i := range p.Siblings {
		require.True(t, p.Siblings[i].IsZero())
		require.Zero(t, p.Bits[i])
	}
}

func TestParseZeroMode(t *testing.T) {
	m, err := ParseZeroMode("FLAT")
	require.NoError(t, err)
	require.Equal(t, ZeroFlat, m)
	m, err = ParseZeroMode("")
	require.NoError(t, err)
	require.Equal(t, ZeroHashed, m)
	_, err = ParseZeroMode("sparse")
	require.Error(t, err)
}

func TestInvalidDepth(t *testing.T) {
	_, err := New(0, poseidon(t))
	require.ErrorIs(t, err, ErrInvalidDepth)
	_, err = New(MaxDepth+1, poseidon(t))
	require.ErrorIs(t, err, ErrInvalidDepth)
}
