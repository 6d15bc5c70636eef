package ledger

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkcert/pkg/field"
)

var (
	alice = common.HexToAddress("0xa11ce")
	bob   = common.HexToAddress("0xb0b")
)

func rec(group uint64, to common.Address, n uint64) Record {
	return Record{
		GroupID:      group,
		Recipient:    to,
		Reference:    "ref",
		MinThreshold: field.FromUint64(50),
		Nullifier:    field.FromUint64(n),
		Root:         field.FromUint64(1),
	}
}

func TestAppendQuery(t *testing.T) {
	l := New()

	_, err := l.Query(alice, 0)
	require.ErrorIs(t, err, ErrNotFound)

	idx, err := l.Append(rec(0, alice, 1), nil)
	require.NoError(t, err)
	require.Zero(t, idx)
	idx, err = l.Append(rec(1, alice, 2), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(1), idx)
	_, err = l.Append(rec(0, bob, 3), nil)
	require.NoError(t, err)

	require.Equal(t, uint64(2), l.Count(alice))
	require.Equal(t, uint64(1), l.Count(bob))

	r, err := l.Query(alice, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.GroupID)

	_, err = l.Query(alice, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplayScopedToGroup(t *testing.T) {
	l := New()

	_, err := l.Append(rec(0, alice, 7), nil)
	require.NoError(t, err)
	require.True(t, l.Spent(0, field.FromUint64(7)))
	require.False(t, l.Spent(1, field.FromUint64(7)))

	_, err = l.Append(rec(0, bob, 7), nil)
	require.ErrorIs(t, err, ErrReplayedProof)
	require.ErrorIs(t, l.CheckUnused(0, field.FromUint64(7)), ErrReplayedProof)
	require.Zero(t, l.Count(bob))

	_, err = l.Append(rec(1, bob, 7), nil)
	require.NoError(t, err)
}

func TestPersistFailureLeavesState(t *testing.T) {
	l := New()
	boom := errors.New("disk full")

	_, err := l.Append(rec(0, alice, 9), func(uint64, Record) error { return boom })
	require.ErrorIs(t, err, boom)
	require.Zero(t, l.Count(alice))
	require.False(t, l.Spent(0, field.FromUint64(9)))

	var got uint64 = 99
	_, err = l.Append(rec(0, alice, 9), func(i uint64, _ Record) error {
		got = i
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestRestore(t *testing.T) {
	l := New()
	l.Restore(
		[]Record{rec(0, alice, 1), rec(0, alice, 2)},
		map[uint64][]fr.Element{3: {field.FromUint64(5)}},
	)
	require.Equal(t, uint64(2), l.Count(alice))
	require.True(t, l.Spent(0, field.FromUint64(2)))
	require.True(t, l.Spent(3, field.FromUint64(5)))
}
