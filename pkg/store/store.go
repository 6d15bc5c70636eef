// Package store lays the registry state out on a go-ethereum key-value
// database. Records are RLP encoded; field elements are 32-byte big-endian.
//
//	"m"                          -> next group id (8 bytes)
//	"g" id                       -> Group
//	"n" id level index           -> node value
//	"u" id nullifier             -> 1
//	"p" recipient index          -> Record
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/yourorg/zkcert/pkg/tree"
)

var (
	metaKey         = []byte("m")
	groupPrefix     = []byte("g")
	nodePrefix      = []byte("n")
	nullifierPrefix = []byte("u")
	recordPrefix    = []byte("p")
)

// Group is the persisted metadata of one group.
type Group struct {
	ID          uint64
	Description string
	Owner       common.Address
	Depth       uint8
	ZeroMode    uint8
	Scheme      uint8
	Root        [32]byte
	LeafCount   uint64
	NextIndex   uint64
}

// Record is a persisted proof record.
type Record struct {
	GroupID      uint64
	Recipient    common.Address
	Reference    string
	MinThreshold [32]byte
	Nullifier    [32]byte
	Root         [32]byte
}

type Store struct {
	db ethdb.KeyValueStore
}

func New(db ethdb.KeyValueStore) *Store { return &Store{db: db} }

// NewMemory returns a store that lives as long as the process.
func NewMemory() *Store { return New(memorydb.New()) }

// OpenLevelDB opens (or creates) a LevelDB database in dir.
func OpenLevelDB(dir string, cache, handles int) (*Store, error) {
	db, err := leveldb.New(dir, cache, handles, "zkcert/db/", false)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", dir, err)
	}
	return New(db), nil
}

func (s *Store) Close() error { return s.db.Close() }

func be64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func key(parts ...[]byte) []byte {
	var k []byte
	for _, p := range parts {
		k = append(k, p...)
	}
	return k
}

func groupKey(id uint64) []byte { return key(groupPrefix, be64(id)) }

func nodeKey(id uint64, level uint8, index uint64) []byte {
	return key(nodePrefix, be64(id), []byte{level}, be64(index))
}

func nullifierKey(id uint64, n fr.Element) []byte {
	b := n.Bytes()
	return key(nullifierPrefix, be64(id), b[:])
}

func recordKey(recipient common.Address, index uint64) []byte {
	return key(recordPrefix, recipient.Bytes(), be64(index))
}

func (s *Store) get(k []byte) ([]byte, bool, error) {
	ok, err := s.db.Has(k)
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := s.db.Get(k)
	return v, err == nil, err
}

// NextGroupID returns the id the next created group gets.
func (s *Store) NextGroupID() (uint64, error) {
	v, ok, err := s.get(metaKey)
	if err != nil || !ok {
		return 0, err
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("store: corrupt meta record")
	}
	return binary.BigEndian.Uint64(v), nil
}

// Groups returns every group in id order.
func (s *Store) Groups() ([]Group, error) {
	it := s.db.NewIterator(groupPrefix, nil)
	defer it.Release()

	var out []Group
	for it.Next() {
		var g Group
		if err := rlp.DecodeBytes(it.Value(), &g); err != nil {
			return nil, fmt.Errorf("store: group %x: %w", it.Key(), err)
		}
		out = append(out, g)
	}
	return out, it.Error()
}

// Nodes returns the sparse node map of group id.
func (s *Store) Nodes(id uint64) ([]tree.Node, error) {
	prefix := key(nodePrefix, be64(id))
	it := s.db.NewIterator(prefix, nil)
	defer it.Release()

	var out []tree.Node
	for it.Next() {
		k := it.Key()[len(prefix):]
		if len(k) != 9 || len(it.Value()) != fr.Bytes {
			return nil, fmt.Errorf("store: corrupt node %x", it.Key())
		}
		n := tree.Node{Level: k[0], Index: binary.BigEndian.Uint64(k[1:])}
		if err := n.Value.SetBytesCanonical(it.Value()); err != nil {
			return nil, fmt.Errorf("store: node %x: %w", it.Key(), err)
		}
		out = append(out, n)
	}
	return out, it.Error()
}

// Nullifiers returns the spent nullifiers of group id.
func (s *Store) Nullifiers(id uint64) ([]fr.Element, error) {
	prefix := key(nullifierPrefix, be64(id))
	it := s.db.NewIterator(prefix, nil)
	defer it.Release()

	var out []fr.Element
	for it.Next() {
		var n fr.Element
		if err := n.SetBytesCanonical(it.Key()[len(prefix):]); err != nil {
			return nil, fmt.Errorf("store: nullifier %x: %w", it.Key(), err)
		}
		out = append(out, n)
	}
	return out, it.Error()
}

// Records returns every proof record, grouped by recipient and ordered by
// per-recipient index.
func (s *Store) Records() ([]Record, error) {
	it := s.db.NewIterator(recordPrefix, nil)
	defer it.Release()

	var out []Record
	for it.Next() {
		var r Record
		if err := rlp.DecodeBytes(it.Value(), &r); err != nil {
			return nil, fmt.Errorf("store: record %x: %w", it.Key(), err)
		}
		out = append(out, r)
	}
	return out, it.Error()
}

// Batch collects writes that land together or not at all.
type Batch struct {
	b   ethdb.Batch
	err error
}

func (s *Store) NewBatch() *Batch { return &Batch{b: s.db.NewBatch()} }

func (b *Batch) put(k, v []byte) {
	if b.err == nil {
		b.err = b.b.Put(k, v)
	}
}

func (b *Batch) putRLP(k []byte, v interface{}) {
	if b.err != nil {
		return
	}
	enc, err := rlp.EncodeToBytes(v)
	if err != nil {
		b.err = err
		return
	}
	b.put(k, enc)
}

func (b *Batch) PutNextGroupID(id uint64) { b.put(metaKey, be64(id)) }

func (b *Batch) PutGroup(g Group) { b.putRLP(groupKey(g.ID), g) }

func (b *Batch) PutNodes(id uint64, nodes []tree.Node) {
	for _, n := range nodes {
		v := n.Value.Bytes()
		b.put(nodeKey(id, n.Level, n.Index), v[:])
	}
}

func (b *Batch) PutNullifier(id uint64, n fr.Element) {
	b.put(nullifierKey(id, n), []byte{1})
}

func (b *Batch) PutRecord(index uint64, r Record) {
	b.putRLP(recordKey(r.Recipient, index), r)
}

// Write commits the batch.
func (b *Batch) Write() error {
	if b.err != nil {
		return b.err
	}
	return b.b.Write()
}
