// Package ledger keeps accepted proof records per recipient and the set of
// spent nullifiers per group.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNotFound      = errors.New("ledger: proof not found")
	ErrReplayedProof = errors.New("ledger: nullifier already spent")
)

// Record describes one accepted proof.
type Record struct {
	GroupID      uint64
	Recipient    common.Address
	Reference    string
	MinThreshold fr.Element
	Nullifier    fr.Element
	Root         fr.Element
}

type Ledger struct {
	mu      sync.RWMutex
	records map[common.Address][]Record
	spent   map[uint64]map[fr.Element]struct{}
}

func New() *Ledger {
	return &Ledger{
		records: make(map[common.Address][]Record),
		spent:   make(map[uint64]map[fr.Element]struct{}),
	}
}

func (l *Ledger) spentLocked(groupID uint64, n fr.Element) bool {
	_, ok := l.spent[groupID][n]
	return ok
}

// Spent reports whether n was already used in group groupID.
func (l *Ledger) Spent(groupID uint64, n fr.Element) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.spentLocked(groupID, n)
}

// CheckUnused returns ErrReplayedProof when n is spent in groupID.
func (l *Ledger) CheckUnused(groupID uint64, n fr.Element) error {
	if l.Spent(groupID, n) {
		return fmt.Errorf("%w: group %d nullifier %s", ErrReplayedProof, groupID, n.String())
	}
	return nil
}

// PersistFunc durably stores r as the index-th record of its recipient.
type PersistFunc func(index uint64, r Record) error

// Append records r and marks its nullifier spent. persist, when set, runs
// first under the ledger lock; if it fails nothing changes.
func (l *Ledger) Append(r Record, persist PersistFunc) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.spentLocked(r.GroupID, r.Nullifier) {
		return 0, fmt.Errorf("%w: group %d nullifier %s", ErrReplayedProof, r.GroupID, r.Nullifier.String())
	}
	index := uint64(len(l.records[r.Recipient]))
	if persist != nil {
		if err := persist(index, r); err != nil {
			return 0, err
		}
	}
	l.appendLocked(r)
	return index, nil
}

func (l *Ledger) appendLocked(r Record) {
	l.records[r.Recipient] = append(l.records[r.Recipient], r)
	set, ok := l.spent[r.GroupID]
	if !ok {
		set = make(map[fr.Element]struct{})
		l.spent[r.GroupID] = set
	}
	set[r.Nullifier] = struct{}{}
}

// Count returns the number of records held for recipient.
func (l *Ledger) Count(recipient common.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint64(len(l.records[recipient]))
}

// Query returns the index-th record of recipient.
func (l *Ledger) Query(recipient common.Address, index uint64) (Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	recs := l.records[recipient]
	if index >= uint64(len(recs)) {
		return Record{}, fmt.Errorf("%w: %s #%d", ErrNotFound, recipient.Hex(), index)
	}
	return recs[index], nil
}

// Restore loads records and extra spent nullifiers, in order, into an
// empty ledger.
func (l *Ledger) Restore(records []Record, spent map[uint64][]fr.Element) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range records {
		l.appendLocked(r)
	}
	for id, ns := range spent {
		set, ok := l.spent[id]
		if !ok {
			set = make(map[fr.Element]struct{})
			l.spent[id] = set
		}
		for _, n := range ns {
			set[n] = struct{}{}
		}
	}
}
