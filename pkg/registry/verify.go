package registry

import (
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/ledger"
	"github.com/yourorg/zkcert/pkg/store"
)

// VerifyRequest is a holder's submission for one group.
type VerifyRequest struct {
	GroupID      uint64
	Nullifier    fr.Element
	MinThreshold fr.Element
	Proof        calldata.Proof
	Recipient    common.Address
	Reference    string
}

// Verify checks req against the group's current root. On success the proof
// is recorded for req.Recipient, the nullifier is spent and ProofVerified is
// emitted; the record index is returned. On failure nothing changes.
func (r *Registry) Verify(ctx context.Context, req VerifyRequest) (uint64, error) {
	if r.verifier == nil {
		return 0, ErrNoVerifier
	}
	g, err := r.group(req.GroupID)
	if err != nil {
		return 0, err
	}

	// The write lock pins the root between the proof check and the record.
	g.mu.Lock()
	if err := r.ledger.CheckUnused(req.GroupID, req.Nullifier); err != nil {
		g.mu.Unlock()
		return 0, err
	}
	pub := credential.Public{
		Root:         g.tree.Root(),
		Nullifier:    req.Nullifier,
		MinThreshold: req.MinThreshold,
	}
	if err := r.verifier.Verify(ctx, req.Proof, pub); err != nil {
		g.mu.Unlock()
		r.log.Debug().Uint64("group", req.GroupID).Err(err).Msg("proof rejected")
		return 0, err
	}

	rec := ledger.Record{
		GroupID:      req.GroupID,
		Recipient:    req.Recipient,
		Reference:    req.Reference,
		MinThreshold: req.MinThreshold,
		Nullifier:    req.Nullifier,
		Root:         pub.Root,
	}
	index, err := r.ledger.Append(rec, func(index uint64, rec ledger.Record) error {
		b := r.store.NewBatch()
		b.PutRecord(index, toStored(rec))
		b.PutNullifier(rec.GroupID, rec.Nullifier)
		return b.Write()
	})
	if err != nil {
		g.mu.Unlock()
		return 0, fmt.Errorf("record proof: %w", err)
	}
	prev, done := g.order()
	g.mu.Unlock()

	publish(prev, done, func() {
		r.log.Info().
			Uint64("group", req.GroupID).
			Str("recipient", req.Recipient.Hex()).
			Str("minThreshold", req.MinThreshold.String()).
			Msg("proof verified")
		r.verifiedFeed.Send(ProofVerified{
			GroupID:      req.GroupID,
			Recipient:    req.Recipient,
			MinThreshold: req.MinThreshold,
			Nullifier:    req.Nullifier,
			Reference:    req.Reference,
		})
	})
	return index, nil
}

// QueryProof returns the index-th proof recorded for recipient.
func (r *Registry) QueryProof(ctx context.Context, recipient common.Address, index uint64) (ledger.Record, error) {
	return r.ledger.Query(recipient, index)
}

// ProofCount returns how many proofs are recorded for recipient.
func (r *Registry) ProofCount(ctx context.Context, recipient common.Address) uint64 {
	return r.ledger.Count(recipient)
}

func toStored(r ledger.Record) store.Record {
	return store.Record{
		GroupID:      r.GroupID,
		Recipient:    r.Recipient,
		Reference:    r.Reference,
		MinThreshold: r.MinThreshold.Bytes(),
		Nullifier:    r.Nullifier.Bytes(),
		Root:         r.Root.Bytes(),
	}
}

func fromStored(s store.Record) (ledger.Record, error) {
	r := ledger.Record{GroupID: s.GroupID, Recipient: s.Recipient, Reference: s.Reference}
	for _, f := range []struct {
		dst *fr.Element
		src [32]byte
	}{
		{&r.MinThreshold, s.MinThreshold},
		{&r.Nullifier, s.Nullifier},
		{&r.Root, s.Root},
	} {
		if err := f.dst.SetBytesCanonical(f.src[:]); err != nil {
			return ledger.Record{}, fmt.Errorf("registry: stored record: %w", err)
		}
	}
	return r, nil
}
