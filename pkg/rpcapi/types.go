package rpcapi

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/ledger"
	"github.com/yourorg/zkcert/pkg/registry"
)

// Element is a field element on the wire: 0x-hex out, hex or decimal in.
type Element = math.HexOrDecimal256

func toWire(e fr.Element) *Element { return (*Element)(field.ToBig(e)) }

func fromWire(name string, e *Element) (fr.Element, error) {
	if e == nil {
		return fr.Element{}, invalidParams(errors.New("missing " + name))
	}
	v, err := field.FromBig((*big.Int)(e))
	if err != nil {
		return fr.Element{}, invalidParams(err)
	}
	return v, nil
}

type VerifyArgs struct {
	GroupID      uint64         `json:"groupId"`
	Nullifier    *Element       `json:"nullifier"`
	MinThreshold *Element       `json:"minThreshold"`
	Proof        calldata.Proof `json:"proof"`
	Recipient    common.Address `json:"recipient"`
	Reference    string         `json:"reference"`
}

type ProofRecord struct {
	GroupID      uint64         `json:"groupId"`
	Recipient    common.Address `json:"recipient"`
	Reference    string         `json:"reference"`
	MinThreshold *Element       `json:"minThreshold"`
	Nullifier    *Element       `json:"nullifier"`
	Root         *Element       `json:"root"`
}

func newProofRecord(r ledger.Record) *ProofRecord {
	return &ProofRecord{
		GroupID:      r.GroupID,
		Recipient:    r.Recipient,
		Reference:    r.Reference,
		MinThreshold: toWire(r.MinThreshold),
		Nullifier:    toWire(r.Nullifier),
		Root:         toWire(r.Root),
	}
}

type GroupInfo struct {
	ID          uint64         `json:"id"`
	Description string         `json:"description"`
	Owner       common.Address `json:"owner"`
	Depth       int            `json:"depth"`
	Root        *Element       `json:"root"`
	LeafCount   uint64         `json:"leafCount"`
	NextIndex   uint64         `json:"nextIndex"`
}

func newGroupInfo(g registry.GroupInfo) *GroupInfo {
	return &GroupInfo{
		ID:          g.ID,
		Description: g.Description,
		Owner:       g.Owner,
		Depth:       g.Depth,
		Root:        toWire(g.Root),
		LeafCount:   g.LeafCount,
		NextIndex:   g.NextIndex,
	}
}

// Event payloads delivered to subscribers.

type GroupCreatedEvent struct {
	GroupID     uint64         `json:"groupId"`
	Owner       common.Address `json:"owner"`
	Description string         `json:"description"`
}

type MemberEvent struct {
	GroupID    uint64   `json:"groupId"`
	Index      uint64   `json:"index"`
	Commitment *Element `json:"commitment"`
	Root       *Element `json:"root"`
}

type ProofVerifiedEvent struct {
	GroupID      uint64         `json:"groupId"`
	Recipient    common.Address `json:"recipient"`
	MinThreshold *Element       `json:"minThreshold"`
	Nullifier    *Element       `json:"nullifier"`
	Reference    string         `json:"reference"`
}
