package rpcapi

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/ledger"
	"github.com/yourorg/zkcert/pkg/tree"
	"github.com/yourorg/zkcert/pkg/witness"
)

// Client talks to a registry served by NewServer. It also satisfies
// witness.Source.
type Client struct {
	*witness.Remote
}

func Dial(ctx context.Context, url string) (*Client, error) {
	r, err := witness.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Client{Remote: r}, nil
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	return unwrap(c.Client.CallContext(ctx, result, witness.Namespace+"_"+method, args...))
}

func element(e *Element) (fr.Element, error) {
	if e == nil {
		return fr.Element{}, fmt.Errorf("rpcapi: empty element in response")
	}
	return field.FromBig((*big.Int)(e))
}

// AuthTTL is how long a signed mutation stays valid.
const AuthTTL = time.Minute

func (c *Client) CreateGroup(ctx context.Context, key *ecdsa.PrivateKey, description string) (uint64, error) {
	auth, err := Sign(key, AuthTTL, "createGroup", description)
	if err != nil {
		return 0, err
	}
	var id uint64
	err = c.call(ctx, &id, "createGroup", auth, description)
	return id, err
}

func (c *Client) AddMember(ctx context.Context, key *ecdsa.PrivateKey, groupID uint64, commitment fr.Element) (fr.Element, error) {
	return c.mutate(ctx, key, "addMember", groupID, commitment)
}

func (c *Client) RemoveMember(ctx context.Context, key *ecdsa.PrivateKey, groupID uint64, commitment fr.Element) (fr.Element, error) {
	return c.mutate(ctx, key, "removeMember", groupID, commitment)
}

func (c *Client) mutate(ctx context.Context, key *ecdsa.PrivateKey, method string, groupID uint64, commitment fr.Element) (fr.Element, error) {
	auth, err := Sign(key, AuthTTL, method, groupID, commitment.Bytes())
	if err != nil {
		return fr.Element{}, err
	}
	var root *Element
	if err := c.call(ctx, &root, method, auth, groupID, toWire(commitment)); err != nil {
		return fr.Element{}, err
	}
	return element(root)
}

func (c *Client) Group(ctx context.Context, groupID uint64) (*GroupInfo, error) {
	var g GroupInfo
	if err := c.call(ctx, &g, "group", groupID); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) Depth(ctx context.Context, groupID uint64) (int, error) {
	var d int
	err := c.call(ctx, &d, "depth", groupID)
	return d, err
}

func (c *Client) LeafCount(ctx context.Context, groupID uint64) (uint64, error) {
	var n uint64
	err := c.call(ctx, &n, "leafCount", groupID)
	return n, err
}

func (c *Client) NextIndex(ctx context.Context, groupID uint64) (uint64, error) {
	var n uint64
	err := c.call(ctx, &n, "nextIndex", groupID)
	return n, err
}

func (c *Client) ElementAt(ctx context.Context, groupID uint64, index uint64) (fr.Element, error) {
	var v *Element
	if err := c.call(ctx, &v, "elementAt", groupID, index); err != nil {
		return fr.Element{}, err
	}
	return element(v)
}

func (c *Client) Root(ctx context.Context, groupID uint64) (fr.Element, error) {
	root, err := witness.FetchRoot(ctx, c.Client, groupID)
	return root, unwrap(err)
}

func (c *Client) SiblingPath(ctx context.Context, groupID uint64, index uint64) (tree.Path, error) {
	p, err := c.Remote.SiblingPath(ctx, groupID, index)
	return p, unwrap(err)
}

func (c *Client) IndexOf(ctx context.Context, groupID uint64, leaf fr.Element) (uint64, error) {
	idx, err := c.Remote.IndexOf(ctx, groupID, leaf)
	return idx, unwrap(err)
}

// Verify submits a proof and returns the recipient's record index.
func (c *Client) Verify(ctx context.Context, groupID uint64, pub witness.PublicInputs, proof calldata.Proof, recipient common.Address, reference string) (uint64, error) {
	elems, err := pub.Elements()
	if err != nil {
		return 0, err
	}
	args := VerifyArgs{
		GroupID:      groupID,
		Nullifier:    toWire(elems.Nullifier),
		MinThreshold: toWire(elems.MinThreshold),
		Proof:        proof,
		Recipient:    recipient,
		Reference:    reference,
	}
	var idx uint64
	err = c.call(ctx, &idx, "verify", args)
	return idx, err
}

func (c *Client) QueryProof(ctx context.Context, recipient common.Address, index uint64) (ledger.Record, error) {
	var r ProofRecord
	if err := c.call(ctx, &r, "queryProof", recipient, index); err != nil {
		return ledger.Record{}, err
	}
	out := ledger.Record{GroupID: r.GroupID, Recipient: r.Recipient, Reference: r.Reference}
	var err error
	if out.MinThreshold, err = element(r.MinThreshold); err != nil {
		return ledger.Record{}, err
	}
	if out.Nullifier, err = element(r.Nullifier); err != nil {
		return ledger.Record{}, err
	}
	if out.Root, err = element(r.Root); err != nil {
		return ledger.Record{}, err
	}
	return out, nil
}

func (c *Client) ProofCount(ctx context.Context, recipient common.Address) (uint64, error) {
	var n uint64
	err := c.call(ctx, &n, "proofCount", recipient)
	return n, err
}

// SubscribeProofVerified streams ProofVerified events. It needs a
// websocket or IPC connection.
func (c *Client) SubscribeProofVerified(ctx context.Context, ch chan<- ProofVerifiedEvent) (*rpc.ClientSubscription, error) {
	return c.Client.Subscribe(ctx, witness.Namespace, ch, "proofVerified")
}

func (c *Client) SubscribeMemberAdded(ctx context.Context, ch chan<- MemberEvent) (*rpc.ClientSubscription, error) {
	return c.Client.Subscribe(ctx, witness.Namespace, ch, "memberAdded")
}

func (c *Client) SubscribeMemberRemoved(ctx context.Context, ch chan<- MemberEvent) (*rpc.ClientSubscription, error) {
	return c.Client.Subscribe(ctx, witness.Namespace, ch, "memberRemoved")
}

func (c *Client) SubscribeGroupCreated(ctx context.Context, ch chan<- GroupCreatedEvent) (*rpc.ClientSubscription, error) {
	return c.Client.Subscribe(ctx, witness.Namespace, ch, "groupCreated")
}
