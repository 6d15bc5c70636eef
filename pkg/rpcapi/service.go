// Package rpcapi serves a registry over go-ethereum's JSON-RPC stack under
// the "zkcert" namespace and provides the matching client.
package rpcapi

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"

	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/witness"
)

// Service exposes registry operations as zkcert_* methods. Mutations carry
// an Auth; the caller is the address that signed it.
type Service struct {
	reg  *registry.Registry
	log  zerolog.Logger
	auth *authenticator
}

func NewService(reg *registry.Registry, log zerolog.Logger) *Service {
	return &Service{reg: reg, log: log, auth: newAuthenticator()}
}

// NewServer returns an rpc.Server with the service registered. It serves
// HTTP directly and websockets through WebsocketHandler.
func NewServer(reg *registry.Registry, log zerolog.Logger) (*rpc.Server, error) {
	srv := rpc.NewServer()
	if err := srv.RegisterName(witness.Namespace, NewService(reg, log)); err != nil {
		return nil, fmt.Errorf("register %s api: %w", witness.Namespace, err)
	}
	return srv, nil
}

func (s *Service) CreateGroup(ctx context.Context, auth Auth, description string) (uint64, error) {
	caller, err := s.auth.caller(auth, "createGroup", description)
	if err != nil {
		return 0, wrap(err)
	}
	id, err := s.reg.CreateGroup(ctx, caller, description)
	return id, wrap(err)
}

func (s *Service) AddMember(ctx context.Context, auth Auth, groupID uint64, commitment *Element) (*Element, error) {
	c, err := fromWire("commitment", commitment)
	if err != nil {
		return nil, err
	}
	caller, err := s.auth.caller(auth, "addMember", groupID, c.Bytes())
	if err != nil {
		return nil, wrap(err)
	}
	root, err := s.reg.AddMember(ctx, caller, groupID, c)
	if err != nil {
		return nil, wrap(err)
	}
	return toWire(root), nil
}

func (s *Service) RemoveMember(ctx context.Context, auth Auth, groupID uint64, commitment *Element) (*Element, error) {
	c, err := fromWire("commitment", commitment)
	if err != nil {
		return nil, err
	}
	caller, err := s.auth.caller(auth, "removeMember", groupID, c.Bytes())
	if err != nil {
		return nil, wrap(err)
	}
	root, err := s.reg.RemoveMember(ctx, caller, groupID, c)
	if err != nil {
		return nil, wrap(err)
	}
	return toWire(root), nil
}

func (s *Service) Group(ctx context.Context, groupID uint64) (*GroupInfo, error) {
	g, err := s.reg.Group(ctx, groupID)
	if err != nil {
		return nil, wrap(err)
	}
	return newGroupInfo(g), nil
}

func (s *Service) Depth(ctx context.Context, groupID uint64) (int, error) {
	d, err := s.reg.Depth(ctx, groupID)
	return d, wrap(err)
}

func (s *Service) LeafCount(ctx context.Context, groupID uint64) (uint64, error) {
	n, err := s.reg.LeafCount(ctx, groupID)
	return n, wrap(err)
}

func (s *Service) NextIndex(ctx context.Context, groupID uint64) (uint64, error) {
	n, err := s.reg.NextIndex(ctx, groupID)
	return n, wrap(err)
}

func (s *Service) ElementAt(ctx context.Context, groupID uint64, index uint64) (*Element, error) {
	v, err := s.reg.ElementAt(ctx, groupID, index)
	if err != nil {
		return nil, wrap(err)
	}
	return toWire(v), nil
}

func (s *Service) Root(ctx context.Context, groupID uint64) (*Element, error) {
	v, err := s.reg.Root(ctx, groupID)
	if err != nil {
		return nil, wrap(err)
	}
	return toWire(v), nil
}

func (s *Service) SiblingPath(ctx context.Context, groupID uint64, index uint64) (*witness.WirePath, error) {
	p, err := s.reg.SiblingPath(ctx, groupID, index)
	if err != nil {
		return nil, wrap(err)
	}
	w := witness.NewWirePath(p)
	return &w, nil
}

func (s *Service) IndexOf(ctx context.Context, groupID uint64, leaf *Element) (uint64, error) {
	l, err := fromWire("leaf", leaf)
	if err != nil {
		return 0, err
	}
	idx, err := s.reg.IndexOf(ctx, groupID, l)
	return idx, wrap(err)
}

func (s *Service) Verify(ctx context.Context, args VerifyArgs) (uint64, error) {
	n, err := fromWire("nullifier", args.Nullifier)
	if err != nil {
		return 0, err
	}
	threshold, err := fromWire("minThreshold", args.MinThreshold)
	if err != nil {
		return 0, err
	}
	idx, err := s.reg.Verify(ctx, registry.VerifyRequest{
		GroupID:      args.GroupID,
		Nullifier:    n,
		MinThreshold: threshold,
		Proof:        args.Proof,
		Recipient:    args.Recipient,
		Reference:    args.Reference,
	})
	if err != nil {
		s.log.Debug().Err(err).Uint64("group", args.GroupID).Msg("verify rejected")
	}
	return idx, wrap(err)
}

func (s *Service) QueryProof(ctx context.Context, recipient common.Address, index uint64) (*ProofRecord, error) {
	r, err := s.reg.QueryProof(ctx, recipient, index)
	if err != nil {
		return nil, wrap(err)
	}
	return newProofRecord(r), nil
}

func (s *Service) ProofCount(ctx context.Context, recipient common.Address) (uint64, error) {
	return s.reg.ProofCount(ctx, recipient), nil
}

/* ---------------- subscriptions ---------------- */

func (s *Service) GroupCreated(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, s.reg.SubscribeGroupCreated, func(e registry.GroupCreated) any {
		return GroupCreatedEvent{GroupID: e.GroupID, Owner: e.Owner, Description: e.Description}
	})
}

func (s *Service) MemberAdded(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, s.reg.SubscribeMemberAdded, func(e registry.MemberAdded) any {
		return MemberEvent{GroupID: e.GroupID, Index: e.Index, Commitment: toWire(e.Commitment), Root: toWire(e.Root)}
	})
}

func (s *Service) MemberRemoved(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, s.reg.SubscribeMemberRemoved, func(e registry.MemberRemoved) any {
		return MemberEvent{GroupID: e.GroupID, Index: e.Index, Commitment: toWire(e.Commitment), Root: toWire(e.Root)}
	})
}

func (s *Service) ProofVerified(ctx context.Context) (*rpc.Subscription, error) {
	return notify(ctx, s.reg.SubscribeProofVerified, func(e registry.ProofVerified) any {
		return ProofVerifiedEvent{
			GroupID:      e.GroupID,
			Recipient:    e.Recipient,
			MinThreshold: toWire(e.MinThreshold),
			Nullifier:    toWire(e.Nullifier),
			Reference:    e.Reference,
		}
	})
}

func notify[T any](ctx context.Context, subscribe func(chan<- T) event.Subscription, encode func(T) any) (*rpc.Subscription, error) {
	notifier, ok := rpc.NotifierFromContext(ctx)
	if !ok {
		return nil, rpc.ErrNotificationsUnsupported
	}
	sub := notifier.CreateSubscription()

	ch := make(chan T, 16)
	feed := subscribe(ch)
	go func() {
		defer feed.Unsubscribe()
		for {
			select {
			case ev := <-ch:
				if err := notifier.Notify(sub.ID, encode(ev)); err != nil {
					return
				}
			case <-sub.Err():
				return
			case <-feed.Err():
				return
			}
		}
	}()
	return sub, nil
}
