package registry

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

type GroupCreated struct {
	GroupID     uint64
	Owner       common.Address
	Description string
}

type MemberAdded struct {
	GroupID    uint64
	Index      uint64
	Commitment fr.Element
	Root       fr.Element
}

type MemberRemoved struct {
	GroupID    uint64
	Index      uint64
	Commitment fr.Element
	Root       fr.Element
}

// ProofVerified is emitted once per accepted proof.
type ProofVerified struct {
	GroupID      uint64
	Recipient    common.Address
	MinThreshold fr.Element
	Nullifier    fr.Element
	Reference    string
}

// Subscriptions deliver events synchronously: a subscriber that stops
// reading blocks the registry, so keep channels drained or buffered.
// Events of one group arrive in the order their changes committed.

func (r *Registry) SubscribeGroupCreated(ch chan<- GroupCreated) event.Subscription {
	return r.scope.Track(r.createdFeed.Subscribe(ch))
}

func (r *Registry) SubscribeMemberAdded(ch chan<- MemberAdded) event.Subscription {
	return r.scope.Track(r.addedFeed.Subscribe(ch))
}

func (r *Registry) SubscribeMemberRemoved(ch chan<- MemberRemoved) event.Subscription {
	return r.scope.Track(r.removedFeed.Subscribe(ch))
}

func (r *Registry) SubscribeProofVerified(ch chan<- ProofVerified) event.Subscription {
	return r.scope.Track(r.verifiedFeed.Subscribe(ch))
}

// order reserves the next event slot of g. Callers hold g.mu for writing,
// so slots follow commit order.
func (g *group) order() (prev, done chan struct{}) {
	done = make(chan struct{})
	prev, g.lastEvent = g.lastEvent, done
	return prev, done
}

// publish runs send once the previous slot's event went out.
func publish(prev, done chan struct{}, send func()) {
	if prev != nil {
		<-prev
	}
	send()
	close(done)
}
