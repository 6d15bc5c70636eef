package rpcapi

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/witness"
)

// MaxAuthWindow is how far in the future an Auth may expire.
const MaxAuthWindow = 10 * time.Minute

// Auth proves that Caller asked for one specific mutation. Signature is an
// EIP-191 personal signature over SigningHash.
type Auth struct {
	Caller    common.Address `json:"caller"`
	Expiry    uint64         `json:"expiry"`
	Signature hexutil.Bytes  `json:"signature"`
}

// SigningHash is the digest an owner signs for method with args. args are
// RLP-encoded after the method name, caller and expiry.
func SigningHash(method string, caller common.Address, expiry uint64, args ...interface{}) ([]byte, error) {
	payload, err := rlp.EncodeToBytes(append([]interface{}{witness.Namespace + "_" + method, caller, expiry}, args...))
	if err != nil {
		return nil, fmt.Errorf("auth payload: %w", err)
	}
	return accounts.TextHash(crypto.Keccak256(payload)), nil
}

// Sign authorizes one call of method with args, valid for ttl.
func Sign(key *ecdsa.PrivateKey, ttl time.Duration, method string, args ...interface{}) (Auth, error) {
	a := Auth{
		Caller: crypto.PubkeyToAddress(key.PublicKey),
		Expiry: uint64(time.Now().Add(ttl).Unix()),
	}
	h, err := SigningHash(method, a.Caller, a.Expiry, args...)
	if err != nil {
		return Auth{}, err
	}
	if a.Signature, err = crypto.Sign(h, key); err != nil {
		return Auth{}, err
	}
	return a, nil
}

// authenticator recovers callers and refuses a signature it has seen before.
type authenticator struct {
	mu   sync.Mutex
	seen map[common.Hash]uint64 // signature hash -> expiry
	now  func() time.Time
}

func newAuthenticator() *authenticator {
	return &authenticator{seen: make(map[common.Hash]uint64), now: time.Now}
}

func (a *authenticator) caller(auth Auth, method string, args ...interface{}) (common.Address, error) {
	now := uint64(a.now().Unix())
	switch {
	case auth.Expiry < now:
		return common.Address{}, fmt.Errorf("%w: authorization expired", registry.ErrUnauthorized)
	case auth.Expiry > now+uint64(MaxAuthWindow/time.Second):
		return common.Address{}, fmt.Errorf("%w: authorization expires too late", registry.ErrUnauthorized)
	case len(auth.Signature) != crypto.SignatureLength:
		return common.Address{}, fmt.Errorf("%w: malformed signature", registry.ErrUnauthorized)
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, auth.Signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	r, s := new(big.Int).SetBytes(sig[:32]), new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[crypto.RecoveryIDOffset], r, s, true) {
		return common.Address{}, fmt.Errorf("%w: non-canonical signature", registry.ErrUnauthorized)
	}
	h, err := SigningHash(method, auth.Caller, auth.Expiry, args...)
	if err != nil {
		return common.Address{}, err
	}
	pub, err := crypto.SigToPub(h, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", registry.ErrUnauthorized, err)
	}
	if got := crypto.PubkeyToAddress(*pub); got != auth.Caller {
		return common.Address{}, fmt.Errorf("%w: signed by %s, not %s", registry.ErrUnauthorized, got.Hex(), auth.Caller.Hex())
	}

	id := crypto.Keccak256Hash(sig)
	a.mu.Lock()
	defer a.mu.Unlock()
	for k, exp := range a.seen {
		if exp < now {
			delete(a.seen, k)
		}
	}
	if _, ok := a.seen[id]; ok {
		return common.Address{}, fmt.Errorf("%w: authorization already used", registry.ErrUnauthorized)
	}
	a.seen[id] = auth.Expiry
	return auth.Caller, nil
}
