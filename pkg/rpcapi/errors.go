package rpcapi

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/tree"
)

// Error codes carried in JSON-RPC error objects. Clients map them back to
// the package sentinels so errors.Is works across the wire.
const (
	CodeInvalidParams    = -32602
	CodeGroupNotFound    = -38001
	CodeUnauthorized     = -38002
	CodeInvalidProof     = -38003
	CodeReplayedProof    = -38004
	CodeProofNotFound    = -38005
	CodeCapacityExceeded = -38006
	CodeLeafNotFound     = -38007
	CodeLeafExists       = -38008
	CodeInvalidLeaf      = -38009
	CodeIndexOutOfRange  = -38010
	CodeNoVerifier       = -38011
)

var codes = []struct {
	code int
	err  error
}{
	{CodeGroupNotFound, registry.ErrGroupNotFound},
	{CodeUnauthorized, registry.ErrUnauthorized},
	{CodeInvalidProof, registry.ErrInvalidProof},
	{CodeReplayedProof, registry.ErrReplayedProof},
	{CodeProofNotFound, registry.ErrProofNotFound},
	{CodeCapacityExceeded, tree.ErrCapacityExceeded},
	{CodeLeafNotFound, tree.ErrNotFound},
	{CodeLeafExists, tree.ErrLeafExists},
	{CodeInvalidLeaf, tree.ErrInvalidLeaf},
	{CodeIndexOutOfRange, tree.ErrIndexOutOfRange},
	{CodeNoVerifier, registry.ErrNoVerifier},
}

type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) ErrorCode() int { return e.code }
func (e *codedError) Unwrap() error { return e.err }

func invalidParams(err error) error { return &codedError{CodeInvalidParams, err} }

// wrap tags err with the code of the first sentinel it matches.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return err
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return &codedError{c.code, err}
		}
	}
	return err
}

// unwrap turns a coded error received from a server back into its sentinel.
func unwrap(err error) error {
	var re rpc.Error
	if !errors.As(err, &re) {
		return err
	}
	for _, c := range codes {
		if re.ErrorCode() == c.code {
			return fmt.Errorf("%w (remote: %s)", c.err, re.Error())
		}
	}
	return err
}
