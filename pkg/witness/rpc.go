package witness

import (
	"context"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/tree"
)

// Namespace is the JSON-RPC namespace the registry is served under.
const Namespace = "zkcert"

// Remote is a Source backed by a registry's JSON-RPC endpoint.
type Remote struct {
	Client *rpc.Client
}

func Dial(ctx context.Context, url string) (*Remote, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Remote{Client: c}, nil
}

func (r *Remote) Close() { r.Client.Close() }

func (r *Remote) IndexOf(ctx context.Context, groupID uint64, leaf fr.Element) (uint64, error) {
	return FetchIndexOf(ctx, r.Client, groupID, leaf)
}

func (r *Remote) SiblingPath(ctx context.Context, groupID uint64, index uint64) (tree.Path, error) {
	return FetchSiblingPath(ctx, r.Client, groupID, index)
}

func FetchIndexOf(ctx context.Context, cli *rpc.Client, groupID uint64, leaf fr.Element) (uint64, error) {
	var idx uint64
	err := cli.CallContext(ctx, &idx, Namespace+"_indexOf", groupID, (*math.HexOrDecimal256)(field.ToBig(leaf)))
	return idx, err
}

func FetchSiblingPath(ctx context.Context, cli *rpc.Client, groupID uint64, index uint64) (tree.Path, error) {
	var w WirePath
	if err := cli.CallContext(ctx, &w, Namespace+"_siblingPath", groupID, index); err != nil {
		return tree.Path{}, err
	}
	return w.Path()
}

func FetchRoot(ctx context.Context, cli *rpc.Client, groupID uint64) (fr.Element, error) {
	var root math.HexOrDecimal256
	if err := cli.CallContext(ctx, &root, Namespace+"_root", groupID); err != nil {
		return fr.Element{}, err
	}
	v, err := field.FromBig((*big.Int)(&root))
	if err != nil {
		return fr.Element{}, fmt.Errorf("root: %w", err)
	}
	return v, nil
}
