package witness

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	backendwitness "github.com/consensys/gnark/backend/witness"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/yourorg/zkcert/circuits"
	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/tree"
)

// PublicInputs are the values a verifier sees, as decimal strings.
type PublicInputs struct {
	Root         string `json:"root"`
	Nullifier    string `json:"nullifier"`
	MinThreshold string `json:"minThreshold"`
}

func NewPublicInputs(p credential.Public) PublicInputs {
	return PublicInputs{
		Root:         p.Root.String(),
		Nullifier:    p.Nullifier.String(),
		MinThreshold: p.MinThreshold.String(),
	}
}

// Elements parses the three values back into field elements.
func (p PublicInputs) Elements() (credential.Public, error) {
	var out credential.Public
	var err error
	if out.Root, err = field.FromString(p.Root); err != nil {
		return out, fmt.Errorf("root: %w", err)
	}
	if out.Nullifier, err = field.FromString(p.Nullifier); err != nil {
		return out, fmt.Errorf("nullifier: %w", err)
	}
	if out.MinThreshold, err = field.FromString(p.MinThreshold); err != nil {
		return out, fmt.Errorf("minThreshold: %w", err)
	}
	return out, nil
}

// Private is what the holder keeps about one credential.
type Private struct {
	Secret   fr.Element
	UserSalt fr.Element
	AppSalt  fr.Element
	Grade    fr.Element
	Nonce    fr.Element
}

// PrivateJSON is the on-disk form of Private, values decimal or 0x-hex.
type PrivateJSON struct {
	Secret   string `json:"secret"`
	UserSalt string `json:"userSalt"`
	AppSalt  string `json:"appSalt"`
	Grade    string `json:"grade"`
	Nonce    string `json:"nonce"`
}

func (p PrivateJSON) Parse() (Private, error) {
	var out Private
	fields := []struct {
		name string
		in   string
		dst  *fr.Element
	}{
		{"secret", p.Secret, &out.Secret},
		{"userSalt", p.UserSalt, &out.UserSalt},
		{"appSalt", p.AppSalt, &out.AppSalt},
		{"grade", p.Grade, &out.Grade},
		{"nonce", p.Nonce, &out.Nonce},
	}
	for _, f := range fields {
		v, err := field.FromString(f.in)
		if err != nil {
			return Private{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return out, nil
}

// Submission is what a holder hands to a verifier: the proof, its public
// values and the group they refer to.
type Submission struct {
	GroupID uint64         `json:"groupId"`
	Public  PublicInputs   `json:"public"`
	Proof   calldata.Proof `json:"proof"`
}

type Bundle struct {
	Full       backendwitness.Witness
	Public     PublicInputs
	Blueprint  *circuits.CredentialCircuit
	Assignment *circuits.CredentialCircuit
	Commitment fr.Element
	LeafIndex  uint64
}

// WirePath is the JSON form of a tree.Path.
type WirePath struct {
	Siblings []*math.HexOrDecimal256 `json:"siblings"`
	Bits     []uint                  `json:"bits"`
}

func NewWirePath(p tree.Path) WirePath {
	w := WirePath{
		Siblings: make([]*math.HexOrDecimal256, len(p.Siblings)),
		Bits:     make([]uint, len(p.Bits)),
	}
	for i := range p.Siblings {
		w.Siblings[i] = (*math.HexOrDecimal256)(field.ToBig(p.Siblings[i]))
		w.Bits[i] = uint(p.Bits[i])
	}
	return w
}

func (w WirePath) Path() (tree.Path, error) {
	if len(w.Siblings) != len(w.Bits) {
		return tree.Path{}, fmt.Errorf("witness: %d siblings for %d bits", len(w.Siblings), len(w.Bits))
	}
	p := tree.Path{
		Siblings: make([]fr.Element, len(w.Siblings)),
		Bits:     make([]uint8, len(w.Bits)),
	}
	for i, s := range w.Siblings {
		if s == nil {
			return tree.Path{}, fmt.Errorf("witness: missing sibling at level %d", i)
		}
		v, err := field.FromBig((*big.Int)(s))
		if err != nil {
			return tree.Path{}, fmt.Errorf("witness: sibling %d: %w", i, err)
		}
		p.Siblings[i] = v
		if w.Bits[i] > 1 {
			return tree.Path{}, fmt.Errorf("witness: direction bit %d at level %d", w.Bits[i], i)
		}
		p.Bits[i] = uint8(w.Bits[i])
	}
	return p, nil
}
