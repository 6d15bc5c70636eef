// Package prover is the holder-side proving client: it compiles the
// credential circuit, manages Groth16 keys on disk and turns witness bundles
// into calldata proofs.
package prover

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yourorg/zkcert/circuits"
	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/witness"
)

var (
	compileGroup singleflight.Group
	compiled     sync.Map // string -> constraint.ConstraintSystem
)

// Compile returns the R1CS of the credential circuit for depth and scheme.
// Results are cached per process and concurrent callers share one compile.
func Compile(depth int, scheme field.Scheme) (constraint.ConstraintSystem, error) {
	key := fmt.Sprintf("%d/%s", depth, scheme)
	if ccs, ok := compiled.Load(key); ok {
		return ccs.(constraint.ConstraintSystem), nil
	}
	v, err, _ := compileGroup.Do(key, func() (interface{}, error) {
		ccs, err := frontend.Compile(
			circuits.Curve().ScalarField(),
			r1cs.NewBuilder,
			circuits.NewCredentialCircuit(depth, scheme),
		)
		if err != nil {
			return nil, err
		}
		compiled.Store(key, ccs)
		return ccs, nil
	})
	if err != nil {
		return nil, fmt.Errorf("compile credential circuit: %w", err)
	}
	return v.(constraint.ConstraintSystem), nil
}

type Prover struct {
	depth  int
	scheme field.Scheme
	ccs    constraint.ConstraintSystem
	pk     groth16.ProvingKey
	vk     groth16.VerifyingKey
	log    zerolog.Logger
}

type Option func(*Prover)

func WithLogger(l zerolog.Logger) Option {
	return func(p *Prover) { p.log = l }
}

func newProver(depth int, scheme field.Scheme, opts []Option) (*Prover, error) {
	ccs, err := Compile(depth, scheme)
	if err != nil {
		return nil, err
	}
	p := &Prover{depth: depth, scheme: scheme, ccs: ccs, log: zerolog.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Setup runs a fresh (single-party, test grade) Groth16 setup.
func Setup(depth int, scheme field.Scheme, opts ...Option) (*Prover, error) {
	p, err := newProver(depth, scheme, opts)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	if p.pk, p.vk, err = groth16.Setup(p.ccs); err != nil {
		return nil, err
	}
	p.log.Info().
		Int("depth", depth).
		Stringer("scheme", scheme).
		Int("constraints", p.ccs.GetNbConstraints()).
		Dur("took", time.Since(start)).
		Msg("groth16 setup")
	return p, nil
}

// KeyPaths names the key files of one circuit shape inside dir.
func KeyPaths(dir string, depth int, scheme field.Scheme) (pk, vk string) {
	base := fmt.Sprintf("credential_d%d_%s", depth, scheme)
	return filepath.Join(dir, base+"_pk.bin"), filepath.Join(dir, base+"_vk.bin")
}

// Load reads both keys from dir.
func Load(dir string, depth int, scheme field.Scheme, opts ...Option) (*Prover, error) {
	p, err := newProver(depth, scheme, opts)
	if err != nil {
		return nil, err
	}
	pkPath, vkPath := KeyPaths(dir, depth, scheme)

	p.pk = groth16.NewProvingKey(circuits.Curve())
	if err := readFrom(pkPath, p.pk); err != nil {
		return nil, err
	}
	if p.vk, err = ReadVerifyingKey(vkPath); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadOrSetup loads cached keys from dir, running and saving a setup when
// the proving key is missing.
func LoadOrSetup(dir string, depth int, scheme field.Scheme, opts ...Option) (*Prover, error) {
	pkPath, _ := KeyPaths(dir, depth, scheme)
	if _, err := os.Stat(pkPath); err == nil {
		return Load(dir, depth, scheme, opts...)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	p, err := Setup(depth, scheme, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.Save(dir); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes both keys to dir.
func (p *Prover) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pkPath, vkPath := KeyPaths(dir, p.depth, p.scheme)
	if err := writeTo(pkPath, p.pk); err != nil {
		return err
	}
	return writeTo(vkPath, p.vk)
}

func (p *Prover) Depth() int { return p.depth }
func (p *Prover) Scheme() field.Scheme { return p.scheme }
func (p *Prover) VerifyingKey() groth16.VerifyingKey { return p.vk }

// Prove proves the relation for b. The bundle must have been built for the
// prover's depth and scheme.
func (p *Prover) Prove(b *witness.Bundle) (calldata.Proof, error) {
	if b == nil || b.Full == nil {
		return calldata.Proof{}, errors.New("prover: empty witness bundle")
	}
	if n := len(b.Blueprint.Siblings); n != p.depth || b.Blueprint.Scheme != p.scheme {
		return calldata.Proof{}, fmt.Errorf("prover: bundle for depth %d/%s, prover is %d/%s",
			n, b.Blueprint.Scheme, p.depth, p.scheme)
	}
	start := time.Now()
	proof, err := groth16.Prove(p.ccs, p.pk, b.Full)
	if err != nil {
		return calldata.Proof{}, fmt.Errorf("prove: %w", err)
	}
	p.log.Debug().Dur("took", time.Since(start)).Msg("proof generated")
	return calldata.FromGroth16(proof)
}

// ExportSolidity writes a Solidity verifier contract for the verifying key.
func (p *Prover) ExportSolidity(w io.Writer) error {
	return p.vk.ExportSolidity(w)
}

// ReadVerifyingKey loads a BN254 verifying key written by Save.
func ReadVerifyingKey(path string) (groth16.VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(circuits.Curve())
	if err := readFrom(path, vk); err != nil {
		return nil, err
	}
	return vk, nil
}

func readFrom(path string, r io.ReaderFrom) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := r.ReadFrom(bytes.NewReader(b)); err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeTo(path string, w io.WriterTo) error {
	var b bytes.Buffer
	if _, err := w.WriteTo(&b); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}
