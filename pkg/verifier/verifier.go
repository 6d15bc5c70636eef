// Package verifier checks calldata proofs against a fixed Groth16 verifying
// key and the public values (root, nullifier, minThreshold).
package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"

	"github.com/yourorg/zkcert/circuits"
	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/witness"
)

// DefaultTimeout bounds a single verification.
const DefaultTimeout = 10 * time.Second

// ErrInvalidProof is returned for any proof that does not verify, including
// malformed encodings, internal failures and timeouts. Context errors stay in
// the chain.
var ErrInvalidProof = errors.New("verifier: invalid proof")

// ProofVerifier decides a proof against public values. It is pure.
type ProofVerifier interface {
	Verify(ctx context.Context, proof calldata.Proof, pub credential.Public) error
}

// Groth16 verifies BN254 Groth16 proofs of the credential circuit.
type Groth16 struct {
	vk      groth16.VerifyingKey
	depth   int
	scheme  field.Scheme
	timeout time.Duration
	log     zerolog.Logger
}

type Option func(*Groth16)

func WithTimeout(d time.Duration) Option {
	return func(v *Groth16) { v.timeout = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(v *Groth16) { v.log = l }
}

func New(vk groth16.VerifyingKey, depth int, scheme field.Scheme, opts ...Option) *Groth16 {
	v := &Groth16{
		vk:      vk,
		depth:   depth,
		scheme:  scheme,
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

type result struct{ err error }

func (v *Groth16) Verify(ctx context.Context, proof calldata.Proof, pub credential.Public) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{fmt.Errorf("%w: verifier panic: %v", ErrInvalidProof, r)}
			}
		}()
		done <- result{v.verify(proof, pub)}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			v.log.Debug().Err(r.err).Msg("proof rejected")
		}
		return r.err
	case <-ctx.Done():
		v.log.Warn().Err(ctx.Err()).Dur("timeout", v.timeout).Msg("verification abandoned")
		return fmt.Errorf("%w: %w", ErrInvalidProof, ctx.Err())
	}
}

func (v *Groth16) verify(proof calldata.Proof, pub credential.Public) error {
	p, err := proof.Groth16()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	public, err := frontend.NewWitness(
		witness.PublicAssignment(v.depth, v.scheme, pub),
		circuits.Curve().ScalarField(),
		frontend.PublicOnly(),
	)
	if err != nil {
		return fmt.Errorf("%w: public witness: %v", ErrInvalidProof, err)
	}
	if err := groth16.Verify(p, v.vk, public); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return nil
}
