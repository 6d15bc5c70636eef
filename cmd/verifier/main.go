package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/zkcert/pkg/calldata"
	"github.com/yourorg/zkcert/pkg/config"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/prover"
	"github.com/yourorg/zkcert/pkg/verifier"
	"github.com/yourorg/zkcert/pkg/witness"
)

var errStaleRoot = errors.New("proof root is not the group's current root")

// check verifies the proof. With current set, the proof must also be bound
// to that root.
func check(ctx context.Context, v verifier.ProofVerifier, groupID uint64, proof calldata.Proof, pub credential.Public, current *fr.Element) error {
	if current != nil && !current.Equal(&pub.Root) {
		return fmt.Errorf("%w: group %d is at %s", errStaleRoot, groupID, current.String())
	}
	if err := v.Verify(ctx, proof, pub); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	return nil
}

func main() {
	var proofPath, vkPath, cfgPath, rpcURL string

	cmd := &cobra.Command{
		Use:   "zkcert-verifier",
		Short: "Verify a credential threshold proof offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			scheme, err := cfg.Scheme()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(proofPath)
			if err != nil {
				return err
			}
			var sub witness.Submission
			if err := json.Unmarshal(raw, &sub); err != nil {
				return fmt.Errorf("submission %s: %w", proofPath, err)
			}
			pub, err := sub.Public.Elements()
			if err != nil {
				return err
			}

			vk, err := prover.ReadVerifyingKey(vkPath)
			if err != nil {
				return err
			}
			v := verifier.New(vk, cfg.Tree.Depth, scheme,
				verifier.WithTimeout(cfg.VerifyTimeout()),
				verifier.WithLogger(cfg.Logger(os.Stderr)),
			)

			ctx := cmd.Context()
			var current *fr.Element
			if rpcURL != "" {
				remote, err := witness.Dial(ctx, rpcURL)
				if err != nil {
					return err
				}
				defer remote.Close()
				root, err := witness.FetchRoot(ctx, remote.Client, sub.GroupID)
				if err != nil {
					return err
				}
				current = &root
			}

			if err := check(ctx, v, sub.GroupID, sub.Proof, pub, current); err != nil {
				color.Red("%v", err)
				return err
			}
			fmt.Println("proof verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "", "proof_g<id>.json written by zkcert-prover")
	cmd.Flags().StringVar(&vkPath, "vk", "", "credential_d<depth>_<scheme>_vk.bin")
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file (tree depth and scheme)")
	cmd.Flags().StringVar(&rpcURL, "rpc", "", "Optional registry endpoint; the proof must match the current root")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("vk")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
