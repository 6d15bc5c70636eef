package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yourorg/zkcert/pkg/config"
	"github.com/yourorg/zkcert/pkg/credential"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/prover"
	"github.com/yourorg/zkcert/pkg/rpcapi"
	"github.com/yourorg/zkcert/pkg/witness"
)

type contextKey string

const startTimeKey contextKey = "start"

var (
	cfgPath  string
	envPath  string
	credPath string
)

func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envPath); err != nil {
		return nil, err
	}
	return config.Load(cfgPath)
}

func readCredential(path string) (witness.Private, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return witness.Private{}, err
	}
	var pj witness.PrivateJSON
	if err := json.Unmarshal(raw, &pj); err != nil {
		return witness.Private{}, fmt.Errorf("credential %s: %w", path, err)
	}
	return pj.Parse()
}

func main() {
	root := &cobra.Command{
		Use:   "zkcert-prover",
		Short: "Generate Groth16 proofs of credential threshold membership",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&envPath, "env", ".env", "env file with ZKCERT_* overrides")
	root.PersistentFlags().StringVar(&credPath, "credential", "", "credential JSON (secret, userSalt, appSalt, grade, nonce)")
	_ = root.MarkPersistentFlagRequired("credential")

	root.AddCommand(commitmentCmd(), proveCmd())

	root.SetContext(context.WithValue(context.Background(), startTimeKey, time.Now()))
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func commitmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commitment",
		Short: "Print the commitment an issuer adds to a group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			priv, err := readCredential(credPath)
			if err != nil {
				return err
			}
			scheme, err := cfg.Scheme()
			if err != nil {
				return err
			}
			h, err := field.NewHasher(scheme)
			if err != nil {
				return err
			}
			identity, err := credential.IdentityCommitment(h, priv.Secret, priv.UserSalt)
			if err != nil {
				return err
			}
			c, err := credential.Commitment(h, identity, priv.AppSalt, priv.Grade)
			if err != nil {
				return err
			}
			fmt.Println(c.String())
			return nil
		},
	}
}

func proveCmd() *cobra.Command {
	var (
		rpcURL     string
		groupID    uint64
		minimum    string
		outDir     string
		submit     bool
		recipientS string
		reference  string
	)

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Build the witness from a registry, prove, and optionally submit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := cfg.Logger(os.Stderr)
			if rpcURL == "" {
				rpcURL = cfg.RPC.Endpoint
			}
			scheme, err := cfg.Scheme()
			if err != nil {
				return err
			}
			priv, err := readCredential(credPath)
			if err != nil {
				return err
			}
			threshold, err := field.FromString(minimum)
			if err != nil {
				return fmt.Errorf("--min: %w", err)
			}

			ctx := cmd.Context()
			client, err := rpcapi.Dial(ctx, rpcURL)
			if err != nil {
				return err
			}
			defer client.Close()

			// -----------------------------------------------------------------
			// Witness bundle
			// -----------------------------------------------------------------
			bundle, err := witness.FromSource(ctx, client, groupID, scheme, priv, threshold)
			if err != nil {
				return err
			}
			logger.Info().Uint64("group", groupID).Uint64("leaf", bundle.LeafIndex).Msg("witness built")

			// -----------------------------------------------------------------
			// Keys (cached) + prove
			// -----------------------------------------------------------------
			p, err := prover.LoadOrSetup(cfg.Storage.KeysDir, cfg.Tree.Depth, scheme, prover.WithLogger(logger))
			if err != nil {
				return err
			}
			proof, err := p.Prove(bundle)
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Outputs
			// -----------------------------------------------------------------
			sub := witness.Submission{GroupID: groupID, Public: bundle.Public, Proof: proof}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			subPath := filepath.Join(outDir, fmt.Sprintf("proof_g%d.json", groupID))
			raw, err := json.MarshalIndent(sub, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(subPath, raw, 0o644); err != nil {
				return err
			}
			color.Green("proof written to %s", subPath)
			fmt.Printf("nullifier: %s\n", bundle.Public.Nullifier)

			if submit {
				if reference == "" {
					reference = uuid.NewString()
				}
				n, err := client.Verify(ctx, groupID, bundle.Public, proof, common.HexToAddress(recipientS), reference)
				if err != nil {
					color.Red("registry rejected proof: %v", err)
					return err
				}
				color.Green("registry accepted proof (record %d, ref %s)", n, reference)
			}
			fmt.Printf("proof done in %s\n", time.Since(ctx.Value(startTimeKey).(time.Time)))
			return nil
		},
	}

	cmd.Flags().StringVar(&rpcURL, "rpc", "", "registry endpoint (defaults to config rpc.endpoint)")
	cmd.Flags().Uint64Var(&groupID, "group", 0, "group id")
	cmd.Flags().StringVar(&minimum, "min", "", "public minimum threshold")
	cmd.Flags().StringVar(&outDir, "outdir", "./", "output directory")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit the proof to the registry")
	cmd.Flags().StringVar(&recipientS, "recipient", "", "recipient address for the proof record")
	cmd.Flags().StringVar(&reference, "ref", "", "proof reference (random uuid when empty)")
	_ = cmd.MarkFlagRequired("min")
	cmd.MarkFlagsRequiredTogether("submit", "recipient")
	return cmd
}
