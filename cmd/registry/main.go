package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yourorg/zkcert/pkg/config"
	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/prover"
	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/rpcapi"
	"github.com/yourorg/zkcert/pkg/verifier"
)

var (
	cfgPath string
	envPath string
)

func loadConfig() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadEnvFile(envPath); err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, cfg.Logger(os.Stderr), nil
}

func main() {
	root := &cobra.Command{
		Use:   "zkcert-registry",
		Short: "Credential group registry and proof verifier",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&envPath, "env", ".env", "env file with ZKCERT_* overrides")

	root.AddCommand(serveCmd(), setupCmd(), exportCmd(), groupCmd(), memberCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func loadProver(cfg *config.Config, logger zerolog.Logger) (*prover.Prover, error) {
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, err
	}
	return prover.LoadOrSetup(cfg.Storage.KeysDir, cfg.Tree.Depth, scheme, prover.WithLogger(logger))
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over JSON-RPC (HTTP and websocket)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			// -----------------------------------------------------------------
			// Keys + verifier
			// -----------------------------------------------------------------
			p, err := loadProver(cfg, logger)
			if err != nil {
				return err
			}
			v := verifier.New(p.VerifyingKey(), p.Depth(), p.Scheme(),
				verifier.WithTimeout(cfg.VerifyTimeout()),
				verifier.WithLogger(logger),
			)

			// -----------------------------------------------------------------
			// Registry
			// -----------------------------------------------------------------
			st, err := cfg.OpenStore()
			if err != nil {
				return err
			}
			opts, err := cfg.RegistryOptions()
			if err != nil {
				return err
			}
			opts = append(opts, registry.WithStore(st), registry.WithLogger(logger))
			reg, err := registry.New(v, opts...)
			if err != nil {
				st.Close()
				return err
			}
			defer reg.Close()

			// -----------------------------------------------------------------
			// Transport
			// -----------------------------------------------------------------
			srv, err := rpcapi.NewServer(reg, logger)
			if err != nil {
				return err
			}
			defer srv.Stop()

			origins := cfg.RPC.WSOrigins
			if len(origins) == 0 {
				origins = []string{"*"}
			}
			mux := http.NewServeMux()
			mux.Handle("/", srv)
			mux.Handle("/ws", srv.WebsocketHandler(origins))
			hs := &http.Server{Addr: cfg.RPC.ListenAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = hs.Shutdown(shutdown)
			}()

			color.Cyan("zkcert registry on %s (depth %d, %s, %s zeros)",
				cfg.RPC.ListenAddr, cfg.Tree.Depth, cfg.Tree.Scheme, cfg.Tree.ZeroMode)
			logger.Info().Str("addr", cfg.RPC.ListenAddr).Str("data", cfg.Storage.DataDir).Msg("serving")
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info().Msg("stopped")
			return nil
		},
	}
}

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Run (or reuse) the Groth16 setup and write key files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := loadProver(cfg, logger)
			if err != nil {
				return err
			}
			pk, vk := prover.KeyPaths(cfg.Storage.KeysDir, p.Depth(), p.Scheme())
			color.Green("proving key:   %s", pk)
			color.Green("verifying key: %s", vk)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-solidity",
		Short: "Write a Solidity verifier for the current verifying key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := loadProver(cfg, logger)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := p.ExportSolidity(f); err != nil {
				return err
			}
			color.Green("wrote %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "Verifier.sol", "output file")
	return cmd
}

// ---------------------------------------------------------------------------
// Operator commands against a running registry
// ---------------------------------------------------------------------------

func dial(cmd *cobra.Command) (*rpcapi.Client, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if url, _ := cmd.Flags().GetString("rpc"); url != "" {
		cfg.RPC.Endpoint = url
	}
	return rpcapi.Dial(cmd.Context(), cfg.RPC.Endpoint)
}

// ownerKey loads the signing key from --key-file, or ZKCERT_OWNER_KEY (hex).
func ownerKey(cmd *cobra.Command) (*ecdsa.PrivateKey, error) {
	if path, _ := cmd.Flags().GetString("key-file"); path != "" {
		return crypto.LoadECDSA(path)
	}
	if hex := os.Getenv("ZKCERT_OWNER_KEY"); hex != "" {
		return crypto.HexToECDSA(strings.TrimPrefix(hex, "0x"))
	}
	return nil, errors.New("--key-file or ZKCERT_OWNER_KEY is required")
}

func groupCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create-group",
		Short: "Create a group owned by the signing key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := ownerKey(cmd)
			if err != nil {
				return err
			}
			c, err := dial(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			id, err := c.CreateGroup(cmd.Context(), key, description)
			if err != nil {
				return err
			}
			color.Green("group %d created, owner %s", id, crypto.PubkeyToAddress(key.PublicKey).Hex())
			return nil
		},
	}
	cmd.Flags().String("rpc", "", "registry endpoint (overrides config)")
	cmd.Flags().String("key-file", "", "owner private key file (hex)")
	cmd.Flags().StringVar(&description, "description", "", "group description")
	return cmd
}

func memberCmd() *cobra.Command {
	var (
		groupID    uint64
		commitment string
		remove     bool
	)
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Add (or with --remove, remove) a commitment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := ownerKey(cmd)
			if err != nil {
				return err
			}
			c, err := dial(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			leaf, err := field.FromString(commitment)
			if err != nil {
				return err
			}
			op := c.AddMember
			if remove {
				op = c.RemoveMember
			}
			root, err := op(cmd.Context(), key, groupID, leaf)
			if err != nil {
				return err
			}
			fmt.Printf("root: %s\n", root.String())
			return nil
		},
	}
	cmd.Flags().String("rpc", "", "registry endpoint (overrides config)")
	cmd.Flags().String("key-file", "", "owner private key file (hex)")
	cmd.Flags().Uint64Var(&groupID, "group", 0, "group id")
	cmd.Flags().StringVar(&commitment, "commitment", "", "credential commitment (decimal or 0x)")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove instead of add")
	_ = cmd.MarkFlagRequired("commitment")
	return cmd
}
