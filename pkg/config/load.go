package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/zkcert/pkg/field"
	"github.com/yourorg/zkcert/pkg/registry"
	"github.com/yourorg/zkcert/pkg/store"
	"github.com/yourorg/zkcert/pkg/tree"
)

// LoadEnvFile reads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path uses defaults and the environment.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config unmarshal: %w", err)
		}
	}
	if err := applyEnvOverrides(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func applyEnvOverrides(c *Config) error {
	str := map[string]*string{
		"ZKCERT_TREE_ZERO_MODE": &c.Tree.ZeroMode,
		"ZKCERT_TREE_SCHEME":    &c.Tree.Scheme,
		"ZKCERT_DATA_DIR":       &c.Storage.DataDir,
		"ZKCERT_KEYS_DIR":       &c.Storage.KeysDir,
		"ZKCERT_RPC_LISTEN":     &c.RPC.ListenAddr,
		"ZKCERT_RPC_ENDPOINT":   &c.RPC.Endpoint,
		"ZKCERT_LOG_LEVEL":      &c.Log.Level,
	}
	for k, dst := range str {
		if v, ok := os.LookupEnv(k); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"ZKCERT_TREE_DEPTH":             &c.Tree.Depth,
		"ZKCERT_VERIFY_TIMEOUT_SECONDS": &c.Verify.TimeoutSeconds,
	}
	for k, dst := range ints {
		if v, ok := os.LookupEnv(k); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*dst = n
		}
	}

	if v, ok := os.LookupEnv("ZKCERT_LOG_CONSOLE"); ok {
		c.Log.Console = strings.ToLower(v) == "true" || v == "1"
	}
	return nil
}

// Validate checks that every enumerated value parses.
func (c *Config) Validate() error {
	if c.Tree.Depth < 1 || c.Tree.Depth > tree.MaxDepth {
		return fmt.Errorf("config: tree depth %d not in [1, %d]", c.Tree.Depth, tree.MaxDepth)
	}
	if _, err := c.ZeroMode(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Scheme(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Verify.TimeoutSeconds < 0 {
		return fmt.Errorf("config: negative verify timeout")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

func (c *Config) ZeroMode() (tree.ZeroMode, error) { return tree.ParseZeroMode(c.Tree.ZeroMode) }

func (c *Config) Scheme() (field.Scheme, error) { return field.ParseScheme(c.Tree.Scheme) }

func (c *Config) VerifyTimeout() time.Duration {
	return time.Duration(c.Verify.TimeoutSeconds) * time.Second
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if c.Log.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// OpenStore opens LevelDB under Storage.DataDir, or memory when it is empty.
func (c *Config) OpenStore() (*store.Store, error) {
	if c.Storage.DataDir == "" {
		return store.NewMemory(), nil
	}
	return store.OpenLevelDB(c.Storage.DataDir, c.Storage.Cache, c.Storage.Handles)
}

// RegistryOptions translates the tree settings into registry options.
func (c *Config) RegistryOptions() ([]registry.Option, error) {
	mode, err := c.ZeroMode()
	if err != nil {
		return nil, err
	}
	scheme, err := c.Scheme()
	if err != nil {
		return nil, err
	}
	return []registry.Option{
		registry.WithDepth(c.Tree.Depth),
		registry.WithZeroMode(mode),
		registry.WithScheme(scheme),
	}, nil
}
