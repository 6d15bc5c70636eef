// Package config loads deployment settings from YAML with ZKCERT_*
// environment overrides.
package config

// Config is the root configuration shared by the CLIs.
type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Verify  VerifyConfig  `yaml:"verify"`
	Storage StorageConfig `yaml:"storage"`
	RPC     RPCConfig     `yaml:"rpc"`
	Log     LogConfig     `yaml:"log"`
}

// TreeConfig fixes the shape of every group tree. Prover, verifier and
// registry of one deployment must agree on it.
type TreeConfig struct {
	Depth    int    `yaml:"depth"`
	ZeroMode string `yaml:"zero_mode"` // hashed | flat
	Scheme   string `yaml:"scheme"`    // poseidon | mimc
}

type VerifyConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"` // empty keeps state in memory
	KeysDir string `yaml:"keys_dir"`
	Cache   int    `yaml:"cache_mb"`
	Handles int    `yaml:"handles"`
}

type RPCConfig struct {
	ListenAddr string   `yaml:"listen_addr"`
	Endpoint   string   `yaml:"endpoint"` // used by clients
	WSOrigins  []string `yaml:"ws_origins,omitempty"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

func Default() *Config {
	return &Config{
		Tree:    TreeConfig{Depth: 10, ZeroMode: "hashed", Scheme: "poseidon"},
		Verify:  VerifyConfig{TimeoutSeconds: 10},
		Storage: StorageConfig{KeysDir: "./keys", Cache: 16, Handles: 16},
		RPC:     RPCConfig{ListenAddr: "127.0.0.1:8645", Endpoint: "http://127.0.0.1:8645"},
		Log:     LogConfig{Level: "info", Console: true},
	}
}
