// Package params loads the configuration every signing-core consumer
// needs: which chain to sign for, where the nonce store lives, and
// where the signer's private key comes from.
package params

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/uhyunpark/hyperwire/pkg/hltypes"
)

// KeySource records the configured source of the signer's private key.
// No package in this module acts on it: client.New takes an already-built
// signer, and cmd/sign-order always generates a fresh key.
type KeySource int

const (
	// KeySourceEnv reads a hex-encoded 32-byte key from an environment
	// variable (PrivateKeyEnv).
	KeySourceEnv KeySource = iota
	// KeySourceGenerated creates a fresh key at startup — for local
	// demos and tests only, never for a funded account.
	KeySourceGenerated
)

// Config is the SDK-level configuration. pkg/client does not read it;
// callers pass Chain and a store opened at NoncestorePath to client.New.
type Config struct {
	Chain          hltypes.Chain
	KeySource      KeySource
	PrivateKeyEnv  string // env var name consulted when KeySource == KeySourceEnv
	NoncestorePath string
}

// Default returns mainnet configuration backed by a generated key and
// a local nonce-store path, suitable for a first local run.
func Default() Config {
	return Config{
		Chain:          hltypes.Mainnet,
		KeySource:      KeySourceGenerated,
		PrivateKeyEnv:  "HYPERWIRE_PRIVATE_KEY",
		NoncestorePath: "./hyperwire-nonces",
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables, falling back to Default() for anything
// unset. Priority: process environment > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if chain := os.Getenv("HYPERWIRE_CHAIN"); chain != "" {
		if chain == "testnet" {
			cfg.Chain = hltypes.Testnet
		} else {
			cfg.Chain = hltypes.Mainnet
		}
	}
	if keySource := os.Getenv("HYPERWIRE_KEY_SOURCE"); keySource == "env" {
		cfg.KeySource = KeySourceEnv
	}
	if envVar := os.Getenv("HYPERWIRE_PRIVATE_KEY_ENV"); envVar != "" {
		cfg.PrivateKeyEnv = envVar
	}
	if path := os.Getenv("HYPERWIRE_NONCESTORE_PATH"); path != "" {
		cfg.NoncestorePath = path
	}

	return cfg
}
