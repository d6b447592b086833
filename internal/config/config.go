// Package config loads runtime settings from the environment, with an
// optional YAML file for tenant-column alias overrides.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultBankSkipRows = 3
	defaultGroupOrder   = "first-seen"

	envBankSkipRows = "BANK_SKIP_ROWS"
	envGroupOrder   = "EXPORT_GROUP_ORDER"
	envAliasFile    = "ALIAS_FILE"
)

// Config holds the application configuration.
type Config struct {
	// BankSkipRows is the number of preamble lines discarded from bank
	// statements before the header row.
	BankSkipRows int
	// GroupOrder names the apartment group ordering policy for exports.
	GroupOrder string
	// AliasFile optionally points at a YAML alias-override file.
	AliasFile string
}

// Load reads configuration from environment variables, falling back to
// defaults and logging any value it could not parse.
func Load(ctx context.Context, logger *slog.Logger) *Config {
	cfg := &Config{
		BankSkipRows: defaultBankSkipRows,
		GroupOrder:   defaultGroupOrder,
		AliasFile:    os.Getenv(envAliasFile),
	}

	if s := os.Getenv(envBankSkipRows); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			logger.WarnContext(ctx, "invalid value, using default",
				"var", envBankSkipRows,
				"value", s,
				"default", defaultBankSkipRows,
			)
		} else {
			cfg.BankSkipRows = n
		}
	}

	if s := os.Getenv(envGroupOrder); s != "" {
		cfg.GroupOrder = s
	}

	return cfg
}

// LoadAliasOverrides parses a YAML alias-override file mapping logical field
// names to ordered header lists, e.g.
//
//	roomNo: ["Unit", "Room No"]
//	payerKey: ["Pays as", "Zelle Name"]
func LoadAliasOverrides(path string) (map[string][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	overrides := make(map[string][]string)
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}
	return overrides, nil
}
