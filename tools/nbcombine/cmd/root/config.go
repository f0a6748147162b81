// Copyright 2023 Intrinsic Innovation LLC

package root

import (
	"fmt"

	"github.com/spf13/viper"
	"nbcombine/combine"
	"nbcombine/util/viperutil"
)

const (
	// KeyURL is the flag holding the source notebook URLs.
	KeyURL = "url"
	// KeyName is the flag holding the output base name.
	KeyName = "name"
	// KeyDir is the flag holding the output directory.
	KeyDir = "dir"
	// KeyMaxRetries is the flag holding the retry count per source.
	KeyMaxRetries = "max_retries"
	// KeyNoOverwrite is the flag that protects an existing output file.
	KeyNoOverwrite = "no_overwrite"
	// KeyConfig is the flag holding the path of a configuration file.
	KeyConfig = "config"
)

// Settings is the effective configuration of a run.
type Settings struct {
	Combine    combine.Config
	MaxRetries int
}

// LoadSettings resolves the settings from v. Anything not set by a flag, an
// NBCOMBINE_* environment variable or the configuration file keeps its built-in
// value.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	if err := viperutil.ReadConfigFile(v, v.GetString(KeyConfig)); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := combine.DefaultConfig()
	if urls := v.GetStringSlice(KeyURL); len(urls) > 0 {
		cfg.Sources = urls
	}
	if name := v.GetString(KeyName); name != "" {
		cfg.OutputName = name
	}
	cfg.Dir = v.GetString(KeyDir)
	cfg.NoOverwrite = v.GetBool(KeyNoOverwrite)

	maxRetries := v.GetInt(KeyMaxRetries)
	if maxRetries < 0 {
		return nil, fmt.Errorf("--%s must not be negative, got %d", KeyMaxRetries, maxRetries)
	}
	return &Settings{Combine: cfg, MaxRetries: maxRetries}, nil
}
