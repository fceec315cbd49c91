package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config controls a stress run. It may be loaded from a YAML file:
//
//	rounds: 100
//	size: 1000
//	workers: 8
//	seed: 1234
type Config struct {
	Rounds  int   `yaml:"rounds"`
	Size    int   `yaml:"size"`
	Workers int   `yaml:"workers"`
	Seed    int64 `yaml:"seed"`
}

var defaultConfig = Config{
	Rounds:  50,
	Size:    500,
	Workers: runtime.NumCPU(),
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "YAML file with stress settings")
	flags.IntP("rounds", "r", defaultConfig.Rounds, "number of rounds")
	flags.IntP("size", "n", defaultConfig.Size, "number of keys per round")
	flags.IntP("workers", "w", defaultConfig.Workers, "rounds to run at the same time")
	flags.Int64P("seed", "s", 0, "seed for the round seeds (default current unix time in ns)")
}

// loadConfig starts from the defaults, applies the config file if one
// was given, then applies any flags that were set explicitly.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	cfg := defaultConfig

	path, _ := flags.GetString("config")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if flags.Changed("rounds") {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("size") {
		cfg.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}

	if cfg.Rounds < 0 || cfg.Size < 0 {
		return cfg, fmt.Errorf("rounds (%d) and size (%d) must not be negative", cfg.Rounds, cfg.Size)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}
