// Package config loads engine configuration and portfolio input files.
// Percentage-to-fraction normalization happens here, at the input
// boundary, exactly once; the core packages only ever see fractions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"property_proforma/pkg/core/decision"
	"property_proforma/pkg/core/exits"
)

// Config is the engine-level configuration: decision thresholds and exit
// strategy parameters. Both were module-level constants in older
// implementations; here they travel with the run.
type Config struct {
	Thresholds decision.Thresholds `yaml:"thresholds" json:"thresholds"`
	Exits      exits.Config        `yaml:"exits" json:"exits"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Thresholds: decision.DefaultThresholds(),
		Exits:      exits.DefaultConfig(),
	}
}

// Load reads a YAML config file. Missing file falls back to defaults;
// a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Threshold and exit rates may be written as percentages in config
	// files; normalize them like any other boundary input.
	cfg.Thresholds.StrongCashOnCash = normalize(cfg.Thresholds.StrongCashOnCash)
	cfg.Thresholds.StrongIRR = normalize(cfg.Thresholds.StrongIRR)
	cfg.Thresholds.AcceptCashOnCash = normalize(cfg.Thresholds.AcceptCashOnCash)
	cfg.Thresholds.AcceptIRR = normalize(cfg.Thresholds.AcceptIRR)
	cfg.Exits.SellingCostRate = normalize(cfg.Exits.SellingCostRate)
	cfg.Exits.FlipUpliftRate = normalize(cfg.Exits.FlipUpliftRate)
	cfg.Exits.RefiLTV = normalize(cfg.Exits.RefiLTV)

	return cfg, nil
}

// unmarshalByExt parses YAML or HJSON based on file extension. HJSON is
// accepted for hand-written portfolio files since it tolerates comments
// and trailing commas.
func unmarshalByExt(path string, data []byte, out interface{}) error {
	switch filepath.Ext(path) {
	case ".hjson", ".json":
		return hjson.Unmarshal(data, out)
	default:
		return yaml.Unmarshal(data, out)
	}
}

func normalize(v float64) float64 {
	if v > 1.0 {
		return v / 100.0
	}
	return v
}
