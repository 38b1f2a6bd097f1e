// Package config defines the evaluation constants and the optional YAML
// overlay that adjusts them. All toggles live here; there is no
// process-wide mutable state anywhere in the pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-optical/pkg/topology"
	"github.com/dd0wney/cluso-optical/pkg/validation"
)

// Config is the full set of constants governing one evaluation pass.
type Config struct {
	// Channel plan.
	TxCount       int `yaml:"tx_count" validate:"required,min=2,max=96"`
	CovertChannel int `yaml:"covert_channel" validate:"required,min=1"`

	// Launch powers.
	BackgroundPowerDBm float64 `yaml:"background_power_dbm" validate:"max=30"`
	CovertPowerDBm     float64 `yaml:"covert_power_dbm" validate:"max=30"`

	// Fiber plant.
	SpanKm       float64 `yaml:"span_km" validate:"required,gt=0"`
	SpansPerLink int     `yaml:"spans_per_link" validate:"required,min=1,max=16"`
	AmpGainDB    float64 `yaml:"amp_gain_db" validate:"required,gt=0"`
	BoostGainDB  float64 `yaml:"boost_gain_db" validate:"required,gt=0"`
	LocalSpanKm  float64 `yaml:"local_span_km" validate:"required,gt=0"`

	// Detection model.
	ChannelUses int     `yaml:"channel_uses" validate:"required,min=1"`
	REBudget    float64 `yaml:"re_budget" validate:"required,gt=0"`

	// Report toggles.
	EmitTopologySketch bool `yaml:"emit_topology_sketch"`
	EmitTapSpectrum    bool `yaml:"emit_tap_spectrum"`
}

// Default returns the reference evaluation: a 10-channel plan, covert
// channel 5, a 0.0025 relative-entropy budget over 1000 channel uses.
func Default() Config {
	p := topology.DefaultParams()
	return Config{
		TxCount:            p.TxCount,
		CovertChannel:      p.CovertChannel,
		BackgroundPowerDBm: p.BackgroundPowerDBm,
		CovertPowerDBm:     p.CovertPowerDBm,
		SpanKm:             p.SpanKm,
		SpansPerLink:       p.SpansPerLink,
		AmpGainDB:          p.AmpGainDB,
		BoostGainDB:        p.BoostGainDB,
		LocalSpanKm:        p.LocalSpanKm,
		ChannelUses:        1000,
		REBudget:           0.0025,
		EmitTopologySketch: true,
		EmitTapSpectrum:    false,
	}
}

// Load returns the default configuration overlaid with a YAML file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags and the cross-field rules.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return validation.NewConfigValidator("Config").
		RangeInt("CovertChannel", c.CovertChannel, 1, c.TxCount).
		Check(c.CovertPowerDBm < c.BackgroundPowerDBm,
			"covert power must sit below the background channels").
		Err()
}

// ScenarioParams maps the configuration onto the topology parameters.
func (c Config) ScenarioParams() topology.Params {
	return topology.Params{
		TxCount:            c.TxCount,
		CovertChannel:      c.CovertChannel,
		BackgroundPowerDBm: c.BackgroundPowerDBm,
		CovertPowerDBm:     c.CovertPowerDBm,
		SpanKm:             c.SpanKm,
		SpansPerLink:       c.SpansPerLink,
		AmpGainDB:          c.AmpGainDB,
		BoostGainDB:        c.BoostGainDB,
		LocalSpanKm:        c.LocalSpanKm,
	}
}
