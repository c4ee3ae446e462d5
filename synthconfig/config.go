package synthconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marchatpg/marchatpg/marchtest"
)

// Config carries every score-weight and synthesis-budget knob named in the
// run configuration.
type Config struct {
	AlphaState  float64 `yaml:"alpha_state"`
	BetaSens    float64 `yaml:"beta_sens"`
	GammaDetect float64 `yaml:"gamma_detect"`
	LambdaMask  float64 `yaml:"lambda_mask"`
	MuCost      float64 `yaml:"mu_cost"`

	MaxOps           int     `yaml:"max_ops"`
	MaxOpsPerElement int     `yaml:"max_ops_per_element"`
	BeamWidth        int     `yaml:"beam_width"`
	InitialOrder     string  `yaml:"initial_order"`
	TargetCoverage   float64 `yaml:"target_coverage"`
	DeferDetectOnly  bool    `yaml:"defer_detect_only"`
}

// Default returns the run defaults: (1.0, 2.0, 0.5, 1.0, 0.05, 64, 6, 8,
// Any, 1.0, true).
func Default() Config {
	return Config{
		AlphaState:       1.0,
		BetaSens:         2.0,
		GammaDetect:      0.5,
		LambdaMask:       1.0,
		MuCost:           0.05,
		MaxOps:           64,
		MaxOpsPerElement: 6,
		BeamWidth:        8,
		InitialOrder:     "any",
		TargetCoverage:   1.0,
		DeferDetectOnly:  true,
	}
}

// Load reads a YAML document from path, overlaying it onto Default() —
// fields the document omits keep their default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("synthconfig: open %s: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("synthconfig: decode: %w", err)
	}
	if _, err := cfg.Order(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Order parses InitialOrder into a marchtest.AddrOrder.
func (c Config) Order() (marchtest.AddrOrder, error) {
	switch c.InitialOrder {
	case "up":
		return marchtest.Up, nil
	case "down":
		return marchtest.Down, nil
	case "any", "":
		return marchtest.Any, nil
	default:
		return marchtest.Any, fmt.Errorf("%w: %q", ErrInvalidOrder, c.InitialOrder)
	}
}
