package radarview

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeConfig reads a JSON chart configuration and validates it.
//
//	{"labels": ["a", "b", "c"], "values": [0.2, 0.5, 0.9]}
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.AxisCount == 0 {
		cfg.AxisCount = len(cfg.Labels)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a JSON chart configuration from path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return DecodeConfig(f)
}
