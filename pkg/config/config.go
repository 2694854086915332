package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type MatchingConfig struct {
	// Tolerance to fall back to when a problem header only contains "n m"
	DefaultTolerance int `yaml:"DefaultTolerance"`
}

type OutputConfig struct {
	// Should the matched pairs be printed after the match count?
	PrintPairs bool `yaml:"PrintPairs"`
}

type VisualizationConfig struct {
	// Should the pair plot be created?
	Enable bool `yaml:"Enable"`
	// Width of the scaled pair plot in pixels
	Width int `yaml:"Width"`
	// Height of the scaled pair plot in pixels
	Height int `yaml:"Height"`
	// Interpolation algorithm used to scale the pair plot
	Interpolator string `yaml:"Interpolator"`
}

// Config holds parameters that influence the matching and output process
type Config struct {
	Matching            MatchingConfig      `yaml:"Matching"`
	Output              OutputConfig        `yaml:"Output"`
	VisualizationConfig VisualizationConfig `yaml:"Visualization"`
}

// Default returns the Config used when no config file is present
func Default() *Config {
	return &Config{
		VisualizationConfig: VisualizationConfig{
			Width:        640,
			Height:       480,
			Interpolator: "CatmullRom",
		},
	}
}

// NewConfigFromFile constructs a Config object from a YAML file
func NewConfigFromFile(path string) (*Config, error) {
	cfgBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromBytes(cfgBytes)
}

// NewConfigFromBytes constructs a Config object from a YAML string
func NewConfigFromBytes(cfgBytes []byte) (*Config, error) {
	cfg := new(Config)
	err := yaml.Unmarshal(cfgBytes, cfg)
	return cfg, err
}
