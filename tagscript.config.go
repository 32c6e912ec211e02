package tagscript

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the engine configuration.
//
//	iterations: 1000
//	max_length: 64000
//	max_output: 2000
//	libraries: [strings, functional, variables, math]
//	constants:
//	  botname: TagBot
type Config struct {
	Iterations int               `yaml:"iterations"`
	MaxLength  int               `yaml:"max_length"`
	MaxOutput  int               `yaml:"max_output"`
	Libraries  []string          `yaml:"libraries,omitempty"`
	Constants  map[string]string `yaml:"constants,omitempty"`
}

// DefaultConfig returns a config with the default limits and no libraries.
func DefaultConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		MaxLength:  DefaultMaxLength,
		MaxOutput:  DefaultMaxOutput,
	}
}

// ParseConfig decodes YAML into a Config. Fields left out keep their defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigParseError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigReadError(path, err)
	}
	return ParseConfig(data)
}

// Validate checks limits and library names.
func (c *Config) Validate() error {
	if err := validateLimits(c.Iterations, c.MaxLength, c.MaxOutput); err != nil {
		return err
	}
	for _, name := range c.Libraries {
		if _, err := LibraryByName(name); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
