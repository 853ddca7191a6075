package plotbridge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from a YAML config file. Command-line flags set
// explicitly take precedence.
type Config struct {
	Mode     string `yaml:"mode"`
	Output   string `yaml:"output"`
	Pretty   bool   `yaml:"pretty"`
	LogLevel string `yaml:"log_level"`
	ShowDir  string `yaml:"show_dir"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected and an empty
// file yields the zero Config.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.Mode != "" {
		if _, err := ParseMode(cfg.Mode); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return &cfg, nil
}
