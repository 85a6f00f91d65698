// Package config loads and validates the cardioctl YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-cardio/detect"
	"github.com/cwbudde/algo-cardio/report"
	"github.com/cwbudde/algo-cardio/rr"
)

// Config is the YAML configuration structure.
type Config struct {
	LogLevel string        `yaml:"logLevel,omitempty"`
	Analyze  AnalyzeConfig `yaml:"analyze,omitempty"`
}

// AnalyzeConfig holds the defaults for the analyze command; flags override
// these per invocation.
type AnalyzeConfig struct {
	Signal string  `yaml:"signal,omitempty"` // ecg, ppg or an RR format name
	SFreq  float64 `yaml:"sfreq,omitempty"`  // sampling rate of ecg/ppg input, Hz
	Method string  `yaml:"method,omitempty"` // ECG detection method
	Output string  `yaml:"output,omitempty"` // table, json or yaml
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Analyze: AnalyzeConfig{
			Signal: "ecg",
			SFreq:  1000,
			Method: detect.MethodPanTompkins.String(),
			Output: report.FormatTable.String(),
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected so
// typos fail loudly.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every field maps to a supported value.
func (c Config) Validate() error {
	if err := ValidateSignal(c.Analyze.Signal); err != nil {
		return err
	}

	if c.Analyze.SFreq <= 0 {
		return fmt.Errorf("config: sfreq must be > 0: %v", c.Analyze.SFreq)
	}

	if _, err := detect.ParseMethod(c.Analyze.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := report.ParseFormat(c.Analyze.Output); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// ValidateSignal accepts the raw-signal kinds and the RR series formats.
func ValidateSignal(signal string) error {
	if signal == "ecg" || signal == "ppg" {
		return nil
	}

	if _, err := rr.ParseFormat(signal); err != nil {
		return fmt.Errorf("config: signal must be ecg, ppg or an RR format: %w", err)
	}

	return nil
}
