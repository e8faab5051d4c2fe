package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tatianab/cyber-temple/internal/models"
	"gopkg.in/yaml.v3"
)

const DefaultModel = "gemini-2.5-flash"

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey is optional; without it the game runs offline.
	GeminiAPIKey string
	Model        string
	LogFile      string
	// Seed fixes the random source when HasSeed is set.
	Seed       int64
	HasSeed    bool
	JournalDir string
	RecordsDSN string
	// ObserveAddr is the listen address of the observer feed, if any.
	ObserveAddr string
	TuningFile  string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        os.Getenv("CYBER_TEMPLE_MODEL"),
		LogFile:      os.Getenv("CYBER_TEMPLE_LOG"),
		JournalDir:   os.Getenv("CYBER_TEMPLE_JOURNAL_DIR"),
		RecordsDSN:   os.Getenv("CYBER_TEMPLE_DB"),
		ObserveAddr:  os.Getenv("CYBER_TEMPLE_OBSERVE"),
		TuningFile:   os.Getenv("CYBER_TEMPLE_TUNING"),
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if s := os.Getenv("CYBER_TEMPLE_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CYBER_TEMPLE_SEED: %w", err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	return cfg, nil
}

// Rules returns the default rules overridden by the tuning file, if one is
// configured. Fields the file leaves out keep their defaults.
func (c *Config) Rules() (models.Rules, error) {
	rules := models.DefaultRules()
	if c.TuningFile == "" {
		return rules, nil
	}
	data, err := os.ReadFile(c.TuningFile)
	if err != nil {
		return rules, err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse tuning file %s: %w", c.TuningFile, err)
	}
	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("tuning file %s: %w", c.TuningFile, err)
	}
	return rules, nil
}
