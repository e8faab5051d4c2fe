package engine

import (
	_ "embed"
	"fmt"

	"github.com/tatianab/cyber-temple/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

// tables is the offline content.
type tables struct {
	Customers     []models.Customer    `yaml:"customers"`
	Events        []models.RandomEvent `yaml:"events"`
	Mails         []models.Mail        `yaml:"mails"`
	Consultations []models.Mail        `yaml:"consultations"`
	Match         struct {
		Success []string `yaml:"success"`
		Failure []string `yaml:"failure"`
	} `yaml:"match"`
	Drink struct {
		Happy []string `yaml:"happy"`
		Sad   []string `yaml:"sad"`
	} `yaml:"drink"`
	Dialogue models.Dialogue     `yaml:"dialogue"`
	Enemy    models.EnemyProfile `yaml:"enemy"`
}

func loadTables() (*tables, error) {
	var t tables
	if err := yaml.Unmarshal(fallbackYAML, &t); err != nil {
		return nil, fmt.Errorf("failed to parse fallback tables: %w", err)
	}
	if len(t.Customers) == 0 || len(t.Events) == 0 || len(t.Mails) == 0 || len(t.Consultations) == 0 {
		return nil, fmt.Errorf("fallback tables are incomplete")
	}
	return &t, nil
}
