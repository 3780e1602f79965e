package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level razao.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Import   ImportConfig   `yaml:"import"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
	NIF  string `yaml:"nif,omitempty"` // tax identification number
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// LedgerConfig locates the books and sets the reporting currency.
type LedgerConfig struct {
	DatabaseFile string `yaml:"database_file"`
	ChartFile    string `yaml:"chart_file"`
	Currency     string `yaml:"currency"` // ISO 4217, e.g. "AOA"
}

// ImportConfig controls bank statement capture.
type ImportConfig struct {
	BankAccount string            `yaml:"bank_account"` // account code credited/debited by imports
	Categories  map[string]string `yaml:"categories"`   // statement category -> counterpart account code
}

// Load reads a razao.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Ledger: LedgerConfig{
			DatabaseFile: "razao.db",
			ChartFile:    "accounts/chart-of-accounts.csv",
			Currency:     "AOA",
		},
		Import: ImportConfig{
			BankAccount: "43.1",
			Categories: map[string]string{
				"Vendas":   "71",
				"Serviços": "72",
				"Salários": "63.1",
				"Compras":  "62",
			},
		},
	}
}
