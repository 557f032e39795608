// Package config defines the batch configuration for the loader: where the
// five extracts live, how they are encoded, and which storage backend
// receives the result.
//
// Config files are JSON by convention; .yaml/.yml paths are also accepted.
// Decoding is performed by the standard library (and yaml.v3), with a static
// validator that reports issues before any file is touched.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source formats accepted for an extract file.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// Config is the top-level batch configuration.
type Config struct {
	// Sources names the five extract files. All five are required; a missing
	// or unreadable file aborts the whole run with no partial load.
	Sources Sources `json:"sources" yaml:"sources"`

	// Storage selects the destination store.
	Storage Storage `json:"storage" yaml:"storage"`
}

// Sources holds one entry per entity, in load dependency order.
type Sources struct {
	Representatives SourceFile `json:"representatives" yaml:"representatives"`
	Clients         SourceFile `json:"clients" yaml:"clients"`
	Products        SourceFile `json:"products" yaml:"products"`
	Orders          SourceFile `json:"orders" yaml:"orders"`
	OrderItems      SourceFile `json:"order_items" yaml:"order_items"`
}

// SourceFile describes one extract file.
type SourceFile struct {
	// Path is the local filesystem path.
	Path string `json:"path" yaml:"path"`

	// Format is "csv" (default) or "excel".
	Format string `json:"format" yaml:"format"`

	// Encoding is the charset of a CSV extract: "" (UTF-8), "latin1", or
	// "windows-1252". Ignored for Excel files.
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Storage selects and configures the sink.
type Storage struct {
	// Kind is a registered backend: "sqlite" (default) or "postgres".
	Kind string `json:"kind" yaml:"kind"`

	// DSN is the backend connection string; for sqlite, the database file
	// path (".db" is appended when no extension is given).
	DSN string `json:"dsn" yaml:"dsn"`
}

// Default returns the configuration matching the ERP's standard export file
// names, loading into a local SQLite file.
func Default() Config {
	return Config{
		Sources: Sources{
			Representatives: SourceFile{Path: "DadosERPRepres.csv", Format: FormatCSV},
			Clients:         SourceFile{Path: "DadosERPFornClien.csv", Format: FormatCSV},
			Products:        SourceFile{Path: "DadosERPProdutos.csv", Format: FormatCSV},
			Orders:          SourceFile{Path: "DadosERPPedidos.csv", Format: FormatCSV},
			OrderItems:      SourceFile{Path: "DadosERPPedidosItem.csv", Format: FormatCSV},
		},
		Storage: Storage{Kind: "sqlite", DSN: "bd_erp.db"},
	}
}

// Load reads and decodes a config file. The format is chosen by extension:
// .yaml/.yml decode as YAML, everything else as JSON. Omitted fields keep
// their Default() values.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("decode yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("decode json config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values a partial config file left out.
func (c *Config) applyDefaults() {
	for _, s := range c.sourceRefs() {
		if s.Format == "" {
			s.Format = FormatCSV
		}
	}
	if c.Storage.Kind == "" {
		c.Storage.Kind = "sqlite"
	}
	if c.Storage.Kind == "sqlite" && c.Storage.DSN != "" &&
		!strings.Contains(c.Storage.DSN, ":") && filepath.Ext(c.Storage.DSN) == "" {
		c.Storage.DSN += ".db"
	}
}

// sourceRefs returns the five source entries in dependency order.
func (c *Config) sourceRefs() []*SourceFile {
	return []*SourceFile{
		&c.Sources.Representatives,
		&c.Sources.Clients,
		&c.Sources.Products,
		&c.Sources.Orders,
		&c.Sources.OrderItems,
	}
}
