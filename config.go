package sqlq

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DialectConfig is a declarative dialect definition, usually loaded
// from a YAML document. It lets callers target database families beyond
// the shipped PostgreSQL and MySQL profiles without writing code:
//
//	name: sqlite
//	quote_char: '"'
//	supports_returning: true
//	aggregates: [group_concat, total]
type DialectConfig struct {
	Name              string   `yaml:"name"`
	QuoteChar         string   `yaml:"quote_char"`
	SupportsReturning bool     `yaml:"supports_returning"`
	SupportsUpsert    bool     `yaml:"supports_upsert"`
	SupportsIgnore    bool     `yaml:"supports_ignore"`
	Aggregates        []string `yaml:"aggregates"`
}

// Dialect builds the dialect policy described by the configuration.
func (cfg DialectConfig) Dialect() Dialect {
	d := Dialect{
		Name:      cfg.Name,
		QuoteChar: cfg.QuoteChar,
		Returning: cfg.SupportsReturning,
		Upsert:    cfg.SupportsUpsert,
		Ignore:    cfg.SupportsIgnore,
	}

	if len(cfg.Aggregates) > 0 {
		d.aggregates = make(map[string]struct{}, len(cfg.Aggregates))
		for _, name := range cfg.Aggregates {
			d.aggregates[strings.ToUpper(name)] = struct{}{}
		}
	}

	return d
}

// ParseDialectConfig unmarshals a YAML dialect definition and builds
// the described dialect. The definition must carry a name.
func ParseDialectConfig(data []byte) (Dialect, error) {
	var cfg DialectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Dialect{}, fmt.Errorf("failed parsing dialect config: %s", err)
	}

	if cfg.Name == "" {
		return Dialect{}, ConfigurationError{Msg: "dialect config is missing a name"}
	}

	return cfg.Dialect(), nil
}
