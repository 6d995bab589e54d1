package cmd

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	sim "github.com/amc-sim/amc-sim/sim"
)

// MCSEntryConfig is one MCS table row in a tables YAML file.
type MCSEntryConfig struct {
	Index              int     `yaml:"index"`
	Modulation         string  `yaml:"modulation"`
	ModulationOrder    int     `yaml:"modulation_order"`
	CodeRate           float64 `yaml:"code_rate"`
	SpectralEfficiency float64 `yaml:"spectral_efficiency"` // optional; order*rate when omitted
	SNRThreshold       float64 `yaml:"snr_threshold"`       // SNR (dB) at ~10% BLER
}

// MCSTablesConfig represents the full tables YAML structure.
type MCSTablesConfig struct {
	Tables map[string][]MCSEntryConfig `yaml:"tables"`
}

// loadMCSTablesConfig parses a tables YAML file with strict field checking,
// so typos in entry keys fail loudly instead of silently zeroing fields.
func loadMCSTablesConfig(path string) (*MCSTablesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read MCS tables file")
	}
	var cfg MCSTablesConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parse MCS tables file %s", path)
	}
	return &cfg, nil
}

// LoadMCSTable returns the named table from a YAML file, validated, or nil
// if the file does not define it (the caller falls back to built-ins).
func LoadMCSTable(path, name string) (*sim.MCSTable, error) {
	cfg, err := loadMCSTablesConfig(path)
	if err != nil {
		return nil, err
	}
	rows, ok := cfg.Tables[name]
	if !ok {
		return nil, nil
	}

	entries := make([]sim.MCSEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, sim.MCSEntry{
			Index:              row.Index,
			Modulation:         row.Modulation,
			ModulationOrder:    row.ModulationOrder,
			CodeRate:           row.CodeRate,
			SpectralEfficiency: row.SpectralEfficiency,
			SNRThreshold:       row.SNRThreshold,
		})
	}
	table := sim.NewMCSTable(name, entries)
	if err := table.Validate(); err != nil {
		return nil, errors.Wrapf(err, "MCS table %q in %s", name, path)
	}
	return table, nil
}
