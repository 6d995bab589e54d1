package sim

import (
	"fmt"
	"strings"
)

// Policy is the closed set of AMC decision policies. Selection behavior is
// dispatched per variant, never by open-ended name lookup.
type Policy int

const (
	// PolicyConservative backs the operating SNR off by an extra margin
	// before comparing against thresholds, trading throughput for a low
	// error rate. Suited to latency-sensitive traffic or links without HARQ.
	PolicyConservative Policy = iota
	// PolicyAggressive compares the raw operating SNR against thresholds
	// built for a permissive target BLER, maximizing spectral efficiency
	// and leaning on HARQ to recover errors.
	PolicyAggressive
	// PolicyTargetBLER selects against thresholds built for the user's
	// target BLER with no margin, balancing reliability and throughput.
	PolicyTargetBLER
)

func (p Policy) String() string {
	switch p {
	case PolicyConservative:
		return "conservative"
	case PolicyAggressive:
		return "aggressive"
	case PolicyTargetBLER:
		return "target-bler"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a CLI/config policy name to its Policy variant.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "conservative":
		return PolicyConservative, nil
	case "aggressive":
		return PolicyAggressive, nil
	case "target-bler", "target_bler", "targetbler":
		return PolicyTargetBLER, nil
	default:
		return 0, configErrorf("unknown policy %q; valid policies: [conservative, aggressive, target-bler]", s)
	}
}

// StrategyConfig parameterizes one AMC strategy for a simulation run.
type StrategyConfig struct {
	Policy     Policy
	TargetBLER float64 // threshold-table operating point, in (0, 1)
	MarginDB   float64 // extra SNR back-off applied at selection time (>= 0)
}

// Validate checks the per-strategy parameters.
func (c StrategyConfig) Validate() error {
	if c.TargetBLER <= 0 || c.TargetBLER >= 1 {
		return configErrorf("strategy %s: target BLER %g outside (0, 1)", c.Policy, c.TargetBLER)
	}
	if c.MarginDB < 0 {
		return configErrorf("strategy %s: margin %.2f dB must be >= 0", c.Policy, c.MarginDB)
	}
	return nil
}

// DefaultStrategyConfigs returns the standard three-way comparison:
// conservative at 1% BLER with a 3 dB margin, aggressive at 20% with none,
// and target-BLER at the user's operating point.
func DefaultStrategyConfigs(userTargetBLER float64) []StrategyConfig {
	return []StrategyConfig{
		{Policy: PolicyConservative, TargetBLER: 0.01, MarginDB: 3.0},
		{Policy: PolicyAggressive, TargetBLER: 0.20, MarginDB: 0.0},
		{Policy: PolicyTargetBLER, TargetBLER: userTargetBLER, MarginDB: 0.0},
	}
}

// Strategy selects an MCS per SNR sample against a threshold table built for
// its own target BLER. The shared BLER model and the threshold table are
// read-only after construction, so strategies are safe to evaluate in any
// order across samples.
type Strategy struct {
	Config     StrategyConfig
	table      *MCSTable
	model      *BLERModel
	thresholds *ThresholdTable
}

// NewStrategy builds the strategy's threshold table for its target BLER.
// Errors if the configuration is invalid or no MCS entry is reachable.
func NewStrategy(cfg StrategyConfig, table *MCSTable, model *BLERModel, sc SearchConfig) (*Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tt, err := BuildThresholdTable(table, model, cfg.TargetBLER, sc)
	if err != nil {
		return nil, err
	}
	return &Strategy{Config: cfg, table: table, model: model, thresholds: tt}, nil
}

// Name is the policy name, used for result labeling and CSV rows.
func (s *Strategy) Name() string {
	return s.Config.Policy.String()
}

// Thresholds exposes the strategy's threshold table (read-only).
func (s *Strategy) Thresholds() *ThresholdTable {
	return s.thresholds
}

// SelectMCS picks the MCS for an SNR sample. All policies scan from the
// highest MCS index downward and return the first reachable entry whose
// threshold is met; combined with non-decreasing thresholds this makes the
// selection deterministic and unique. Conservative subtracts its margin from
// the operating SNR first. If nothing qualifies, the lowest reachable entry
// is the robust fallback.
func (s *Strategy) SelectMCS(snrDB float64) MCSEntry {
	switch s.Config.Policy {
	case PolicyConservative:
		return s.highestAtOrBelow(snrDB - s.Config.MarginDB)
	case PolicyAggressive:
		return s.highestAtOrBelow(snrDB)
	case PolicyTargetBLER:
		return s.highestAtOrBelow(snrDB)
	default:
		return s.fallback()
	}
}

func (s *Strategy) highestAtOrBelow(snrDB float64) MCSEntry {
	for i := len(s.thresholds.Results) - 1; i >= 0; i-- {
		r := s.thresholds.Results[i]
		if r.Reachable && r.SNRThreshold <= snrDB {
			return s.table.Entries[i]
		}
	}
	return s.fallback()
}

// fallback is the lowest-index reachable entry; BuildThresholdTable
// guarantees at least one exists.
func (s *Strategy) fallback() MCSEntry {
	for i, r := range s.thresholds.Results {
		if r.Reachable {
			return s.table.Entries[i]
		}
	}
	return s.table.Lowest()
}

// SelectMCSWithHysteresis is SelectMCS with a switching dead zone: upgrades
// from currentIndex require clearing the candidate threshold by hysteresisDB,
// and downgrades trigger only once the SNR drops hysteresisDB below the
// current entry's threshold. Avoids MCS flapping when the SNR hovers at a
// switching point.
func (s *Strategy) SelectMCSWithHysteresis(snrDB float64, currentIndex int, hysteresisDB float64) MCSEntry {
	current := s.thresholds.Lookup(currentIndex)
	if current == nil || !current.Reachable {
		return s.SelectMCS(snrDB)
	}

	target := s.SelectMCS(snrDB)
	if target.Index > currentIndex {
		r := s.thresholds.Lookup(target.Index)
		if r != nil && snrDB >= r.SNRThreshold+hysteresisDB {
			return target
		}
		return *s.table.Entry(currentIndex)
	}
	if target.Index < currentIndex {
		if snrDB < current.SNRThreshold-hysteresisDB {
			return target
		}
		return *s.table.Entry(currentIndex)
	}
	return target
}

// BLER evaluates the shared model for this strategy's selected MCS.
func (s *Strategy) BLER(snrDB float64, mcsIndex int) float64 {
	return s.model.BLER(snrDB, mcsIndex)
}
