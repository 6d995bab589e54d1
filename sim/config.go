package sim

import (
	"fmt"
	"math"
)

// ConfigError reports an invalid simulation configuration. Config errors are
// fatal and surface before any sweep begins; nothing retries them.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

// SweepConfig groups the SNR sweep range parameters.
type SweepConfig struct {
	SNRMinDB  float64 // sweep start (dB), inclusive
	SNRMaxDB  float64 // sweep end (dB), inclusive
	SNRStepDB float64 // sample spacing (dB), must be > 0
}

// Validate checks the sweep bounds.
func (c SweepConfig) Validate() error {
	if c.SNRStepDB <= 0 {
		return configErrorf("SNR step %.3f dB must be > 0", c.SNRStepDB)
	}
	if c.SNRMinDB > c.SNRMaxDB {
		return configErrorf("SNR range [%.1f, %.1f] dB is inverted", c.SNRMinDB, c.SNRMaxDB)
	}
	return nil
}

// Samples materializes the sweep grid, inclusive of both endpoints. A small
// epsilon on the sample count absorbs float accumulation in the step.
func (c SweepConfig) Samples() []float64 {
	n := int(math.Floor((c.SNRMaxDB-c.SNRMinDB)/c.SNRStepDB+1e-9)) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = c.SNRMinDB + float64(i)*c.SNRStepDB
	}
	return grid
}

// SimulationConfig is the complete, immutable configuration of one run.
// It is passed explicitly into NewSimulator; there is no process-wide state.
type SimulationConfig struct {
	Sweep        SweepConfig
	TargetBLER   float64 // operating point of the target-BLER strategy, in (0, 1)
	BandwidthMHz float64 // channel bandwidth (MHz), must be > 0
	MCSTableName string  // built-in table name; ignored when Table is set
	Table        *MCSTable
	HARQ         HARQConfig
	Strategies   []StrategyConfig
	Search       SearchConfig
}

// NewSimulationConfig returns the default run configuration: LTE table,
// -5..30 dB sweep in 0.5 dB steps, 10% target BLER, 20 MHz, HARQ off,
// and the standard three-strategy comparison.
func NewSimulationConfig() SimulationConfig {
	cfg := SimulationConfig{
		Sweep:        SweepConfig{SNRMinDB: -5.0, SNRMaxDB: 30.0, SNRStepDB: 0.5},
		TargetBLER:   0.10,
		BandwidthMHz: 20.0,
		MCSTableName: "LTE",
		HARQ:         HARQConfig{Enabled: false, MaxRetx: 4, GainDB: 3.0},
		Search:       DefaultSearchConfig(),
	}
	cfg.Strategies = DefaultStrategyConfigs(cfg.TargetBLER)
	return cfg
}

// ResolveTable returns the explicit table if set, otherwise the named
// built-in table.
func (c *SimulationConfig) ResolveTable() (*MCSTable, error) {
	if c.Table != nil {
		return c.Table, nil
	}
	return GetMCSTable(c.MCSTableName)
}

// Validate checks the full configuration. Any violation aborts the run
// before the sweep starts.
func (c *SimulationConfig) Validate() error {
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	if c.TargetBLER <= 0 || c.TargetBLER >= 1 {
		return configErrorf("target BLER %g outside (0, 1)", c.TargetBLER)
	}
	if c.BandwidthMHz <= 0 {
		return configErrorf("bandwidth %.2f MHz must be > 0", c.BandwidthMHz)
	}
	if err := c.HARQ.Validate(); err != nil {
		return err
	}
	if len(c.Strategies) == 0 {
		return configErrorf("no strategies configured")
	}
	for _, sc := range c.Strategies {
		if err := sc.Validate(); err != nil {
			return err
		}
	}
	if c.Search.ToleranceDB <= 0 {
		return configErrorf("search tolerance %.3f dB must be > 0", c.Search.ToleranceDB)
	}
	if c.Search.MaxIterations <= 0 {
		return configErrorf("search iteration cap %d must be > 0", c.Search.MaxIterations)
	}
	if c.Search.SNRLoDB >= c.Search.SNRHiDB {
		return configErrorf("search bounds [%.1f, %.1f] dB are inverted", c.Search.SNRLoDB, c.Search.SNRHiDB)
	}
	table, err := c.ResolveTable()
	if err != nil {
		return err
	}
	return table.Validate()
}
