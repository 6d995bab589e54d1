// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// simState tracks the orchestrator through its lifecycle:
// Idle -> Sweeping -> Aggregating -> Done.
type simState int

const (
	stateIdle simState = iota
	stateSweeping
	stateAggregating
	stateDone
)

// SampleResult is one (strategy, SNR sample) evaluation.
type SampleResult struct {
	SNRdB              float64
	MCSIndex           int
	Modulation         string
	SpectralEfficiency float64 // raw efficiency of the selected MCS, bits/s/Hz
	BLER               float64 // effective BLER (HARQ-adjusted when enabled)
	ThroughputMbps     float64
}

// StrategyResult holds one strategy's full sweep series plus its aggregates.
type StrategyResult struct {
	Policy     Policy
	Config     StrategyConfig
	Thresholds *ThresholdTable
	Samples    []SampleResult
	Metrics    StrategyMetrics
}

// HARQAnalysis is the retransmission behavior of a representative mid-table
// MCS across the sweep, reported when HARQ is enabled.
type HARQAnalysis struct {
	MCSIndex         int
	Modulation       string
	ResidualBLER     []float64 // per SNR sample, after the full attempt sequence
	AvgTransmissions []float64 // per SNR sample
}

// SimulationResult is the complete output of a run. It is owned by the
// simulator until Done and handed to export/plot collaborators by reference;
// nothing mutates it after the sweep completes.
type SimulationResult struct {
	Config      SimulationConfig
	Table       *MCSTable
	SNRGrid     []float64
	ShannonMbps []float64 // AWGN capacity reference, per SNR sample
	Strategies  []StrategyResult
	HARQ        *HARQAnalysis // nil unless HARQ is enabled
}

// Simulator drives the SNR sweep: per sample and strategy it selects an MCS,
// scores it, and aggregates per-strategy statistics. Purely computational and
// single-threaded; all shared tables are built in Setup and read-only during
// the sweep.
type Simulator struct {
	Config SimulationConfig

	state      simState
	table      *MCSTable
	model      *BLERModel
	strategies []*Strategy
	result     *SimulationResult
}

// NewSimulator creates an idle simulator for the given configuration.
func NewSimulator(cfg SimulationConfig) *Simulator {
	return &Simulator{Config: cfg, state: stateIdle}
}

// Setup validates the configuration, resolves the MCS table, derives the
// shared BLER curve parameters, and builds each strategy's threshold table.
// Must complete before Run; everything it builds is immutable afterwards.
func (s *Simulator) Setup() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}

	table, err := s.Config.ResolveTable()
	if err != nil {
		return err
	}
	s.table = table
	s.model = NewBLERModel(table, s.Config.Search.Slope)

	s.strategies = s.strategies[:0]
	for _, sc := range s.Config.Strategies {
		strat, err := NewStrategy(sc, table, s.model, s.Config.Search)
		if err != nil {
			return err
		}
		s.strategies = append(s.strategies, strat)
	}

	logrus.Debugf("setup complete: table=%s entries=%d strategies=%d",
		table.Name, table.Len(), len(s.strategies))
	return nil
}

// Run executes the sweep and aggregation phases and returns the results.
// Calls Setup if it has not run yet.
func (s *Simulator) Run() (*SimulationResult, error) {
	if s.table == nil {
		if err := s.Setup(); err != nil {
			return nil, err
		}
	}

	s.state = stateSweeping
	grid := s.Config.Sweep.Samples()
	logrus.Infof("sweeping %d SNR samples [%.1f, %.1f] dB across %d strategies",
		len(grid), s.Config.Sweep.SNRMinDB, s.Config.Sweep.SNRMaxDB, len(s.strategies))

	res := &SimulationResult{
		Config:      s.Config,
		Table:       s.table,
		SNRGrid:     grid,
		ShannonMbps: make([]float64, len(grid)),
		Strategies:  make([]StrategyResult, len(s.strategies)),
	}
	for i, snr := range grid {
		res.ShannonMbps[i] = ShannonCapacity(snr, s.Config.BandwidthMHz)
	}

	for si, strat := range s.strategies {
		sr := StrategyResult{
			Policy:     strat.Config.Policy,
			Config:     strat.Config,
			Thresholds: strat.Thresholds(),
			Samples:    make([]SampleResult, 0, len(grid)),
		}
		for _, snr := range grid {
			sr.Samples = append(sr.Samples, s.evaluateSample(strat, snr))
		}
		res.Strategies[si] = sr
	}

	if s.Config.HARQ.Enabled {
		res.HARQ = s.analyzeHARQ(grid)
	}

	s.state = stateAggregating
	for i := range res.Strategies {
		res.Strategies[i].Metrics = aggregateMetrics(res.Strategies[i].Samples)
	}

	s.state = stateDone
	s.result = res
	logrus.Info("sweep complete")
	return res, nil
}

// evaluateSample scores one (strategy, SNR) pair. Selection cannot fail:
// strategies degrade to their fallback MCS, so a per-sample problem never
// aborts the sweep.
func (s *Simulator) evaluateSample(strat *Strategy, snrDB float64) SampleResult {
	mcs := strat.SelectMCS(snrDB)
	bler := EffectiveBLER(s.model, mcs.Index, snrDB, s.Config.HARQ, s.Config.Search.SNRHiDB)
	ev := Evaluate(mcs, bler, s.Config.BandwidthMHz)
	return SampleResult{
		SNRdB:              snrDB,
		MCSIndex:           mcs.Index,
		Modulation:         mcs.Modulation,
		SpectralEfficiency: ev.SpectralEfficiency,
		BLER:               bler,
		ThroughputMbps:     ev.ThroughputMbps,
	}
}

// analyzeHARQ profiles the middle table entry across the sweep, the same
// representative pick for every run of a given table.
func (s *Simulator) analyzeHARQ(grid []float64) *HARQAnalysis {
	mid := s.table.Entries[s.table.Len()/2]
	a := &HARQAnalysis{
		MCSIndex:         mid.Index,
		Modulation:       mid.Modulation,
		ResidualBLER:     make([]float64, len(grid)),
		AvgTransmissions: make([]float64, len(grid)),
	}
	for i, snr := range grid {
		a.ResidualBLER[i] = EffectiveBLER(s.model, mid.Index, snr, s.Config.HARQ, s.Config.Search.SNRHiDB)
		a.AvgTransmissions[i] = AvgTransmissions(s.model, mid.Index, snr, s.Config.HARQ, s.Config.Search.SNRHiDB)
	}
	return a
}

// Results returns the completed run's output, or nil before Done.
func (s *Simulator) Results() *SimulationResult {
	if s.state != stateDone {
		return nil
	}
	return s.result
}
