// Aggregates per-strategy statistics over the completed SNR sweep.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StrategyMetrics summarizes one strategy over the full sweep.
type StrategyMetrics struct {
	MeanThroughputMbps     float64
	PeakThroughputMbps     float64
	MeanBLER               float64
	MeanSpectralEfficiency float64
}

// aggregateMetrics reduces a strategy's sample series to its summary
// statistics. Empty input yields the zero value.
func aggregateMetrics(samples []SampleResult) StrategyMetrics {
	if len(samples) == 0 {
		return StrategyMetrics{}
	}

	throughput := make([]float64, len(samples))
	bler := make([]float64, len(samples))
	se := make([]float64, len(samples))
	for i, sr := range samples {
		throughput[i] = sr.ThroughputMbps
		bler[i] = sr.BLER
		se[i] = sr.SpectralEfficiency
	}

	return StrategyMetrics{
		MeanThroughputMbps:     stat.Mean(throughput, nil),
		PeakThroughputMbps:     floats.Max(throughput),
		MeanBLER:               stat.Mean(bler, nil),
		MeanSpectralEfficiency: stat.Mean(se, nil),
	}
}

// Print displays the per-strategy comparison at the end of a run.
func (r *SimulationResult) Print() {
	fmt.Println("=== AMC Strategy Comparison ===")
	fmt.Printf("Table: %s | %d SNR samples | %.0f MHz | target BLER %.2f | HARQ %v\n",
		r.Table.Name, len(r.SNRGrid), r.Config.BandwidthMHz, r.Config.TargetBLER, r.Config.HARQ.Enabled)
	for _, sr := range r.Strategies {
		m := sr.Metrics
		fmt.Printf("%-14s mean %.2f Mbps | peak %.2f Mbps | mean BLER %.4f | mean SE %.3f bits/s/Hz\n",
			sr.Policy, m.MeanThroughputMbps, m.PeakThroughputMbps, m.MeanBLER, m.MeanSpectralEfficiency)
	}
	if r.HARQ != nil {
		last := len(r.HARQ.ResidualBLER) - 1
		fmt.Printf("HARQ (MCS %d %s): residual BLER %.2e..%.2e | avg tx %.2f..%.2f\n",
			r.HARQ.MCSIndex, r.HARQ.Modulation,
			r.HARQ.ResidualBLER[0], r.HARQ.ResidualBLER[last],
			r.HARQ.AvgTransmissions[0], r.HARQ.AvgTransmissions[last])
	}
}
