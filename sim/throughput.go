package sim

import (
	"math"
)

// Evaluation is the throughput score of one (MCS, BLER) operating point.
type Evaluation struct {
	ThroughputMbps       float64 // delivered throughput, Mbps
	SpectralEfficiency   float64 // raw MCS efficiency, bits/s/Hz
	EffectiveSpectralEff float64 // efficiency scaled by delivery success
}

// Evaluate scores a selected MCS:
//
//	throughput = spectral_efficiency * bandwidth * (1 - bler)
//
// bler is the effective BLER (HARQ-adjusted when enabled); retransmission
// time cost is deliberately not modeled, so HARQ shows up only through the
// reduced residual BLER.
func Evaluate(mcs MCSEntry, bler, bandwidthMHz float64) Evaluation {
	effSE := mcs.SpectralEfficiency * (1 - bler)
	return Evaluation{
		ThroughputMbps:       bandwidthMHz * effSE,
		SpectralEfficiency:   mcs.SpectralEfficiency,
		EffectiveSpectralEff: effSE,
	}
}

// ShannonCapacity is the AWGN channel capacity in Mbps at the given SNR,
// the theoretical ceiling plotted against the strategies' throughput.
func ShannonCapacity(snrDB, bandwidthMHz float64) float64 {
	snrLinear := math.Pow(10, snrDB/10)
	return bandwidthMHz * math.Log2(1+snrLinear)
}
