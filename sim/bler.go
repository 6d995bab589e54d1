package sim

import (
	"math"
)

// BLERParams are the sigmoid curve parameters for one MCS entry.
type BLERParams struct {
	MidpointSNR float64 // SNR (dB) at which BLER = 0.5
	Slope       float64 // waterfall steepness (> 0); larger means a sharper curve
}

const (
	// DefaultSlope is the sigmoid steepness used when a table supplies no
	// per-entry slope. 1.5 gives roughly a 3 dB waterfall region, typical
	// for turbo/LDPC-coded blocks on AWGN.
	DefaultSlope = 1.5

	// anchorBLER is the BLER the per-entry SNRThreshold column corresponds to.
	anchorBLER = 0.10

	// maxExponent clamps the sigmoid argument so exp never overflows.
	maxExponent = 50.0

	minBLER = 1e-6
	maxBLER = 1.0 - 1e-6
)

// BLERModel approximates BLER vs SNR per MCS with a decreasing sigmoid:
//
//	BLER(snr) = 1 / (1 + exp(slope * (snr - midpoint)))
//
// The curve saturates to 1 at very low SNR and to 0 at very high SNR.
// Parameters are derived once per MCS entry at setup and are immutable for
// the run.
type BLERModel struct {
	params map[int]BLERParams
}

// NewBLERModel derives curve parameters from the table's per-entry SNR
// thresholds, which anchor each curve at the 10% BLER point:
//
//	midpoint = threshold - ln((1-anchor)/anchor) / slope
//
// so that BLER(threshold) = anchorBLER exactly.
func NewBLERModel(table *MCSTable, slope float64) *BLERModel {
	if slope <= 0 {
		slope = DefaultSlope
	}
	m := &BLERModel{params: make(map[int]BLERParams, table.Len())}
	offset := math.Log((1-anchorBLER)/anchorBLER) / slope
	for _, e := range table.Entries {
		m.params[e.Index] = BLERParams{MidpointSNR: e.SNRThreshold - offset, Slope: slope}
	}
	return m
}

// Params returns the curve parameters for an MCS index. Unknown indices get
// a fallback midpoint of -5 + index dB, the rough 1 dB-per-MCS spacing of
// standards tables.
func (m *BLERModel) Params(mcsIndex int) BLERParams {
	if p, ok := m.params[mcsIndex]; ok {
		return p
	}
	return BLERParams{MidpointSNR: -5 + float64(mcsIndex), Slope: DefaultSlope}
}

// BLER returns the approximate block error rate for the MCS at the given SNR.
// The result is clamped to [1e-6, 1-1e-6]; the exponent is clamped to ±50 so
// extreme SNR values cannot overflow.
func (m *BLERModel) BLER(snrDB float64, mcsIndex int) float64 {
	p := m.Params(mcsIndex)
	exponent := p.Slope * (snrDB - p.MidpointSNR)
	if exponent > maxExponent {
		exponent = maxExponent
	} else if exponent < -maxExponent {
		exponent = -maxExponent
	}
	bler := 1.0 / (1.0 + math.Exp(exponent))
	if bler < minBLER {
		return minBLER
	}
	if bler > maxBLER {
		return maxBLER
	}
	return bler
}

// SNRForBLER inverts the sigmoid analytically, returning the SNR at which
// the MCS hits the target BLER. Used for cross-checking the bisection search.
func (m *BLERModel) SNRForBLER(targetBLER float64, mcsIndex int) (float64, error) {
	if targetBLER <= 0 || targetBLER >= 1 {
		return 0, configErrorf("target BLER %g outside (0, 1)", targetBLER)
	}
	p := m.Params(mcsIndex)
	return p.MidpointSNR + math.Log((1-targetBLER)/targetBLER)/p.Slope, nil
}
