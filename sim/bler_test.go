package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() *MCSTable {
	return NewMCSTable("test", []MCSEntry{
		{Index: 0, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.12, SNRThreshold: -6.7},
		{Index: 1, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.44, SNRThreshold: 0.5},
		{Index: 2, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.48, SNRThreshold: 7.7},
		{Index: 3, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.55, SNRThreshold: 14.6},
		{Index: 4, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.93, SNRThreshold: 24.3},
	})
}

// TestBLERModel_AnchoredAtTableThreshold verifies that curve derivation pins
// each entry's 10% BLER point to its table SNR threshold.
func TestBLERModel_AnchoredAtTableThreshold(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	for _, e := range testTable().Entries {
		got := model.BLER(e.SNRThreshold, e.Index)
		assert.InDelta(t, 0.10, got, 1e-9, "MCS %d not anchored at its threshold", e.Index)
	}
}

// TestBLERModel_Bounds verifies 0 <= BLER <= 1 across a wide SNR range,
// including the clamped saturation regions.
func TestBLERModel_Bounds(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	for _, e := range testTable().Entries {
		for snr := -200.0; snr <= 200.0; snr += 5.0 {
			bler := model.BLER(snr, e.Index)
			if bler < 0 || bler > 1 {
				t.Fatalf("BLER(%g, %d) = %g outside [0, 1]", snr, e.Index, bler)
			}
		}
	}
}

// TestBLERModel_DecreasingInSNR verifies the sigmoid is monotonically
// decreasing in SNR (strictly, away from the clamp floors).
func TestBLERModel_DecreasingInSNR(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	prev := math.Inf(1)
	for snr := -9.0; snr <= 8.0; snr += 0.25 {
		bler := model.BLER(snr, 1)
		if bler >= prev {
			t.Fatalf("BLER not strictly decreasing at snr=%g: %g >= %g", snr, bler, prev)
		}
		prev = bler
	}
}

// TestBLERModel_ExtremeSNRClamped verifies the exponent clamp keeps extreme
// inputs finite and pinned to the saturation values.
func TestBLERModel_ExtremeSNRClamped(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	lo := model.BLER(-1e9, 2)
	hi := model.BLER(1e9, 2)
	assert.False(t, math.IsNaN(lo) || math.IsInf(lo, 0))
	assert.False(t, math.IsNaN(hi) || math.IsInf(hi, 0))
	assert.InDelta(t, 1.0, lo, 1e-5)
	assert.InDelta(t, 0.0, hi, 1e-5)
}

// TestBLERModel_SNRForBLER_InvertsTheCurve verifies the analytic inverse
// against a forward evaluation.
func TestBLERModel_SNRForBLER_InvertsTheCurve(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	for _, target := range []float64{0.01, 0.10, 0.20, 0.5, 0.9} {
		snr, err := model.SNRForBLER(target, 3)
		assert.NoError(t, err)
		assert.InDelta(t, target, model.BLER(snr, 3), 1e-9)
	}
}

func TestBLERModel_SNRForBLER_RejectsInvalidTarget(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	for _, target := range []float64{0.0, 1.0, -0.1, 1.5} {
		_, err := model.SNRForBLER(target, 0)
		assert.Error(t, err)
		assert.True(t, IsConfigError(err))
	}
}

// TestBLERModel_HigherMCSNeedsHigherSNR verifies the midpoints reflect the
// table ordering: at a fixed SNR, a higher-order MCS has a higher BLER.
func TestBLERModel_HigherMCSNeedsHigherSNR(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)

	for snr := -10.0; snr <= 30.0; snr += 1.0 {
		for i := 1; i < table.Len(); i++ {
			lower := model.BLER(snr, table.Entries[i-1].Index)
			higher := model.BLER(snr, table.Entries[i].Index)
			if higher < lower {
				t.Fatalf("at snr=%g: BLER(MCS %d)=%g < BLER(MCS %d)=%g",
					snr, table.Entries[i].Index, higher, table.Entries[i-1].Index, lower)
			}
		}
	}
}

// TestBLERModel_UnknownIndexFallback verifies the 1 dB-per-MCS fallback
// parameters for indices the table does not define.
func TestBLERModel_UnknownIndexFallback(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)

	p := model.Params(99)
	assert.Equal(t, BLERParams{MidpointSNR: 94.0, Slope: DefaultSlope}, p)
}
