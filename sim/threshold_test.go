package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindThreshold_SingleEntryAtTenDB verifies the end-to-end anchor case:
// one MCS entry with its 10%-BLER point fixed at 10 dB; the search at target
// BLER 0.10 must land on 10 dB within tolerance.
func TestFindThreshold_SingleEntryAtTenDB(t *testing.T) {
	table := NewMCSTable("single", []MCSEntry{
		{Index: 0, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.5, SNRThreshold: 10.0},
	})
	model := NewBLERModel(table, DefaultSlope)
	sc := DefaultSearchConfig()

	snr, bler, reachable := FindThreshold(model, 0, 0.10, sc)
	require.True(t, reachable)
	assert.InDelta(t, 10.0, snr, sc.ToleranceDB)
	assert.LessOrEqual(t, bler, 0.10)
}

// TestFindThreshold_TightBound verifies the returned threshold never
// undershoots the target and is tight: one tolerance below it, the target
// BLER is exceeded.
func TestFindThreshold_TightBound(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)
	sc := DefaultSearchConfig()

	for _, e := range table.Entries {
		for _, target := range []float64{0.01, 0.10, 0.20} {
			snr, _, reachable := FindThreshold(model, e.Index, target, sc)
			require.True(t, reachable, "MCS %d target %g", e.Index, target)

			if got := model.BLER(snr, e.Index); got > target {
				t.Errorf("MCS %d: BLER at threshold %.3f = %g exceeds target %g", e.Index, snr, got, target)
			}
			if got := model.BLER(snr-sc.ToleranceDB, e.Index); got <= target {
				t.Errorf("MCS %d: threshold %.3f not tight, BLER one tolerance below = %g <= %g",
					e.Index, snr, got, target)
			}
		}
	}
}

// TestFindThreshold_UnreachableOutsideBounds covers both precondition
// violations: target never satisfied below the upper bound, and target
// already satisfied at the lower bound.
func TestFindThreshold_UnreachableOutsideBounds(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)

	// upper bound below the MCS 4 waterfall: never satisfiable
	low := SearchConfig{SNRLoDB: -10, SNRHiDB: 15, ToleranceDB: 0.1, MaxIterations: 50}
	_, _, reachable := FindThreshold(model, 4, 0.10, low)
	assert.False(t, reachable)

	// lower bound far above the MCS 0 waterfall: already satisfied at lo
	high := SearchConfig{SNRLoDB: 20, SNRHiDB: 35, ToleranceDB: 0.1, MaxIterations: 50}
	_, _, reachable = FindThreshold(model, 0, 0.10, high)
	assert.False(t, reachable)
}

// TestFindThreshold_IterationCapTerminates runs with a tolerance far below
// float precision; the iteration cap must still terminate the search.
func TestFindThreshold_IterationCapTerminates(t *testing.T) {
	model := NewBLERModel(testTable(), DefaultSlope)
	sc := SearchConfig{SNRLoDB: -10, SNRHiDB: 35, ToleranceDB: 1e-300, MaxIterations: 200}

	snr, bler, reachable := FindThreshold(model, 2, 0.10, sc)
	require.True(t, reachable)
	assert.InDelta(t, 7.7, snr, 1e-6)
	assert.InDelta(t, 0.10, bler, 1e-6)
}

// TestBuildThresholdTable_Monotonic verifies that reachable thresholds never
// decrease with MCS index, for every built-in table and common targets.
func TestBuildThresholdTable_Monotonic(t *testing.T) {
	for _, name := range MCSTableNames() {
		table, err := GetMCSTable(name)
		require.NoError(t, err)
		model := NewBLERModel(table, DefaultSlope)

		for _, target := range []float64{0.01, 0.10, 0.20} {
			tt, err := BuildThresholdTable(table, model, target, DefaultSearchConfig())
			require.NoError(t, err, "table %s target %g", name, target)

			prev := -1e9
			for _, r := range tt.Results {
				if !r.Reachable {
					continue
				}
				if r.SNRThreshold < prev {
					t.Errorf("table %s target %g: threshold %.3f at MCS %d below previous %.3f",
						name, target, r.SNRThreshold, r.MCSIndex, prev)
				}
				prev = r.SNRThreshold
			}
		}
	}
}

// TestBuildThresholdTable_MarksUnreachable verifies entries whose target is
// not satisfiable within the bounds are excluded, not fatal.
func TestBuildThresholdTable_MarksUnreachable(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)
	sc := SearchConfig{SNRLoDB: -10, SNRHiDB: 12, ToleranceDB: 0.1, MaxIterations: 50}

	tt, err := BuildThresholdTable(table, model, 0.10, sc)
	require.NoError(t, err)

	assert.True(t, tt.Results[0].Reachable)
	assert.False(t, tt.Results[4].Reachable, "MCS 4 (threshold 24.3 dB) must be unreachable below 12 dB")
}

// TestBuildThresholdTable_NoUsableMCS verifies a fatal ConfigError when the
// target leaves zero reachable entries.
func TestBuildThresholdTable_NoUsableMCS(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)
	sc := SearchConfig{SNRLoDB: -10, SNRHiDB: -9, ToleranceDB: 0.1, MaxIterations: 50}

	_, err := BuildThresholdTable(table, model, 0.10, sc)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestThresholdTable_Lookup(t *testing.T) {
	table := testTable()
	model := NewBLERModel(table, DefaultSlope)
	tt, err := BuildThresholdTable(table, model, 0.10, DefaultSearchConfig())
	require.NoError(t, err)

	r := tt.Lookup(2)
	require.NotNil(t, r)
	assert.Equal(t, 2, r.MCSIndex)
	assert.Nil(t, tt.Lookup(42))
}
