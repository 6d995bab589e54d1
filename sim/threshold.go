package sim

// SearchConfig bounds the SNR-threshold bisection search.
type SearchConfig struct {
	SNRLoDB       float64 // lower search bound (dB)
	SNRHiDB       float64 // upper search bound (dB); also caps HARQ combined SNR
	ToleranceDB   float64 // bracket width at which the search stops (dB)
	MaxIterations int     // hard iteration cap; guarantees termination
	Slope         float64 // sigmoid slope for derived BLER curves (0 = DefaultSlope)
}

// DefaultSearchConfig returns the search bounds used unless overridden:
// -10..35 dB, 0.1 dB precision, 50 iterations.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		SNRLoDB:       -10.0,
		SNRHiDB:       35.0,
		ToleranceDB:   0.1,
		MaxIterations: 50,
		Slope:         DefaultSlope,
	}
}

// ThresholdResult is the searched operating point for one MCS entry.
type ThresholdResult struct {
	MCSIndex           int
	Modulation         string
	SpectralEfficiency float64
	SNRThreshold       float64 // minimum SNR (dB) at which BLER <= target; valid only if Reachable
	ActualBLER         float64 // BLER at SNRThreshold per the model
	Reachable          bool    // false: target not satisfiable within the search bounds
}

// ThresholdTable maps each MCS entry of a table to its minimum SNR for a
// target BLER. Entries are in table order; thresholds of reachable entries
// are non-decreasing in MCS index. Built once at setup, read-only afterwards.
type ThresholdTable struct {
	TargetBLER float64
	Results    []ThresholdResult
}

// FindThreshold bisects over [lo, hi] for the minimum SNR at which the MCS
// meets the target BLER, exploiting that BLER decreases monotonically in SNR.
//
// Preconditions checked before searching: bler(lo) >= target >= bler(hi).
// If the target is already met at lo, or never met at hi, the entry is
// unreachable within the bounds and (0, 0, false) is returned.
//
// The returned SNR is the upper bracket endpoint, so its BLER never exceeds
// the target; the bracket width on return is at most ToleranceDB (or the
// iteration cap was hit).
func FindThreshold(model *BLERModel, mcsIndex int, targetBLER float64, sc SearchConfig) (snrDB, actualBLER float64, reachable bool) {
	lo, hi := sc.SNRLoDB, sc.SNRHiDB

	if model.BLER(lo, mcsIndex) < targetBLER {
		return 0, 0, false
	}
	if model.BLER(hi, mcsIndex) > targetBLER {
		return 0, 0, false
	}

	for i := 0; i < sc.MaxIterations && hi-lo > sc.ToleranceDB; i++ {
		mid := (lo + hi) / 2
		if model.BLER(mid, mcsIndex) > targetBLER {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, model.BLER(hi, mcsIndex), true
}

// BuildThresholdTable runs the threshold search for every entry of the table.
//
// Unreachable entries are marked and excluded from MCS selection. An entry
// whose threshold would fall below that of a lower-index reachable entry is
// demoted to unreachable as well, so reachable thresholds are always
// non-decreasing in MCS index. If nothing is reachable the target BLER is
// unusable and a ConfigError is returned.
func BuildThresholdTable(table *MCSTable, model *BLERModel, targetBLER float64, sc SearchConfig) (*ThresholdTable, error) {
	tt := &ThresholdTable{
		TargetBLER: targetBLER,
		Results:    make([]ThresholdResult, 0, table.Len()),
	}

	prev := sc.SNRLoDB
	anyReachable := false
	for _, e := range table.Entries {
		r := ThresholdResult{
			MCSIndex:           e.Index,
			Modulation:         e.Modulation,
			SpectralEfficiency: e.SpectralEfficiency,
		}
		snr, bler, ok := FindThreshold(model, e.Index, targetBLER, sc)
		if ok && snr < prev {
			ok = false
		}
		if ok {
			r.SNRThreshold = snr
			r.ActualBLER = bler
			r.Reachable = true
			prev = snr
			anyReachable = true
		}
		tt.Results = append(tt.Results, r)
	}

	if !anyReachable {
		return nil, configErrorf("no usable MCS in table %q for target BLER %g within [%g, %g] dB",
			table.Name, targetBLER, sc.SNRLoDB, sc.SNRHiDB)
	}
	return tt, nil
}

// Lookup returns the result for an MCS index, or nil if the index is not in
// the table.
func (tt *ThresholdTable) Lookup(mcsIndex int) *ThresholdResult {
	for i := range tt.Results {
		if tt.Results[i].MCSIndex == mcsIndex {
			return &tt.Results[i]
		}
	}
	return nil
}
