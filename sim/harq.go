package sim

// HARQConfig holds the simplified Chase-Combining retransmission parameters.
type HARQConfig struct {
	Enabled bool    // false: blocks get a single transmission attempt
	MaxRetx int     // retransmissions after the first attempt (>= 0)
	GainDB  float64 // SNR gain (dB) per additional combined attempt (>= 0)
}

// Validate checks the HARQ parameters when the feature is enabled.
func (c HARQConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.MaxRetx < 0 {
		return configErrorf("HARQ max retransmissions %d must be >= 0", c.MaxRetx)
	}
	if c.GainDB < 0 {
		return configErrorf("HARQ combining gain %.2f dB must be >= 0", c.GainDB)
	}
	return nil
}

// HARQState tracks one transport block through its attempt sequence. It is
// created at the first transmission, advanced per retransmission, and
// discarded when the block succeeds or the retransmission budget runs out.
type HARQState struct {
	Attempt         int     // 1-based transmission attempt
	AccumulatedGain float64 // combined SNR gain (dB) relative to the first attempt
}

func newHARQState() HARQState {
	return HARQState{Attempt: 1}
}

// retransmit advances to the next attempt, adding one combining gain step.
func (h *HARQState) retransmit(gainDB float64) {
	h.Attempt++
	h.AccumulatedGain += gainDB
}

// attemptSNR is the effective operating SNR at the current attempt, clamped
// to snrCapDB so the accumulated gain cannot run past the modeled SNR range.
func (h *HARQState) attemptSNR(snrDB, snrCapDB float64) float64 {
	snr := snrDB + h.AccumulatedGain
	if snr > snrCapDB {
		return snrCapDB
	}
	return snr
}

// EffectiveBLER is the residual block error probability after the full HARQ
// attempt sequence: each attempt t operates at snr + gain*(t-1) and the
// overall error probability is the product of per-attempt conditional failure
// probabilities. This independent-attempt approximation understates true
// Chase Combining (which lowers effective noise rather than decoupling
// attempts) and is kept deliberately.
//
// With HARQ disabled this degenerates to the single-shot BLER.
func EffectiveBLER(model *BLERModel, mcsIndex int, snrDB float64, cfg HARQConfig, snrCapDB float64) float64 {
	if !cfg.Enabled {
		return model.BLER(snrDB, mcsIndex)
	}

	residual := 1.0
	st := newHARQState()
	for {
		residual *= model.BLER(st.attemptSNR(snrDB, snrCapDB), mcsIndex)
		if st.Attempt > cfg.MaxRetx {
			break
		}
		st.retransmit(cfg.GainDB)
	}
	return residual
}

// AvgTransmissions is the expected number of transmissions of a transport
// block under the same attempt model: sum over attempts of
// t * P(first success at attempt t), with blocks that fail every attempt
// counted at the full budget.
func AvgTransmissions(model *BLERModel, mcsIndex int, snrDB float64, cfg HARQConfig, snrCapDB float64) float64 {
	if !cfg.Enabled {
		return 1.0
	}

	avg := 0.0
	failProb := 1.0 // probability all attempts so far failed
	st := newHARQState()
	for {
		bler := model.BLER(st.attemptSNR(snrDB, snrCapDB), mcsIndex)
		avg += float64(st.Attempt) * failProb * (1 - bler)
		failProb *= bler
		if st.Attempt > cfg.MaxRetx {
			break
		}
		st.retransmit(cfg.GainDB)
	}
	// blocks that never succeed still spend the whole attempt budget
	avg += float64(cfg.MaxRetx+1) * failProb
	return avg
}
