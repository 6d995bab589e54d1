package sim

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSV serializes a completed run, one row per (strategy, SNR sample),
// with the Shannon capacity reference repeated per row for easy plotting.
func WriteCSV(w io.Writer, r *SimulationResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"strategy", "snr_db", "mcs_index", "modulation",
		"spectral_efficiency", "bler", "throughput_mbps", "shannon_mbps",
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write CSV header")
	}

	for _, sr := range r.Strategies {
		for i, sample := range sr.Samples {
			row := []string{
				sr.Policy.String(),
				strconv.FormatFloat(sample.SNRdB, 'f', 2, 64),
				strconv.Itoa(sample.MCSIndex),
				sample.Modulation,
				strconv.FormatFloat(sample.SpectralEfficiency, 'f', 4, 64),
				strconv.FormatFloat(sample.BLER, 'e', 4, 64),
				strconv.FormatFloat(sample.ThroughputMbps, 'f', 3, 64),
				strconv.FormatFloat(r.ShannonMbps[i], 'f', 3, 64),
			}
			if err := cw.Write(row); err != nil {
				return errors.Wrapf(err, "write CSV row for %s", sr.Policy)
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush CSV")
}
