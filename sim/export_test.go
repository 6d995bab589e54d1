package sim

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteCSV_OneRowPerStrategySample verifies the export shape: a header
// plus one row per (strategy, SNR sample), parseable back as CSV.
func TestWriteCSV_OneRowPerStrategySample(t *testing.T) {
	result := runDefaultSweep(t, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	wantRows := 1 + len(result.Strategies)*len(result.SNRGrid)
	require.Len(t, rows, wantRows)
	assert.Equal(t, []string{
		"strategy", "snr_db", "mcs_index", "modulation",
		"spectral_efficiency", "bler", "throughput_mbps", "shannon_mbps",
	}, rows[0])

	// first data row is the conservative strategy at the sweep start
	first := rows[1]
	assert.Equal(t, "conservative", first[0])
	snr, err := strconv.ParseFloat(first[1], 64)
	require.NoError(t, err)
	assert.Equal(t, result.SNRGrid[0], snr)

	// every row must carry a parseable, bounded BLER
	for i, row := range rows[1:] {
		bler, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err, "row %d", i+1)
		if bler < 0 || bler > 1 {
			t.Fatalf("row %d: BLER %g outside [0, 1]", i+1, bler)
		}
	}
}
