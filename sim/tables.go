package sim

import (
	"sort"
)

// Built-in MCS tables. SNR thresholds are the commonly used 10%-BLER
// operating points for each entry; they anchor the sigmoid BLER curves.
//
// The LTE table (3GPP TS 36.213) omits MCS 17 (64QAM, rate 0.4277): its
// spectral efficiency sits just below MCS 16 at the 16QAM/64QAM crossover,
// which would break the strictly-increasing-efficiency invariant that MCS
// selection depends on.
var lteTable = NewMCSTable("LTE", []MCSEntry{
	{Index: 0, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1172, SpectralEfficiency: 0.2344, SNRThreshold: -6.7},
	{Index: 1, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1533, SpectralEfficiency: 0.3066, SNRThreshold: -5.5},
	{Index: 2, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1885, SpectralEfficiency: 0.3770, SNRThreshold: -4.4},
	{Index: 3, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.2451, SpectralEfficiency: 0.4902, SNRThreshold: -3.2},
	{Index: 4, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.3008, SpectralEfficiency: 0.6016, SNRThreshold: -2.0},
	{Index: 5, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.3701, SpectralEfficiency: 0.7402, SNRThreshold: -0.7},
	{Index: 6, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.4385, SpectralEfficiency: 0.8770, SNRThreshold: 0.5},
	{Index: 7, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.5137, SpectralEfficiency: 1.0273, SNRThreshold: 1.7},
	{Index: 8, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.5879, SpectralEfficiency: 1.1758, SNRThreshold: 2.9},
	{Index: 9, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.6631, SpectralEfficiency: 1.3262, SNRThreshold: 4.1},
	{Index: 10, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.3320, SpectralEfficiency: 1.3281, SNRThreshold: 4.3},
	{Index: 11, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.3691, SpectralEfficiency: 1.4766, SNRThreshold: 5.3},
	{Index: 12, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.4238, SpectralEfficiency: 1.6953, SNRThreshold: 6.5},
	{Index: 13, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.4785, SpectralEfficiency: 1.9141, SNRThreshold: 7.7},
	{Index: 14, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.5400, SpectralEfficiency: 2.1602, SNRThreshold: 9.0},
	{Index: 15, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.6016, SpectralEfficiency: 2.4063, SNRThreshold: 10.3},
	{Index: 16, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.6426, SpectralEfficiency: 2.5703, SNRThreshold: 11.2},
	{Index: 18, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.4551, SpectralEfficiency: 2.7305, SNRThreshold: 12.0},
	{Index: 19, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.5049, SpectralEfficiency: 3.0293, SNRThreshold: 13.3},
	{Index: 20, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.5537, SpectralEfficiency: 3.3223, SNRThreshold: 14.6},
	{Index: 21, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.6016, SpectralEfficiency: 3.6094, SNRThreshold: 15.8},
	{Index: 22, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.6504, SpectralEfficiency: 3.9023, SNRThreshold: 17.1},
	{Index: 23, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.7021, SpectralEfficiency: 4.2129, SNRThreshold: 18.5},
	{Index: 24, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.7539, SpectralEfficiency: 4.5234, SNRThreshold: 19.8},
	{Index: 25, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.8008, SpectralEfficiency: 4.8047, SNRThreshold: 21.0},
	{Index: 26, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.8525, SpectralEfficiency: 5.1152, SNRThreshold: 22.3},
	{Index: 27, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.8887, SpectralEfficiency: 5.3320, SNRThreshold: 23.3},
	{Index: 28, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.9258, SpectralEfficiency: 5.5547, SNRThreshold: 24.3},
})

// 5G NR MCS Table 1 (3GPP TS 38.214, Table 5.1.3.1-1, up to 64QAM).
var nrTable1 = NewMCSTable("NR_Table1", []MCSEntry{
	{Index: 0, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1172, SpectralEfficiency: 0.2344, SNRThreshold: -6.7},
	{Index: 1, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1885, SpectralEfficiency: 0.3770, SNRThreshold: -4.7},
	{Index: 2, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.3008, SpectralEfficiency: 0.6016, SNRThreshold: -2.3},
	{Index: 3, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.4385, SpectralEfficiency: 0.8770, SNRThreshold: 0.2},
	{Index: 4, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.5879, SpectralEfficiency: 1.1758, SNRThreshold: 2.5},
	{Index: 5, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.3691, SpectralEfficiency: 1.4766, SNRThreshold: 5.0},
	{Index: 6, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.4785, SpectralEfficiency: 1.9141, SNRThreshold: 7.4},
	{Index: 7, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.6016, SpectralEfficiency: 2.4063, SNRThreshold: 10.0},
	{Index: 8, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.4551, SpectralEfficiency: 2.7305, SNRThreshold: 11.8},
	{Index: 9, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.5537, SpectralEfficiency: 3.3223, SNRThreshold: 14.3},
	{Index: 10, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.6504, SpectralEfficiency: 3.9023, SNRThreshold: 16.8},
	{Index: 11, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.7539, SpectralEfficiency: 4.5234, SNRThreshold: 19.5},
	{Index: 12, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.8525, SpectralEfficiency: 5.1152, SNRThreshold: 22.0},
	{Index: 13, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.9258, SpectralEfficiency: 5.5547, SNRThreshold: 24.0},
})

// 5G NR MCS Table 2 (3GPP TS 38.214, up to 256QAM).
var nrTable2 = NewMCSTable("NR_Table2", []MCSEntry{
	{Index: 0, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.1172, SpectralEfficiency: 0.2344, SNRThreshold: -6.7},
	{Index: 1, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.2451, SpectralEfficiency: 0.4902, SNRThreshold: -3.5},
	{Index: 2, Modulation: "QPSK", ModulationOrder: 2, CodeRate: 0.3770, SpectralEfficiency: 0.7539, SNRThreshold: -0.8},
	{Index: 3, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.2549, SpectralEfficiency: 1.0195, SNRThreshold: 1.5},
	{Index: 4, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.3770, SpectralEfficiency: 1.5078, SNRThreshold: 5.2},
	{Index: 5, Modulation: "16QAM", ModulationOrder: 4, CodeRate: 0.5137, SpectralEfficiency: 2.0547, SNRThreshold: 8.3},
	{Index: 6, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.3770, SpectralEfficiency: 2.2617, SNRThreshold: 9.5},
	{Index: 7, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.4902, SpectralEfficiency: 2.9414, SNRThreshold: 12.8},
	{Index: 8, Modulation: "64QAM", ModulationOrder: 6, CodeRate: 0.6162, SpectralEfficiency: 3.6973, SNRThreshold: 16.0},
	{Index: 9, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.5000, SpectralEfficiency: 4.0000, SNRThreshold: 17.5},
	{Index: 10, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.5527, SpectralEfficiency: 4.4219, SNRThreshold: 19.2},
	{Index: 11, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.6250, SpectralEfficiency: 5.0000, SNRThreshold: 21.5},
	{Index: 12, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.7109, SpectralEfficiency: 5.6875, SNRThreshold: 24.0},
	{Index: 13, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.7773, SpectralEfficiency: 6.2188, SNRThreshold: 26.0},
	{Index: 14, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.8477, SpectralEfficiency: 6.7813, SNRThreshold: 28.0},
	{Index: 15, Modulation: "256QAM", ModulationOrder: 8, CodeRate: 0.9258, SpectralEfficiency: 7.4063, SNRThreshold: 30.5},
})

var builtinTables = map[string]*MCSTable{
	"LTE":       lteTable,
	"NR_Table1": nrTable1,
	"NR_Table2": nrTable2,
}

// GetMCSTable returns the built-in table with the given name.
func GetMCSTable(name string) (*MCSTable, error) {
	t, ok := builtinTables[name]
	if !ok {
		return nil, configErrorf("unknown MCS table %q; available: %v", name, MCSTableNames())
	}
	return t, nil
}

// MCSTableNames lists the built-in table names, sorted.
func MCSTableNames() []string {
	names := make([]string, 0, len(builtinTables))
	for name := range builtinTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
