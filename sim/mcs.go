package sim

// MCSEntry is one row of a modulation-and-coding-scheme table.
type MCSEntry struct {
	Index              int     // MCS index, unique and ascending within a table
	Modulation         string  // modulation name: QPSK, 16QAM, 64QAM, 256QAM
	ModulationOrder    int     // bits per symbol before coding: 2, 4, 6, 8
	CodeRate           float64 // channel code rate in (0, 1]
	SpectralEfficiency float64 // bits/s/Hz; ModulationOrder * CodeRate when not table-supplied
	SNRThreshold       float64 // SNR (dB) at which BLER is ~10%; anchors the BLER curve
}

// MCSTable is an ordered collection of MCS entries. Tables are read-only
// after construction; the simulator never mutates them.
type MCSTable struct {
	Name    string
	Entries []MCSEntry

	indexMap map[int]int // MCS index -> position in Entries
}

// NewMCSTable builds a table from entries. Entries with a zero spectral
// efficiency get ModulationOrder * CodeRate filled in, matching how
// standards tables are usually transcribed (order and rate only).
func NewMCSTable(name string, entries []MCSEntry) *MCSTable {
	t := &MCSTable{
		Name:     name,
		Entries:  make([]MCSEntry, len(entries)),
		indexMap: make(map[int]int, len(entries)),
	}
	copy(t.Entries, entries)
	for i := range t.Entries {
		if t.Entries[i].SpectralEfficiency == 0 {
			t.Entries[i].SpectralEfficiency = float64(t.Entries[i].ModulationOrder) * t.Entries[i].CodeRate
		}
		t.indexMap[t.Entries[i].Index] = i
	}
	return t
}

// Entry returns the entry with the given MCS index, or nil if absent.
func (t *MCSTable) Entry(index int) *MCSEntry {
	pos, ok := t.indexMap[index]
	if !ok {
		return nil
	}
	return &t.Entries[pos]
}

// Len returns the number of entries in the table.
func (t *MCSTable) Len() int {
	return len(t.Entries)
}

// Lowest returns the lowest-index entry, the robust fallback for MCS selection.
func (t *MCSTable) Lowest() MCSEntry {
	return t.Entries[0]
}

// Validate checks the invariants the simulator relies on: at least one entry,
// unique ascending indices, code rates in (0, 1], positive modulation orders,
// and spectral efficiency strictly increasing with index. A violation is a
// ConfigError; the run must abort before any sweep begins.
func (t *MCSTable) Validate() error {
	if len(t.Entries) == 0 {
		return configErrorf("MCS table %q has no entries", t.Name)
	}
	for i, e := range t.Entries {
		if e.ModulationOrder <= 0 {
			return configErrorf("MCS table %q entry %d: modulation order %d must be > 0", t.Name, e.Index, e.ModulationOrder)
		}
		if e.CodeRate <= 0 || e.CodeRate > 1 {
			return configErrorf("MCS table %q entry %d: code rate %.4f outside (0, 1]", t.Name, e.Index, e.CodeRate)
		}
		if i == 0 {
			continue
		}
		prev := t.Entries[i-1]
		if e.Index <= prev.Index {
			return configErrorf("MCS table %q: index %d not ascending after %d", t.Name, e.Index, prev.Index)
		}
		if e.SpectralEfficiency <= prev.SpectralEfficiency {
			return configErrorf("MCS table %q: spectral efficiency %.4f at index %d not increasing (previous %.4f)",
				t.Name, e.SpectralEfficiency, e.Index, prev.SpectralEfficiency)
		}
	}
	return nil
}
