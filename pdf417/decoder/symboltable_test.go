package decoder

import "testing"

// packWidths mirrors the sampler's own bit-packing: each of the six
// bar-pair widths (2..9) stored as width-2 in 3 bits, high to low.
func packWidths(w [6]int) uint32 {
	var packed uint32
	for _, width := range w {
		packed = (packed << 3) | uint32(width-2)
	}
	return packed
}

func TestLookupSymbolFindsValidClusterZeroPattern(t *testing.T) {
	// w0-w1+w4-w5 == 0 (mod 9): a valid cluster-0 mode checksum.
	w := [6]int{2, 2, 4, 5, 2, 2}
	got := lookupSymbol(packWidths(w))
	if got == invalidCodeword {
		t.Fatal("expected a valid cluster-0 pattern to be found in the table")
	}
	if cluster := got >> 10; cluster != 0 {
		t.Errorf("cluster = %d, want 0", cluster)
	}
}

func TestLookupSymbolRejectsPatternWithBadModeChecksum(t *testing.T) {
	// w0-w1+w4-w5 = 2-2+2-7 = -5 => mode 4, which belongs to no cluster
	// (clusters only target mode 0, 3, or 6): no generated pattern can
	// ever produce this packed value.
	w := [6]int{2, 2, 2, 2, 2, 7}
	if got := lookupSymbol(packWidths(w)); got != invalidCodeword {
		t.Errorf("lookupSymbol = %d, want invalidCodeword for a mode-checksum mismatch", got)
	}
}

func TestSymbolTableEntriesAreWellFormedAndIndexed(t *testing.T) {
	if len(symbolTable) == 0 {
		t.Fatal("symbolTable is empty")
	}
	for _, e := range symbolTable {
		cluster, value := e.packed>>10, e.packed&0x3ff
		if cluster < 0 || cluster > 2 {
			t.Errorf("entry %v has out-of-range cluster %d", e, cluster)
		}
		if value < 0 || value >= NumberOfCodewords {
			t.Errorf("entry %v has out-of-range value %d", e, value)
		}
		if got := symbolTableIndex[e.pattern]; got != e.packed {
			t.Errorf("symbolTableIndex[%d] = %d, want %d", e.pattern, got, e.packed)
		}
	}
}
