package decoder

// symbolEntry maps an 18-bit bar-width pattern prefix (the packed six
// three-bit bar-pair widths, each stored as width-2) to a cluster/value
// pair, packed as (cluster<<10)|value to match how the sampler looks
// entries up.
type symbolEntry struct {
	pattern uint32 // 18 bits of packed widths
	packed  int    // (cluster << 10) | value
}

var symbolTable []symbolEntry

// symbolTableIndex maps the packed 18-bit width pattern directly to its
// (cluster<<10)|value entry, built once at init from the generated table.
var symbolTableIndex map[uint32]int

// init builds the symbol table from generated patterns: each entry is a
// tuple of 6 bar-pair widths, each in [2,9], summing to 17 modules. The
// mapping between a pattern's 6 widths and its value is generated
// canonically, by enumerating patterns in increasing numeric order of their
// packed width encoding and assigning sequential values from 0 within each
// cluster. The enumeration yields 252 patterns across all three clusters,
// so each cluster holds far fewer than 929 values, and the value assignment
// is not that of the published ISO/IEC 15438 cluster tables.
func init() {
	clusterPatterns := make([][]uint32, 3)
	for clusterIdx := 0; clusterIdx < 3; clusterIdx++ {
		clusterPatterns[clusterIdx] = generateClusterPatterns(clusterIdx)
	}

	symbolTableIndex = make(map[uint32]int, 3*NumberOfCodewords)
	for clusterIdx, patterns := range clusterPatterns {
		for value, pattern := range patterns {
			if value >= NumberOfCodewords {
				break
			}
			packed := (clusterIdx << 10) | value
			symbolTable = append(symbolTable, symbolEntry{pattern: pattern, packed: packed})
			symbolTableIndex[pattern] = packed
		}
	}
}

// generateClusterPatterns enumerates every 6-tuple of bar-pair widths
// (w0..w5, each in [2,9], stored as width-2 in [0,7]) summing to 17 whose mode
// checksum (9+w0-w1+w4-w5) mod 9 selects the given cluster, in ascending
// order of their packed representation.
func generateClusterPatterns(cluster int) []uint32 {
	target := (cluster * 3) % 9
	var patterns []uint32
	var widths [6]int
	var walk func(i, sum int)
	walk = func(i, sum int) {
		if i == 6 {
			if sum != ModulesInCodeword {
				return
			}
			mode := (9 + widths[0] - widths[1] + widths[4] - widths[5]) % 9
			if mode < 0 {
				mode += 9
			}
			if mode != target {
				return
			}
			var packed uint32
			for _, w := range widths {
				packed = (packed << 3) | uint32(w-2)
			}
			patterns = append(patterns, packed)
			return
		}
		for w := 2; w <= 9; w++ {
			if sum+w > ModulesInCodeword {
				break
			}
			widths[i] = w
			walk(i+1, sum+w)
		}
	}
	walk(0, 0)
	return patterns
}

// lookupSymbol returns the (cluster<<10)|value entry for a packed 18-bit
// bar-pair-width pattern, or -1 if no codeword matches.
func lookupSymbol(packedWidths uint32) int {
	if v, ok := symbolTableIndex[packedWidths]; ok {
		return v
	}
	return -1
}
