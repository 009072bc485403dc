package decoder

// punctChars and mixedChars are the literal byte tables for the Punct and
// Mixed TEXT submodes. Index 29 in the Punct table latches back to Upper;
// index 25 in the Mixed table latches to Punct.
var (
	punctChars = []byte(";<>@[\\]_`~!\r\t,:\n-.$/\"|*()?{}'")
	mixedChars = []byte("0123456789&\r\t,:#-.$/+%*=^")
)

// textSubmode is one of the six states of the TEXT compaction machine.
type textSubmode int

const (
	submodeUpper textSubmode = iota
	submodeLower
	submodeMixed
	submodePunct
	submodeShiftUpper
	submodeShiftPunct
)

// Control subcodes shared across the Upper/Lower/Mixed/Punct tables. The
// same numeric value means different things in different tables.
const (
	subLatchPunct = 25 // Mixed table: latch to Punct
	subLatchLower = 27 // Upper table: latch to Lower
	subShiftUpper = 27 // Lower table: shift to Upper for one character
	subLatchMixed = 28 // Upper/Lower tables: latch to Mixed
	subLatchUpper = 28 // Mixed table: latch to Upper
	subShiftPunct = 29 // Upper/Lower/Mixed tables: shift to Punct; Punct table: latch to Upper (PAL)
	subSpace      = 26
)

// decodeTextSegment decodes one run of TEXT-mode codewords into bytes,
// always starting in Upper submode: every segment, regardless of what came
// before it, begins Upper.
func decodeTextSegment(codewords []int) []byte {
	// Each codeword splits into two subcodes, (hi,lo) = (cw/30, cw%30),
	// consumed in turn by the same state machine.
	subcodes := make([]int, 0, 2*len(codewords))
	for _, cw := range codewords {
		subcodes = append(subcodes, cw/30, cw%30)
	}
	// The final subcode of the segment is dropped if it is the non-terminal
	// latch/shift sentinel 29: it has no following character to apply to.
	if n := len(subcodes); n > 0 && subcodes[n-1] == 29 {
		subcodes = subcodes[:n-1]
	}

	var out []byte
	submode := submodeUpper
	priorSubmode := submodeUpper
	for _, sub := range subcodes {
		ch, next := decodeTextSubcode(submode, priorSubmode, sub)
		if ch != 0 {
			out = append(out, ch)
		}
		if next == submodeShiftUpper || next == submodeShiftPunct {
			// Entering a shift state: remember the submode to revert to
			// once its single character has been consumed.
			priorSubmode = submode
		}
		submode = next
	}
	return out
}

// decodeTextSubcode interprets one subcode under submode, returning the
// byte it yields (0 for none) and the submode to continue in.
func decodeTextSubcode(submode, prior textSubmode, lo int) (byte, textSubmode) {
	switch submode {
	case submodeUpper:
		if lo < 26 {
			return 'A' + byte(lo), submode
		}
		switch lo {
		case subSpace:
			return ' ', submode
		case subLatchLower:
			return 0, submodeLower
		case subLatchMixed:
			return 0, submodeMixed
		case subShiftPunct:
			return 0, submodeShiftPunct
		}
	case submodeLower:
		if lo < 26 {
			return 'a' + byte(lo), submode
		}
		switch lo {
		case subSpace:
			return ' ', submode
		case subShiftUpper:
			return 0, submodeShiftUpper
		case subLatchMixed:
			return 0, submodeMixed
		case subShiftPunct:
			return 0, submodeShiftPunct
		}
	case submodeMixed:
		if lo < subLatchPunct {
			return mixedChars[lo], submode
		}
		switch lo {
		case subLatchPunct:
			return 0, submodePunct
		case subSpace:
			return ' ', submode
		case subLatchLower:
			return 0, submodeLower
		case subLatchUpper:
			return 0, submodeUpper
		case subShiftPunct:
			return 0, submodeShiftPunct
		}
	case submodePunct:
		if lo < subShiftPunct {
			return punctChars[lo], submode
		}
		if lo == subShiftPunct { // tcPAL: latch back to Upper
			return 0, submodeUpper
		}
	case submodeShiftUpper:
		if lo < 26 {
			return 'A' + byte(lo), prior
		}
		if lo == subSpace {
			return ' ', prior
		}
		return 0, prior
	case submodeShiftPunct:
		if lo < subShiftPunct {
			return punctChars[lo], prior
		}
		return 0, prior
	}
	return 0, submode
}
