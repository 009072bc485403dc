package decoder

import (
	"errors"
	"math/big"
)

// Mode command codewords (values >= 900).
const (
	cmdText       = 900
	cmdByte       = 901
	cmdNumeric    = 902
	cmdByteShift  = 913
	cmdByte6      = 924
	cmdGLIUser    = 925
	cmdGLIGeneral = 926
	cmdGLICharset = 927
)

// ErrModeProtocol is returned when a GLI command appears after payload
// bytes have already been emitted, or a byte-shift codeword points at
// another command instead of raw data.
var ErrModeProtocol = errors.New("pdf417: mode protocol violation")

// GLI holds whichever Global Label Identifier fields a barcode's codeword
// stream declared.
type GLI struct {
	UserDefined    *int
	GeneralPurpose *int
	CharacterSet   *int
}

// decodePayload consumes codewords[1:codewords[0]] (the declared data
// length from the codeword grid's first cell) and returns the decoded
// payload bytes and any GLI metadata. The first segment is implicitly
// TEXT; command codewords switch modes for the segment that follows.
func decodePayload(codewords []int) ([]byte, GLI, error) {
	var gli GLI
	var out []byte
	length := codewords[0]
	if length < 1 || length > len(codewords) {
		length = len(codewords)
	}

	i := 1
	emitted := false
	// The first segment is implicitly TEXT, per spec; read it the same way
	// a 900 command would start one.
	end := textSegmentEnd(codewords, i, length)
	out = append(out, decodeTextSegment(codewords[i:end])...)
	if end > i {
		emitted = true
	}
	i = end

	for i < length {
		cmd := codewords[i]
		i++
		switch cmd {
		case cmdText:
			end := textSegmentEnd(codewords, i, length)
			out = append(out, decodeTextSegment(codewords[i:end])...)
			i = end
			emitted = true
		case cmdByte, cmdByte6:
			var block []byte
			block, i = decodeByteSegment(codewords, i, length, cmd == cmdByte6)
			out = append(out, block...)
			emitted = true
		case cmdByteShift:
			if i >= length || codewords[i] >= 900 {
				return nil, gli, ErrModeProtocol
			}
			out = append(out, byte(codewords[i]))
			i++
			emitted = true
		case cmdNumeric:
			var digits []byte
			digits, i = decodeNumericSegment(codewords, i, length)
			out = append(out, digits...)
			emitted = true
		case cmdGLIUser:
			if emitted {
				return nil, gli, ErrModeProtocol
			}
			if i >= length {
				return nil, gli, ErrModeProtocol
			}
			v := 810900 + codewords[i]
			gli.UserDefined = &v
			i++
		case cmdGLIGeneral:
			if i+1 >= length {
				return nil, gli, ErrModeProtocol
			}
			v := 900*(codewords[i]+1) + codewords[i+1]
			gli.GeneralPurpose = &v
			i += 2
		case cmdGLICharset:
			if i >= length {
				return nil, gli, ErrModeProtocol
			}
			v := codewords[i]
			gli.CharacterSet = &v
			i++
		default:
			return nil, gli, ErrModeProtocol
		}
	}

	return out, gli, nil
}

// textSegmentEnd returns the index of the next command codeword (>=900) at
// or after start, or length if none remains.
func textSegmentEnd(codewords []int, start, length int) int {
	i := start
	for i < length && codewords[i] < 900 {
		i++
	}
	return i
}

// decodeByteSegment consumes consecutive full 5-codeword blocks, packing
// each into 6 bytes, until fewer than 5 codewords remain before the next
// command (or end of data). sixFlag forces the 5->6 packing even for a
// final full block; otherwise a final full block unpacks as 5 raw bytes.
func decodeByteSegment(codewords []int, start, length int, sixFlag bool) ([]byte, int) {
	var out []byte
	i := start
	for i < length && codewords[i] < 900 {
		remaining := textSegmentEnd(codewords, i, length) - i
		if remaining < 5 {
			for ; i < length && codewords[i] < 900; i++ {
				out = append(out, byte(codewords[i]%256))
			}
			break
		}

		isLastBlock := remaining == 5
		if isLastBlock && !sixFlag {
			for k := 0; k < 5; k++ {
				out = append(out, byte(codewords[i+k]%256))
			}
			i += 5
			continue
		}

		var value int64
		for k := 0; k < 5; k++ {
			value = 900*value + int64(codewords[i+k])
		}
		for k := 0; k < 6; k++ {
			out = append(out, byte(value>>uint(8*(5-k))))
		}
		i += 5
	}
	return out, i
}

var pow900 = func() [16]*big.Int {
	var t [16]*big.Int
	t[0] = big.NewInt(1)
	for i := 1; i < len(t); i++ {
		t[i] = new(big.Int).Mul(t[i-1], big.NewInt(900))
	}
	return t
}()

// decodeNumericSegment splits the run into blocks of up to 15 codewords,
// computing each block's base-900 value and emitting its decimal digits
// after dropping the leading '1' sentinel.
func decodeNumericSegment(codewords []int, start, length int) ([]byte, int) {
	const maxBlock = 15
	var out []byte
	i := start
	for i < length && codewords[i] < 900 {
		end := i + maxBlock
		if segEnd := textSegmentEnd(codewords, i, length); segEnd < end {
			end = segEnd
		}
		block := codewords[i:end]
		out = append(out, numericBlockDigits(block)...)
		i = end
	}
	return out, i
}

func numericBlockDigits(block []int) []byte {
	total := new(big.Int)
	n := len(block)
	for k, cw := range block {
		term := new(big.Int).Mul(pow900[n-k-1], big.NewInt(int64(cw)))
		total.Add(total, term)
	}
	s := total.String()
	if len(s) == 0 || s[0] != '1' {
		return nil
	}
	return []byte(s[1:])
}
