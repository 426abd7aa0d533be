package sharecode

import (
	"math/big"
	"strings"

	"github.com/cs2tools/crosshair-kit/errors"
)

// alphabet is the 57-symbol digit set: upper and lower case letters minus
// the visually ambiguous glyphs (I, O, g, l) plus the digits 2-9. A
// character's base-57 value is its index in this string.
const alphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefhijkmnopqrstuvwxyz23456789"

const (
	// payloadChars is the number of alphabet characters in a share code.
	payloadChars = 25
	// PayloadSize is the packed buffer length in bytes.
	PayloadSize = 18
)

var radix = big.NewInt(int64(len(alphabet)))

// charsToInt interprets a payloadChars-long string as a base-57 integer
// with the character at position 0 as the most-significant digit. code is
// the full share code, used only for error context.
func charsToInt(code, chars string) (*big.Int, *errors.Error) {
	n := new(big.Int)
	digit := new(big.Int)
	for i, c := range chars {
		idx := strings.IndexRune(alphabet, c)
		if idx < 0 {
			return nil, errors.InvalidDigit(code, c, i)
		}
		n.Mul(n, radix)
		n.Add(n, digit.SetInt64(int64(idx)))
	}
	return n, nil
}

// intToChars renders n as exactly payloadChars base-57 digits, most
// significant first. Zero renders as the index-0 character repeated; the
// fixed-width loop produces that without a special case.
func intToChars(n *big.Int) string {
	buf := make([]byte, payloadChars)
	x := new(big.Int).Set(n)
	mod := new(big.Int)
	for i := payloadChars - 1; i >= 0; i-- {
		x.DivMod(x, radix, mod)
		buf[i] = alphabet[mod.Int64()]
	}
	return string(buf)
}

// intToBytes serializes n big-endian into exactly PayloadSize bytes,
// zero-padded on the left. Reports false if n does not fit: a 25-digit
// base-57 payload can exceed 2^144 even though no encoder produces one.
func intToBytes(n *big.Int) ([]byte, bool) {
	if n.BitLen() > PayloadSize*8 {
		return nil, false
	}
	buf := make([]byte, PayloadSize)
	n.FillBytes(buf)
	return buf, true
}

func bytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
