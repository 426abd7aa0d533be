package sharecode

import (
	"strings"

	"go.uber.org/zap"

	crosshairkit "github.com/cs2tools/crosshair-kit"
	"github.com/cs2tools/crosshair-kit/errors"
)

// Prefix is the literal first segment of every share code.
const Prefix = "CSGO"

// formatVersion is written to byte 1 of every encoded buffer.
const formatVersion = 1

// Decode parses a share code into a Profile.
//
// The code must have the exact shape CSGO-XXXXX-XXXXX-XXXXX-XXXXX-XXXXX
// with every payload character drawn from the 57-symbol alphabet.
// Structural violations return a malformed_code error, unknown characters
// an invalid_digit error. A checksum mismatch is not an error: it is
// logged through the package logger and decoding proceeds with the bytes
// as read.
//
// The returned profile carries the input string in OriginalCode and a
// Name derived from the first payload segment.
func Decode(code string) (*crosshairkit.Profile, error) {
	parts := strings.Split(code, "-")
	if len(parts) != 6 {
		return nil, errors.MalformedCode(code, "expected 6 dash-separated segments, got %d", len(parts))
	}
	if parts[0] != Prefix {
		return nil, errors.MalformedCode(code, "prefix %q, want %q", parts[0], Prefix)
	}
	chars := strings.Join(parts[1:], "")
	if len(chars) != payloadChars {
		return nil, errors.MalformedCode(code, "payload is %d characters, want %d", len(chars), payloadChars)
	}

	n, derr := charsToInt(code, chars)
	if derr != nil {
		return nil, derr
	}
	buf, ok := intToBytes(n)
	if !ok {
		return nil, errors.MalformedCode(code, "payload overflows %d bytes", PayloadSize)
	}
	if len(buf) < PayloadSize {
		return nil, errors.TruncatedPayload(code, len(buf))
	}

	if sum := checksum(buf[1:]); sum != buf[0] {
		Logger().Warn("share code checksum mismatch",
			zap.String("code", code),
			zap.Uint8("expected", sum),
			zap.Uint8("got", buf[0]))
	}

	p := unpack(buf)
	p.Name = "Imported_" + parts[1]
	p.OriginalCode = code
	return p, nil
}

// Encode renders p as a share code.
//
// If p.OriginalCode is set it is returned verbatim, with no re-derivation.
// Otherwise the fields are packed into a fresh buffer; values that exceed
// their field width are clamped to the field maximum, and fixed-point
// scaling truncates toward zero.
func Encode(p *crosshairkit.Profile) string {
	if p.OriginalCode != "" {
		return p.OriginalCode
	}
	return formatCode(intToChars(bytesToInt(pack(p))))
}

func formatCode(chars string) string {
	return Prefix + "-" + chars[0:5] + "-" + chars[5:10] + "-" + chars[10:15] + "-" + chars[15:20] + "-" + chars[20:25]
}

// checksum is the wrapping byte-sum of b, truncated to 8 bits. Callers
// pass bytes 1..17; byte 0 stores the result.
func checksum(b []byte) uint8 {
	var sum uint16
	for _, v := range b {
		sum += uint16(v)
	}
	return uint8(sum)
}

func unpack(b []byte) *crosshairkit.Profile {
	return &crosshairkit.Profile{
		Gap:                       float32(int8(b[2])) / 10,
		OutlineThickness:          float32(b[3]) / 2,
		Red:                       b[4],
		Green:                     b[5],
		Blue:                      b[6],
		Alpha:                     b[7],
		DynamicSplitDist:          b[8] & 0x7f,
		Recoil:                    b[8]>>7 != 0,
		FixedGap:                  float32(int8(b[9])) / 10,
		Color:                     b[10] & 0x07,
		DrawOutline:               b[10]&0x08 != 0,
		DynamicSplitAlphaInnerMod: float32(b[10]>>4) / 10,
		DynamicSplitAlphaOuterMod: float32(b[11]&0x0f) / 10,
		DynamicMaxDistSplitRatio:  float32(b[11]>>4) / 10,
		Thickness:                 float32(b[12]) / 10,
		Style:                     (b[13] & 0x0f) >> 1,
		Dot:                       b[13]&0x10 != 0,
		GapUseWeaponValue:         b[13]&0x20 != 0,
		UseAlpha:                  b[13]&0x40 != 0,
		T:                         b[13]&0x80 != 0,
		Size:                      float32(uint16(b[15]&0x1f)<<8|uint16(b[14])) / 10,
	}
}

func pack(p *crosshairkit.Profile) []byte {
	size := scale13(p.Size)

	b := make([]byte, PayloadSize)
	b[1] = formatVersion
	b[2] = uint8(scaleSigned(p.Gap))
	b[3] = scale8(p.OutlineThickness, 2)
	b[4] = p.Red
	b[5] = p.Green
	b[6] = p.Blue
	b[7] = p.Alpha
	b[8] = p.DynamicSplitDist&0x7f | bit(p.Recoil)<<7
	b[9] = uint8(scaleSigned(p.FixedGap))
	b[10] = p.Color&0x07 | bit(p.DrawOutline)<<3 | scale4(p.DynamicSplitAlphaInnerMod)<<4
	b[11] = scale4(p.DynamicSplitAlphaOuterMod) | scale4(p.DynamicMaxDistSplitRatio)<<4
	b[12] = scale8(p.Thickness, 10)
	b[13] = (p.Style&0x07)<<1 | bit(p.Dot)<<4 | bit(p.GapUseWeaponValue)<<5 | bit(p.UseAlpha)<<6 | bit(p.T)<<7
	b[14] = uint8(size)
	b[15] = uint8(size >> 8)
	// bytes 16-17 reserved, left zero
	b[0] = checksum(b[1:])
	return b
}

// scaleSigned maps v to tenths in the signed-byte range, clamping at the
// ends so -12.8 and 12.7 both survive a round trip.
func scaleSigned(v float32) int8 {
	s := float64(v) * 10
	if s > 127 {
		s = 127
	}
	if s < -128 {
		s = -128
	}
	return int8(s)
}

// scale8 maps v*scale into an unsigned byte, clamping at 255.
func scale8(v float32, scale float64) uint8 {
	s := float64(v) * scale
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	return uint8(s)
}

// scale4 maps v to tenths in a nibble, clamping at 15 (1.5).
func scale4(v float32) uint8 {
	s := float64(v) * 10
	if s < 0 {
		s = 0
	}
	if s > 15 {
		s = 15
	}
	return uint8(s)
}

// scale13 maps v to tenths in the 13-bit size field, clamping at 0x1fff.
func scale13(v float32) uint16 {
	s := float64(v) * 10
	if s < 0 {
		s = 0
	}
	if s > 0x1fff {
		s = 0x1fff
	}
	return uint16(s)
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
