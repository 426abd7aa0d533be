// Package sharecode implements the CS2 crosshair share-code codec.
//
// A share code is the dash-delimited string players exchange to transmit a
// crosshair configuration:
//
//	CSGO-XXXXX-XXXXX-XXXXX-XXXXX-XXXXX
//
// The five trailing groups concatenate to a 25-character payload over a
// 57-symbol alphabet. The payload is the base-57 rendering of an 18-byte
// big-endian packed buffer:
//
//	Byte    Contents
//	────────────────────────────────────────────────────────────
//	0       checksum: wrapping byte-sum of bytes 1..17
//	1       format marker, always 1 on encode
//	2       gap, signed, tenths
//	3       outline thickness, halves
//	4-7     red, green, blue, alpha
//	8       bits 0-6 dynamic split distance, bit 7 recoil
//	9       fixed gap, signed, tenths
//	10      bits 0-2 color, bit 3 draw outline,
//	        bits 4-7 split alpha inner mod (tenths)
//	11      bits 0-3 split alpha outer mod, bits 4-7 max dist
//	        split ratio (tenths each)
//	12      thickness, tenths
//	13      bits 1-3 style, bit 4 dot, bit 5 gap use weapon value,
//	        bit 6 use alpha, bit 7 t-style
//	14-15   size in tenths, 13 bits little-endian across the pair
//	        (upper 3 bits of byte 15 reserved)
//	16-17   reserved, zero on encode
//
// # Checksum leniency
//
// The checksum is advisory. Decode verifies it, logs a warning through the
// package logger on mismatch, and decodes the bytes as read. Hand-edited or
// corrupted codes still produce a best-effort profile.
//
// # Encoding Flow
//
//  1. Pack fields into the 18-byte buffer, clamping values that exceed
//     their field width.
//  2. Interpret the buffer as a big-endian integer and emit 25 base-57
//     digits, most significant first.
//
// Decoding inverts both steps exactly; see Decode for the structural
// validation rules. A profile decoded from a code keeps the exact input
// string and Encode replays it verbatim, so imported codes are stable
// byte-for-byte even where re-derivation would normalize them.
package sharecode
