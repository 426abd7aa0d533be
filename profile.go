package crosshairkit

// Profile is the canonical in-memory representation of a crosshair
// configuration. Numeric fields carry their console-variable semantics and
// ranges; the packed share-code form stores them fixed-point, so values
// survive a code round trip only to the resolution of their scale factor
// (0.1 for most, 0.5 for OutlineThickness).
type Profile struct {
	// Gap is the distance between crosshair lines, -12.8 to 12.7.
	Gap float32
	// OutlineThickness is the outline width in pixels, stored at half-pixel
	// resolution.
	OutlineThickness float32
	Red              uint8
	Green            uint8
	Blue             uint8
	Alpha            uint8
	// DynamicSplitDist is the recoil split distance, 0 to 127.
	DynamicSplitDist uint8
	Recoil           bool
	// FixedGap is the gap used when GapUseWeaponValue is set, -12.8 to 12.7.
	FixedGap    float32
	Color       uint8 // preset color index, 0-7
	DrawOutline bool
	// Split alpha modifiers and split ratio, 0 to 1.5 each.
	DynamicSplitAlphaInnerMod float32
	DynamicSplitAlphaOuterMod float32
	DynamicMaxDistSplitRatio  float32
	// Thickness is the line width, 0 to 25.5.
	Thickness float32
	Style     uint8 // crosshair style, 0-7
	Dot       bool
	// GapUseWeaponValue switches the gap to the per-weapon FixedGap.
	GapUseWeaponValue bool
	UseAlpha          bool
	// T drops the top crosshair line (T-style).
	T bool
	// Size is the line length, 0 to 6553.5.
	Size float32

	// Name is a user-facing label. It is metadata only and never part of
	// the packed payload or checksum.
	Name string

	// OriginalCode holds the exact share code this profile was decoded
	// from, or "" for profiles built by hand. When set, sharecode.Encode
	// returns it verbatim instead of re-deriving bytes from the fields, so
	// imported codes survive a decode/encode round trip byte-for-byte.
	// Callers editing a decoded profile should work on Detach'd copies.
	OriginalCode string
}

// Default returns the stock profile a fresh editor starts from.
func Default() Profile {
	return Profile{
		Gap:                       0,
		OutlineThickness:          1,
		Red:                       255,
		Green:                     255,
		Blue:                      255,
		Alpha:                     255,
		FixedGap:                  0,
		Color:                     1,
		DrawOutline:               true,
		DynamicSplitAlphaInnerMod: 0.5,
		DynamicSplitAlphaOuterMod: 0.5,
		DynamicMaxDistSplitRatio:  0.5,
		Thickness:                 0.5,
		Style:                     4,
		UseAlpha:                  true,
		Size:                      5,
		Name:                      "Default",
	}
}

// Detach returns a copy of p with OriginalCode cleared. Use it before
// editing a decoded profile: the copy re-derives its share code from the
// current field values instead of replaying the cached import string.
func (p Profile) Detach() Profile {
	p.OriginalCode = ""
	return p
}
