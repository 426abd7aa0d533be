package main

import (
	"fmt"
	"strconv"

	crosshairkit "github.com/cs2tools/crosshair-kit"
)

// fieldSpec is one editable profile field: a stable name for key=value
// arguments, plus string accessors used by the flag and TUI frontends.
type fieldSpec struct {
	name string
	hint string
	get  func(*crosshairkit.Profile) string
	set  func(*crosshairkit.Profile, string) error
}

func floatField(name string, ptr func(*crosshairkit.Profile) *float32) fieldSpec {
	return fieldSpec{
		name: name,
		hint: "float",
		get: func(p *crosshairkit.Profile) string {
			return strconv.FormatFloat(float64(*ptr(p)), 'g', -1, 32)
		},
		set: func(p *crosshairkit.Profile, s string) error {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return fmt.Errorf("%s: %q is not a number", name, s)
			}
			*ptr(p) = float32(v)
			return nil
		},
	}
}

func byteField(name string, ptr func(*crosshairkit.Profile) *uint8) fieldSpec {
	return fieldSpec{
		name: name,
		hint: "0-255",
		get: func(p *crosshairkit.Profile) string {
			return strconv.Itoa(int(*ptr(p)))
		},
		set: func(p *crosshairkit.Profile, s string) error {
			v, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return fmt.Errorf("%s: %q is not a byte value", name, s)
			}
			*ptr(p) = uint8(v)
			return nil
		},
	}
}

func boolField(name string, ptr func(*crosshairkit.Profile) *bool) fieldSpec {
	return fieldSpec{
		name: name,
		hint: "bool",
		get: func(p *crosshairkit.Profile) string {
			return strconv.FormatBool(*ptr(p))
		},
		set: func(p *crosshairkit.Profile, s string) error {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return fmt.Errorf("%s: %q is not a bool", name, s)
			}
			*ptr(p) = v
			return nil
		},
	}
}

func profileFields() []fieldSpec {
	return []fieldSpec{
		floatField("gap", func(p *crosshairkit.Profile) *float32 { return &p.Gap }),
		floatField("outline_thickness", func(p *crosshairkit.Profile) *float32 { return &p.OutlineThickness }),
		byteField("red", func(p *crosshairkit.Profile) *uint8 { return &p.Red }),
		byteField("green", func(p *crosshairkit.Profile) *uint8 { return &p.Green }),
		byteField("blue", func(p *crosshairkit.Profile) *uint8 { return &p.Blue }),
		byteField("alpha", func(p *crosshairkit.Profile) *uint8 { return &p.Alpha }),
		byteField("split_dist", func(p *crosshairkit.Profile) *uint8 { return &p.DynamicSplitDist }),
		boolField("recoil", func(p *crosshairkit.Profile) *bool { return &p.Recoil }),
		floatField("fixed_gap", func(p *crosshairkit.Profile) *float32 { return &p.FixedGap }),
		byteField("color", func(p *crosshairkit.Profile) *uint8 { return &p.Color }),
		boolField("draw_outline", func(p *crosshairkit.Profile) *bool { return &p.DrawOutline }),
		floatField("inner_mod", func(p *crosshairkit.Profile) *float32 { return &p.DynamicSplitAlphaInnerMod }),
		floatField("outer_mod", func(p *crosshairkit.Profile) *float32 { return &p.DynamicSplitAlphaOuterMod }),
		floatField("split_ratio", func(p *crosshairkit.Profile) *float32 { return &p.DynamicMaxDistSplitRatio }),
		floatField("thickness", func(p *crosshairkit.Profile) *float32 { return &p.Thickness }),
		byteField("style", func(p *crosshairkit.Profile) *uint8 { return &p.Style }),
		boolField("dot", func(p *crosshairkit.Profile) *bool { return &p.Dot }),
		boolField("gap_use_weapon_value", func(p *crosshairkit.Profile) *bool { return &p.GapUseWeaponValue }),
		boolField("use_alpha", func(p *crosshairkit.Profile) *bool { return &p.UseAlpha }),
		boolField("t", func(p *crosshairkit.Profile) *bool { return &p.T }),
		floatField("size", func(p *crosshairkit.Profile) *float32 { return &p.Size }),
	}
}

func fieldByName(fields []fieldSpec, name string) *fieldSpec {
	for i := range fields {
		if fields[i].name == name {
			return &fields[i]
		}
	}
	return nil
}
