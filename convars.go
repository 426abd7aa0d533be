package crosshairkit

import "strconv"

// ConVar is one console-variable assignment derived from a profile.
type ConVar struct {
	Name  string
	Value string
}

// ConVars returns the console-variable assignments for p, one per profile
// field, in the fixed order the game's config files use. The mapping is
// static; Name and OriginalCode have no console variable.
func (p *Profile) ConVars() []ConVar {
	return []ConVar{
		{"cl_crosshairgap", ftoa(p.Gap)},
		{"cl_crosshair_outlinethickness", ftoa(p.OutlineThickness)},
		{"cl_crosshaircolor_r", itoa(p.Red)},
		{"cl_crosshaircolor_g", itoa(p.Green)},
		{"cl_crosshaircolor_b", itoa(p.Blue)},
		{"cl_crosshairalpha", itoa(p.Alpha)},
		{"cl_crosshair_dynamic_splitdist", itoa(p.DynamicSplitDist)},
		{"cl_crosshair_recoil", strconv.FormatBool(p.Recoil)},
		{"cl_fixedcrosshairgap", ftoa(p.FixedGap)},
		{"cl_crosshaircolor", itoa(p.Color)},
		{"cl_crosshair_drawoutline", strconv.FormatBool(p.DrawOutline)},
		{"cl_crosshair_dynamic_splitalpha_innermod", ftoa(p.DynamicSplitAlphaInnerMod)},
		{"cl_crosshair_dynamic_splitalpha_outermod", ftoa(p.DynamicSplitAlphaOuterMod)},
		{"cl_crosshair_dynamic_maxdist_splitratio", ftoa(p.DynamicMaxDistSplitRatio)},
		{"cl_crosshairthickness", ftoa(p.Thickness)},
		{"cl_crosshairstyle", itoa(p.Style)},
		{"cl_crosshairdot", strconv.FormatBool(p.Dot)},
		{"cl_crosshairgap_useweaponvalue", strconv.FormatBool(p.GapUseWeaponValue)},
		{"cl_crosshairusealpha", strconv.FormatBool(p.UseAlpha)},
		{"cl_crosshair_t", strconv.FormatBool(p.T)},
		{"cl_crosshairsize", ftoa(p.Size)},
	}
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func itoa(v uint8) string {
	return strconv.Itoa(int(v))
}
