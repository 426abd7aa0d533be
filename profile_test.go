package crosshairkit

import "testing"

func TestDefault(t *testing.T) {
	p := Default()

	if p.Red != 255 || p.Green != 255 || p.Blue != 255 || p.Alpha != 255 {
		t.Errorf("default color = %d/%d/%d/%d, want white", p.Red, p.Green, p.Blue, p.Alpha)
	}
	if p.Style != 4 {
		t.Errorf("Style = %d, want 4", p.Style)
	}
	if !p.DrawOutline || !p.UseAlpha {
		t.Errorf("DrawOutline/UseAlpha = %v/%v, want true/true", p.DrawOutline, p.UseAlpha)
	}
	if p.Size != 5 || p.Thickness != 0.5 || p.OutlineThickness != 1 {
		t.Errorf("size/thickness/outline = %v/%v/%v", p.Size, p.Thickness, p.OutlineThickness)
	}
	if p.OriginalCode != "" {
		t.Errorf("OriginalCode = %q, want empty for a hand-built profile", p.OriginalCode)
	}
	if p.Name != "Default" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestDetach(t *testing.T) {
	p := Default()
	p.OriginalCode = "CSGO-AAAAA-AAAAA-AAAAA-AAAAA-AAAAA"
	p.Gap = -3

	d := p.Detach()
	if d.OriginalCode != "" {
		t.Errorf("Detach kept OriginalCode %q", d.OriginalCode)
	}
	if d.Gap != p.Gap {
		t.Errorf("Detach changed Gap: %v != %v", d.Gap, p.Gap)
	}

	d.Gap = 7
	if p.Gap == 7 {
		t.Error("mutating the detached copy affected the original")
	}
	if p.OriginalCode == "" {
		t.Error("Detach must not clear the original profile's code")
	}
}
