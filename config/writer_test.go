package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	crosshairkit "github.com/cs2tools/crosshair-kit"
	"github.com/cs2tools/crosshair-kit/errors"
)

func TestApplyAppendsAllConVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cfg")
	if err := os.WriteFile(path, []byte("volume 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := crosshairkit.Default()
	p.Gap = -2.3
	if err := Apply(path, &p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "volume 0.5\n") {
		t.Error("existing content was not preserved")
	}
	if !strings.Contains(content, "cl_crosshairgap -2.3\n") {
		t.Errorf("gap line missing:\n%s", content)
	}
	for _, cv := range p.ConVars() {
		if !strings.Contains(content, cv.Name+" "+cv.Value+"\n") {
			t.Errorf("missing line %q %q", cv.Name, cv.Value)
		}
	}

	// Lines must appear in field order.
	convars := p.ConVars()
	last := -1
	for _, cv := range convars {
		idx := strings.Index(content, cv.Name + " ")
		if idx < last {
			t.Errorf("convar %s out of order", cv.Name)
		}
		last = idx
	}
}

func TestApplySkipsWhenKeysPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cfg")
	original := "cl_crosshairsize 3\nvolume 1\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	p := crosshairkit.Default()
	if err := Apply(path, &p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("file was modified despite existing crosshair key:\n%s", data)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cfg")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p := crosshairkit.Default()
	if err := Apply(path, &p); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Apply(path, &p); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("second Apply changed the file")
	}
}

func TestApplyMissingFile(t *testing.T) {
	p := crosshairkit.Default()
	err := Apply(filepath.Join(t.TempDir(), "nope.cfg"), &p)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseApply, Kind: errors.KindIO}) {
		t.Errorf("error = %v, want apply/io", err)
	}
}
