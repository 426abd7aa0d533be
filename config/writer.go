package config

import (
	"os"
	"strings"

	"go.uber.org/zap"

	crosshairkit "github.com/cs2tools/crosshair-kit"
	"github.com/cs2tools/crosshair-kit/errors"
)

// Apply appends p's console-variable assignments to the config file at
// path, one per line in field order. If the file already sets any of the
// crosshair variables it is left untouched; the skip is logged, not an
// error. The file must exist.
func Apply(path string, p *crosshairkit.Profile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.IO(errors.PhaseApply, err, "reading config file %s", path)
	}
	content := string(data)

	convars := p.ConVars()
	for _, cv := range convars {
		if strings.Contains(content, cv.Name) {
			Logger().Info("config file already sets crosshair variables, skipping",
				zap.String("path", path),
				zap.String("key", cv.Name))
			return nil
		}
	}

	var b strings.Builder
	b.WriteString(content)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	for _, cv := range convars {
		b.WriteString(cv.Name)
		b.WriteByte(' ')
		b.WriteString(cv.Value)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.IO(errors.PhaseApply, err, "writing config file %s", path)
	}
	Logger().Info("applied crosshair profile",
		zap.String("path", path),
		zap.String("profile", p.Name),
		zap.Int("keys", len(convars)))
	return nil
}
