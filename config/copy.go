package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cs2tools/crosshair-kit/errors"
)

// CopyOptions control CopyTree behavior.
type CopyOptions struct {
	// Backup snapshots an existing destination tree to
	// <dst>.backup.<unix-seconds> before anything is overwritten.
	Backup bool
}

// CopyTree recursively copies the directory tree at src into dst, creating
// dst and any missing parents. Files already present in dst are
// overwritten; files only present in dst are kept.
func CopyTree(src, dst string, opts CopyOptions) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.IO(errors.PhaseCopy, err, "reading source directory %s", src)
	}
	if !info.IsDir() {
		return errors.InvalidInput(errors.PhaseCopy, "source %s is not a directory", src)
	}

	if opts.Backup {
		if _, err := os.Stat(dst); err == nil {
			backup := fmt.Sprintf("%s.backup.%d", dst, time.Now().Unix())
			Logger().Info("backing up destination tree",
				zap.String("dst", dst),
				zap.String("backup", backup))
			if err := copyDir(dst, backup); err != nil {
				return err
			}
		}
	}

	Logger().Info("copying config tree",
		zap.String("src", src),
		zap.String("dst", dst))
	return copyDir(src, dst)
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.IO(errors.PhaseCopy, err, "creating directory %s", dst)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.IO(errors.PhaseCopy, err, "reading directory %s", src)
	}
	for _, e := range entries {
		s := filepath.Join(src, e.Name())
		d := filepath.Join(dst, e.Name())
		if e.IsDir() {
			if err := copyDir(s, d); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(s, d); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.IO(errors.PhaseCopy, err, "opening %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.IO(errors.PhaseCopy, err, "creating %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.IO(errors.PhaseCopy, err, "copying %s", src)
	}
	if err := out.Close(); err != nil {
		return errors.IO(errors.PhaseCopy, err, "closing %s", dst)
	}
	return nil
}
