// Package config handles the file-system side of crosshair management:
// patching game config files, copying config trees between accounts, and
// locating the Steam installation.
//
// Apply appends a profile's console-variable assignments to a config file,
// but only when the file does not already set any of them; existing
// crosshair settings are never rewritten.
//
// CopyTree mirrors one config directory into another, optionally
// snapshotting the destination to a timestamped backup directory first.
//
// FindInstallDir probes the conventional Linux Steam locations for an
// install containing a userdata tree. Account enumeration is out of scope;
// callers supply account IDs and ConfigDir builds the path.
//
// All operations log through the package logger (see Logger/SetLogger),
// which is a no-op unless configured.
package config
