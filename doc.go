// Package crosshairkit provides tooling for CS2 crosshair configuration
// profiles and the shareable crosshair code format.
//
// A crosshair profile is a set of roughly twenty numeric and boolean
// rendering parameters. Players exchange profiles as compact alphanumeric
// share codes of the form:
//
//	CSGO-XXXXX-XXXXX-XXXXX-XXXXX-XXXXX
//
// The code is a base-57 rendering of an 18-byte packed buffer with sub-byte
// bit-fields, fixed-point scaling and an advisory checksum.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	crosshairkit/        Root package with the Profile data model
//	├── sharecode/       Share-code codec: base-57 transcoder and byte-field packer
//	├── config/          Config-file patching, directory copy, install discovery
//	├── errors/          Structured error types for debugging
//	└── cmd/crosshair/   Command line tool with an interactive editor
//
// # Quick Start
//
// Decode a share code and apply it to a config file:
//
//	profile, err := sharecode.Decode("CSGO-O4Jsi-V36wY-rTMGK-9w7GF-jQ8WA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := config.Apply("config.cfg", profile); err != nil {
//	    log.Fatal(err)
//	}
//
// Build a profile by hand and generate its code:
//
//	p := crosshairkit.Default()
//	p.Gap = -2.3
//	p.Size = 2.5
//	code := sharecode.Encode(&p)
//
// # Imported codes
//
// Decoding records the exact source string in Profile.OriginalCode, and
// encoding returns it verbatim when present. This keeps imported codes
// byte-stable across a decode/encode round trip even where re-deriving the
// packed bytes would normalize them. Edit a decoded profile through
// Profile.Detach to drop the cached code.
//
// # Thread Safety
//
// The codec is a pure transformation with no shared state; all functions in
// sharecode may be called concurrently. Profile values are plain data and
// follow the usual Go rules: do not mutate one Profile from multiple
// goroutines without synchronization.
package crosshairkit
