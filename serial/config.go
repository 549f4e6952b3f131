// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import "fmt"

// Mode selects the encoding of the payload.
type Mode string

// Payload modes. ModeAuto tries the godparent mode and falls back to the
// explicit mode if the trie violates its bounds.
const (
	ModeAuto      Mode = "auto"
	ModeGodparent Mode = "godparent"
	ModeExplicit  Mode = "explicit"
)

// Compression selects the compressor for the payload.
type Compression string

// Supported compressors.
const (
	None Compression = "none"
	XZ   Compression = "xz"
	Zstd Compression = "zstd"
)

// ParseCompression converts the name of a compressor.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case None, XZ, Zstd:
		return c, nil
	}
	return "", fmt.Errorf("serial: unsupported compression %q", s)
}

// WriterConfig describes the parameters for writing a model file.
type WriterConfig struct {
	// Compression for the payload (default: None).
	Compression Compression
	// Mode of the payload (default: ModeAuto).
	Mode Mode
}

// ApplyDefaults replaces zero values by the defaults.
func (c *WriterConfig) ApplyDefaults() {
	if c.Compression == "" {
		c.Compression = None
	}
	if c.Mode == "" {
		c.Mode = ModeAuto
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errorf("configuration is nil")
	}
	c.ApplyDefaults()
	if _, err := ParseCompression(string(c.Compression)); err != nil {
		return err
	}
	switch c.Mode {
	case ModeAuto, ModeGodparent, ModeExplicit:
	default:
		return fmt.Errorf("serial: unsupported mode %q", c.Mode)
	}
	return nil
}
