// Package boot provides the boot ROM image that is overlaid on the
// lowest page of the address space at power on.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

// Size is the size of a DMG class boot ROM.
const Size = 0x100

// ErrInvalidSize is returned when a boot ROM image is not exactly Size bytes.
var ErrInvalidSize = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM. When the CPU first powers on, the boot ROM
// is mapped to memory addresses 0x0000 - 0x00FF, until it unmaps itself
// by writing to types.BDIS.
type ROM struct {
	raw         [Size]byte
	checksum    string // MD5, matching published dumps
	fingerprint uint64 // xxhash, used to tell images apart cheaply
}

// Load copies b into a new ROM, ensuring it has a valid length.
func Load(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(b))
	}

	r := &ROM{}
	copy(r.raw[:], b)

	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])
	r.fingerprint = xxhash.Sum64(b)

	return r, nil
}

// Read returns the byte at the given address.
func (r *ROM) Read(addr uint16) byte {
	return r.raw[addr&(Size-1)]
}

// Checksum returns the MD5 checksum of the boot rom.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Fingerprint returns the xxhash of the boot rom.
func (r *ROM) Fingerprint() uint64 {
	if r == nil {
		return 0
	}
	return r.fingerprint
}

// Model returns the model of the boot rom, as determined by its checksum.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownBootROMChecksums = map[string]string{
	DMG0:         "Game Boy (DMG-0)",
	DMG:          "Game Boy (DMG-01)",
	MGB:          "Game Boy Pocket",
	SGB:          "Super Game Boy",
	SGB2:         "Super Game Boy 2",
	FORTUNE:      "Fortune/Bitman 3000B",
	GAME_FIGHTER: "Game Fighter",
	MAX_STATION:  "Max Station",
}

const (
	// DMG0 is the early DMG boot ROM, only sold in Japan. It flashes
	// the screen on a failed logo check instead of hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM found in most DMG-01 units.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, leaving 0xFF in A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES instead of scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by a single byte, leaving 0xFF in A.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// FORTUNE, GAME_FIGHTER and MAX_STATION are clone boot ROMs.
	FORTUNE      = "92ed4eca17d61fcd53f8a64c3ce84743"
	GAME_FIGHTER = "6a7b8ee12a793f66a969c6a2b8926cc9"
	MAX_STATION  = "77a7021db824010a678791f6d062943d"
)
