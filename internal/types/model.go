package types

import "strings"

type Model int // The Model whose post-boot state is reproduced.

const (
	Unset  Model = iota // Unset - Model hasn't been set - behaves as DMGABC
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	CGB0                // CGB0 -  early Game Boy Colour, only released in Japan
	CGBABC              // CGBABC - Standard Game Boy Colour
	MGB                 // MGB - Pocket Game Boy
	SGB                 // SGB - Super Game Boy
	SGB2                // SGB2 - Super Game Boy 2
	AGB                 // AGB - Game Boy Advance
)

var ModelNames = map[Model]string{
	DMG0:   "DMG0",
	DMGABC: "DMG",
	CGB0:   "CGB0",
	CGBABC: "CGB",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	AGB:    "AGB",
	Unset:  "Unset",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	return ModelNames[m]
}

// ModelRegisters - model specific CPU registers, as left by the boot
// ROM when it hands over to the cartridge at 0x0100. Ordered A, F,
// B, C, D, E, H, L.
var ModelRegisters = map[Model][8]uint8{
	Unset:  {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D}, // default to DMG registers
	DMG0:   {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03},
	DMGABC: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	CGB0:   {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	CGBABC: {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	MGB:    {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:    {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	SGB2:   {0xFF, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	AGB:    {0x11, 0x00, 0x01, 0x00, 0x00, 0x08, 0x00, 0x7C},
}

// PostBootPC and PostBootSP are the same for every model.
const (
	PostBootPC uint16 = 0x0100
	PostBootSP uint16 = 0xFFFE
)
