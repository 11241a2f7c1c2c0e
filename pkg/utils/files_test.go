package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var payload = bytes.Repeat([]byte{0x31, 0xFE, 0xFF, 0xAF}, 64)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	var gz, x, z bytes.Buffer

	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	xw, err := xz.NewWriter(&x)
	require.NoError(t, err)
	_, err = xw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	zw := zip.NewWriter(&z)
	f, err := zw.Create("dmg_boot.bin")
	require.NoError(t, err)
	_, err = f.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for name, data := range map[string][]byte{
		"dmg_boot.bin":    payload,
		"dmg_boot":        payload,
		"dmg_boot.bin.gz": gz.Bytes(),
		"dmg_boot.bin.xz": x.Bytes(),
		"dmg_boot.ZIP":    z.Bytes(),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := LoadFile(writeFile(t, name, data))
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.True(t, os.IsNotExist(err))

	for _, name := range []string{"corrupt.gz", "corrupt.xz", "corrupt.zip", "corrupt.7z"} {
		_, err := LoadFile(writeFile(t, name, payload))
		assert.Error(t, err, name)
	}

	var z bytes.Buffer
	require.NoError(t, zip.NewWriter(&z).Close())
	_, err = LoadFile(writeFile(t, "empty.zip", z.Bytes()))
	assert.ErrorIs(t, err, ErrEmptyArchive)
}
