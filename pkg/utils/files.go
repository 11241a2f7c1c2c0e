package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive contains no files.
var ErrEmptyArchive = errors.New("utils: empty archive")

// LoadFile loads the given file and performs decompression if necessary.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("utils: loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the file extension ext.
// Archives (.zip, .7z) yield their first file. Unknown extensions
// return the data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
