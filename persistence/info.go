package persistence

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// NumBytesStored returns the total size of the array files in dir that satisfy predicate.
// A nil predicate includes every array file.
func NumBytesStored(dir string, predicate func(fs.FileInfo) bool) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var numBytes uint64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != FileExtension {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if predicate != nil && !predicate(info) {
			continue
		}
		numBytes += uint64(info.Size())
	}

	return numBytes, nil
}
