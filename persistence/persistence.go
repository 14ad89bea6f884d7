// Package persistence stores bit arrays in a data directory, one file per array.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/sha256-simd"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbyte/bitarray"
	"github.com/spacemeshos/bitbyte/shared"
)

const (
	FileExtension = ".bits"

	OwnerReadWriteExec = 0o700

	recordVersion = 1
)

// record is the on-disk layout of a stored array. Data holds the canonical
// bit stream of the array, so bits beyond Length are always zero.
type record struct {
	Version  uint32
	Length   uint64
	Data     []byte
	Checksum []byte
}

type ChecksumMismatchError struct {
	Name     string
	Expected []byte
	Actual   []byte
}

func (err ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for array %q: expected %x, actual %x", err.Name, err.Expected, err.Actual)
}

type VersionMismatchError struct {
	Name     string
	Expected uint32
	Found    uint32
}

func (err VersionMismatchError) Error() string {
	return fmt.Sprintf("array %q version mismatch; expected: %d, found: %d", err.Name, err.Expected, err.Found)
}

// Filename returns the path of the file holding the array name within dir.
func Filename(dir, name string) string {
	return filepath.Join(dir, name+FileExtension)
}

// Save writes a to dir under name, replacing any array stored with the same name.
func Save(dir, name string, a *bitarray.BitArray, opts ...OptionFunc) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	if !shared.ValidName(name) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidName, name)
	}
	if uint64(a.Len()) > o.maxLength {
		return fmt.Errorf("array too long; expected: <= %d bits, given: %d", o.maxLength, a.Len())
	}

	var data bytes.Buffer
	if _, err := a.WriteTo(&data); err != nil {
		return fmt.Errorf("bits serialization failure: %w", err)
	}
	sum := sha256.Sum256(data.Bytes())

	rec := record{
		Version:  recordVersion,
		Length:   uint64(a.Len()),
		Data:     data.Bytes(),
		Checksum: sum[:],
	}
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, &rec); err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}

	if err := os.MkdirAll(dir, OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}

	required := uint64(w.Len())
	if available := shared.AvailableSpace(dir); required > available {
		return shared.NotEnoughSpaceError{Required: required, Available: available, DataDir: dir}
	}

	filename := Filename(dir, name)
	if err := atomic.WriteFile(filename, &w); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	o.logger.Info("persistence: saved array",
		zap.String("name", name),
		zap.Int("length", a.Len()),
		zap.String("file", filename),
	)
	return nil
}

// Load reads the array stored in dir under name.
// It returns shared.ErrArrayNotExist if there is no such array.
func Load(dir, name string, opts ...OptionFunc) (*bitarray.BitArray, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if !shared.ValidName(name) {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidName, name)
	}

	filename := Filename(dir, name)
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.ErrArrayNotExist
		}
		return nil, fmt.Errorf("read file failure: %w", err)
	}
	defer f.Close()

	var rec record
	if _, err := xdr.Unmarshal(f, &rec); err != nil {
		return nil, fmt.Errorf("deserialization failure: %w", err)
	}

	if rec.Version != recordVersion {
		return nil, VersionMismatchError{Name: name, Expected: recordVersion, Found: rec.Version}
	}

	sum := sha256.Sum256(rec.Data)
	if !bytes.Equal(sum[:], rec.Checksum) {
		return nil, ChecksumMismatchError{Name: name, Expected: rec.Checksum, Actual: sum[:]}
	}

	if rec.Length > o.maxLength {
		return nil, fmt.Errorf("array %q too long; expected: <= %d bits, found: %d", name, o.maxLength, rec.Length)
	}
	if uint64(shared.NumBytes(int(rec.Length))) != uint64(len(rec.Data)) {
		return nil, fmt.Errorf("array %q is inconsistent; length: %d bits, data: %d bytes", name, rec.Length, len(rec.Data))
	}

	a, err := bitarray.Read(bytes.NewReader(rec.Data), int(rec.Length), bitarray.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	o.logger.Debug("persistence: loaded array", zap.String("name", name), zap.Int("length", a.Len()))
	return a, nil
}

// List returns the names of the arrays stored in dir, sorted.
// A missing dir holds no arrays.
func List(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != FileExtension {
			continue
		}
		name := strings.TrimSuffix(file.Name(), FileExtension)
		if shared.ValidName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the array stored in dir under name.
func Remove(dir, name string) error {
	if !shared.ValidName(name) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidName, name)
	}

	if err := os.Remove(Filename(dir, name)); err != nil {
		if os.IsNotExist(err) {
			return shared.ErrArrayNotExist
		}
		return fmt.Errorf("failed to delete array (%v): %w", name, err)
	}
	return nil
}
