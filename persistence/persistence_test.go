package persistence

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/natefinch/atomic"
	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/sha256-simd"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bitbyte/bitarray"
	"github.com/spacemeshos/bitbyte/config"
	"github.com/spacemeshos/bitbyte/shared"
)

func fromValue(t *testing.T, v interface{}) *bitarray.BitArray {
	t.Helper()
	a, err := bitarray.FromValue(v)
	require.NoError(t, err)
	return a
}

func fromSource(t *testing.T, src bitarray.Source) *bitarray.BitArray {
	t.Helper()
	a, err := bitarray.From(src)
	require.NoError(t, err)
	return a
}

func TestSaveAndLoad(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "data")
	logger := zaptest.NewLogger(t)

	a := fromValue(t, "Hello")
	req.NoError(Save(dir, "greeting", a, WithLogger(logger)))

	loaded, err := Load(dir, "greeting", WithLogger(logger))
	req.NoError(err)
	req.True(a.Equal(loaded))
	req.Equal("Hello", loaded.ToString(bitarray.EncodingUTF8))
}

func TestSave_Overwrites(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.NoError(Save(dir, "x", fromValue(t, true)))
	req.NoError(Save(dir, "x", fromValue(t, -1)))

	loaded, err := Load(dir, "x")
	req.NoError(err)
	req.Equal(32, loaded.Len())
}

func TestSave_CanonicalTail(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	a, err := bitarray.New(16)
	req.NoError(err)
	a.Fill(1)
	_, err = a.SetLength(10)
	req.NoError(err)

	req.NoError(Save(dir, "tail", a))

	loaded, err := Load(dir, "tail")
	req.NoError(err)
	req.Equal(10, loaded.Len())
	req.True(a.Equal(loaded))
	req.Equal([]byte{0xFF, 0xC0}, loaded.Bytes())
}

func TestSave_Empty(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.NoError(Save(dir, "empty", fromSource(t, bitarray.Empty{})))

	loaded, err := Load(dir, "empty")
	req.NoError(err)
	req.Equal(0, loaded.Len())
	req.Empty(loaded.Bytes())
}

func TestSave_InvalidName(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	for _, name := range []string{"", ".hidden", "../escape", "a/b"} {
		req.ErrorIs(Save(dir, name, fromValue(t, true)), shared.ErrInvalidName, name)
		_, err := Load(dir, name)
		req.ErrorIs(err, shared.ErrInvalidName, name)
		req.ErrorIs(Remove(dir, name), shared.ErrInvalidName, name)
	}
}

func TestMaxLength(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	a := fromValue(t, []int{-1, -1})
	req.Error(Save(dir, "words", a, WithMaxLength(32)))

	req.NoError(Save(dir, "words", a))
	_, err := Load(dir, "words", WithMaxLength(63))
	req.ErrorContains(err, "too long")
}

func TestInvalidOptions(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	a := fromValue(t, true)

	req.Error(Save(dir, "a", a, WithLogger(nil)))
	req.Error(Save(dir, "a", a, WithMaxLength(config.MaxMaxLength+1)))
	req.Error(Save(dir, "a", a, WithMaxLength(0)))

	names, err := List(dir)
	req.NoError(err)
	req.Empty(names)

	req.NoError(Save(dir, "a", a))
	_, err = Load(dir, "a", WithLogger(nil))
	req.Error(err)
}

func TestLoad_NotExist(t *testing.T) {
	_, err := Load(t.TempDir(), "missing")
	require.ErrorIs(t, err, shared.ErrArrayNotExist)
}

func writeRecord(t *testing.T, dir, name string, rec record) {
	var w bytes.Buffer
	_, err := xdr.Marshal(&w, &rec)
	require.NoError(t, err)
	require.NoError(t, atomic.WriteFile(Filename(dir, name), &w))
}

func TestLoad_ChecksumMismatch(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	sum := sha256.Sum256([]byte{0x01})
	writeRecord(t, dir, "tampered", record{
		Version:  recordVersion,
		Length:   8,
		Data:     []byte{0x02},
		Checksum: sum[:],
	})

	_, err := Load(dir, "tampered")
	var mismatch ChecksumMismatchError
	req.ErrorAs(err, &mismatch)
	req.Equal("tampered", mismatch.Name)
	req.Equal(sum[:], mismatch.Expected)
}

func TestLoad_VersionMismatch(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	sum := sha256.Sum256(nil)
	writeRecord(t, dir, "future", record{Version: recordVersion + 1, Checksum: sum[:]})

	_, err := Load(dir, "future")
	req.ErrorAs(err, &VersionMismatchError{})
}

func TestLoad_Inconsistent(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	data := []byte{0xFF, 0xFF}
	sum := sha256.Sum256(data)
	writeRecord(t, dir, "bad", record{Version: recordVersion, Length: 3, Data: data, Checksum: sum[:]})

	_, err := Load(dir, "bad")
	req.ErrorContains(err, "inconsistent")
}

func TestLoad_Corrupted(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.NoError(os.WriteFile(Filename(dir, "junk"), []byte{0x00, 0x01}, 0o600))

	_, err := Load(dir, "junk")
	req.ErrorContains(err, "deserialization failure")
}

func TestListAndRemove(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	names, err := List(filepath.Join(dir, "missing"))
	req.NoError(err)
	req.Empty(names)

	req.NoError(Save(dir, "b", fromValue(t, 1)))
	req.NoError(Save(dir, "a", fromValue(t, "a")))
	req.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	req.NoError(os.Mkdir(filepath.Join(dir, "sub"+FileExtension), 0o700))

	names, err = List(dir)
	req.NoError(err)
	req.Equal([]string{"a", "b"}, names)

	req.NoError(Remove(dir, "a"))
	req.ErrorIs(Remove(dir, "a"), shared.ErrArrayNotExist)

	names, err = List(dir)
	req.NoError(err)
	req.Equal([]string{"b"}, names)
}

func TestNumBytesStored(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	n, err := NumBytesStored(filepath.Join(dir, "missing"), nil)
	req.NoError(err)
	req.Zero(n)

	req.NoError(Save(dir, "a", fromValue(t, "a")))
	req.NoError(Save(dir, "b", fromValue(t, "bb")))
	req.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("xxxx"), 0o600))

	infoA, err := os.Stat(Filename(dir, "a"))
	req.NoError(err)
	infoB, err := os.Stat(Filename(dir, "b"))
	req.NoError(err)

	n, err = NumBytesStored(dir, nil)
	req.NoError(err)
	req.Equal(uint64(infoA.Size()+infoB.Size()), n)

	n, err = NumBytesStored(dir, func(info fs.FileInfo) bool { return info.Name() == "a"+FileExtension })
	req.NoError(err)
	req.Equal(uint64(infoA.Size()), n)
}
