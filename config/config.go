package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbyte/bitarray"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataDirName    = "data"
	DefaultFormat         = FormatBits
	DefaultEncoding       = bitarray.EncodingASCII
	DefaultLogLevel       = "info"

	// 1MB of storage.
	DefaultMaxLength = 8 << 20
	MaxMaxLength     = 8 << 30
)

const (
	FormatBits  = "bits"
	FormatTable = "table"
	FormatDump  = "dump"
	FormatText  = "text"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "bitbyte")
	DefaultDataDir    = filepath.Join(DefaultHomeDir, DefaultDataDirName)
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)

	formats   = []string{FormatBits, FormatTable, FormatDump, FormatText}
	encodings = []string{bitarray.EncodingASCII, bitarray.EncodingUTF8, "utf-8"}
)

type Config struct {
	DataDir  string `mapstructure:"datadir"`
	Format   string `mapstructure:"format"`
	Encoding string `mapstructure:"encoding"`
	LogLevel string `mapstructure:"log-level"`

	// MaxLength caps the number of bits of a single array built or loaded by the tool.
	MaxLength uint64 `mapstructure:"max-length"`
}

func (cfg *Config) Validate() error {
	if cfg.DataDir == "" {
		return fmt.Errorf("invalid `DataDir`; expected: non-empty path, given: %q", cfg.DataDir)
	}

	if !contains(formats, cfg.Format) {
		return fmt.Errorf("invalid `Format`; expected: one of %v, given: %q", formats, cfg.Format)
	}

	if !contains(encodings, strings.ToLower(cfg.Encoding)) {
		return fmt.Errorf("invalid `Encoding`; expected: one of %v, given: %q", encodings, cfg.Encoding)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	if cfg.MaxLength == 0 || cfg.MaxLength > MaxMaxLength {
		return fmt.Errorf("invalid `MaxLength`; expected: (0, %d], given: %d", uint64(MaxMaxLength), cfg.MaxLength)
	}

	return nil
}

// Level returns the parsed log level, assuming the config is valid.
func (cfg *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		Format:    DefaultFormat,
		Encoding:  DefaultEncoding,
		LogLevel:  DefaultLogLevel,
		MaxLength: DefaultMaxLength,
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
