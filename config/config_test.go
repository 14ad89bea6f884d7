package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbyte/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, zapcore.InfoLevel, cfg.Level())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		errMsg string
	}{
		{
			name:   "empty datadir",
			modify: func(cfg *config.Config) { cfg.DataDir = "" },
			errMsg: "invalid `DataDir`",
		},
		{
			name:   "unknown format",
			modify: func(cfg *config.Config) { cfg.Format = "yaml" },
			errMsg: "invalid `Format`",
		},
		{
			name:   "unknown encoding",
			modify: func(cfg *config.Config) { cfg.Encoding = "utf16" },
			errMsg: "invalid `Encoding`",
		},
		{
			name:   "unknown log level",
			modify: func(cfg *config.Config) { cfg.LogLevel = "loud" },
			errMsg: "invalid `LogLevel`",
		},
		{
			name:   "zero max length",
			modify: func(cfg *config.Config) { cfg.MaxLength = 0 },
			errMsg: "invalid `MaxLength`",
		},
		{
			name:   "max length too large",
			modify: func(cfg *config.Config) { cfg.MaxLength = config.MaxMaxLength + 1 },
			errMsg: "invalid `MaxLength`",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tt.modify(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestValidate_EncodingIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Encoding = "UTF-8"
	cfg.LogLevel = "debug"

	require.NoError(t, cfg.Validate())
	require.Equal(t, zapcore.DebugLevel, cfg.Level())
}
