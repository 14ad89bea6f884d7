package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbyte/config"
)

var (
	Version string
	Commit  string

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitcli",
	Short: "Build, inspect and store bit arrays",
	Long: `bitcli builds bit arrays from numbers, booleans, bit strings, bytes or text,
prints them in several formats and keeps named arrays in a data directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = newLogger(cfg.Level())
		if err != nil {
			return fmt.Errorf("failed to initialize zap logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	setFlags(rootCmd.PersistentFlags())
}

// setFlags defines the flags shared by all commands. Apart from --config,
// every flag name matches a config key.
func setFlags(flags *pflag.FlagSet) {
	def := config.DefaultConfig()

	flags.String("config", "", fmt.Sprintf("path to configuration file (default %s)", config.DefaultConfigFile))
	flags.String("datadir", def.DataDir, "directory holding the stored arrays")
	flags.String("format", def.Format, "output format (bits, table, dump, text)")
	flags.String("encoding", def.Encoding, "text encoding (ascii, utf8)")
	flags.String("log-level", def.LogLevel, "log level (debug, info, warn, error, dpanic, panic, fatal)")
	flags.Uint64("max-length", def.MaxLength, "maximum number of bits of a single array")
}

// loadConfig merges, in increasing priority, the defaults, the config file and
// the flags that were set on the command line.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	file, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	vip := viper.New()
	if err := bindFlags(vip, flags); err != nil {
		return nil, err
	}

	if err := loadConfigFile(vip, file); err != nil {
		return nil, err
	}

	c := config.DefaultConfig()
	if err := vip.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.DataDir = smutil.GetCanonicalPath(c.DataDir)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// bindFlags binds every flag to the config key of the same name.
func bindFlags(vip *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		err = vip.BindPFlag(f.Name, f)
	})
	return err
}

// loadConfigFile reads file into vip. The default config file is optional;
// an explicitly given one must exist.
func loadConfigFile(vip *viper.Viper, file string) error {
	if file == "" {
		if _, err := os.Stat(config.DefaultConfigFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		file = config.DefaultConfigFile
	}

	vip.SetConfigFile(smutil.GetCanonicalPath(file))
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
