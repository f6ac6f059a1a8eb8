package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by all commands.
type app struct {
	cfg *viper.Viper
	log *zap.Logger
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{cfg: viper.New(), log: zap.NewNop(), out: out}
	var cfgFile string

	root := &cobra.Command{
		Use:   "hxhead",
		Short: "Compose and render HTML head elements",
		Long: `hxhead renders head manifests to markup and generates favicon markup
from a directory of icons.

Examples:
  hxhead render head.yaml                 Render a manifest
  hxhead render --skip-title head.yaml    Render everything but <title>
  hxhead encode --sealed head.yaml        Pack a manifest into a token
  hxhead render --token <token>           Render a packed manifest
  hxhead favicons --prefix /static ./web  Generate favicon markup`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cfgFile); err != nil {
				return err
			}
			log, err := newLogger(a.cfg.GetString("log-level"))
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .hxhead.yaml)")
	root.PersistentFlags().StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("key", "", "key for signing and sealing manifest tokens")
	_ = a.cfg.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = a.cfg.BindPFlag("key", root.PersistentFlags().Lookup("key"))

	root.AddCommand(
		newRenderCmd(a),
		newEncodeCmd(a),
		newFaviconsCmd(a),
		newVersionCmd(a),
	)
	return root
}

// loadConfig reads the config file and binds HXHEAD_* variables. A missing
// default config file is not an error.
func (a *app) loadConfig(cfgFile string) error {
	if cfgFile != "" {
		a.cfg.SetConfigFile(cfgFile)
	} else {
		a.cfg.AddConfigPath(".")
		a.cfg.SetConfigType("yaml")
		a.cfg.SetConfigName(".hxhead")
	}

	a.cfg.SetEnvPrefix("HXHEAD")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.cfg.AutomaticEnv()

	if err := a.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// openInput opens path for reading, or stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
