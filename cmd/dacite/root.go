// Command dacite exposes the identity engine (fuse, typeid, value, hamt,
// fingertree) and its store/sync collaborators as a CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dacite/dacite/configuration"
	"github.com/dacite/dacite/internal/dcontext"
	"github.com/dacite/dacite/version"
)

var configPath string

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a dacite configuration file")
	RootCmd.AddCommand(HashCmd)
	RootCmd.AddCommand(TypeHashCmd)
	RootCmd.AddCommand(FuseCmd)
	RootCmd.AddCommand(PutCmd)
	RootCmd.AddCommand(GetCmd)
	RootCmd.AddCommand(VersionCmd)
}

// RootCmd is the main command for the 'dacite' binary.
var RootCmd = &cobra.Command{
	Use:   "dacite",
	Short: "`dacite` computes and stores content-addressed identities",
	Long:  "`dacite` computes and stores content-addressed identities.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := loadConfiguration(); err == nil {
			applyLogConfig(cfg.Log)
			maybeServeMetrics(cfg)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// nolint:errcheck
		cmd.Usage()
	},
}

// VersionCmd prints the build version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		version.PrintVersion()
	},
}

// loadConfiguration parses configPath if set, or returns a default
// in-memory-store configuration otherwise so single-shot commands like
// hash/fuse/type-hash work without a config file at all.
func loadConfiguration() (*configuration.Configuration, error) {
	if configPath == "" {
		return &configuration.Configuration{
			Version: configuration.CurrentVersion,
			Log:     configuration.Log{Level: "info"},
			Store:   configuration.Store{"memory": configuration.Parameters{}},
		}, nil
	}

	fp, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", configPath, err)
	}
	defer fp.Close()

	cfg, err := configuration.Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	return cfg, nil
}

// applyLogConfig replaces the package default logger with one configured
// from cfg so every later GetLogger call (which falls back to the default
// whenever no context-scoped logger is set) picks up the requested level and
// formatter.
func applyLogConfig(cfg configuration.Log) {
	base := logrus.New()
	if cfg.Formatter == "json" {
		base.Formatter = &logrus.JSONFormatter{}
	}
	if cfg.Level != "" {
		if lvl, err := logrus.ParseLevel(string(cfg.Level)); err == nil {
			base.Level = lvl
		}
	}
	base.ReportCaller = cfg.ReportCaller
	dcontext.SetDefaultLogger(logrus.NewEntry(base).WithFields(logrus.Fields(cfg.Fields)))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// cliContext returns a background context stamped with a logger through
// dcontext before passing it down into the engine.
func cliContext() context.Context {
	ctx := dcontext.WithInstanceID(context.Background(), "dacite-cli")
	return dcontext.WithLogger(ctx, dcontext.GetLogger(ctx))
}
