// Package main provides the CLI entry point for plotbridge.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/plotbridge-go/pkg/plotbridge"
)

type flags struct {
	dataPath   string
	layoutPath string
	outputPath string
	mode       string
	configPath string
	logLevel   string
	showDir    string
	pretty     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "plotbridge --data FILE --layout FILE",
		Short: "Render plotly traces and layout from JSON files",
		Long: `plotbridge reads a JSON list of traces and a JSON layout, strips the
fields plotly does not accept, and shows the resulting figure in a browser
or writes it as HTML, JSON, PNG or xlsx.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      f.checkInputs,
		RunE:         f.run,
	}

	bindFlags(cmd.Flags(), f)
	cmd.MarkFlagRequired("data")
	cmd.MarkFlagRequired("layout")
	cmd.MarkFlagFilename("data", "json")
	cmd.MarkFlagFilename("layout", "json")

	return cmd
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVar(&f.dataPath, "data", "", "input file with data")
	fs.StringVar(&f.layoutPath, "layout", "", "input file with layout")
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output file path (required for html, png, xlsx; json defaults to stdout)")
	fs.StringVar(&f.mode, "mode", string(plotbridge.ModeShow), "Output mode: show, html, json, png, xlsx")
	fs.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&f.configPath, "config", "", "YAML config file with default settings")
	fs.StringVar(&f.logLevel, "log-level", zerolog.WarnLevel.String(), "Log level: debug, info, warn, error")
	fs.StringVar(&f.showDir, "show-dir", "", "Directory for pages opened by show mode (default: system temp dir)")
}

// checkInputs rejects missing input files before any processing.
func (f *flags) checkInputs(cmd *cobra.Command, args []string) error {
	return plotbridge.CheckInputs(f.dataPath, f.layoutPath)
}

func (f *flags) run(cmd *cobra.Command, args []string) error {
	if f.configPath != "" {
		cfg, err := plotbridge.LoadConfig(f.configPath)
		if err != nil {
			return err
		}
		f.applyConfig(cmd.Flags(), cfg)
	}

	mode, err := plotbridge.ParseMode(f.mode)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}

	opts := plotbridge.DefaultOptions()
	opts.Mode = mode
	opts.OutputPath = f.outputPath
	opts.Pretty = f.pretty
	opts.ShowDir = f.showDir
	opts.Stdout = cmd.OutOrStdout()
	opts.Logger = logger

	return plotbridge.Run(f.dataPath, f.layoutPath, opts)
}

// applyConfig fills every flag not set on the command line from cfg.
func (f *flags) applyConfig(fs *pflag.FlagSet, cfg *plotbridge.Config) {
	if cfg.Mode != "" && !fs.Changed("mode") {
		f.mode = cfg.Mode
	}
	if cfg.Output != "" && !fs.Changed("output") {
		f.outputPath = cfg.Output
	}
	if cfg.Pretty && !fs.Changed("pretty") {
		f.pretty = true
	}
	if cfg.LogLevel != "" && !fs.Changed("log-level") {
		f.logLevel = cfg.LogLevel
	}
	if cfg.ShowDir != "" && !fs.Changed("show-dir") {
		f.showDir = cfg.ShowDir
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "plotbridge").
		Logger(), nil
}
