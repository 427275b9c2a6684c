package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/dupfinder/internal/config"
	"github.com/harrison/dupfinder/internal/display"
	"github.com/harrison/dupfinder/internal/finder"
	"github.com/harrison/dupfinder/internal/logger"
	"github.com/harrison/dupfinder/internal/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runFinder resolves settings, scans the chosen root and writes the report.
// Questions not answered by flags or config are asked through reader.
func runFinder(cmd *cobra.Command, opts *rootOptions, reader PromptReader) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	outColor := colorEnabled(cfg.Color, out)
	errColor := colorEnabled(cfg.Color, errOut)

	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	console.SetColor(errColor)

	var log logger.Logger = console
	if cfg.FileLogging {
		fileLogger, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to start file logging: %w", err)
		}
		defer fileLogger.Close()
		log = logger.Tee{console, fileLogger}
	}

	p := newPrompter(reader, out, outColor)

	root := opts.root
	if root == "" {
		root, err = p.askRoot()
		if err != nil {
			return err
		}
		if root == "" {
			return nil
		}
	}

	result, err := finder.New(log).Scan(root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	var mode report.Mode
	if cfg.OutputMode != "" {
		mode, err = report.ParseMode(cfg.OutputMode)
		if err != nil {
			return err
		}
	} else {
		mode, err = p.askMode()
		if err != nil {
			return err
		}
	}

	outputPath := cfg.OutputPath
	if mode.ToFile() && outputPath == "" {
		outputPath, err = p.askOutputPath()
		if err != nil {
			return err
		}
	}

	target := report.Target{
		Mode:    mode,
		Path:    outputPath,
		Console: out,
		Color:   outColor,
	}
	if err := report.Emit(result, target); err != nil {
		return err
	}

	if len(result.Skipped) > 0 {
		display.WarnSkipped(result.Skipped).Display(errOut, errColor)
	}
	if mode.ToFile() {
		log.LogInfo(fmt.Sprintf("Report written to %s", outputPath))
	}
	log.LogSummary(result)

	return nil
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadConfig(opts.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, mode, output *string
	var fileLog *bool
	if cmd.Flags().Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if cmd.Flags().Changed("mode") {
		mode = &opts.mode
	}
	if cmd.Flags().Changed("output") {
		output = &opts.output
	}
	if cmd.Flags().Changed("log-file") {
		fileLog = &opts.fileLog
	}
	cfg.MergeWithFlags(logLevel, mode, output, fileLog)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// colorEnabled applies the color setting to w. "auto" enables color only for
// terminals, and never when NO_COLOR is set.
func colorEnabled(setting string, w io.Writer) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
