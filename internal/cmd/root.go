package cmd

import (
	"bufio"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the flag values for the root command.
type rootOptions struct {
	root       string
	mode       string
	output     string
	logLevel   string
	configPath string
	fileLog    bool
}

// NewRootCommand creates and returns the root cobra command for dupfinder
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dupfinder",
		Short: "Report files that share a name across a directory tree",
		Long: `dupfinder scans a directory tree and reports every filename that
appears in more than one location, with the full path of each copy.

Files are matched by name only; contents are not compared. Directories
that cannot be read are skipped with a warning and the scan continues.

Without flags, dupfinder asks for the directory to scan, where to write
the report (console, file or both) and, for file output, the file path.
Flags and .dupfinder/config.yaml can answer any of those questions up front.`,
		Example: `  # Interactive
  dupfinder

  # Scan a tree and print the report
  dupfinder --root ~/Music --mode c

  # Write the report to a file
  dupfinder -r ~/Music -m f -o dups.txt`,
		Version: Version,
		Args:    cobra.NoArgs,
		// main prints the error; silence usage and cobra's own copy
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := &DefaultPromptReader{reader: bufio.NewReader(cmd.InOrStdin())}
			return runFinder(cmd, opts, reader)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Directory to scan (prompted for when omitted)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Report destination: c (console), f (file) or b (both)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Report file for file or both modes")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default .dupfinder/config.yaml)")
	cmd.Flags().BoolVar(&opts.fileLog, "log-file", false, "Also write diagnostics to the configured log directory")

	return cmd
}
