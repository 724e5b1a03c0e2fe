package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	indexcmd "github.com/fwmirror/fwmirror/cmd/fwmirror/cmd/index"
	manifestcmd "github.com/fwmirror/fwmirror/cmd/fwmirror/cmd/manifest"
	"github.com/fwmirror/fwmirror/internal/cmd/output"
)

// Execute runs the fwmirror CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all
// subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fwmirror",
		Short:   "Firmware mirror index toolkit",
		Version: a.version,
		Long: `fwmirror maintains a firmware mirror repository: it keeps per-region
manifests of mirrored fastboot packages and regenerates the
region-grouped version index in the mirror README.

Release packages themselves are downloaded and uploaded by the mirror
workflow; fwmirror only manages metadata and rendered text.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.fwmirror.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&a.config.ManifestDir, "manifests", a.config.ManifestDir, "manifest directory")
	rootCmd.PersistentFlags().StringVar(&a.config.ReadmePath, "readme", a.config.ReadmePath, "README file holding the index")

	rootCmd.SetVersionTemplate("fwmirror {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags. These flags are defined as
	// persistent flags in createRootCommand, so errors indicate
	// programming errors.
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reject an invalid format up front, whatever its source (flag,
	// environment, config file), instead of silently falling back to
	// the table formatter later.
	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(indexcmd.NewCommand(a))
	rootCmd.AddCommand(manifestcmd.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("fwmirror %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag
// doesn't exist. This should only be used for flags defined in this
// package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag
// doesn't exist. This should only be used for flags defined in this
// package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
