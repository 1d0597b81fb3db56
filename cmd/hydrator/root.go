package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hydrator/internal/cli/config"
)

// app carries state shared by subcommands once the root command has run.
type app struct {
	configDir string
	verbose   bool
	noColor   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hydrator",
		Short: "Check and apply object hydration bindings",
		Long: `hydrator reads YAML binding files that declare value strategies, filters
and naming per type, checks them and applies them to YAML mappings.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configDir, "config-dir", ".", "directory holding hydrator.yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}

	if a.noColor {
		cfg.NoColor = true
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.Named(cmd.Name())

	return nil
}

// schemaPath returns the flag value or the configured default.
func (a *app) schemaPath(flag string) string {
	if flag != "" {
		return flag
	}

	return a.cfg.Schema
}
