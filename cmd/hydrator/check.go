package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hydrator/internal/diagnostic"
	"hydrator/internal/schema"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [schema]",
		Short: "Validate a binding file",
		Long: `Validate a binding file and print its diagnostics. Go types are not
resolved, so unknown types and fields are not reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Schema
			if len(args) == 1 {
				path = args[0]
			}

			f, err := schema.LoadFile(path)
			if err != nil {
				return err
			}

			res := schema.Validate(f, nil)
			a.logger.Debug("schema checked", zap.String("path", path), zap.Int("types", len(f.Types)),
				zap.Int("errors", len(res.Errors)), zap.Int("warnings", len(res.Warnings)))

			out := cmd.OutOrStdout()
			for _, d := range res.All() {
				writeDiagnostic(out, d, a.cfg.NoColor)
			}

			summary := fmt.Sprintf("%s: %d type(s), %d error(s), %d warning(s)",
				path, len(f.Types), len(res.Errors), len(res.Warnings))

			if res.HasErrors() {
				fmt.Fprintln(out, summary)
				return fmt.Errorf("%s is invalid", path)
			}

			ok := color.New(color.FgGreen, color.Bold)
			if a.cfg.NoColor {
				ok.DisableColor()
			}

			ok.Fprintln(out, summary)

			return nil
		},
	}
}

func writeDiagnostic(w io.Writer, d diagnostic.Diagnostic, noColor bool) {
	var c *color.Color

	switch d.Severity {
	case diagnostic.SeverityError:
		c = color.New(color.FgRed, color.Bold)
	case diagnostic.SeverityWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}

	if noColor {
		c.DisableColor()
	}

	c.Fprintf(w, "%-7s ", d.Severity)
	fmt.Fprintln(w, d.String())
}
