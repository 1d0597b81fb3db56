package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hydrator/converter"
	"hydrator/fields"
	"hydrator/internal/schema"
)

const (
	directionExtract = "extract"
	directionHydrate = "hydrate"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		schemaFlag string
		typeName   string
		direction  string
		dump       bool
	)

	cmd := &cobra.Command{
		Use:   "apply [input.yaml]",
		Short: "Extract or hydrate a YAML mapping through a binding",
		Long: `Apply the strategies, filters and naming of one binding to a flat YAML
mapping. Input is read from the given file, or stdin when omitted or "-".

  extract: field names in, extracted keys and values out
  hydrate: extracted keys in, field names and hydrated values out`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if direction != directionExtract && direction != directionHydrate {
				return fmt.Errorf("--direction must be %s or %s, got %q", directionExtract, directionHydrate, direction)
			}

			path := a.schemaPath(schemaFlag)

			f, err := schema.LoadFile(path)
			if err != nil {
				return err
			}

			c, err := schema.Converter(f, typeName, converter.MappingConverter{}, converter.WithLogger(a.logger))
			if err != nil {
				return err
			}

			in, err := readMapping(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			a.logger.Debug("applying binding", zap.String("schema", path), zap.String("type", typeName),
				zap.String("direction", direction), zap.Int("fields", in.Len()))

			out, err := apply(c, direction, in)
			if err != nil {
				return err
			}

			if dump {
				spew.Fdump(cmd.ErrOrStderr(), out.ToMap())
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&schemaFlag, "schema", "", "binding file (defaults to the configured schema)")
	flags.StringVarP(&typeName, "type", "t", "", "bound type name, e.g. store.Customer")
	flags.StringVarP(&direction, "direction", "d", directionExtract, "extract or hydrate")
	flags.BoolVar(&dump, "dump", false, "dump the result to stderr")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func apply(c converter.Converter, direction string, in *fields.Mapping) (*fields.Mapping, error) {
	if direction == directionExtract {
		return c.Extract(in)
	}

	hydrated, err := c.Hydrate(in, nil)
	if err != nil {
		return nil, err
	}

	out, ok := hydrated.(*fields.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: hydration returned %T", converter.ErrInvalidObject, hydrated)
	}

	return out, nil
}

func readMapping(stdin io.Reader, args []string) (*fields.Mapping, error) {
	var (
		data []byte
		err  error
	)

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	m := fields.New(0)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	return m, nil
}
