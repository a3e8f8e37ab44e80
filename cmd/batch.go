// Package cmd: batch command.
// Normalizes whole generated-output maps against their field definitions.
// Input files are processed concurrently; results are written in argument order.
package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/gaurav-prasanna/mixnorm/core/normalize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Flag variables.
var (
	flagBatchFields string
	flagBatchFormat string
	flagBatchOutDir string
)

var batchCmd = &cobra.Command{
	Use:   "batch <outputs.json>...",
	Short: "Normalize maps of field id to raw value",
	Long: `Batch reads JSON objects mapping field ids to raw values (optionally wrapped
in a "generatedOutputs" object) and normalizes every field using the types
declared in --fields. Fields without a declaration are treated as plain text.

Examples:
  mixnorm batch outputs.json --fields template.yaml
  mixnorm batch a.json b.json --fields fields.json --format markdown --output_dir ./out`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&flagBatchFields, "fields", "", "YAML or JSON file listing {id, type} field definitions")
	batchCmd.Flags().StringVar(&flagBatchFormat, "format", formatJSON, "Output format: json, markdown or pdf")
	batchCmd.Flags().StringVar(&flagBatchOutDir, "output_dir", "", "Output directory (default: stdout)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer(flagBatchFormat)
	if err != nil {
		return err
	}

	var fields []core.FieldDefinition
	if flagBatchFields != "" {
		if fields, err = loadFields(flagBatchFields); err != nil {
			return err
		}
	}

	logger := newLogger()
	engine := normalize.New(normalize.WithLogger(logger))

	rendered := make([][]byte, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		g.Go(func() error {
			outputs, err := loadOutputs(path)
			if err != nil {
				return err
			}
			normalized := engine.NormalizeOutputsMap(outputs, fields)
			logger.Debug().Str("file", path).Int("fields", len(normalized)).Msg("normalized batch")

			data, err := renderer.Render(normalized)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", path, err)
			}
			rendered[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range args {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := emit(cmd, flagBatchOutDir, name, rendered[i], renderer.Extension()); err != nil {
			return err
		}
	}
	return nil
}
