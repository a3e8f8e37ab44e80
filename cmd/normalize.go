// Package cmd: normalize command.
// Normalizes a single field value read from a file or stdin and writes the
// chosen export to stdout or to --output_dir.
package cmd

import (
	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/gaurav-prasanna/mixnorm/core/normalize"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagNormalizeType   string
	flagNormalizeField  string
	flagNormalizeFormat string
	flagNormalizeOutDir string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize one field value",
	Long: `Normalize reads a raw field value (from a file, or stdin when the file is
omitted or "-") and prints its normalized form.

Examples:
  mixnorm normalize answer.md --type richText
  echo '[{"question":"Q","answer":"A"}]' | mixnorm normalize --type faq
  mixnorm normalize notes.txt --format markdown --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&flagNormalizeType, "type", string(core.FieldRichText), "Field type: plainText, richText or faq")
	normalizeCmd.Flags().StringVar(&flagNormalizeField, "field", "content", "Field id used as the output key and file name")
	normalizeCmd.Flags().StringVar(&flagNormalizeFormat, "format", formatJSON, "Output format: json, markdown or pdf")
	normalizeCmd.Flags().StringVar(&flagNormalizeOutDir, "output_dir", "", "Output directory (default: stdout)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer(flagNormalizeFormat)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	raw, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	logger := newLogger()
	engine := normalize.New(normalize.WithLogger(logger))

	result := engine.EnsureNormalizedContent(string(raw), core.FieldType(flagNormalizeType))
	logger.Debug().
		Str("field", flagNormalizeField).
		Str("type", string(core.ParseFieldType(flagNormalizeType))).
		Int("words", result.WordCount).
		Msg("normalized")

	data, err := renderer.Render(map[string]core.NormalizedContent{flagNormalizeField: result})
	if err != nil {
		return err
	}
	return emit(cmd, flagNormalizeOutDir, flagNormalizeField, data, renderer.Extension())
}
