package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/gaurav-prasanna/mixnorm/core/output"
	"github.com/gaurav-prasanna/mixnorm/core/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatPDF      = "pdf"
)

// selectRenderer creates the Renderer for the requested output format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case formatJSON:
		return render.NewJSONRenderer(), nil
	case formatMarkdown, "md":
		return render.NewMarkdownRenderer(), nil
	case formatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q: use json, markdown or pdf", format)
	}
}

// readInput reads a file, or the command's stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// fieldsFile is the wrapped form of a field definitions file.
type fieldsFile struct {
	Fields []core.FieldDefinition `yaml:"fields"`
}

// loadFields reads field definitions from YAML or JSON, either as a bare
// list or under a top-level "fields" key.
func loadFields(path string) ([]core.FieldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fields %s: %w", path, err)
	}

	var list []core.FieldDefinition
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapped fieldsFile
	if err := yaml.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing fields %s: %w", path, err)
	}
	return wrapped.Fields, nil
}

// loadOutputs reads a JSON object of field id to raw value. Values stay
// undecoded so key order inside them survives. An object holding only a
// "generatedOutputs" object is unwrapped.
func loadOutputs(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outputs %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing outputs %s: %w", path, err)
	}
	if wrapped, ok := raw["generatedOutputs"]; ok && len(raw) == 1 {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(wrapped, &inner); err == nil && inner != nil {
			raw = inner
		}
	}

	outputs := make(map[string]any, len(raw))
	for key, value := range raw {
		outputs[key] = value
	}
	return outputs, nil
}

// emit writes data to stdout, or to outDir as <name><ext> when set.
func emit(cmd *cobra.Command, outDir, name string, data []byte, ext string) error {
	if outDir == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}

	writer, err := output.New(outDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(name, data, ext)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}
