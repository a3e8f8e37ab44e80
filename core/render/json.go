// Package render: JSON renderer.
// Wraps the normalized fields in the generatedOutputs container that content
// records persist verbatim.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/mixnorm/core"
)

// JSONRenderer produces the storage JSON for a set of fields.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals outputs inside a generatedOutputs object.
func (r *JSONRenderer) Render(outputs map[string]core.NormalizedContent) ([]byte, error) {
	if outputs == nil {
		outputs = map[string]core.NormalizedContent{}
	}
	data, err := json.MarshalIndent(core.GeneratedOutputs{GeneratedOutputs: outputs}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
