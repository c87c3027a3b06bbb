// Package doc defines the structured JSON documentation artifact.
package doc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformedResponse marks model output that is not valid structured JSON.
var ErrMalformedResponse = errors.New("model did not return valid JSON")

// Document is the structured documentation produced by the export command.
type Document struct {
	Title                      string            `json:"title"`
	ProcessOverview            string            `json:"process_overview"`
	DetailedSteps              []string          `json:"detailed_steps"`
	InputTables                []string          `json:"input_tables"`
	OutputTableSchema          []SchemaColumn    `json:"output_table_schema"`
	DataLineage                map[string]string `json:"data_lineage"`
	DependenciesAndScheduling  string            `json:"dependencies_and_scheduling"`
	ErrorHandlingAndLogging    string            `json:"error_handling_and_logging"`
	DataValidationAndDexChecks string            `json:"data_validation_and_dex_checks"`
}

// SchemaColumn describes one column of the output table schema.
type SchemaColumn struct {
	Column      string `json:"column"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Parse decodes model output into a Document. Any JSON syntax or shape error
// is reported as ErrMalformedResponse; nothing is ever written on failure.
func Parse(s string) (*Document, error) {
	var d Document
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &d, nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
