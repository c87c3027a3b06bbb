package doc

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleJSON = `{
	"title": "ETL Pipeline",
	"process_overview": "loads and transforms data",
	"detailed_steps": ["extract", "transform", "load"],
	"input_tables": ["raw.events", "raw.users"],
	"output_table_schema": [
		{"column": "id", "type": "INT", "description": "primary key"}
	],
	"data_lineage": {"id": "raw.events.event_id"},
	"dependencies_and_scheduling": "daily cron",
	"error_handling_and_logging": "retries with logging",
	"data_validation_and_dex_checks": "row counts"
}`

func TestParse(t *testing.T) {
	d, err := Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if d.Title != "ETL Pipeline" {
		t.Errorf("title = %q", d.Title)
	}
	if len(d.DetailedSteps) != 3 {
		t.Errorf("expected 3 steps, got %d", len(d.DetailedSteps))
	}
	if len(d.OutputTableSchema) != 1 || d.OutputTableSchema[0].Column != "id" {
		t.Errorf("unexpected schema: %+v", d.OutputTableSchema)
	}
	if d.DataLineage["id"] != "raw.events.event_id" {
		t.Errorf("unexpected lineage: %v", d.DataLineage)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"The pipeline loads data from...",
		"```json\n{}\n```",
		`{"title": "x",`,
	}
	for _, input := range tests {
		_, err := Parse(input)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("Parse(%q): expected ErrMalformedResponse, got %v", input, err)
		}
	}
}

func TestSave(t *testing.T) {
	d, err := Parse(sampleJSON)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "doc_output.json")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var roundTrip Document
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if roundTrip.Title != d.Title {
		t.Errorf("round-trip title = %q, want %q", roundTrip.Title, d.Title)
	}
}
