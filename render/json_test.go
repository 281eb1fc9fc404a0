package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/adpos/compare"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(Report{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []compare.Row
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if results == nil || len(results) != 0 {
		t.Fatalf("expected an empty array, got %s", buf.String())
	}
}

func TestJSONRendererRenderRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(testReport(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(results))
	}

	if results[0]["adposition"] != "across" {
		t.Errorf("expected adposition 'across', got %v", results[0]["adposition"])
	}

	// beyond never occurs in the Hemingway group
	last := results[len(results)-1]
	if last["adposition"] != "beyond" || last["ratio"] != nil {
		t.Errorf("expected null ratio for beyond, got %v", last)
	}
}
