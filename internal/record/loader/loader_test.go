package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-docgen/pkg/record"
)

const fixtureJSON = `{
  "doc_number": "20251113-01",
  "date": "2025년 11월 13일",
  "total_amount": "970,000",
  "supply_price": "881,818",
  "tax_amount": "88,182",
  "receiver": {"name": "A", "manager": "B"},
  "supplier": {"name": "C", "ceo": "D", "reg_id": "508-09-72976", "address": "E", "contact": "F"},
  "items": [{"name": "Poster", "quantity": 1, "price": "881,818", "total": "881,818"}]
}`

func TestLoad_FileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimate.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := New(record.LoaderOptions{})
	est, err := loader.Load(context.Background(), record.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if est.DocNumber != "20251113-01" {
		t.Fatalf("unexpected doc number %q", est.DocNumber)
	}
	if len(est.Items) != 1 || est.Items[0].Name != "Poster" {
		t.Fatalf("unexpected items %+v", est.Items)
	}
}

func TestLoad_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"records/estimate.json": &fstest.MapFile{Data: []byte(fixtureJSON)},
	}

	loader := New(record.LoaderOptions{FileSystem: fsys})
	est, err := loader.Load(context.Background(), record.SourceFromFS("records/estimate.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if est.Supplier.RegID != "508-09-72976" {
		t.Fatalf("unexpected supplier %+v", est.Supplier)
	}
}

func TestLoad_NilSource(t *testing.T) {
	loader := New(record.LoaderOptions{})
	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := New(record.LoaderOptions{})
	_, err := loader.Load(ctx, record.SourceFromFile("whatever.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"doc_number": `), "broken.json")

	var parseErr *record.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if parseErr.Location != "broken.json" {
		t.Fatalf("expected location in error, got %q", parseErr.Location)
	}
}

func TestDecode_MissingTopLevelField(t *testing.T) {
	// Full record with the supplier object removed entirely.
	raw := `{
	  "doc_number": "20251113-01",
	  "date": "2025년 11월 13일",
	  "total_amount": "970,000",
	  "supply_price": "881,818",
	  "tax_amount": "88,182",
	  "receiver": {"name": "A", "manager": "B"},
	  "items": []
	}`

	_, err := Decode([]byte(raw), "no-supplier.json")

	var schemaErr *record.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Field != "supplier.name" {
		t.Fatalf("expected first missing supplier field, got %q", schemaErr.Field)
	}
}

func TestDecode_MissingItems(t *testing.T) {
	raw := `{
	  "doc_number": "20251113-01",
	  "date": "2025년 11월 13일",
	  "total_amount": "970,000",
	  "supply_price": "881,818",
	  "tax_amount": "88,182",
	  "receiver": {"name": "A", "manager": "B"},
	  "supplier": {"name": "C", "ceo": "D", "reg_id": "1", "address": "E", "contact": "F"}
	}`

	_, err := Decode([]byte(raw), "no-items.json")

	var schemaErr *record.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Field != "items" {
		t.Fatalf("expected items field, got %q", schemaErr.Field)
	}
}

func TestDecode_EmptyItemsAllowed(t *testing.T) {
	raw := `{
	  "doc_number": "20251113-01",
	  "date": "2025년 11월 13일",
	  "total_amount": "970,000",
	  "supply_price": "881,818",
	  "tax_amount": "88,182",
	  "receiver": {"name": "A", "manager": "B"},
	  "supplier": {"name": "C", "ceo": "D", "reg_id": "1", "address": "E", "contact": "F"},
	  "items": []
	}`

	est, err := Decode([]byte(raw), "empty-items.json")
	if err != nil {
		t.Fatalf("empty items must decode, got %v", err)
	}
	if est.Items == nil || len(est.Items) != 0 {
		t.Fatalf("expected present empty items, got %+v", est.Items)
	}
}
