package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/record"
)

func sampleEstimate() record.Estimate {
	return record.Estimate{
		DocNumber:   "20251113-01",
		Date:        "2025년 11월 13일",
		TotalAmount: "970,000",
		SupplyPrice: "881,818",
		TaxAmount:   "88,182",
		Receiver:    record.Receiver{Name: "A", Manager: "B"},
		Supplier:    record.Supplier{Name: "C", CEO: "D", RegID: "508-09-72976", Address: "E", Contact: "F"},
		Items:       []record.LineItem{{Name: "Poster", Quantity: 1, Price: "881,818", Total: "881,818"}},
	}
}

func TestPlaceholders_MappingShape(t *testing.T) {
	mapping := Placeholders(sampleEstimate(), "")

	want := map[string]string{
		"title":            DefaultTitle,
		"doc_number":       "20251113-01",
		"date":             "2025년 11월 13일",
		"total_amount":     "970,000",
		"supply_price":     "881,818",
		"tax_amount":       "88,182",
		"receiver_name":    "A",
		"receiver_manager": "B",
		"supplier_name":    "C",
		"supplier_ceo":     "D",
		"supplier_reg_id":  "508-09-72976",
		"supplier_address": "E",
		"supplier_contact": "F",
		"items_rows":       ItemRows(sampleEstimate().Items),
		"total_quantity":   "1",
	}

	if diff := cmp.Diff(want, mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholders_TitleOverride(t *testing.T) {
	mapping := Placeholders(sampleEstimate(), TitleTransactionStatement)

	if mapping["title"] != TitleTransactionStatement {
		t.Fatalf("expected title override, got %q", mapping["title"])
	}
}

func TestPlaceholders_EmptyItems(t *testing.T) {
	est := sampleEstimate()
	est.Items = []record.LineItem{}

	mapping := Placeholders(est, "")

	if mapping["items_rows"] != "" {
		t.Fatalf("expected empty rows fragment, got %q", mapping["items_rows"])
	}
	if mapping["total_quantity"] != "0" {
		t.Fatalf("expected zero quantity, got %q", mapping["total_quantity"])
	}
}
