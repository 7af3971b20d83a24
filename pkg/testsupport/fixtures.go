package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/record"
)

// SampleEstimate returns the canonical fixture record used across package
// tests. Testing helpers fail the test on error to keep contract tests
// concise.
func SampleEstimate() record.Estimate {
	return record.Estimate{
		DocNumber:   "20251113-01",
		Date:        "2025년 11월 13일",
		TotalAmount: "970,000",
		SupplyPrice: "881,818",
		TaxAmount:   "88,182",
		Receiver: record.Receiver{
			Name:    "A",
			Manager: "B",
		},
		Supplier: record.Supplier{
			Name:    "C",
			CEO:     "D",
			RegID:   "508-09-72976",
			Address: "E",
			Contact: "F",
		},
		Items: []record.LineItem{
			{Name: "Poster", Quantity: 1, Price: "881,818", Total: "881,818"},
		},
	}
}

// WriteRecordFile marshals an Estimate to JSON inside dir and returns the
// file path.
func WriteRecordFile(t *testing.T, dir, name string, est record.Estimate) string {
	t.Helper()

	data, err := json.Marshal(est)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteFile writes raw bytes inside dir and returns the file path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// StubRenderer is a deterministic pdf.Renderer for pipeline tests: it records
// the last request and returns the HTML bytes prefixed with a PDF header so
// output inspection can assert on substituted content.
type StubRenderer struct {
	RenderCount int
	LastRequest *pdf.RenderRequest
	Err         error
}

// Ensure the stub satisfies the renderer contract.
var _ pdf.Renderer = (*StubRenderer)(nil)

func (s *StubRenderer) Name() string {
	return "stub"
}

func (s *StubRenderer) Render(ctx context.Context, req *pdf.RenderRequest) (*pdf.RenderResult, error) {
	s.RenderCount++
	s.LastRequest = req
	if s.Err != nil {
		return nil, s.Err
	}
	return &pdf.RenderResult{
		PDFData: append([]byte("%PDF-stub\n"), []byte(req.HTML)...),
	}, nil
}

func (s *StubRenderer) Close() error {
	return nil
}
