package record

import (
	"fmt"
	"strings"
)

// Validate applies the fail-fast loading policy: every field the document
// builder will read must be present before a record is accepted. Absent and
// blank string fields are treated the same. Items must be present but may be
// empty; a per-item total may be blank (it is derived later), a per-item name
// may not. The location is carried into the returned SchemaError so batch
// output can name the offending file.
func Validate(est Estimate, location string) error {
	required := []struct {
		field string
		value string
	}{
		{"doc_number", est.DocNumber},
		{"date", est.Date},
		{"total_amount", est.TotalAmount},
		{"supply_price", est.SupplyPrice},
		{"tax_amount", est.TaxAmount},
		{"receiver.name", est.Receiver.Name},
		{"receiver.manager", est.Receiver.Manager},
		{"supplier.name", est.Supplier.Name},
		{"supplier.ceo", est.Supplier.CEO},
		{"supplier.reg_id", est.Supplier.RegID},
		{"supplier.address", est.Supplier.Address},
		{"supplier.contact", est.Supplier.Contact},
	}

	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			return &SchemaError{Location: location, Field: req.field}
		}
	}

	if est.Items == nil {
		return &SchemaError{Location: location, Field: "items"}
	}

	for i, item := range est.Items {
		if strings.TrimSpace(item.Name) == "" {
			return &SchemaError{Location: location, Field: fmt.Sprintf("items[%d].name", i)}
		}
	}

	return nil
}
