package document

import (
	"strconv"

	"github.com/goliatone/go-docgen/pkg/record"
)

// DefaultTitle is the document heading used when callers do not override it,
// matching the estimate form the generator was built around.
const DefaultTitle = "견 적 서"

// TitleTransactionStatement is the alternate heading for transaction
// statement output.
const TitleTransactionStatement = "거 래 명 세 서"

// Placeholders flattens a record into the mapping consumed by template
// substitution. The monetary values pass through verbatim; the only derived
// entries are items_rows (see ItemRows) and total_quantity. Keys the template
// does not reference are simply unused.
func Placeholders(est record.Estimate, title string) map[string]string {
	if title == "" {
		title = DefaultTitle
	}

	return map[string]string{
		"title":            title,
		"doc_number":       est.DocNumber,
		"date":             est.Date,
		"total_amount":     est.TotalAmount,
		"supply_price":     est.SupplyPrice,
		"tax_amount":       est.TaxAmount,
		"receiver_name":    est.Receiver.Name,
		"receiver_manager": est.Receiver.Manager,
		"supplier_name":    est.Supplier.Name,
		"supplier_ceo":     est.Supplier.CEO,
		"supplier_reg_id":  est.Supplier.RegID,
		"supplier_address": est.Supplier.Address,
		"supplier_contact": est.Supplier.Contact,
		"items_rows":       ItemRows(est.Items),
		"total_quantity":   strconv.Itoa(totalQuantity(est.Items)),
	}
}
