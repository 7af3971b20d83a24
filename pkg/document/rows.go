package document

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-docgen/pkg/record"
)

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// ItemRows renders the line-item table rows as a single HTML fragment. Rows
// keep the input order, which is document reading order, and are numbered
// from 1. Cell text is sanitized so record values cannot inject markup into
// the surrounding table. An empty item list yields an empty fragment; the
// template's table header still renders.
func ItemRows(items []record.LineItem) string {
	if len(items) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, item := range items {
		total := item.Total
		if strings.TrimSpace(total) == "" {
			total = deriveItemTotal(item)
		}

		buf.WriteString("<tr>")
		fmt.Fprintf(&buf, `<td class="seq">%d</td>`, i+1)
		fmt.Fprintf(&buf, `<td class="name">%s</td>`, sanitizeCell(item.Name))
		fmt.Fprintf(&buf, `<td class="quantity">%d</td>`, item.Quantity)
		fmt.Fprintf(&buf, `<td class="price">%s</td>`, sanitizeCell(item.Price))
		fmt.Fprintf(&buf, `<td class="total">%s</td>`, sanitizeCell(total))
		buf.WriteString("</tr>")
	}
	return buf.String()
}

func sanitizeCell(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(cellSanitizer().Sanitize(trimmed))
}

func cellSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		cellPolicy = bluemonday.StrictPolicy()
	})
	return cellPolicy
}
