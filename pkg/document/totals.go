package document

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-docgen/pkg/record"
)

// deriveItemTotal fills a blank per-item total from quantity × price. Prices
// arrive as comma-grouped display strings; a price that does not parse yields
// "0" rather than an error, since monetary fields are display data.
func deriveItemTotal(item record.LineItem) string {
	price, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(item.Price), ",", ""), 10, 64)
	if err != nil {
		return "0"
	}
	return formatThousands(int64(item.Quantity) * price)
}

func totalQuantity(items []record.LineItem) int {
	sum := 0
	for _, item := range items {
		sum += item.Quantity
	}
	return sum
}

// formatThousands renders n with comma grouping, e.g. 881818 → "881,818".
func formatThousands(n int64) string {
	raw := strconv.FormatInt(n, 10)

	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}

	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	lead := len(raw) % 3
	if lead > 0 {
		buf.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if buf.Len() > btoi(neg) {
			buf.WriteByte(',')
		}
		buf.WriteString(raw[i : i+3])
	}
	return buf.String()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
