package document

import (
	"testing"

	"github.com/goliatone/go-docgen/pkg/record"
)

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{881818, "881,818"},
		{1234567, "1,234,567"},
		{-54321, "-54,321"},
	}

	for _, tc := range cases {
		if got := formatThousands(tc.in); got != tc.want {
			t.Errorf("formatThousands(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDeriveItemTotal(t *testing.T) {
	cases := []struct {
		item record.LineItem
		want string
	}{
		{record.LineItem{Quantity: 1, Price: "881,818"}, "881,818"},
		{record.LineItem{Quantity: 3, Price: "1,500"}, "4,500"},
		{record.LineItem{Quantity: 10, Price: "0"}, "0"},
		{record.LineItem{Quantity: 2, Price: "not a number"}, "0"},
		{record.LineItem{Quantity: 2, Price: ""}, "0"},
	}

	for _, tc := range cases {
		if got := deriveItemTotal(tc.item); got != tc.want {
			t.Errorf("deriveItemTotal(%+v) = %q, want %q", tc.item, got, tc.want)
		}
	}
}
