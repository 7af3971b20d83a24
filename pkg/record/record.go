package record

// Estimate is one document's worth of data, loaded from a single JSON file.
// Monetary fields are opaque display strings supplied by the caller; the
// generator never computes or cross-checks their arithmetic. An Estimate is
// constructed once per input file, used to build one output document, and
// never mutated afterwards.
type Estimate struct {
	DocNumber   string     `json:"doc_number"`
	Date        string     `json:"date"`
	TotalAmount string     `json:"total_amount"`
	SupplyPrice string     `json:"supply_price"`
	TaxAmount   string     `json:"tax_amount"`
	Receiver    Receiver   `json:"receiver"`
	Supplier    Supplier   `json:"supplier"`
	Items       []LineItem `json:"items"`
}

// Receiver identifies the party the document is issued to.
type Receiver struct {
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

// Supplier identifies the issuing party.
type Supplier struct {
	Name    string `json:"name"`
	CEO     string `json:"ceo"`
	RegID   string `json:"reg_id"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// LineItem is one row of the document's item table. Total may be left empty
// in the source JSON; the document builder then derives it from
// Quantity × Price.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}
