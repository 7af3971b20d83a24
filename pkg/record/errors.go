package record

import "fmt"

// ParseError reports a source document that is not syntactically valid JSON.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("record: parse document: %v", e.Err)
	}
	return fmt.Sprintf("record: parse %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a syntactically valid document that is missing a
// required field. Field uses the JSON key path, e.g. "supplier.reg_id" or
// "items[2].name".
type SchemaError struct {
	Location string
	Field    string
}

func (e *SchemaError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("record: missing required field %q", e.Field)
	}
	return fmt.Sprintf("record: %s: missing required field %q", e.Location, e.Field)
}
