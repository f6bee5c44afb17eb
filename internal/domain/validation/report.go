package validation

import "fmt"

// Report maps a field path to a human-readable error message. Paths are
// header field names ("vendorId"), row cells ("products[2].qty"), the
// products collection as a whole ("products"), or e-way bill fields
// ("eWayBill.distance"). A report is transient: recomputed on demand, never
// persisted.
type Report map[string]string

// RowKey builds the path for a row-level error so the renderer can point at
// the exact cell.
func RowKey(index int, field string) string {
	return fmt.Sprintf("products[%d].%s", index, field)
}

// EWayBillKey builds the path for an e-way bill field error.
func EWayBillKey(field string) string {
	return "eWayBill." + field
}

// Empty reports whether the document passed validation.
func (r Report) Empty() bool {
	return len(r) == 0
}

// Field returns the message for a header field, or "" if the field is clean.
func (r Report) Field(name string) string {
	return r[name]
}

// Row returns the message for one cell of a product row, or "".
func (r Report) Row(index int, field string) string {
	return r[RowKey(index, field)]
}

// Products returns the collection-level message (e.g. empty row list), or "".
func (r Report) Products() string {
	return r["products"]
}
