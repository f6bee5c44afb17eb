package document

import (
	"errors"

	"github.com/google/uuid"

	"github.com/nairav/billentry/internal/domain/entity"
)

// ErrRowNotFound is returned when a row edit names an id that is not in the
// list.
var ErrRowNotFound = errors.New("row not found")

// NumericField enumerates the four numeric drivers of a row's derived amount.
// Using a closed type keeps field dispatch checked at compile time instead of
// routing arbitrary strings.
type NumericField string

const (
	FieldQty      NumericField = "qty"
	FieldFreeQty  NumericField = "freeQty"
	FieldRate     NumericField = "rate"
	FieldDiscount NumericField = "discount"
)

// RowList is the line item store: it owns the ordered product rows of one
// document and keeps each row's derived amount in step with its drivers. The
// list never shrinks below one row.
type RowList struct {
	rows  *[]entity.LineItem
	newID func() string
}

// NewRowList wraps the document's row slice. Row ids come from newID; pass
// nil to use random UUIDs.
func NewRowList(rows *[]entity.LineItem, newID func() string) *RowList {
	if newID == nil {
		newID = uuid.NewString
	}
	return &RowList{rows: rows, newID: newID}
}

// Add appends a fresh empty row (numeric fields zeroed, references empty) and
// returns a copy of it. No other row is touched.
func (l *RowList) Add() entity.LineItem {
	row := entity.LineItem{ID: l.newID()}
	*l.rows = append(*l.rows, row)
	return row
}

// Remove deletes the row with the given id and reports whether anything
// changed. Removing the last remaining row is a silent no-op: the document
// always keeps at least one row.
func (l *RowList) Remove(id string) bool {
	if len(*l.rows) <= 1 {
		return false
	}
	for i, row := range *l.rows {
		if row.ID == id {
			*l.rows = append((*l.rows)[:i], (*l.rows)[i+1:]...)
			return true
		}
	}
	return false
}

// SetNumber updates one numeric driver and recomputes the row's amount from
// its full post-update state.
func (l *RowList) SetNumber(id string, field NumericField, value float64) error {
	row := l.find(id)
	if row == nil {
		return ErrRowNotFound
	}

	switch field {
	case FieldQty:
		row.Qty = value
	case FieldFreeQty:
		row.FreeQty = value
	case FieldRate:
		row.Rate = value
	case FieldDiscount:
		row.Discount = value
	}

	row.RecalculateAmount()
	return nil
}

// SetProduct updates the row's product reference. The batch reference is left
// as-is even when it no longer belongs to the new product.
func (l *RowList) SetProduct(id, productID string) error {
	row := l.find(id)
	if row == nil {
		return ErrRowNotFound
	}
	row.ProductID = productID
	return nil
}

// SetBatch updates the row's batch reference.
func (l *RowList) SetBatch(id, batchID string) error {
	row := l.find(id)
	if row == nil {
		return ErrRowNotFound
	}
	row.BatchID = batchID
	return nil
}

// Total sums the derived amounts of all rows. Callers write the result into
// the document's TotalAmount.
func (l *RowList) Total() float64 {
	var total float64
	for _, row := range *l.rows {
		total += row.Amount
	}
	return total
}

// Len returns the current row count.
func (l *RowList) Len() int {
	return len(*l.rows)
}

func (l *RowList) find(id string) *entity.LineItem {
	for i := range *l.rows {
		if (*l.rows)[i].ID == id {
			return &(*l.rows)[i]
		}
	}
	return nil
}
