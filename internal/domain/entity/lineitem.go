package entity

// LineItem is one row of the product table. Amount is derived from the four
// numeric drivers and must be recomputed after any of them changes.
type LineItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	BatchID   string  `json:"batchId"`
	Qty       float64 `json:"qty"`
	FreeQty   float64 `json:"freeQty"`
	Rate      float64 `json:"rate"`
	Discount  float64 `json:"discount"` // percent, 0-100
	Amount    float64 `json:"amount"`
}

// RecalculateAmount recomputes the derived amount from the row's current
// state: (qty - freeQty) * rate * (1 - discount/100). A negative net quantity
// yields a negative amount; validation, not the row, decides whether that is
// acceptable.
func (li *LineItem) RecalculateAmount() {
	netQty := li.Qty - li.FreeQty
	li.Amount = netQty * li.Rate * (1 - li.Discount/100)
}
