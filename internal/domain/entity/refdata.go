package entity

// Reference data catalogs. These are read-only from the engine's point of
// view; the VendorID/ProductID fields are back-references used for filtering.

// Vendor is a supplier the bill can be raised against.
type Vendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PurchaseOrder belongs to exactly one vendor.
type PurchaseOrder struct {
	ID       string `json:"id"`
	VendorID string `json:"vendorId"`
	PONumber string `json:"poNumber"`
}

// Product is a purchasable item.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Batch belongs to exactly one product.
type Batch struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	BatchNumber string `json:"batchNumber"`
}

// PaymentMethod is a settlement option (cash, card, transfer, ...).
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransportAgency is a carrier option for the bill header.
type TransportAgency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
