package entity

// Status is the document lifecycle status.
type Status string

const (
	// StatusDraft marks a document persisted without passing validation.
	StatusDraft Status = "draft"
	// StatusSaved marks a document that passed full validation before persisting.
	StatusSaved Status = "saved"
)

// IsValid returns true if the status is a known lifecycle value.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusSaved
}

// Document is the full purchase bill being edited. TotalAmount is derived
// from the line items and is never user-edited; it is a cached value, not a
// source of truth.
type Document struct {
	VendorID        string     `json:"vendorId"`
	PONumber        string     `json:"poNumber"`
	BillNumber      string     `json:"billNumber"`
	BillDate        string     `json:"billDate"` // ISO date (YYYY-MM-DD)
	DueDate         string     `json:"dueDate"`  // ISO date (YYYY-MM-DD)
	PaymentMethod   string     `json:"paymentMethod"`
	TransportAgency string     `json:"transportAgency"`
	Products        []LineItem `json:"products"`
	EWayBill        *EWayBill  `json:"eWayBill,omitempty"`
	TotalAmount     float64    `json:"totalAmount"`
	Status          Status     `json:"status"`
}

// EWayBill is the optional transport-compliance sub-record. It is attached or
// replaced wholesale, never partially mutated.
type EWayBill struct {
	Distance          float64 `json:"distance"`
	TransporteryName  string  `json:"transporteryName"`
	TransporteryGstin string  `json:"transporteryGstin"`
	VehicleNumber     string  `json:"vehicleNumber"`
	DocumentNumber    string  `json:"documentNumber"`
}

// Clone returns a deep copy of the document. Callers outside the controller
// only ever see clones, never the live instance.
func (d *Document) Clone() *Document {
	cp := *d
	cp.Products = make([]LineItem, len(d.Products))
	copy(cp.Products, d.Products)
	if d.EWayBill != nil {
		eb := *d.EWayBill
		cp.EWayBill = &eb
	}
	return &cp
}
