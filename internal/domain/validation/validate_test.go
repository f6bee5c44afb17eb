package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairav/billentry/internal/domain/entity"
)

func validDocument() *entity.Document {
	return &entity.Document{
		VendorID:        "1",
		PONumber:        "PO-001",
		BillNumber:      "BILL-42",
		BillDate:        "2025-04-01",
		DueDate:         "2025-05-01",
		PaymentMethod:   "1",
		TransportAgency: "1",
		Products: []entity.LineItem{
			{ID: "r1", ProductID: "1", BatchID: "1", Qty: 10, FreeQty: 2, Rate: 100, Discount: 10, Amount: 720},
		},
		TotalAmount: 720,
		Status:      entity.StatusDraft,
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	report := Validate(validDocument())
	assert.True(t, report.Empty())
}

func TestValidate_EmptyDocument(t *testing.T) {
	doc := &entity.Document{
		Products: []entity.LineItem{{ID: "r1"}},
		Status:   entity.StatusDraft,
	}

	report := Validate(doc)

	assert.Equal(t, "Vendor is required", report.Field("vendorId"))
	assert.Equal(t, "Purchase Order is required", report.Field("poNumber"))
	assert.Equal(t, "Bill number is required", report.Field("billNumber"))
	assert.Equal(t, "Bill date is required", report.Field("billDate"))
	assert.Equal(t, "Due date is required", report.Field("dueDate"))
	assert.Equal(t, "Payment method is required", report.Field("paymentMethod"))
	assert.Equal(t, "Transport agency is required", report.Field("transportAgency"))

	assert.Equal(t, "Product is required", report.Row(0, "productId"))
	assert.Equal(t, "Batch is required", report.Row(0, "batchId"))
	assert.Equal(t, "Quantity must be at least 1", report.Row(0, "qty"))
}

func TestValidate_ProductsCollection(t *testing.T) {
	t.Run("empty row list is reported on the collection, not a row", func(t *testing.T) {
		doc := validDocument()
		doc.Products = nil

		report := Validate(doc)

		assert.Equal(t, "At least one product is required", report.Products())
		for key := range report {
			assert.NotContains(t, key, "products[")
		}
	})

	t.Run("row errors carry the row index", func(t *testing.T) {
		doc := validDocument()
		doc.Products = append(doc.Products, entity.LineItem{ID: "r2", ProductID: "2"})

		report := Validate(doc)

		assert.Empty(t, report.Row(0, "batchId"))
		assert.Equal(t, "Batch is required", report.Row(1, "batchId"))
		assert.Equal(t, "Quantity must be at least 1", report.Row(1, "qty"))
	})
}

func TestValidate_RowRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.LineItem)
		field   string
		message string
	}{
		{
			name:    "zero quantity",
			mutate:  func(r *entity.LineItem) { r.Qty = 0 },
			field:   "qty",
			message: "Quantity must be at least 1",
		},
		{
			name:    "negative free quantity",
			mutate:  func(r *entity.LineItem) { r.FreeQty = -1 },
			field:   "freeQty",
			message: "Free quantity cannot be negative",
		},
		{
			name:    "negative rate",
			mutate:  func(r *entity.LineItem) { r.Rate = -0.01 },
			field:   "rate",
			message: "Rate cannot be negative",
		},
		{
			name:    "negative discount",
			mutate:  func(r *entity.LineItem) { r.Discount = -5 },
			field:   "discount",
			message: "Discount cannot be negative",
		},
		{
			name:    "discount above 100",
			mutate:  func(r *entity.LineItem) { r.Discount = 101 },
			field:   "discount",
			message: "Discount cannot exceed 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc.Products[0])

			report := Validate(doc)

			require.Len(t, report, 1)
			assert.Equal(t, tt.message, report.Row(0, tt.field))
		})
	}
}

func TestValidate_FreeQtyMayExceedQty(t *testing.T) {
	// A negative net quantity is arithmetically permitted; no rule rejects it.
	doc := validDocument()
	doc.Products[0].Qty = 2
	doc.Products[0].FreeQty = 10
	doc.Products[0].Amount = -720

	report := Validate(doc)
	assert.True(t, report.Empty())
}

func TestValidate_EWayBill(t *testing.T) {
	t.Run("absent e-way bill is fine", func(t *testing.T) {
		doc := validDocument()
		doc.EWayBill = nil

		assert.True(t, Validate(doc).Empty())
	})

	t.Run("present e-way bill must be complete", func(t *testing.T) {
		doc := validDocument()
		doc.EWayBill = &entity.EWayBill{}

		report := Validate(doc)

		assert.Equal(t, "Distance is required", report[EWayBillKey("distance")])
		assert.Equal(t, "Transportery name is required", report[EWayBillKey("transporteryName")])
		assert.Equal(t, "Transportery GSTIN is required", report[EWayBillKey("transporteryGstin")])
		assert.Equal(t, "Vehicle number is required", report[EWayBillKey("vehicleNumber")])
		assert.Equal(t, "Document number is required", report[EWayBillKey("documentNumber")])
	})

	t.Run("complete e-way bill passes", func(t *testing.T) {
		doc := validDocument()
		doc.EWayBill = &entity.EWayBill{
			Distance:          120,
			TransporteryName:  "Sharma Logistics",
			TransporteryGstin: "27AAACS1234F1Z5",
			VehicleNumber:     "MH12AB1234",
			DocumentNumber:    "DOC-88",
		}

		assert.True(t, Validate(doc).Empty())
	})
}

func TestValidate_Idempotent(t *testing.T) {
	doc := &entity.Document{
		Products: []entity.LineItem{{ID: "r1"}},
		Status:   entity.StatusDraft,
	}

	first := Validate(doc)
	second := Validate(doc)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	doc := validDocument()
	before := *doc.Clone()

	Validate(doc)

	assert.Equal(t, &before, doc)
}
