package refdata

import "github.com/nairav/billentry/internal/domain/entity"

// BuiltinCatalog returns the sample catalog used when no workbook is
// configured. Handy for local runs and tests.
func BuiltinCatalog() *Catalog {
	return NewCatalog(
		[]entity.Vendor{
			{ID: "1", Name: "Vendor A"},
			{ID: "2", Name: "Vendor B"},
			{ID: "3", Name: "Vendor C"},
		},
		[]entity.PurchaseOrder{
			{ID: "1", VendorID: "1", PONumber: "PO-001"},
			{ID: "2", VendorID: "1", PONumber: "PO-002"},
			{ID: "3", VendorID: "2", PONumber: "PO-003"},
			{ID: "4", VendorID: "3", PONumber: "PO-004"},
		},
		[]entity.Product{
			{ID: "1", Name: "Product A"},
			{ID: "2", Name: "Product B"},
			{ID: "3", Name: "Product C"},
		},
		[]entity.Batch{
			{ID: "1", ProductID: "1", BatchNumber: "BATCH-001"},
			{ID: "2", ProductID: "1", BatchNumber: "BATCH-002"},
			{ID: "3", ProductID: "2", BatchNumber: "BATCH-003"},
			{ID: "4", ProductID: "3", BatchNumber: "BATCH-004"},
		},
		[]entity.PaymentMethod{
			{ID: "1", Name: "Cash"},
			{ID: "2", Name: "Credit Card"},
			{ID: "3", Name: "Bank Transfer"},
		},
		[]entity.TransportAgency{
			{ID: "1", Name: "Transport Agency A"},
			{ID: "2", Name: "Transport Agency B"},
			{ID: "3", Name: "Transport Agency C"},
		},
	)
}
