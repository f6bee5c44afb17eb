// Package validation checks a full document snapshot against the purchase
// bill schema. Validate is pure and deterministic: the same snapshot always
// produces a structurally identical report, and the document is never
// mutated.
package validation

import "github.com/nairav/billentry/internal/domain/entity"

// Validate checks every rule at once and reports all failures together; it
// never stops at the first error. TotalAmount is derived and is not validated
// directly.
func Validate(doc *entity.Document) Report {
	report := Report{}

	validateHeader(doc, report)
	validateProducts(doc.Products, report)
	if doc.EWayBill != nil {
		validateEWayBill(doc.EWayBill, report)
	}

	return report
}

func validateHeader(doc *entity.Document, report Report) {
	if doc.VendorID == "" {
		report["vendorId"] = "Vendor is required"
	}
	if doc.PONumber == "" {
		report["poNumber"] = "Purchase Order is required"
	}
	if doc.BillNumber == "" {
		report["billNumber"] = "Bill number is required"
	}
	if doc.BillDate == "" {
		report["billDate"] = "Bill date is required"
	}
	if doc.DueDate == "" {
		report["dueDate"] = "Due date is required"
	}
	if doc.PaymentMethod == "" {
		report["paymentMethod"] = "Payment method is required"
	}
	if doc.TransportAgency == "" {
		report["transportAgency"] = "Transport agency is required"
	}
}

func validateProducts(rows []entity.LineItem, report Report) {
	if len(rows) == 0 {
		report["products"] = "At least one product is required"
		return
	}

	for i, row := range rows {
		if row.ProductID == "" {
			report[RowKey(i, "productId")] = "Product is required"
		}
		if row.BatchID == "" {
			report[RowKey(i, "batchId")] = "Batch is required"
		}
		if row.Qty < 1 {
			report[RowKey(i, "qty")] = "Quantity must be at least 1"
		}
		if row.FreeQty < 0 {
			report[RowKey(i, "freeQty")] = "Free quantity cannot be negative"
		}
		if row.Rate < 0 {
			report[RowKey(i, "rate")] = "Rate cannot be negative"
		}
		if row.Discount < 0 {
			report[RowKey(i, "discount")] = "Discount cannot be negative"
		} else if row.Discount > 100 {
			report[RowKey(i, "discount")] = "Discount cannot exceed 100%"
		}
	}
}

func validateEWayBill(eb *entity.EWayBill, report Report) {
	if eb.Distance < 1 {
		report[EWayBillKey("distance")] = "Distance is required"
	}
	if eb.TransporteryName == "" {
		report[EWayBillKey("transporteryName")] = "Transportery name is required"
	}
	if eb.TransporteryGstin == "" {
		report[EWayBillKey("transporteryGstin")] = "Transportery GSTIN is required"
	}
	if eb.VehicleNumber == "" {
		report[EWayBillKey("vehicleNumber")] = "Vehicle number is required"
	}
	if eb.DocumentNumber == "" {
		report[EWayBillKey("documentNumber")] = "Document number is required"
	}
}
