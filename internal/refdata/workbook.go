package refdata

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nairav/billentry/internal/domain/entity"
)

// Workbook sheet names. Each sheet has a header row followed by one record
// per row; row order in the sheet becomes catalog order.
const (
	sheetVendors           = "Vendors"           // id, name
	sheetPurchaseOrders    = "PurchaseOrders"    // id, vendor_id, po_number
	sheetProducts          = "Products"          // id, name
	sheetBatches           = "Batches"           // id, product_id, batch_number
	sheetPaymentMethods    = "PaymentMethods"    // id, name
	sheetTransportAgencies = "TransportAgencies" // id, name
)

// LoadWorkbook reads the reference catalogs from an Excel workbook. All six
// sheets must be present.
func LoadWorkbook(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	vendorRows, err := dataRows(f, sheetVendors, 2)
	if err != nil {
		return nil, err
	}
	poRows, err := dataRows(f, sheetPurchaseOrders, 3)
	if err != nil {
		return nil, err
	}
	productRows, err := dataRows(f, sheetProducts, 2)
	if err != nil {
		return nil, err
	}
	batchRows, err := dataRows(f, sheetBatches, 3)
	if err != nil {
		return nil, err
	}
	paymentRows, err := dataRows(f, sheetPaymentMethods, 2)
	if err != nil {
		return nil, err
	}
	agencyRows, err := dataRows(f, sheetTransportAgencies, 2)
	if err != nil {
		return nil, err
	}

	var vendors []entity.Vendor
	for _, row := range vendorRows {
		vendors = append(vendors, entity.Vendor{ID: row[0], Name: row[1]})
	}

	var purchaseOrders []entity.PurchaseOrder
	for _, row := range poRows {
		purchaseOrders = append(purchaseOrders, entity.PurchaseOrder{
			ID:       row[0],
			VendorID: row[1],
			PONumber: row[2],
		})
	}

	var products []entity.Product
	for _, row := range productRows {
		products = append(products, entity.Product{ID: row[0], Name: row[1]})
	}

	var batches []entity.Batch
	for _, row := range batchRows {
		batches = append(batches, entity.Batch{
			ID:          row[0],
			ProductID:   row[1],
			BatchNumber: row[2],
		})
	}

	var paymentMethods []entity.PaymentMethod
	for _, row := range paymentRows {
		paymentMethods = append(paymentMethods, entity.PaymentMethod{ID: row[0], Name: row[1]})
	}

	var transportAgencies []entity.TransportAgency
	for _, row := range agencyRows {
		transportAgencies = append(transportAgencies, entity.TransportAgency{ID: row[0], Name: row[1]})
	}

	return NewCatalog(vendors, purchaseOrders, products, batches, paymentMethods, transportAgencies), nil
}

// dataRows returns the records of a sheet (header row stripped), padding each
// row to minCols so loaders can index columns without bounds checks. Blank
// rows are skipped; excelize trims trailing empty cells, so padding keeps
// sparse rows usable.
func dataRows(f *excelize.File, sheet string, minCols int) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	var out [][]string
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		for len(row) < minCols {
			row = append(row, "")
		}
		out = append(out, row)
	}
	return out, nil
}
