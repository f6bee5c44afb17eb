package refdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "refdata.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func fullWorkbookSheets() map[string][][]interface{} {
	return map[string][][]interface{}{
		"Vendors": {
			{"id", "name"},
			{"v1", "Acme Traders"},
			{"v2", "Kumar & Sons"},
		},
		"PurchaseOrders": {
			{"id", "vendor_id", "po_number"},
			{"po1", "v1", "PO-1001"},
			{"po2", "v1", "PO-1002"},
			{"po3", "v2", "PO-2001"},
		},
		"Products": {
			{"id", "name"},
			{"p1", "Paracetamol 500mg"},
			{"p2", "Amoxicillin 250mg"},
		},
		"Batches": {
			{"id", "product_id", "batch_number"},
			{"b1", "p1", "B-2025-01"},
			{"b2", "p2", "B-2025-02"},
		},
		"PaymentMethods": {
			{"id", "name"},
			{"pm1", "Cash"},
		},
		"TransportAgencies": {
			{"id", "name"},
			{"ta1", "BlueDart"},
		},
	}
}

func TestLoadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, fullWorkbookSheets())

	c, err := LoadWorkbook(path)
	require.NoError(t, err)

	assert.Len(t, c.Vendors(), 2)
	assert.Len(t, c.Products(), 2)

	pos := c.PurchaseOrdersFor("v1")
	require.Len(t, pos, 2)
	assert.Equal(t, "PO-1001", pos[0].PONumber)
	assert.Equal(t, "PO-1002", pos[1].PONumber)

	batches := c.BatchesFor("p2")
	require.Len(t, batches, 1)
	assert.Equal(t, "B-2025-02", batches[0].BatchNumber)
}

func TestLoadWorkbook_SkipsBlankRows(t *testing.T) {
	sheets := fullWorkbookSheets()
	sheets["Vendors"] = append(sheets["Vendors"], []interface{}{"", ""}, []interface{}{"v3", "Late Vendor"})
	path := writeTestWorkbook(t, sheets)

	c, err := LoadWorkbook(path)
	require.NoError(t, err)

	vendors := c.Vendors()
	require.Len(t, vendors, 3)
	assert.Equal(t, "Late Vendor", vendors[2].Name)
}

func TestLoadWorkbook_MissingSheet(t *testing.T) {
	sheets := fullWorkbookSheets()
	delete(sheets, "Batches")
	path := writeTestWorkbook(t, sheets)

	_, err := LoadWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Batches")
}

func TestLoadWorkbook_MissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
