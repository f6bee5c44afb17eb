// Package refdata exposes the read-only catalogs the form engine selects
// from, together with the two dependency indexes (purchase orders by vendor,
// batches by product) used to filter dependent option lists.
package refdata

import "github.com/nairav/billentry/internal/domain/entity"

// Catalog holds the reference catalogs and their dependency indexes. All
// lookups are pure; nothing here mutates after construction.
type Catalog struct {
	vendors           []entity.Vendor
	purchaseOrders    []entity.PurchaseOrder
	products          []entity.Product
	batches           []entity.Batch
	paymentMethods    []entity.PaymentMethod
	transportAgencies []entity.TransportAgency

	posByVendor      map[string][]entity.PurchaseOrder
	batchesByProduct map[string][]entity.Batch
}

// NewCatalog builds a catalog and its dependency indexes. Index slices keep
// the catalog order, so dependent option lists render in a stable order.
func NewCatalog(
	vendors []entity.Vendor,
	purchaseOrders []entity.PurchaseOrder,
	products []entity.Product,
	batches []entity.Batch,
	paymentMethods []entity.PaymentMethod,
	transportAgencies []entity.TransportAgency,
) *Catalog {
	c := &Catalog{
		vendors:           vendors,
		purchaseOrders:    purchaseOrders,
		products:          products,
		batches:           batches,
		paymentMethods:    paymentMethods,
		transportAgencies: transportAgencies,
		posByVendor:       make(map[string][]entity.PurchaseOrder),
		batchesByProduct:  make(map[string][]entity.Batch),
	}

	for _, po := range purchaseOrders {
		c.posByVendor[po.VendorID] = append(c.posByVendor[po.VendorID], po)
	}
	for _, b := range batches {
		c.batchesByProduct[b.ProductID] = append(c.batchesByProduct[b.ProductID], b)
	}

	return c
}

// PurchaseOrdersFor returns the purchase orders belonging to the vendor, in
// catalog order. An empty vendor id yields an empty sequence.
func (c *Catalog) PurchaseOrdersFor(vendorID string) []entity.PurchaseOrder {
	if vendorID == "" {
		return nil
	}
	return c.posByVendor[vendorID]
}

// BatchesFor returns the batches belonging to the product, in catalog order.
// An empty product id yields an empty sequence.
func (c *Catalog) BatchesFor(productID string) []entity.Batch {
	if productID == "" {
		return nil
	}
	return c.batchesByProduct[productID]
}

// HasPurchaseOrder reports whether the vendor owns a purchase order with the
// given PO number.
func (c *Catalog) HasPurchaseOrder(vendorID, poNumber string) bool {
	for _, po := range c.PurchaseOrdersFor(vendorID) {
		if po.PONumber == poNumber {
			return true
		}
	}
	return false
}

// BatchBelongs reports whether the batch id belongs to the product.
func (c *Catalog) BatchBelongs(productID, batchID string) bool {
	for _, b := range c.BatchesFor(productID) {
		if b.ID == batchID {
			return true
		}
	}
	return false
}

// Vendors returns all vendors in catalog order.
func (c *Catalog) Vendors() []entity.Vendor { return c.vendors }

// Products returns all products in catalog order.
func (c *Catalog) Products() []entity.Product { return c.products }

// PaymentMethods returns all payment methods in catalog order.
func (c *Catalog) PaymentMethods() []entity.PaymentMethod { return c.paymentMethods }

// TransportAgencies returns all transport agencies in catalog order.
func (c *Catalog) TransportAgencies() []entity.TransportAgency { return c.transportAgencies }
