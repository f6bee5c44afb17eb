// Package document owns the in-memory purchase bill being edited. The
// Controller is the only component that mutates the document: the renderer
// dispatches intents into it, it routes edits through the row list,
// re-derives dependent values synchronously, and drives validation and
// persistence. The host environment serializes intents, so no locking is
// needed here.
package document

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nairav/billentry/internal/domain/entity"
	"github.com/nairav/billentry/internal/domain/validation"
)

// ErrValidationFailed is returned by Save when a final save is aborted
// because the document did not pass validation.
var ErrValidationFailed = errors.New("document failed validation")

// HeaderField enumerates the editable header fields of the document.
type HeaderField string

const (
	HeaderVendor          HeaderField = "vendorId"
	HeaderPONumber        HeaderField = "poNumber"
	HeaderBillNumber      HeaderField = "billNumber"
	HeaderBillDate        HeaderField = "billDate"
	HeaderDueDate         HeaderField = "dueDate"
	HeaderPaymentMethod   HeaderField = "paymentMethod"
	HeaderTransportAgency HeaderField = "transportAgency"
)

// ReferenceData is the read-only catalog dependency. The controller only
// needs the two dependency lookups; the full catalog stays with the renderer.
type ReferenceData interface {
	PurchaseOrdersFor(vendorID string) []entity.PurchaseOrder
	BatchesFor(productID string) []entity.Batch
}

// Store is the persistence collaborator. Load reports absence (not an error)
// for both a missing and an unreadable prior snapshot.
type Store interface {
	Load() (*entity.Document, bool, error)
	Save(doc *entity.Document) error
	Clear() error
}

// Controller owns the single in-memory document instance.
type Controller struct {
	ref    ReferenceData
	store  Store
	logger *zap.Logger

	doc  *entity.Document
	rows *RowList
}

// New creates a controller with no document yet; call Init or Recover before
// dispatching edits.
func New(ref ReferenceData, store Store, logger *zap.Logger) *Controller {
	return &Controller{
		ref:    ref,
		store:  store,
		logger: logger,
	}
}

// Init sets the initial document state. A well-formed persisted snapshot
// overrides the blank default (draft recovery); anything else starts a
// canonical empty document with one empty row. No validation runs at init
// time.
func (c *Controller) Init(persisted *entity.Document) {
	if persisted != nil && wellFormed(persisted) {
		c.doc = persisted.Clone()
		c.rows = NewRowList(&c.doc.Products, nil)
		c.logger.Info("Recovered persisted document",
			zap.String("status", string(c.doc.Status)),
			zap.Int("rows", len(c.doc.Products)))
		return
	}

	c.doc = &entity.Document{Status: entity.StatusDraft}
	c.rows = NewRowList(&c.doc.Products, nil)
	c.rows.Add()
	c.logger.Info("Initialized empty document")
}

// Recover loads any prior snapshot from the store and initializes from it.
// A load failure counts as "no prior draft".
func (c *Controller) Recover() {
	persisted, ok, err := c.store.Load()
	if err != nil {
		c.logger.Warn("Failed to load persisted document, starting empty", zap.Error(err))
		c.Init(nil)
		return
	}
	if !ok {
		c.Init(nil)
		return
	}
	c.Init(persisted)
}

// wellFormed is the minimal shape check for a recovered snapshot: a known
// status and the at-least-one-row invariant.
func wellFormed(doc *entity.Document) bool {
	return doc.Status.IsValid() && len(doc.Products) >= 1
}

// SetHeaderField routes a header edit to the document. Vendor edits go
// through SetVendor so the dependent PO selection can never go stale.
func (c *Controller) SetHeaderField(field HeaderField, value string) error {
	switch field {
	case HeaderVendor:
		c.SetVendor(value)
	case HeaderPONumber:
		c.doc.PONumber = value
	case HeaderBillNumber:
		c.doc.BillNumber = value
	case HeaderBillDate:
		c.doc.BillDate = value
	case HeaderDueDate:
		c.doc.DueDate = value
	case HeaderPaymentMethod:
		c.doc.PaymentMethod = value
	case HeaderTransportAgency:
		c.doc.TransportAgency = value
	default:
		return fmt.Errorf("unknown header field: %s", field)
	}
	return nil
}

// SetVendor changes the vendor and clears the selected purchase order if it
// does not belong to the new vendor. A PO that survives the change is kept.
func (c *Controller) SetVendor(vendorID string) {
	c.doc.VendorID = vendorID

	if c.doc.PONumber == "" {
		return
	}
	for _, po := range c.ref.PurchaseOrdersFor(vendorID) {
		if po.PONumber == c.doc.PONumber {
			return
		}
	}
	c.logger.Info("Cleared stale purchase order after vendor change",
		zap.String("vendor_id", vendorID),
		zap.String("po_number", c.doc.PONumber))
	c.doc.PONumber = ""
}

// SetProduct changes a row's product. Unlike SetVendor, a now-stale batch
// selection is kept in place; validation and StaleBatchRows flag it instead.
// This asymmetry matches the observed product behavior and is deliberate.
func (c *Controller) SetProduct(rowID, productID string) error {
	if err := c.rows.SetProduct(rowID, productID); err != nil {
		return err
	}
	c.recomputeTotal()
	return nil
}

// SetBatch changes a row's batch.
func (c *Controller) SetBatch(rowID, batchID string) error {
	if err := c.rows.SetBatch(rowID, batchID); err != nil {
		return err
	}
	c.recomputeTotal()
	return nil
}

// SetRowNumber changes one numeric driver of a row; the row's amount and the
// document total are re-derived immediately.
func (c *Controller) SetRowNumber(rowID string, field NumericField, value float64) error {
	if err := c.rows.SetNumber(rowID, field, value); err != nil {
		return err
	}
	c.recomputeTotal()
	return nil
}

// AddRow appends a fresh empty row and returns a copy of it.
func (c *Controller) AddRow() entity.LineItem {
	row := c.rows.Add()
	c.recomputeTotal()
	return row
}

// RemoveRow deletes a row. Removing the last remaining row is absorbed as a
// no-op rather than reported as an error.
func (c *Controller) RemoveRow(rowID string) {
	if c.rows.Remove(rowID) {
		c.recomputeTotal()
	}
}

// AttachEWayBill attaches or replaces the e-way bill sub-record wholesale.
func (c *Controller) AttachEWayBill(record entity.EWayBill) {
	c.doc.EWayBill = &record
}

// Validate checks the current snapshot against the document schema. The
// document is not mutated.
func (c *Controller) Validate() validation.Report {
	return validation.Validate(c.doc)
}

// Save persists the document. A draft save is unconditional. A final save
// validates first and aborts without touching the store when the report is
// non-empty; the report is returned so the renderer can surface every error
// at once.
func (c *Controller) Save(status entity.Status) (validation.Report, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status: %s", status)
	}

	if status == entity.StatusSaved {
		if report := c.Validate(); !report.Empty() {
			c.logger.Info("Save blocked by validation", zap.Int("errors", len(report)))
			return report, ErrValidationFailed
		}
	}

	c.doc.Status = status
	if err := c.store.Save(c.doc.Clone()); err != nil {
		c.logger.Error("Failed to persist document", zap.Error(err))
		return nil, fmt.Errorf("failed to persist document: %w", err)
	}

	c.logger.Info("Document persisted",
		zap.String("status", string(status)),
		zap.Float64("total_amount", c.doc.TotalAmount))
	return nil, nil
}

// Snapshot returns a deep copy of the current document for the renderer.
func (c *Controller) Snapshot() *entity.Document {
	return c.doc.Clone()
}

// StaleBatchRows returns the ids of rows whose batch selection no longer
// belongs to the row's product (including a batch left behind on a row with
// no product). The engine never auto-clears these; the renderer decides what
// to do with them.
func (c *Controller) StaleBatchRows() []string {
	var stale []string
	for _, row := range c.doc.Products {
		if row.BatchID == "" {
			continue
		}
		if !c.batchBelongs(row.ProductID, row.BatchID) {
			stale = append(stale, row.ID)
		}
	}
	return stale
}

func (c *Controller) batchBelongs(productID, batchID string) bool {
	for _, b := range c.ref.BatchesFor(productID) {
		if b.ID == batchID {
			return true
		}
	}
	return false
}

func (c *Controller) recomputeTotal() {
	c.doc.TotalAmount = c.rows.Total()
}
