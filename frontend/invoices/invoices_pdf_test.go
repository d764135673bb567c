package invoices

import (
	"bytes"
	"testing"
	"time"

	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

func TestRenderInvoicePDF_GeneratesPDF(t *testing.T) {
	t.Parallel()

	for _, inv := range seed.Invoices() {
		pdf, err := renderInvoicePDF(inv, time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("renderInvoicePDF(%s) returned error: %v", inv.ID, err)
		}
		if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
			t.Fatalf("expected pdf header for %s", inv.ID)
		}
	}
}

func TestRenderInvoicePDF_RequiresID(t *testing.T) {
	t.Parallel()

	if _, err := renderInvoicePDF(models.Invoice{}, time.Now()); err == nil {
		t.Fatalf("expected error for invoice without id")
	}
}

func TestRenderCode128PNG(t *testing.T) {
	t.Parallel()

	png, err := renderCode128PNG("INV-2024-001", 1200, 200)
	if err != nil {
		t.Fatalf("renderCode128PNG returned error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected png bytes")
	}
}
