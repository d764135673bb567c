package invoices

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"orgconnect/frontend/shared/html"
	"orgconnect/models"
)

func renderInvoicePDF(inv models.Invoice, printedAt time.Time) ([]byte, error) {
	if inv.ID == "" {
		return nil, fmt.Errorf("invoice id is required")
	}
	barcodePNG, err := renderCode128PNG(inv.ID, 1200, 200)
	if err != nil {
		return nil, fmt.Errorf("render barcode: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.ID, false)
	pdf.SetCreator("OrgConnect", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, inv.ID, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)
	pdf.CellFormat(0, 6, tr("Project: "+inv.ProjectName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Bill to: "+inv.ClientOrg), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("From: "+inv.ProviderOrg), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+inv.Status, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Issued: "+inv.IssueDate.Format("2006-01-02")+"   Due: "+inv.DueDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	if inv.PaidDate != nil {
		pdf.CellFormat(0, 6, "Paid: "+inv.PaidDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{90, 25, 30, 35}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range []string{"Description", "Quantity", "Rate", "Amount"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(widths[0], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.FormatInt(item.Quantity, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, html.Money(item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, html.Money(item.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	labelW := widths[0] + widths[1] + widths[2]
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "Items total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, html.Money(ItemsTotal(inv)), "1", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 8, "Invoice amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, html.Money(inv.Amount), "1", 1, "R", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "invoice-barcode-" + inv.ID
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 120.0
	imgH := 20.0
	y := pdf.GetY() + 12
	pdf.ImageOptions(imageName, (pageW-imgW)/2, y, imgW, imgH, false, opt, 0, "")
	pdf.SetY(y + imgH + 2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, inv.ID, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Printed: "+printedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

// toNRGBA flattens the barcode image so gofpdf's PNG parser accepts it.
func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
