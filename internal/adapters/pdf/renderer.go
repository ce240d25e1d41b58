package pdf

import (
	"bytes"
	"fmt"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	portssvc "github.com/aksagenset/invoquot/internal/core/ports/services"
	"github.com/aksagenset/invoquot/internal/platform/config"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// dateFormat is the display format for dates on rendered documents.
const dateFormat = "02/01/2006"

// descriptionLimit caps item descriptions so rows stay on one line.
const descriptionLimit = 40

// Renderer renders invoices and quotations to PDF bytes. Rendering is a pure
// function of the document: the creation date embedded in the PDF metadata is
// the document's own, so re-rendering a persisted document is byte-identical.
type Renderer struct {
	company        config.CompanyProfile
	currencySymbol string
}

// NewRenderer creates a Renderer for the given issuing company profile.
func NewRenderer(company config.CompanyProfile, currencySymbol string) *Renderer {
	return &Renderer{company: company, currencySymbol: currencySymbol}
}

// Ensure Renderer implements portssvc.DocumentRenderer
var _ portssvc.DocumentRenderer = (*Renderer)(nil)

// RenderInvoice renders an invoice to PDF bytes.
func (r *Renderer) RenderInvoice(invoice domain.Invoice) ([]byte, error) {
	if len(invoice.Items) == 0 {
		return nil, fmt.Errorf("%w: invoice %s has no line items", apperrors.ErrRender, invoice.DocumentID)
	}

	pdf := r.newPage(invoice.Document)
	r.writeHeader(pdf, "INVOICE", []string{
		fmt.Sprintf("Invoice Number: %s", invoice.Number),
		fmt.Sprintf("Issue Date: %s", invoice.IssueDate.Format(dateFormat)),
		fmt.Sprintf("Due Date: %s", invoice.DueDate.Format(dateFormat)),
		fmt.Sprintf("Status: %s", invoice.Status),
	})
	r.writeRecipient(pdf, "Bill To:", invoice.Document)

	y := r.writeItems(pdf, invoice.Items)
	y = r.writeTotals(pdf, y, invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.Total)
	r.writeNotes(pdf, y, invoice.Notes)

	return output(pdf, invoice.DocumentID)
}

// RenderQuotation renders a quotation to PDF bytes.
func (r *Renderer) RenderQuotation(quotation domain.Quotation) ([]byte, error) {
	if len(quotation.Items) == 0 {
		return nil, fmt.Errorf("%w: quotation %s has no line items", apperrors.ErrRender, quotation.DocumentID)
	}

	pdf := r.newPage(quotation.Document)
	r.writeHeader(pdf, "QUOTATION", []string{
		fmt.Sprintf("Quotation Number: %s", quotation.Number),
		fmt.Sprintf("Issue Date: %s", quotation.IssueDate.Format(dateFormat)),
		fmt.Sprintf("Valid Until: %s", quotation.ValidUntil.Format(dateFormat)),
		fmt.Sprintf("Status: %s", quotation.Status),
	})
	r.writeRecipient(pdf, "Quote To:", quotation.Document)

	y := r.writeItems(pdf, quotation.Items)
	y = r.writeTotals(pdf, y, quotation.Subtotal, quotation.TaxRate, quotation.TaxAmount, quotation.Total)

	y += 30
	pdf.Text(50, y, "This quotation is valid until:")
	pdf.Text(50, y+15, quotation.ValidUntil.Format(dateFormat))
	r.writeNotes(pdf, y, quotation.Notes)

	return output(pdf, quotation.DocumentID)
}

func (r *Renderer) newPage(doc domain.Document) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(doc.CreatedAt)
	pdf.SetModificationDate(doc.CreatedAt)
	pdf.AddPage()
	return pdf
}

func (r *Renderer) writeHeader(pdf *gofpdf.Fpdf, title string, details []string) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(50, 60, title)

	pdf.SetFont("Helvetica", "", 10)
	issuerLines := []string{r.company.Name, r.company.Address, r.company.Phone, r.company.Email}
	y := 80.0
	for _, line := range issuerLines {
		pdf.Text(50, y, line)
		y += 15
	}

	pdf.SetFont("Helvetica", "", 12)
	y = 80.0
	for _, line := range details {
		pdf.Text(350, y, line)
		y += 15
	}
}

func (r *Renderer) writeRecipient(pdf *gofpdf.Fpdf, label string, doc domain.Document) {
	// The company name wins over the contact name when both are set.
	recipient := doc.ClientCompany
	if recipient == "" {
		recipient = doc.ClientName
	}

	pdf.Text(50, 160, label)
	pdf.Text(50, 175, recipient)
	pdf.Text(50, 190, doc.ClientAddress)
}

func (r *Renderer) writeItems(pdf *gofpdf.Fpdf, items []domain.LineItem) float64 {
	y := 240.0
	pdf.Text(50, y, "Description")
	pdf.Text(300, y, "Qty")
	pdf.Text(350, y, "Price")
	pdf.Text(420, y, "Amount")
	y += 20

	for _, item := range items {
		pdf.Text(50, y, truncateDescription(item.Description))
		pdf.Text(300, y, fmt.Sprintf("%d", item.Quantity))
		pdf.Text(350, y, r.money(item.UnitPrice))
		pdf.Text(420, y, r.money(item.Amount()))
		y += 20
	}
	return y
}

// truncateDescription caps a description at descriptionLimit characters,
// counting runes so a multibyte character is never split mid-sequence.
func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= descriptionLimit {
		return desc
	}
	return string(runes[:descriptionLimit])
}

func (r *Renderer) writeTotals(pdf *gofpdf.Fpdf, y float64, subtotal, taxRate, taxAmount, total decimal.Decimal) float64 {
	y += 20
	pdf.Text(350, y, fmt.Sprintf("Subtotal: %s", r.money(subtotal)))
	y += 15
	pdf.Text(350, y, fmt.Sprintf("Tax (%s%%): %s", taxRate, r.money(taxAmount)))
	y += 15
	pdf.Text(350, y, fmt.Sprintf("Total: %s", r.money(total)))
	return y
}

func (r *Renderer) writeNotes(pdf *gofpdf.Fpdf, y float64, notes string) {
	if notes == "" {
		return
	}
	y += 30
	pdf.Text(50, y, "Notes:")
	pdf.Text(50, y+15, notes)
}

func (r *Renderer) money(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", r.currencySymbol, amount.StringFixed(2))
}

func output(pdf *gofpdf.Fpdf, documentID string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: failed to render document %s: %v", apperrors.ErrRender, documentID, err)
	}
	return buf.Bytes(), nil
}
