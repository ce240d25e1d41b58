package billing

import (
	"fmt"

	"github.com/aksagenset/invoquot/internal/apperrors"
	"github.com/aksagenset/invoquot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTaxRatePercent applies when a creation request carries no tax rate.
var DefaultTaxRatePercent = decimal.NewFromInt(16)

var oneHundred = decimal.NewFromInt(100)

// Totals is the result of computing a document's money fields from its items.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals derives subtotal, tax and total from line items. It is pure and
// deterministic; document creation always recomputes totals from items rather
// than trusting caller-supplied values.
//
// Tax is rounded half-up to 2 decimal places, so Total == Subtotal + TaxAmount
// holds exactly in the persisted representation.
func ComputeTotals(items []domain.LineItem, taxRatePercent decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, fmt.Errorf("%w: document must have at least one line item", apperrors.ErrValidation)
	}
	if taxRatePercent.IsNegative() {
		return Totals{}, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	subtotal := decimal.Zero
	for i, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, fmt.Errorf("%w: quantity must be positive for line item %d", apperrors.ErrValidation, i+1)
		}
		if item.UnitPrice.IsNegative() {
			return Totals{}, fmt.Errorf("%w: unit price must not be negative for line item %d", apperrors.ErrValidation, i+1)
		}
		subtotal = subtotal.Add(item.Amount())
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts handled here.
	taxAmount := subtotal.Mul(taxRatePercent).Div(oneHundred).Round(2)

	return Totals{
		Subtotal:  subtotal,
		TaxRate:   taxRatePercent,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}, nil
}

// Allocation is the invoice state after applying one payment.
type Allocation struct {
	AmountPaid    decimal.Decimal
	BalanceDue    decimal.Decimal
	PaymentStatus domain.PaymentStatus
}

// AllocatePayment computes the invoice state after a payment of amount against
// an invoice with the given total and amount already paid. It is used inside
// the payment transaction against the locked invoice row, and keeps the
// pending -> partial -> paid machine monotonic.
func AllocatePayment(total, alreadyPaid, amount decimal.Decimal) (Allocation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Allocation{}, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	remaining := total.Sub(alreadyPaid)
	if amount.GreaterThan(remaining) {
		return Allocation{}, fmt.Errorf("%w: payment amount %s exceeds balance due %s", apperrors.ErrValidation, amount, remaining)
	}

	newPaid := alreadyPaid.Add(amount)
	status := domain.PaymentPending
	switch {
	case newPaid.GreaterThanOrEqual(total):
		status = domain.PaymentPaid
	case newPaid.GreaterThan(decimal.Zero):
		status = domain.PaymentPartial
	}

	return Allocation{
		AmountPaid:    newPaid,
		BalanceDue:    total.Sub(newPaid),
		PaymentStatus: status,
	}, nil
}
