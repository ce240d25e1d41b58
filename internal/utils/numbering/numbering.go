package numbering

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Prefixes for the two document variants.
const (
	InvoicePrefix   = "INV"
	QuotationPrefix = "QUO"
)

// NewDocumentNumber generates a human-facing document number of the form
// PREFIX-YYMMDD-NNN, where NNN is a cryptographically random suffix.
//
// The format admits a bounded collision probability for documents created the
// same day; uniqueness is guaranteed by the store's per-company unique
// constraint, and callers retry with a fresh number on conflict.
func NewDocumentNumber(prefix string, now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to read random suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, now.Format("060102"), n.Int64()), nil
}
