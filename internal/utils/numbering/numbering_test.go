package numbering_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/aksagenset/invoquot/internal/utils/numbering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentNumber_Format(t *testing.T) {
	issued := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	got, err := numbering.NewDocumentNumber(numbering.InvoicePrefix, issued)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^INV-250307-\d{3}$`), got)
}

func TestNewDocumentNumber_Prefixes(t *testing.T) {
	issued := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	inv, err := numbering.NewDocumentNumber(numbering.InvoicePrefix, issued)
	require.NoError(t, err)
	quo, err := numbering.NewDocumentNumber(numbering.QuotationPrefix, issued)
	require.NoError(t, err)

	assert.Regexp(t, `^INV-241231-\d{3}$`, inv)
	assert.Regexp(t, `^QUO-241231-\d{3}$`, quo)
}
