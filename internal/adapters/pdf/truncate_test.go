package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short unchanged", "Consulting", "Consulting"},
		{"at limit unchanged", strings.Repeat("a", descriptionLimit), strings.Repeat("a", descriptionLimit)},
		{"long ascii truncated", strings.Repeat("a", descriptionLimit+5), strings.Repeat("a", descriptionLimit)},
		{"multibyte truncated on rune boundary", strings.Repeat("é", descriptionLimit+5), strings.Repeat("é", descriptionLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateDescription(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len([]rune(got)), descriptionLimit)
		})
	}
}

func TestTruncateDescription_MixedWidthBoundary(t *testing.T) {
	// A multibyte rune sitting exactly on the cut must survive intact.
	in := strings.Repeat("a", descriptionLimit-1) + "é" + "tail"

	got := truncateDescription(in)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", descriptionLimit-1)+"é", got)
}
