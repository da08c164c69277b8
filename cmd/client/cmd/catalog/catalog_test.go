package catalog

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		length int
		want   string
	}{
		{
			name:   "short string untouched",
			in:     "PVC Pipe",
			length: 20,
			want:   "PVC Pipe",
		},
		{
			name:   "ascii cut with ellipsis",
			in:     "galvanized iron wire",
			length: 10,
			want:   "galvani...",
		},
		{
			name:   "devanagari cut on rune boundary",
			in:     "जस्तापाता र सिमेन्टका लागि उत्तम",
			length: 10,
			want:   "जस्तापा...",
		},
		{
			name:   "exact length untouched",
			in:     "सिमेन्ट",
			length: 7,
			want:   "सिमेन्ट",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.length)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
