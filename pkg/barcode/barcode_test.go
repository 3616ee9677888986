package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Lower Case SKU",
			raw:      "abc-123",
			expected: "ABC-123",
		},
		{
			name:     "Scanner Noise",
			raw:      "  5012345678900\n",
			expected: "5012345678900",
		},
		{
			name:     "Embedded Tab",
			raw:      "ABC\t123",
			expected: "ABC123",
		},
		{
			name:     "Empty",
			raw:      "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.raw))
		})
	}
}

func TestIsValidEAN13(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{
			name:     "Valid Check Digit",
			code:     "4006381333931",
			expected: true,
		},
		{
			name:     "Wrong Check Digit",
			code:     "4006381333932",
			expected: false,
		},
		{
			name:     "Too Short",
			code:     "400638133393",
			expected: false,
		},
		{
			name:     "Non Digit",
			code:     "40063813339AB",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidEAN13(tt.code))
		})
	}
}
