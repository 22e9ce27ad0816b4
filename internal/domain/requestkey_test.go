package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRequestID(t *testing.T) {
	tests := []struct {
		seq      int
		expected string
	}{
		{1, "PR0001"},
		{42, "PR0042"},
		{9999, "PR9999"},
		{10000, "PR10000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatRequestID(tt.seq))
	}
}

func TestParseRequestKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		expected  RequestKey
	}{
		{
			name:     "Public identifier",
			input:    "PR0007",
			expected: RequestKey{Public: "PR0007"},
		},
		{
			name:     "Widened public identifier",
			input:    "PR10001",
			expected: RequestKey{Public: "PR10001"},
		},
		{
			name:     "Internal storage id fallback",
			input:    "123",
			expected: RequestKey{Internal: 123},
		},
		{
			name:      "Short public form is not a key",
			input:     "PR1",
			expectErr: true,
		},
		{
			name:      "Garbage",
			input:     "abc",
			expectErr: true,
		},
		{
			name:      "Negative id",
			input:     "-5",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseRequestKey(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrBadRequestKey)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, tt.expected.Public != "", key.IsPublic())
		})
	}
}
