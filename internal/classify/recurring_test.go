package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecurring(t *testing.T) {
	tests := []struct {
		name     string
		txnName  string
		memo     string
		expected bool
	}{
		{
			name:     "payroll deposit",
			txnName:  "DIRECT DEP PAYROLL",
			memo:     "",
			expected: true,
		},
		{
			name:     "subscription brand",
			txnName:  "NETFLIX.COM",
			memo:     "",
			expected: true,
		},
		{
			name:     "generic marker in memo",
			txnName:  "ACME POWER",
			memo:     "AUTO PAY 03/24",
			expected: true,
		},
		{
			name:     "monthly marker lowercase",
			txnName:  "storage unit monthly rate",
			memo:     "",
			expected: true,
		},
		{
			name:     "one-off purchase",
			txnName:  "WHOLE FOODS MARKET",
			memo:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecurring(tt.txnName, tt.memo))
		})
	}
}
