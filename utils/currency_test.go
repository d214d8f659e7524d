package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyKES(t *testing.T) {
	assert.Equal(t, "KES 0", FormatCurrencyKES(0))
	assert.Equal(t, "KES 850", FormatCurrencyKES(850))
	assert.Equal(t, "KES 1,800", FormatCurrencyKES(1800))
	assert.Equal(t, "KES 32,000", FormatCurrencyKES(32000))
	assert.Equal(t, "KES 1,234,567", FormatCurrencyKES(1234567))
}
