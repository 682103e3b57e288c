package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(12.345, 2))
	assert.Equal(t, "100.00", FormatWithPrecision(100, 2))
	assert.Equal(t, "12", FormatWithPrecision(12.3456, 0))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.70 EUR", FormatMoney(0.7, "EUR"))
}
