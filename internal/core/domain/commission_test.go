package domain_test

import (
	"testing"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCommissionFeeRate_Tiers(t *testing.T) {
	for n := 0; n <= 4; n++ {
		assert.Equal(t, 0.0, domain.CommissionFeeRate(n), "n=%d", n)
	}
	for _, n := range []int{5, 6, 50, 1 << 20} {
		assert.Equal(t, 0.007, domain.CommissionFeeRate(n), "n=%d", n)
	}
}

func TestCommissionFeeRate_Bounded(t *testing.T) {
	for n := -3; n < 100; n++ {
		rate := domain.CommissionFeeRate(n)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 0.007)
	}
}

func TestCommissionFee(t *testing.T) {
	assert.Equal(t, 0.0, domain.CommissionFee(0, 100))
	assert.Equal(t, 0.7, domain.CommissionFee(5, 100))
	assert.Equal(t, 0.35, domain.CommissionFee(9, 50))
}
