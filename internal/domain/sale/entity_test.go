package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentLifecycle(t *testing.T) {
	t.Parallel()

	rate := decimal.NewFromFloat(0.05)
	s := Sale{
		TotalDealValue:  decimal.NewFromInt(1000),
		AmountCollected: decimal.Zero,
		Status:          StatusPartial,
	}

	// Act: first payment leaves the deal partially collected.
	applied, completed, err := s.ApplyPayment(decimal.NewFromInt(600), rate)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "600.00", applied.StringFixed(2))
	assert.False(t, completed)
	assert.Equal(t, StatusPartial, s.Status)
	assert.Equal(t, "600.00", s.AmountCollected.StringFixed(2))
	assert.False(t, s.CommissionPaid)
	assert.Equal(t, "0.00", s.CommissionAmount.StringFixed(2))

	// Act: overshooting payment is capped at the remaining balance and
	// completes the deal.
	applied, completed, err = s.ApplyPayment(decimal.NewFromInt(500), rate)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "400.00", applied.StringFixed(2))
	assert.True(t, completed)
	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, "1000.00", s.AmountCollected.StringFixed(2))
	assert.True(t, s.CommissionPaid)
	assert.Equal(t, "50.00", s.CommissionAmount.StringFixed(2))

	// Act: completed sales take no further payments.
	_, _, err = s.ApplyPayment(decimal.NewFromInt(1), rate)

	// Assert
	assert.ErrorIs(t, err, ErrSaleAlreadyCompleted)
	assert.Equal(t, "1000.00", s.AmountCollected.StringFixed(2))
	assert.Equal(t, "50.00", s.CommissionAmount.StringFixed(2))
}

func TestApplyPaymentCoveringTheWholeDeal(t *testing.T) {
	t.Parallel()

	rate := decimal.NewFromFloat(0.05)
	s := Sale{
		TotalDealValue:  decimal.NewFromInt(2500),
		AmountCollected: decimal.Zero,
		Status:          StatusPartial,
	}

	// Act
	applied, completed, err := s.ApplyPayment(decimal.NewFromInt(2500), rate)

	// Assert: commission is paid on the completing payment itself.
	require.NoError(t, err)
	assert.Equal(t, "2500.00", applied.StringFixed(2))
	assert.True(t, completed)
	assert.Equal(t, StatusCompleted, s.Status)
	assert.True(t, s.CommissionPaid)
	assert.Equal(t, "125.00", s.CommissionAmount.StringFixed(2))
}
