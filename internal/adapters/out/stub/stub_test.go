package stub_test

import (
	"errors"
	"testing"

	"paybook/internal/adapters/out/stub"
	"paybook/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rejectionCode(t *testing.T, err error) order.RejectionCode {
	t.Helper()
	var rejected *order.RejectedError
	require.ErrorAs(t, err, &rejected)
	require.ErrorIs(t, err, order.ErrOrderRejected)
	return rejected.Code
}

func TestStockGateway(t *testing.T) {
	ctx := t.Context()
	gateway := stub.NewStockGateway()

	t.Run("should accept quantities below the threshold", func(t *testing.T) {
		assert.NoError(t, gateway.Check(ctx, "PROD-001", 1))
		assert.NoError(t, gateway.Check(ctx, "PROD-001", stub.OutOfStockThreshold-1))
	})

	t.Run("should reject quantities at or above the threshold", func(t *testing.T) {
		err := gateway.Check(ctx, "PROD-001", stub.OutOfStockThreshold)
		assert.Equal(t, order.RejectionOutOfStock, rejectionCode(t, err))

		err = gateway.Check(ctx, "PROD-001", stub.OutOfStockThreshold+1)
		assert.Equal(t, order.RejectionOutOfStock, rejectionCode(t, err))
	})

	t.Run("should name the product in the message", func(t *testing.T) {
		err := gateway.Check(ctx, "PROD-042", stub.OutOfStockThreshold)
		assert.Contains(t, err.Error(), "PROD-042")
	})
}

func TestCouponGateway(t *testing.T) {
	ctx := t.Context()
	gateway := stub.NewCouponGateway()

	t.Run("should accept unreserved identifiers", func(t *testing.T) {
		assert.NoError(t, gateway.Check(ctx, "WELCOME10"))
		assert.NoError(t, gateway.Check(ctx, "used")) // reserved values are case-sensitive
	})

	t.Run("should map reserved identifiers to their rejections", func(t *testing.T) {
		cases := map[string]order.RejectionCode{
			stub.CouponUsed:    order.RejectionCouponAlreadyUsed,
			stub.CouponExpired: order.RejectionCouponExpired,
			stub.CouponInvalid: order.RejectionCouponNotFound,
		}
		for couponID, want := range cases {
			err := gateway.Check(ctx, couponID)
			assert.Equal(t, want, rejectionCode(t, err))
		}
	})

	t.Run("only the unknown coupon counts as a missing entity", func(t *testing.T) {
		err := gateway.Check(ctx, stub.CouponInvalid)
		var rejected *order.RejectedError
		require.True(t, errors.As(err, &rejected))
		assert.True(t, rejected.Code.EntityMissing())

		err = gateway.Check(ctx, stub.CouponUsed)
		require.True(t, errors.As(err, &rejected))
		assert.False(t, rejected.Code.EntityMissing())
	})
}

func TestPointsGateway(t *testing.T) {
	ctx := t.Context()
	gateway := stub.NewPointsGateway()

	t.Run("should accept amounts below the threshold", func(t *testing.T) {
		assert.NoError(t, gateway.Check(ctx, "USER-001", 1))
		assert.NoError(t, gateway.Check(ctx, "USER-001", stub.PointsUnavailableThreshold-1))
	})

	t.Run("should reject amounts at or above the threshold", func(t *testing.T) {
		err := gateway.Check(ctx, "USER-001", stub.PointsUnavailableThreshold)
		assert.Equal(t, order.RejectionPointsUnavailable, rejectionCode(t, err))
	})
}

func TestPricingGateway(t *testing.T) {
	ctx := t.Context()

	t.Run("should return the configured price", func(t *testing.T) {
		price, err := stub.NewPricingGateway(2500).UnitPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2500, price)
	})

	t.Run("should fall back to the default price", func(t *testing.T) {
		price, err := stub.NewPricingGateway(0).UnitPrice(ctx)
		require.NoError(t, err)
		assert.Equal(t, stub.DefaultUnitPrice, price)
	})
}
