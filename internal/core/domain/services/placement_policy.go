package services

import (
	"context"

	"paybook/internal/core/domain/model/order"
	"paybook/internal/core/ports"
)

// Placement describes an order about to be placed, after structural
// validation has already passed.
type Placement struct {
	// UserID is the owner of the prospective order.
	UserID string

	// Items are the validated requested order lines.
	Items []order.ItemSpec

	// CouponID is the referenced coupon; empty when the request carried none.
	CouponID string

	// PointsToUse is the point amount to redeem; zero when the request
	// carried none.
	PointsToUse int
}

// placementRule is one predicate in the ordered rule list. A nil return lets
// evaluation continue; an error stops it and decides the outcome.
type placementRule func(ctx context.Context, p Placement) error

// PlacementPolicy is a domain service that evaluates the business rules
// guarding order placement.
//
// The rules run in a fixed order with first-match-wins semantics:
//
//	1. stock availability, per item in request order
//	2. coupon redeemability, only when a coupon is referenced
//	3. point balance, only when points are requested
//
// Once a rule fails, later rules are not evaluated. A request that trips both
// the stock rule and a coupon rule therefore always reports the stock
// rejection.
//
// Each rule delegates to a fulfillment capability port, so swapping the
// sentinel-driven stubs for real backends does not change the policy.
type PlacementPolicy struct {
	rules []placementRule
}

// NewPlacementPolicy builds the ordered rule list over the given capabilities.
func NewPlacementPolicy(
	stock ports.StockChecker,
	coupons ports.CouponChecker,
	points ports.PointsChecker,
) PlacementPolicy {
	return PlacementPolicy{
		rules: []placementRule{
			stockRule(stock),
			couponRule(coupons),
			pointsRule(points),
		},
	}
}

// Evaluate runs the rule list against a placement. Returns nil when every
// rule passes, or the first rejection encountered.
func (p PlacementPolicy) Evaluate(ctx context.Context, placement Placement) error {
	for _, rule := range p.rules {
		if err := rule(ctx, placement); err != nil {
			return err
		}
	}

	return nil
}

func stockRule(stock ports.StockChecker) placementRule {
	return func(ctx context.Context, p Placement) error {
		for _, item := range p.Items {
			if err := stock.Check(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
		return nil
	}
}

func couponRule(coupons ports.CouponChecker) placementRule {
	return func(ctx context.Context, p Placement) error {
		if p.CouponID == "" {
			return nil
		}
		return coupons.Check(ctx, p.CouponID)
	}
}

func pointsRule(points ports.PointsChecker) placementRule {
	return func(ctx context.Context, p Placement) error {
		if p.PointsToUse == 0 {
			return nil
		}
		return points.Check(ctx, p.UserID, p.PointsToUse)
	}
}
