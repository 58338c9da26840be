// Package services provides domain services for the paybook order stub.
//
// The package contains the PlacementPolicy, which evaluates the business rules
// guarding order placement as an explicit ordered rule list. The evaluation
// order is part of the API contract: stock is checked before coupons, and
// coupons before points, with the first failing rule deciding the outcome.
package services
