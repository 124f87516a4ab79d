// Package services contains stateless domain services for the order
// management system.
//
// The package includes:
//   - DispatchQueue: Arranges pending order lines into dispatch sequence,
//     urgent orders first and oldest orders first within the same urgency
//   - AccessPolicy: The role table deciding which operations each of the
//     four roles may perform, plus the ownership check for sales users
//
// Domain services implement business logic that spans aggregates and does
// not naturally belong to any single one of them.
package services
