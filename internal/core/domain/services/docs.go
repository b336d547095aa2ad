// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the carrier network. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Valuator: a domain service pricing a carrier's ledger through the
//     routing oracle — total revenue, per-order marginal profiles, and the
//     marginal value of acquiring a candidate order.
package services
