// Package ports defines the contracts between the carrier network core and
// infrastructure: the routing oracle, the auction board protocol, ledger
// persistence and the settlement journal. These interfaces establish the
// dependency-inversion boundary that keeps the domain testable.
package ports

import (
	"context"
	"errors"

	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
)

// ErrNoFeasibleRoute is returned when no admissible route exists for a
// problem: precedence cannot be satisfied, a node is unknown to the matrix,
// or every candidate route exceeds the solver's distance bound.
var ErrNoFeasibleRoute = errors.New("no feasible route")

// RoutingProblem is a single-vehicle pickup-and-delivery instance. The
// vehicle starts and ends at the depot and must visit every order's pickup
// before its delivery. The depot itself is never part of a tradable order.
type RoutingProblem struct {
	// Orders are the pickup/delivery pairs to serve, in ledger order.
	Orders []order.Order

	// Depot is the carrier's home node, anchoring the route at both ends.
	Depot network.NodeID

	// Matrix supplies pairwise distances for every node the route may visit.
	Matrix *network.DistanceMatrix
}

// RoutingSolution is a feasible route and its cost.
type RoutingSolution struct {
	// TotalDistance is the length of the full depot-to-depot route.
	TotalDistance float64

	// Route is the visit sequence including the depot at both ends.
	Route []network.NodeID
}

// RoutingSolver is the routing oracle the valuation engine consults.
// Implementations are heuristic: the returned route is feasible, not
// necessarily optimal, but deterministic for a given problem.
type RoutingSolver interface {
	// Solve returns a feasible route for the problem, or ErrNoFeasibleRoute.
	// An empty problem solves trivially to distance zero.
	Solve(ctx context.Context, problem RoutingProblem) (RoutingSolution, error)
}
