// Package routing implements the routing oracle: a single-vehicle
// pickup-and-delivery solver based on parallel cheapest insertion.
package routing

import (
	"context"
	"fmt"

	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

// DefaultMaxRouteDistance is the vehicle's maximum travel distance. Routes
// longer than this are infeasible regardless of precedence.
const DefaultMaxRouteDistance = 8000

// CheapestInsertionSolver builds a route by repeatedly inserting the order
// whose cheapest feasible insertion raises the route cost the least. Pickups
// always precede their deliveries and the depot anchors both route ends.
// The heuristic is deterministic: equal-cost insertions resolve to the
// earliest candidate.
type CheapestInsertionSolver struct {
	maxRouteDistance float64
}

// NewCheapestInsertionSolver creates a solver with the given distance bound.
// A non-positive bound falls back to DefaultMaxRouteDistance.
func NewCheapestInsertionSolver(maxRouteDistance float64) *CheapestInsertionSolver {
	if maxRouteDistance <= 0 {
		maxRouteDistance = DefaultMaxRouteDistance
	}
	return &CheapestInsertionSolver{maxRouteDistance: maxRouteDistance}
}

// Solve implements ports.RoutingSolver.
func (s *CheapestInsertionSolver) Solve(ctx context.Context, problem ports.RoutingProblem) (ports.RoutingSolution, error) {
	if problem.Matrix == nil {
		return ports.RoutingSolution{}, errs.NewValueIsRequiredError("matrix")
	}
	if !problem.Matrix.Contains(problem.Depot) {
		return ports.RoutingSolution{}, fmt.Errorf("%w: depot %s is not in the network", ports.ErrNoFeasibleRoute, problem.Depot)
	}

	route := []network.NodeID{problem.Depot, problem.Depot}
	remaining := make(map[int]struct{}, len(problem.Orders))
	for i := range problem.Orders {
		remaining[i] = struct{}{}
	}

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return ports.RoutingSolution{}, err
		}

		bestOrder := -1
		var bestRoute []network.NodeID
		var bestDelta float64

		for i := 0; i < len(problem.Orders); i++ {
			if _, ok := remaining[i]; !ok {
				continue
			}

			candidate, delta, ok := s.cheapestInsertion(problem.Matrix, route, problem.Orders[i].Pickup(), problem.Orders[i].Delivery())
			if !ok {
				return ports.RoutingSolution{}, fmt.Errorf("%w: order %s cannot be inserted", ports.ErrNoFeasibleRoute, problem.Orders[i].ID())
			}

			if bestOrder == -1 || delta < bestDelta {
				bestOrder, bestRoute, bestDelta = i, candidate, delta
			}
		}

		route = bestRoute
		delete(remaining, bestOrder)
	}

	total, err := routeDistance(problem.Matrix, route)
	if err != nil {
		return ports.RoutingSolution{}, fmt.Errorf("%w: %s", ports.ErrNoFeasibleRoute, err)
	}
	if total > s.maxRouteDistance {
		return ports.RoutingSolution{}, fmt.Errorf("%w: distance %.0f exceeds bound %.0f", ports.ErrNoFeasibleRoute, total, s.maxRouteDistance)
	}

	return ports.RoutingSolution{
		TotalDistance: total,
		Route:         route,
	}, nil
}

// cheapestInsertion finds the cheapest pair of positions placing pickup
// before delivery in the route. It reports false when any involved distance
// is unknown to the matrix.
func (s *CheapestInsertionSolver) cheapestInsertion(
	matrix *network.DistanceMatrix,
	route []network.NodeID,
	pickup network.NodeID,
	delivery network.NodeID,
) ([]network.NodeID, float64, bool) {
	if !matrix.Contains(pickup) || !matrix.Contains(delivery) {
		return nil, 0, false
	}

	base, err := routeDistance(matrix, route)
	if err != nil {
		return nil, 0, false
	}

	var best []network.NodeID
	bestDelta, found := 0.0, false

	// Insert the pickup at position i, then the delivery at any position
	// after it. Routes stay small, so exhaustive evaluation is fine.
	for i := 1; i < len(route); i++ {
		withPickup := insertAt(route, i, pickup)
		for j := i + 1; j < len(withPickup); j++ {
			candidate := insertAt(withPickup, j, delivery)

			total, err := routeDistance(matrix, candidate)
			if err != nil {
				return nil, 0, false
			}

			delta := total - base
			if !found || delta < bestDelta {
				best, bestDelta, found = candidate, delta, true
			}
		}
	}

	return best, bestDelta, found
}

func insertAt(route []network.NodeID, i int, node network.NodeID) []network.NodeID {
	out := make([]network.NodeID, 0, len(route)+1)
	out = append(out, route[:i]...)
	out = append(out, node)
	out = append(out, route[i:]...)
	return out
}

func routeDistance(matrix *network.DistanceMatrix, route []network.NodeID) (float64, error) {
	total := 0.0
	for i := 1; i < len(route); i++ {
		leg, err := matrix.Distance(route[i-1], route[i])
		if err != nil {
			return 0, err
		}
		total += leg
	}
	return total, nil
}
