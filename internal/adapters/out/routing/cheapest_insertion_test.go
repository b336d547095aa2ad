package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carriernet/internal/adapters/out/routing"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"
)

// lineMatrix lays the nodes on a horizontal line so every distance is just
// the coordinate difference.
func lineMatrix(t *testing.T, coords map[network.NodeID]int) *network.DistanceMatrix {
	t.Helper()

	nodes := make([]network.Node, 0, len(coords))
	for _, id := range []network.NodeID{"W0", "P1", "D1", "P2", "D2"} {
		x, ok := coords[id]
		if !ok {
			continue
		}
		loc, err := kernel.NewLocation(kernel.Coordinate(x), 0)
		require.NoError(t, err)
		node, err := network.NewNode(id, string(id), loc)
		require.NoError(t, err)
		nodes = append(nodes, node)
	}

	dir, err := network.NewDirectory(nodes)
	require.NoError(t, err)
	matrix, err := network.BuildDistanceMatrix(dir)
	require.NoError(t, err)
	return matrix
}

func mustOrder(t *testing.T, pickup, delivery network.NodeID) order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), pickup, delivery)
	require.NoError(t, err)
	return o
}

func indexOf(route []network.NodeID, id network.NodeID) int {
	for i, n := range route {
		if n == id {
			return i
		}
	}
	return -1
}

func Test_CheapestInsertionSolver_Solve(t *testing.T) {
	matrix := lineMatrix(t, map[network.NodeID]int{
		"W0": 0, "P1": 10, "D1": 20, "P2": 30, "D2": 40,
	})
	solver := routing.NewCheapestInsertionSolver(0)

	t.Run("should solve an empty problem to distance zero", func(t *testing.T) {
		solution, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Depot:  "W0",
			Matrix: matrix,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.0, solution.TotalDistance)
		assert.Equal(t, []network.NodeID{"W0", "W0"}, solution.Route)
	})

	t.Run("should route a single order out and back", func(t *testing.T) {
		solution, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P1", "D1")},
			Depot:  "W0",
			Matrix: matrix,
		})

		require.NoError(t, err)
		assert.Equal(t, []network.NodeID{"W0", "P1", "D1", "W0"}, solution.Route)
		assert.Equal(t, 40.0, solution.TotalDistance)
	})

	t.Run("should chain two orders along the line", func(t *testing.T) {
		solution, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P1", "D1"), mustOrder(t, "P2", "D2")},
			Depot:  "W0",
			Matrix: matrix,
		})

		require.NoError(t, err)
		assert.Equal(t, []network.NodeID{"W0", "P1", "D1", "P2", "D2", "W0"}, solution.Route)
		assert.Equal(t, 80.0, solution.TotalDistance)
	})

	t.Run("should visit the pickup before the delivery", func(t *testing.T) {
		// The delivery sits between depot and pickup, tempting a
		// delivery-first route; precedence must forbid it.
		solution, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P2", "D1")},
			Depot:  "W0",
			Matrix: matrix,
		})

		require.NoError(t, err)
		assert.Less(t, indexOf(solution.Route, "P2"), indexOf(solution.Route, "D1"))
	})

	t.Run("should reject a route exceeding the distance bound", func(t *testing.T) {
		tight := routing.NewCheapestInsertionSolver(50)

		_, err := tight.Solve(context.Background(), ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P1", "D1"), mustOrder(t, "P2", "D2")},
			Depot:  "W0",
			Matrix: matrix,
		})

		assert.ErrorIs(t, err, ports.ErrNoFeasibleRoute)
	})

	t.Run("should reject an order with an unknown endpoint", func(t *testing.T) {
		_, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P1", "X99")},
			Depot:  "W0",
			Matrix: matrix,
		})

		assert.ErrorIs(t, err, ports.ErrNoFeasibleRoute)
	})

	t.Run("should reject an unknown depot", func(t *testing.T) {
		_, err := solver.Solve(context.Background(), ports.RoutingProblem{
			Depot:  "X99",
			Matrix: matrix,
		})

		assert.ErrorIs(t, err, ports.ErrNoFeasibleRoute)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := solver.Solve(ctx, ports.RoutingProblem{
			Orders: []order.Order{mustOrder(t, "P1", "D1")},
			Depot:  "W0",
			Matrix: matrix,
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
