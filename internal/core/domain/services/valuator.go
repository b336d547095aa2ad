package services

import (
	"context"
	"errors"

	"carriernet/internal/core/domain/model/carrier"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

// NeverBid is the valuation of a candidate order the carrier cannot price:
// an endpoint unknown to its distance matrix. It is large and negative so the
// carrier never bids on such an order, without treating it as a fault.
const NeverBid = -1e9

// ErrValuatorIsNotConstructed is returned when a Valuator was not created via NewValuator.
var ErrValuatorIsNotConstructed = errors.New("Valuator must be created via NewValuator constructor")

// Snapshot is the marginal profit profile of a carrier's ledger at one point
// in time. All vectors have length len(ledger)+1: index 0 describes the full
// ledger, index i describes the ledger with order i-1's slot considered for
// removal (indices follow the ledger positions shifted by one).
//
// For ledger distance d and tariff (a1, a2, b1, b2):
//
//	revenue    = a1 + a2*d
//	cost[0]    = b1
//	cost[i]    = b1 + b2*(d - distanceWithout(i-1))
//	profit[i]  = revenue - cost[i]
//
// profit[i] - profit[0] is the gain from shedding order i-1: the cost saving
// its removal would realize against the current revenue.
type Snapshot struct {
	// BaseDistance is the route distance of the full ledger.
	BaseDistance float64

	// Revenue is the carrier's revenue over the full ledger.
	Revenue float64

	// Costs is the marginal cost vector described above.
	Costs []float64

	// Profits is the marginal profit vector described above.
	Profits []float64
}

// BaselineProfit returns the profit of keeping the ledger as is.
func (s Snapshot) BaselineProfit() float64 {
	return s.Profits[0]
}

// RemovalGain returns the profit change from shedding the ledger order at
// index i. A positive gain means the order costs more to serve than it earns.
func (s Snapshot) RemovalGain(i int) (float64, error) {
	if i < 0 || i >= len(s.Profits)-1 {
		return 0, errs.NewValueIsOutOfRangeError("i", i, 0, len(s.Profits)-2)
	}
	return s.Profits[i+1] - s.Profits[0], nil
}

// BestRemoval returns the ledger index whose removal gains the most, and the
// gain itself. With an empty profile it returns -1. Ties resolve to the
// earliest index.
func (s Snapshot) BestRemoval() (int, float64) {
	best, bestGain := -1, 0.0
	for i := 1; i < len(s.Profits); i++ {
		gain := s.Profits[i] - s.Profits[0]
		if best == -1 || gain > bestGain {
			best, bestGain = i-1, gain
		}
	}
	return best, bestGain
}

// Valuator is a domain service pricing a carrier's order ledger through the
// routing oracle. It is stateless: callers cache the Snapshot it produces and
// invalidate their copy whenever the ledger mutates.
//
// A routing infeasibility surfaces as ports.ErrNoFeasibleRoute and poisons
// every valuation derived from that ledger; callers degrade to a no-op for
// the tick rather than treat it as fatal.
type Valuator struct {
	solver ports.RoutingSolver
	matrix *network.DistanceMatrix

	isConstructed bool
}

// NewValuator creates a Valuator over the given routing oracle and network.
func NewValuator(solver ports.RoutingSolver, matrix *network.DistanceMatrix) (*Valuator, error) {
	if solver == nil {
		return nil, errs.NewValueIsRequiredError("solver")
	}
	if matrix == nil {
		return nil, errs.NewValueIsRequiredError("matrix")
	}

	return &Valuator{
		solver:        solver,
		matrix:        matrix,
		isConstructed: true,
	}, nil
}

// Validate ensures the Valuator was created through NewValuator.
func (v *Valuator) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrValuatorIsNotConstructed
	}
	return nil
}

// RouteDistance returns the route distance of serving the given orders from
// the carrier's depot.
func (v *Valuator) RouteDistance(ctx context.Context, c *carrier.Carrier, orders []order.Order) (float64, error) {
	if err := errors.Join(v.Validate(), c.Validate()); err != nil {
		return 0, err
	}

	solution, err := v.solver.Solve(ctx, ports.RoutingProblem{
		Orders: orders,
		Depot:  c.Depot().ID(),
		Matrix: v.matrix,
	})
	if err != nil {
		return 0, err
	}

	return solution.TotalDistance, nil
}

// TotalRevenue returns the carrier's revenue over its full ledger.
func (v *Valuator) TotalRevenue(ctx context.Context, c *carrier.Carrier) (float64, error) {
	distance, err := v.RouteDistance(ctx, c, c.Ledger())
	if err != nil {
		return 0, err
	}
	return c.Tariff().Revenue(distance), nil
}

// Snapshot computes the carrier's marginal profit profile. It makes one
// solver call for the full ledger and one per order with that order removed.
func (v *Valuator) Snapshot(ctx context.Context, c *carrier.Carrier) (Snapshot, error) {
	ledger := c.Ledger()

	base, err := v.RouteDistance(ctx, c, ledger)
	if err != nil {
		return Snapshot{}, err
	}

	tariff := c.Tariff()
	revenue := tariff.Revenue(base)

	costs := make([]float64, len(ledger)+1)
	profits := make([]float64, len(ledger)+1)
	costs[0] = tariff.Cost(0)
	profits[0] = revenue - costs[0]

	for i := range ledger {
		reduced := make([]order.Order, 0, len(ledger)-1)
		reduced = append(reduced, ledger[:i]...)
		reduced = append(reduced, ledger[i+1:]...)

		without, err := v.RouteDistance(ctx, c, reduced)
		if err != nil {
			return Snapshot{}, err
		}

		costs[i+1] = tariff.Cost(base - without)
		profits[i+1] = revenue - costs[i+1]
	}

	return Snapshot{
		BaseDistance: base,
		Revenue:      revenue,
		Costs:        costs,
		Profits:      profits,
	}, nil
}

// MarginalValue prices a candidate order against the carrier's current
// ledger: the profit change from serving the augmented ledger instead.
//
//	delta = (revenue' - cost') - baselineProfit
//	cost' = b1 + b2*(distance' - baseDistance)
//
// A candidate with an endpoint unknown to the carrier's matrix values at
// NeverBid with no error: the carrier simply cannot serve it.
func (v *Valuator) MarginalValue(ctx context.Context, c *carrier.Carrier, snapshot Snapshot, candidate order.Order) (float64, error) {
	if err := errors.Join(v.Validate(), c.Validate(), candidate.Validate()); err != nil {
		return 0, err
	}

	if !v.matrix.Contains(candidate.Pickup()) || !v.matrix.Contains(candidate.Delivery()) {
		return NeverBid, nil
	}

	augmented := append(c.Ledger(), candidate)
	distance, err := v.RouteDistance(ctx, c, augmented)
	if err != nil {
		return 0, err
	}

	tariff := c.Tariff()
	revenue := tariff.Revenue(distance)
	cost := tariff.Cost(distance - snapshot.BaseDistance)

	return (revenue - cost) - snapshot.BaselineProfit(), nil
}
