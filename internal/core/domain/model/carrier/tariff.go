package carrier

import (
	"errors"
	"math"

	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

// ErrTariffIsNotConstructed is returned when using an improperly initialized Tariff.
var ErrTariffIsNotConstructed = errs.NewValueIsRequiredError("tariff must be created via NewTariff constructor")

// Tariff is the carrier-specific linear pricing model. It is supplied at
// configuration time and never mutated during a run.
//
//	revenue = A1 + A2 × route distance
//	cost    = B1 + B2 × marginal distance
//	profit  = revenue − cost
type Tariff struct {
	a1    float64
	a2    float64
	b1    float64
	b2    float64
	guard guard.ConstructorGuard
}

// NewTariff creates a Tariff. The distance coefficients A2 and B2 must be
// strictly positive; the base rates A1 and B1 must be non-negative. All four
// must be finite.
func NewTariff(a1, a2, b1, b2 float64) (Tariff, error) {
	for _, v := range []float64{a1, a2, b1, b2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Tariff{}, errs.NewValueIsInvalidErrorWithCause("tariff", errors.New("coefficients must be finite"))
		}
	}
	if a1 < 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("a1", errors.New("base revenue rate is negative"))
	}
	if b1 < 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("b1", errors.New("base cost rate is negative"))
	}
	if a2 <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("a2", errors.New("revenue distance coefficient must be positive"))
	}
	if b2 <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause("b2", errors.New("cost distance coefficient must be positive"))
	}

	return Tariff{
		a1:    a1,
		a2:    a2,
		b1:    b1,
		b2:    b2,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Tariff was created through NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// Revenue prices a full route of the given distance.
func (t Tariff) Revenue(distance float64) float64 {
	return t.a1 + t.a2*distance
}

// Cost prices a marginal distance change: the distance saved by removing an
// order, or the extra distance incurred by taking one on.
func (t Tariff) Cost(marginalDistance float64) float64 {
	return t.b1 + t.b2*marginalDistance
}

// A1 returns the base revenue rate.
func (t Tariff) A1() float64 { return t.a1 }

// A2 returns the revenue-per-distance coefficient.
func (t Tariff) A2() float64 { return t.a2 }

// B1 returns the base cost rate.
func (t Tariff) B1() float64 { return t.b1 }

// B2 returns the cost-per-distance coefficient.
func (t Tariff) B2() float64 { return t.b2 }
