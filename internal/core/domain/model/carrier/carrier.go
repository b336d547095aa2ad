package carrier

import (
	"errors"
	"fmt"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrOfferBudgetExhausted is returned when a carrier that has used all its
	// lifetime offers tries to record another one.
	ErrOfferBudgetExhausted = errors.New("offer budget exhausted")
	// ErrOrderAlreadyInLedger is returned when appending an order the carrier already owns.
	ErrOrderAlreadyInLedger = errors.New("order already in ledger")
)

// Carrier is the aggregate root for one delivery company in the network.
// It owns an order ledger, a depot, a pricing tariff, and a lifetime budget
// of auctions it may initiate.
//
// Business rules:
//   - The ledger is exclusively owned and mutated by its carrier; entries keep
//     insertion order, which carries no meaning beyond indexing for valuation
//   - An order appears at most once in the ledger
//   - OffersMade never exceeds OffersLimit; once the budget is spent the
//     carrier stops selling but keeps bidding
//   - The depot node is not tradable and never enters the ledger
type Carrier struct {
	// id uniquely identifies the carrier
	id kernel.UUID
	// name is the human-readable name of the carrier, e.g. "C0"
	name string
	// depot is the node the carrier's vehicle starts and ends every route at
	depot network.Node
	// tariff is the carrier's linear pricing model
	tariff Tariff
	// ledger holds the orders currently owned by the carrier
	ledger []order.Order
	// offersMade counts auctions this carrier has initiated over its lifetime
	offersMade int
	// offersLimit caps offersMade
	offersLimit int
	// guard ensures the carrier was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrier creates a Carrier with an empty ledger.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - depot: the carrier's depot node (must be a constructed network.Node)
//   - tariff: the pricing model (must be a constructed Tariff)
//   - offersLimit: lifetime cap on initiated auctions (must be >= 0)
func NewCarrier(
	id kernel.UUID,
	name string,
	depot network.Node,
	tariff Tariff,
	offersLimit int,
) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setDepot(depot),
		c.setTariff(tariff),
		c.setOffersLimit(offersLimit),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier from persistent storage, including
// its ledger and the number of offers already spent.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	depot network.Node,
	tariff Tariff,
	offersLimit int,
	offersMade int,
	ledger []order.Order,
) (*Carrier, error) {
	c, err := NewCarrier(id, name, depot, tariff, offersLimit)
	if err != nil {
		return nil, err
	}

	if offersMade < 0 || offersMade > offersLimit {
		return nil, errs.NewValueIsOutOfRangeError("offersMade", offersMade, 0, offersLimit)
	}
	c.offersMade = offersMade

	if err := c.ReplaceLedger(ledger); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the Carrier was created through NewCarrier.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's human-readable name.
func (c *Carrier) Name() string {
	return c.name
}

// Depot returns the carrier's depot node.
func (c *Carrier) Depot() network.Node {
	return c.depot
}

// Tariff returns the carrier's pricing model.
func (c *Carrier) Tariff() Tariff {
	return c.tariff
}

// Ledger returns a copy of the carrier's order ledger in insertion order.
// Mutations go through Append, RemoveAt, or ReplaceLedger only.
func (c *Carrier) Ledger() []order.Order {
	out := make([]order.Order, len(c.ledger))
	copy(out, c.ledger)
	return out
}

// LedgerLen returns the number of orders the carrier currently owns.
func (c *Carrier) LedgerLen() int {
	return len(c.ledger)
}

// OrderAt returns the ledger entry at the given index.
func (c *Carrier) OrderAt(i int) (order.Order, error) {
	if i < 0 || i >= len(c.ledger) {
		return order.Order{}, errs.NewValueIsOutOfRangeError("ledger index", i, 0, len(c.ledger)-1)
	}
	return c.ledger[i], nil
}

// Append adds a won order to the end of the ledger. Appending an order the
// carrier already owns is a conservation violation and is rejected.
func (c *Carrier) Append(o order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for _, owned := range c.ledger {
		if owned.IsEqual(o) {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyInLedger, o.ID())
		}
	}

	c.ledger = append(c.ledger, o)
	return nil
}

// RemoveAt removes and returns the ledger entry at the given index,
// preserving the order of the remaining entries.
func (c *Carrier) RemoveAt(i int) (order.Order, error) {
	removed, err := c.OrderAt(i)
	if err != nil {
		return order.Order{}, err
	}

	c.ledger = append(c.ledger[:i], c.ledger[i+1:]...)
	return removed, nil
}

// ReplaceLedger swaps the whole ledger, validating every entry and rejecting
// duplicates. Used when loading a ledger from its store.
func (c *Carrier) ReplaceLedger(orders []order.Order) error {
	replacement := make([]order.Order, 0, len(orders))
	seen := make(map[kernel.UUID]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		key := o.ID()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyInLedger, o.ID())
		}
		seen[key] = struct{}{}
		replacement = append(replacement, o)
	}

	c.ledger = replacement
	return nil
}

// CanOffer reports whether the carrier still has lifetime offer budget left.
func (c *Carrier) CanOffer() bool {
	return c.offersMade < c.offersLimit
}

// RecordOffer consumes one unit of the offer budget. It must be called once
// per auction the carrier successfully opens.
func (c *Carrier) RecordOffer() error {
	if !c.CanOffer() {
		return ErrOfferBudgetExhausted
	}
	c.offersMade++
	return nil
}

// OffersMade returns the number of auctions the carrier has initiated.
func (c *Carrier) OffersMade() int {
	return c.offersMade
}

// OffersLimit returns the lifetime cap on initiated auctions.
func (c *Carrier) OffersLimit() int {
	return c.offersLimit
}

// setID validates and sets the carrier identifier.
func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the carrier name.
func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setDepot validates and sets the depot node.
func (c *Carrier) setDepot(depot network.Node) error {
	if err := depot.Validate(); err != nil {
		return err
	}
	c.depot = depot
	return nil
}

// setTariff validates and sets the tariff.
func (c *Carrier) setTariff(tariff Tariff) error {
	if err := tariff.Validate(); err != nil {
		return err
	}
	c.tariff = tariff
	return nil
}

// setOffersLimit validates and sets the offer budget.
func (c *Carrier) setOffersLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offersLimit", fmt.Errorf("%d is negative", limit))
	}
	c.offersLimit = limit
	return nil
}
