package order

import (
	"errors"
	"fmt"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a single pickup-and-delivery request. It is an immutable
// value object: once created it never changes, and settlement moves the whole
// order between carrier ledgers — an order is owned by exactly one carrier at
// a time and is never duplicated or dropped.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Pickup and delivery nodes must be non-blank and distinct
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the globally unique identifier of the order
	id kernel.UUID

	// pickup is the node where the goods are collected
	pickup network.NodeID

	// delivery is the node where the goods are dropped off
	delivery network.NodeID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order after validating its identity and endpoints.
// The pickup and delivery nodes must differ; a request that starts and ends
// at the same stop has no routing meaning.
func NewOrder(id kernel.UUID, pickup network.NodeID, delivery network.NodeID) (Order, error) {
	o := Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setEndpoints(pickup, delivery),
	); err != nil {
		return Order{}, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It applies the same
// validation as NewOrder.
func RestoreOrder(id kernel.UUID, pickup network.NodeID, delivery network.NodeID) (Order, error) {
	return NewOrder(id, pickup, delivery)
}

// Validate ensures the Order was created through a constructor.
func (o Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o Order) IsEqual(other Order) bool {
	return o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o Order) ID() kernel.UUID {
	return o.id
}

// Pickup returns the pickup node of the order.
func (o Order) Pickup() network.NodeID {
	return o.pickup
}

// Delivery returns the delivery node of the order.
func (o Order) Delivery() network.NodeID {
	return o.delivery
}

// String implements fmt.Stringer.
func (o Order) String() string {
	return fmt.Sprintf("Order(%s: %s->%s)", o.id, o.pickup, o.delivery)
}

// setID validates and sets the order identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setEndpoints validates and sets the pickup/delivery pair.
func (o *Order) setEndpoints(pickup network.NodeID, delivery network.NodeID) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("delivery")
	}
	if pickup == delivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery",
			fmt.Errorf("pickup and delivery are both %s", pickup))
	}

	o.pickup = pickup
	o.delivery = delivery
	return nil
}
