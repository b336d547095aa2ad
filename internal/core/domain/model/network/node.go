package network

import (
	"errors"
	"fmt"
	"strings"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/pkg/errs"
	"carriernet/internal/pkg/guard"
)

// NodeID identifies a stop in the road network, e.g. "N12" for a customer
// node or "W0" for a carrier depot.
type NodeID string

// ErrNodeIsNotConstructed is returned when using an improperly initialized Node.
var ErrNodeIsNotConstructed = errs.NewValueIsRequiredError("node must be created via NewNode constructor")

// Node is an immutable value object describing one stop in the road network:
// a pickup point, a delivery point, or a depot.
type Node struct {
	id       NodeID
	name     string
	location kernel.Location
	guard    guard.ConstructorGuard
}

// NewNode creates a Node. The ID must be non-blank and the location must be a
// properly constructed kernel.Location.
func NewNode(id NodeID, name string, location kernel.Location) (Node, error) {
	if strings.TrimSpace(string(id)) == "" {
		return Node{}, errs.NewValueIsRequiredError("node id")
	}
	if err := location.Validate(); err != nil {
		return Node{}, err
	}

	return Node{
		id:       id,
		name:     name,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Node was created through NewNode.
func (n Node) Validate() error {
	return n.guard.Validate(ErrNodeIsNotConstructed)
}

// ID returns the node identifier.
func (n Node) ID() NodeID {
	return n.id
}

// Name returns the human-readable node name.
func (n Node) Name() string {
	return n.name
}

// Location returns the node position.
func (n Node) Location() kernel.Location {
	return n.location
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("Node(%s)", n.id)
}

// Directory is a read-only lookup of the nodes known to the network. It is
// built once at configuration time and shared by every carrier's valuation.
type Directory struct {
	nodes map[NodeID]Node
	order []NodeID
}

// NewDirectory creates a Directory from the given nodes. Duplicate IDs are
// rejected.
func NewDirectory(nodes []Node) (*Directory, error) {
	dir := &Directory{
		nodes: make(map[NodeID]Node, len(nodes)),
		order: make([]NodeID, 0, len(nodes)),
	}

	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			return nil, err
		}
		if _, exists := dir.nodes[n.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("nodes",
				errors.New(string(n.ID())+" appears more than once"))
		}
		dir.nodes[n.ID()] = n
		dir.order = append(dir.order, n.ID())
	}

	return dir, nil
}

// Get looks a node up by ID.
func (d *Directory) Get(id NodeID) (Node, error) {
	n, ok := d.nodes[id]
	if !ok {
		return Node{}, errs.NewObjectNotFoundError("node", string(id))
	}
	return n, nil
}

// Contains reports whether the directory knows the given node ID.
func (d *Directory) Contains(id NodeID) bool {
	_, ok := d.nodes[id]
	return ok
}

// IDs returns the node IDs in registration order.
func (d *Directory) IDs() []NodeID {
	out := make([]NodeID, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of registered nodes.
func (d *Directory) Len() int {
	return len(d.nodes)
}
