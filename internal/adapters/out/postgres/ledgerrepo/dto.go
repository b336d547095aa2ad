// Package ledgerrepo provides data transfer objects and mapping functions for
// carrier ledger persistence. It implements the LedgerStore port over
// PostgreSQL, storing each carrier's ledger as position-ordered rows and
// replacing it wholesale inside one transaction.
package ledgerrepo

import (
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// LedgerEntryDTO represents one ledger slot: a carrier holding an order at a
// given position. The (carrier_id, position) pair is the primary key so a
// ledger reads back in its stored order.
type LedgerEntryDTO struct {
	CarrierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Pickup    string
	Delivery  string
}

// TableName specifies the database table name for ledger entries.
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a carrier's ledger to its database representation.
func fromDomain(carrierID kernel.UUID, orders []order.Order) []LedgerEntryDTO {
	dtos := make([]LedgerEntryDTO, 0, len(orders))
	for i, o := range orders {
		dtos = append(dtos, LedgerEntryDTO{
			CarrierID: carrierID.Bytes(),
			Position:  i,
			OrderID:   o.ID().Bytes(),
			Pickup:    string(o.Pickup()),
			Delivery:  string(o.Delivery()),
		})
	}
	return dtos
}

// toDomain converts one ledger row back to an order.
func toDomain(dto LedgerEntryDTO) (order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Order{}, err
	}

	return order.RestoreOrder(id, network.NodeID(dto.Pickup), network.NodeID(dto.Delivery))
}
