package ledgerrepo

import (
	"context"

	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.LedgerStore = (*GormLedgerStore)(nil)

// GormLedgerStore implements LedgerStore using GORM.
type GormLedgerStore struct {
	db *gorm.DB
}

// NewGormLedgerStore creates a new GORM ledger store.
func NewGormLedgerStore(db *gorm.DB) *GormLedgerStore {
	return &GormLedgerStore{db: db}
}

// ReadOrders retrieves a carrier's ledger in stored order. An unknown carrier
// has an empty ledger.
func (r *GormLedgerStore) ReadOrders(ctx context.Context, carrierID kernel.UUID) ([]order.Order, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerEntryDTO
	if err := r.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID.Bytes()).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// WriteOrders replaces a carrier's ledger inside one transaction, so readers
// never observe a partially written ledger.
func (r *GormLedgerStore) WriteOrders(ctx context.Context, carrierID kernel.UUID, orders []order.Order) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	dtos := fromDomain(carrierID, orders)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("carrier_id = ?", carrierID.Bytes()).
			Delete(&LedgerEntryDTO{}).Error; err != nil {
			return err
		}

		if len(dtos) == 0 {
			return nil
		}
		return tx.Create(&dtos).Error
	})
}
