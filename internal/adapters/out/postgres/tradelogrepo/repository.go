package tradelogrepo

import (
	"context"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.TradeLog = (*GormTradeLog)(nil)

// GormTradeLog implements TradeLog using GORM.
type GormTradeLog struct {
	db *gorm.DB
}

// NewGormTradeLog creates a new GORM trade log.
func NewGormTradeLog(db *gorm.DB) *GormTradeLog {
	return &GormTradeLog{db: db}
}

// Append records a settlement.
func (r *GormTradeLog) Append(ctx context.Context, result auction.Result) error {
	dto := fromDomain(result)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// All returns every recorded settlement in close order.
func (r *GormTradeLog) All(ctx context.Context) ([]auction.Result, error) {
	var dtos []TradeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	results := make([]auction.Result, 0, len(dtos))
	for _, dto := range dtos {
		result, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
