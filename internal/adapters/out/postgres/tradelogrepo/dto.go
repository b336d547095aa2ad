// Package tradelogrepo provides data transfer objects and mapping functions
// for the settlement journal. It implements the TradeLog port over
// PostgreSQL as an append-only table.
package tradelogrepo

import (
	"time"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TradeDTO represents one settlement row. The serial ID preserves close
// order; RecordedAt is informational.
type TradeDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ReqID         uuid.UUID `gorm:"type:uuid;index"`
	SellerID      uuid.UUID `gorm:"type:uuid"`
	SellerName    string
	WinnerID      *uuid.UUID `gorm:"type:uuid"`
	WinnerName    string
	OrderID       uuid.UUID `gorm:"type:uuid"`
	Pickup        string
	Delivery      string
	ClearingPrice float64
	RecordedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for settlements.
func (TradeDTO) TableName() string {
	return "trades"
}

// fromDomain converts a settlement to its database representation.
func fromDomain(result auction.Result) TradeDTO {
	var winnerID *uuid.UUID
	if result.WinnerID != nil {
		raw := result.WinnerID.Bytes()
		winnerID = &raw
	}

	return TradeDTO{
		ReqID:         result.ReqID.Bytes(),
		SellerID:      result.SellerID.Bytes(),
		SellerName:    result.SellerName,
		WinnerID:      winnerID,
		WinnerName:    result.WinnerName,
		OrderID:       result.Order.ID().Bytes(),
		Pickup:        string(result.Order.Pickup()),
		Delivery:      string(result.Order.Delivery()),
		ClearingPrice: result.ClearingPrice,
	}
}

// toDomain converts a database row back to a settlement.
func toDomain(dto TradeDTO) (auction.Result, error) {
	reqID, err := kernel.UUIDFromBytes(dto.ReqID[:])
	if err != nil {
		return auction.Result{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return auction.Result{}, err
	}

	var winnerID *kernel.UUID
	if dto.WinnerID != nil {
		wID, winnerErr := kernel.UUIDFromBytes((*dto.WinnerID)[:])
		if winnerErr != nil {
			return auction.Result{}, winnerErr
		}
		winnerID = &wID
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return auction.Result{}, err
	}

	o, err := order.RestoreOrder(orderID, network.NodeID(dto.Pickup), network.NodeID(dto.Delivery))
	if err != nil {
		return auction.Result{}, err
	}

	return auction.Result{
		ReqID:         reqID,
		SellerID:      sellerID,
		SellerName:    dto.SellerName,
		WinnerID:      winnerID,
		WinnerName:    dto.WinnerName,
		Order:         o,
		ClearingPrice: dto.ClearingPrice,
	}, nil
}
