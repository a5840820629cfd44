package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which an in-stock product is reported as low-stock.
const LowStockThreshold = 20

// StockStatus describes the availability of a product.
type StockStatus string

const (
	StatusInStock    StockStatus = "in-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusOutOfStock StockStatus = "out-of-stock"
)

func init() {
	// Prices are rendered as JSON numbers, e.g. 3.99 instead of "3.99".
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in the inventory catalogue.
type Product struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Category  string          `json:"category" gorm:"type:varchar(100);index" validate:"required,max=100"`
	Stock     int             `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Status derives the stock status from the stock count. It is never stored.
func (p Product) Status() StockStatus {
	switch {
	case p.Stock <= 0:
		return StatusOutOfStock
	case p.Stock < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// MarshalJSON adds the derived status to the serialized product.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Status StockStatus `json:"status"`
	}{product(p), p.Status()})
}
