package models

import "time"

// Item represents a single product line within an order.
type Item struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"orderId" gorm:"type:varchar(36);index;not null"`
	ProductID string  `json:"productId" gorm:"type:varchar(36);index;not null"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}

// Order represents a customer order. Orders are read-only through the API.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID string    `json:"customerId" gorm:"type:varchar(36);index;not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:pending"` // pending, processing, shipped, delivered
	Items      []Item    `json:"items"`
	CreatedAt  time.Time `json:"createdAt"`
}
