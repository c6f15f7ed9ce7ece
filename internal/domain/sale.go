package domain

import "time"

// Sale is the fact record created when an order completes.
type Sale struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	OrderID   string    `json:"orderId" gorm:"size:36;index;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
