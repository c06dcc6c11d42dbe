package models

import "time"

// PrintOrder is one print job bound to a Razorpay payment order.
//
// Payment verification is never written back here: whether the order was
// actually paid is answered by asking the gateway for its payment status,
// not by a column on this table. Fulfillment tooling that needs payment
// assurance must go through /verify-payment before printing.
type PrintOrder struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	FilePath   string    `gorm:"size:512;not null" json:"filePath"`
	PrintColor string    `gorm:"size:20;not null" json:"printColor"`
	Copies     int       `gorm:"not null" json:"copies"`
	TotalPrice float64   `gorm:"not null" json:"totalPrice"`
	OrderID    string    `gorm:"size:255;not null;index" json:"orderId"` // Razorpay order ID; deliberately not unique
	Printed    bool      `gorm:"default:false" json:"printed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PrintOrder) TableName() string {
	return "print_orders"
}
