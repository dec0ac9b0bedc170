package model

import (
	"time"
)

// Transaction represents the database model for ledger entries.
// Rows are append-only.
type Transaction struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	UserID             string    `gorm:"not null;size:255"`
	Amount             int64     `gorm:"not null;check:transactions_amount_non_zero,amount <> 0"`
	Kind               string    `gorm:"not null;size:20"`
	Description        string    `gorm:"type:text;not null"`
	RelatedID          *string   `gorm:"size:255"`
	ExternalPaymentRef *string   `gorm:"size:255"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
