package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a list of URLs stored as a jsonb array
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// Generation represents the database model for image generation records
type Generation struct {
	ID                 string     `gorm:"primaryKey;size:36"`
	UserID             string     `gorm:"not null;size:255;index:idx_generations_user_created,priority:1"`
	UserEmail          string     `gorm:"size:320"`
	Breed              string     `gorm:"not null;size:100"`
	Style              string     `gorm:"not null;size:20"`
	PreviewURLs        StringList `gorm:"type:jsonb;not null"`
	HDURLs             StringList `gorm:"column:hd_urls;type:jsonb;not null"`
	Paid               bool       `gorm:"not null"`
	PaymentID          string     `gorm:"size:255"`
	AmountCents        int64      `gorm:"not null"`
	RequestFingerprint string     `gorm:"size:64"`
	CreatedAt          time.Time  `gorm:"not null;index:idx_generations_user_created,priority:2,sort:desc"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Generation
func (Generation) TableName() string {
	return "generations"
}
