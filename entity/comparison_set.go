package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MinComparisonProducts is the smallest product selection that can be saved.
const MinComparisonProducts = 2

// ComparisonSet is a named snapshot of a product selection. It is never updated.
type ComparisonSet struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Shop       string         `gorm:"type:varchar(255);index;not null" json:"shop"`
	Name       string         `gorm:"type:text;not null" json:"name"`
	Products   datatypes.JSON `gorm:"type:text;not null" json:"products"`
	CustomerID *string        `gorm:"type:varchar(255);index" json:"customerId"`
	SessionID  *string        `gorm:"type:varchar(255);index" json:"sessionId"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (c *ComparisonSet) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ProductCount is the number of entries in the stored product array, or 0
// when the stored text is not a JSON array.
func (c *ComparisonSet) ProductCount() int {
	var items []json.RawMessage
	if err := json.Unmarshal(c.Products, &items); err != nil {
		return 0
	}
	return len(items)
}
