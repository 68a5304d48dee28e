package entity

import (
	"sort"
	"time"

	"gorm.io/datatypes"
)

type ComparisonAttribute struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// ComparisonConfig holds the attributes a shop shows in its comparison table.
type ComparisonConfig struct {
	ID         uint                                     `gorm:"primaryKey;autoIncrement" json:"id"`
	Shop       string                                   `gorm:"type:varchar(255);uniqueIndex;not null" json:"shop"`
	Attributes datatypes.JSONSlice[ComparisonAttribute] `gorm:"not null" json:"attributes"`
	CreatedAt  time.Time                                `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time                                `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DefaultAttributes is used for shops that never saved a configuration.
func DefaultAttributes() []ComparisonAttribute {
	return []ComparisonAttribute{
		{Key: "title", Label: "Product Name", Enabled: true, Order: 1},
		{Key: "image", Label: "Image", Enabled: true, Order: 2},
		{Key: "price", Label: "Price", Enabled: true, Order: 3},
		{Key: "inventory", Label: "Inventory", Enabled: true, Order: 4},
		{Key: "status", Label: "Status", Enabled: false, Order: 5},
		{Key: "vendor", Label: "Vendor", Enabled: false, Order: 6},
		{Key: "productType", Label: "Product Type", Enabled: false, Order: 7},
		{Key: "tags", Label: "Tags", Enabled: false, Order: 8},
		{Key: "createdAt", Label: "Created Date", Enabled: false, Order: 9},
		{Key: "description", Label: "Description", Enabled: false, Order: 10},
	}
}

// EnabledAttributes keeps the enabled entries sorted by Order. Ties keep
// their input order.
func EnabledAttributes(attrs []ComparisonAttribute) []ComparisonAttribute {
	enabled := make([]ComparisonAttribute, 0, len(attrs))
	for _, a := range attrs {
		if a.Enabled {
			enabled = append(enabled, a)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})
	return enabled
}
