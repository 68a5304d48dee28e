package entity

import "time"

// ShopSession stores the offline Admin API token issued to the app for a shop.
type ShopSession struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Shop        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"shop"`
	AccessToken string    `gorm:"type:text;not null" json:"-"`
	Scope       string    `gorm:"type:text" json:"scope"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
