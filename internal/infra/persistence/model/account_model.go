package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName         string    `gorm:"type:varchar(100)"`
	LastName          string    `gorm:"type:varchar(100)"`
	Username          string    `gorm:"type:varchar(255)"`
	PreferredCurrency string    `gorm:"type:varchar(3);not null;default:'NZD'"`
	LinkCode          string    `gorm:"type:varchar(64);index"`
	LinkCodeExpires   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Links []ProviderLinkModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ProviderLinkModel mirrors the 'provider_links' table. The composite unique
// index enforces one account per external identity across the whole system.
type ProviderLinkModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_link_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_link_provider_provider_user_id"`
	Email          string    `gorm:"type:varchar(255);index"`
	DisplayName    string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderLinkModel) TableName() string {
	return "provider_links"
}
