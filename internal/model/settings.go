package model

const (
	// GlobalSettingsID is the sentinel row id for settings with no manager scope.
	GlobalSettingsID = "global_settings"

	// DefaultCurrency is the currency symbol assigned on lazy creation.
	DefaultCurrency = "ر.س"
)

// Settings is per-manager (or global) key-value configuration. Currently the
// only key is the currency symbol. The record is lazily created on first read.
type Settings struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Currency    string  `gorm:"not null" json:"currency"`
	ManagerCode *string `gorm:"index" json:"manager_code"`
}
