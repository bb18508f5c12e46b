package model

// ActivationCodeUse is an append-only ledger entry recording that one of the
// pre-shared activation codes has been redeemed. A code can be used once
// system-wide, regardless of which manager redeems it.
type ActivationCodeUse struct {
	Code   string `gorm:"primaryKey" json:"code"`
	UsedBy string `gorm:"not null" json:"used_by"`
	UsedAt string `gorm:"not null" json:"used_at"`
}

// TableName keeps the collection name used by the API ("activation_codes").
func (ActivationCodeUse) TableName() string { return "activation_codes" }
