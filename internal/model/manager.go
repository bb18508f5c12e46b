package model

// Manager is the tenancy root. Products, sales, employees and settings with a
// matching ManagerCode are owned by it, by convention only — there is no
// foreign-key constraint in the store and create must accept a null code.
type Manager struct {
	ID                 string  `gorm:"primaryKey" json:"id"`
	ManagerCode        string  `gorm:"uniqueIndex;not null" json:"manager_code"`
	IsPro              bool    `gorm:"not null;default:false" json:"is_pro"`
	ActivationCodeUsed *string `json:"activation_code_used"`
	CreatedAt          string  `gorm:"not null;<-:create" json:"created_at"`
}
