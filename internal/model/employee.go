package model

// Observed employee defaults. Status and permissions stay free-form strings
// after creation; the API accepts any value on update.
const (
	EmployeeStatusPending      = "pending"
	EmployeePermissionsDefault = "sales_only"
)

// Employee is a subordinate account scoped to a manager. The manager must
// exist at creation time; afterwards the link is a loose grouping key.
type Employee struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	ManagerCode string `gorm:"index;not null" json:"manager_code"`
	Status      string `gorm:"not null;default:'pending'" json:"status"`
	Permissions string `gorm:"not null;default:'sales_only'" json:"permissions"`
	CreatedAt   string `gorm:"not null;<-:create" json:"created_at"`
}
