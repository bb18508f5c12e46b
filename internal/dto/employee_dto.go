package dto

type CreateEmployeeRequest struct {
	Name        string `json:"name"         validate:"required,min=1,max=120"`
	ManagerCode string `json:"manager_code" validate:"required"`
}

type UpdatePermissionsRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required"`
	Permissions string `json:"permissions" validate:"required"`
}

// EmployeeFilter lists a manager's employees, optionally narrowed by status.
type EmployeeFilter struct {
	ManagerCode string `form:"manager_code" binding:"required"`
	Status      string `form:"status"`
}
