package dto

type ActivateProRequest struct {
	Code        string `json:"code"         validate:"required"`
	ManagerCode string `json:"manager_code" validate:"required"`
}

type RegenerateCodeResponse struct {
	NewCode string `json:"new_code"`
}
