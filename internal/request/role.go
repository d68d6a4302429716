package request

type CreateRoleRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

type UpdateRoleRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
}
