package request

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,min=1,max=255"`
	Password string   `json:"password" validate:"required,min=8,max=255"`
	Roles    []string `json:"roles" validate:"dive,required,min=1,max=255"`
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=255"`
}
