package request

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type RenameTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type AddTeamMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,min=1"`
}
