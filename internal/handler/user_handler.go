package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/dto"
	"github.com/gavinflud/lists/internal/mapper"
	"github.com/gavinflud/lists/internal/middleware"
	"github.com/gavinflud/lists/internal/request"
	"github.com/gavinflud/lists/internal/response"
	"github.com/gavinflud/lists/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Create(ctx context.Context, caller domain.Principal, username, password string, roleCodes []string) (*domain.AppUser, error)
	GetByID(ctx context.Context, caller domain.Principal, id int64) (*domain.AppUser, error)
	GetAll(ctx context.Context, caller domain.Principal) ([]domain.AppUser, error)
	Update(ctx context.Context, caller domain.Principal, id int64, changes service.UserChanges) (*domain.AppUser, error)
	Retire(ctx context.Context, caller domain.Principal, id int64) error
}

type TeamServiceForUser interface {
	FindTeamsForUser(ctx context.Context, caller domain.Principal, userID int64, page, perPage int) ([]domain.Team, error)
}

type UserHandler struct {
	userService UserService
	teamService TeamServiceForUser
	validator   *validator.Validate
}

func NewUserHandler(userService UserService, teamService TeamServiceForUser, validator *validator.Validate) *UserHandler {
	return &UserHandler{
		userService: userService,
		teamService: teamService,
		validator:   validator,
	}
}

// CreateUser godoc
// @Summary Create a new user (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateUserRequest true "User creation request"
// @Success 201 {object} dto.APIResponse{body=response.UserResponse} "User created"
// @Failure 409 {object} dto.APIResponse "Username already in use"
// @Router /api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), caller, req.Username, req.Password, req.Roles)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.UserResponse{
		User: mapper.MapDomainUserToDTO(user),
	})
}

// GetUser godoc
// @Summary Get a user by id (admin or the user themselves)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} dto.APIResponse{body=response.UserResponse} "User retrieved"
// @Failure 403 {object} dto.APIResponse "Not the owner and not an admin"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	id, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.UserResponse{
		User: mapper.MapDomainUserToDTO(user),
	})
}

// ListUsers godoc
// @Summary List all active users (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{body=response.AllUsersResponse} "Users retrieved"
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	users, err := h.userService.GetAll(r.Context(), caller)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	userDTOs := mapper.MapDomainUsersToDTO(users)
	respondJSON(w, http.StatusOK, response.AllUsersResponse{
		Users: userDTOs,
		Count: len(userDTOs),
	})
}

// UpdateUser godoc
// @Summary Update a user (admin or the user themselves)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param request body request.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{body=response.UserResponse} "User updated"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 409 {object} dto.APIResponse "New username already in use"
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	id, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid user id")
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), caller, id, service.UserChanges{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.UserResponse{
		User: mapper.MapDomainUserToDTO(user),
	})
}

// RetireUser godoc
// @Summary Retire a user (admin or the user themselves)
// @Description Soft-deletes the user; it disappears from all active lookups
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} dto.APIResponse "User retired"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/users/{id} [delete]
func (h *UserHandler) RetireUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	id, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid user id")
		return
	}

	if err := h.userService.Retire(r.Context(), caller, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// GetUserTeams godoc
// @Summary List the teams a user belongs to (admin or the user themselves)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{body=response.UserTeamsResponse} "Teams retrieved"
// @Failure 403 {object} dto.APIResponse "Not the owner and not an admin"
// @Router /api/users/{id}/teams [get]
func (h *UserHandler) GetUserTeams(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	id, err := parseUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid user id")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, perPage = service.NormalizePage(page, perPage)

	teams, err := h.teamService.FindTeamsForUser(r.Context(), caller, id, page, perPage)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	teamDTOs := mapper.MapDomainTeamsToDTO(teams)
	respondJSON(w, http.StatusOK, response.UserTeamsResponse{
		Teams:   teamDTOs,
		Page:    page,
		PerPage: perPage,
		Count:   len(teamDTOs),
	})
}

func parseUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
