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

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	Create(ctx context.Context, caller domain.Principal, name string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	GetAll(ctx context.Context, caller domain.Principal) ([]domain.Team, error)
	Rename(ctx context.Context, caller domain.Principal, name, newName string) (*domain.Team, error)
	Retire(ctx context.Context, caller domain.Principal, name string) error
	AddMember(ctx context.Context, caller domain.Principal, name string, userID int64) (*domain.Team, error)
	RemoveMember(ctx context.Context, caller domain.Principal, name string, userID int64) (*domain.Team, error)
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team with the caller as its sole initial member
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} dto.APIResponse{body=response.TeamResponse} "Team created"
// @Failure 409 {object} dto.APIResponse "Team name already in use"
// @Router /api/teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.Create(r.Context(), caller, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// GetTeam godoc
// @Summary Get a team by name
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param name path string true "Team name"
// @Success 200 {object} dto.APIResponse{body=response.TeamResponse} "Team retrieved"
// @Failure 404 {object} dto.APIResponse "Team not found"
// @Router /api/teams/{name} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	team, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// ListTeams godoc
// @Summary List all active teams (Admin only)
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{body=response.AllTeamsResponse} "Teams retrieved"
// @Router /api/teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	teams, err := h.service.GetAll(r.Context(), caller)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	teamDTOs := mapper.MapDomainTeamsToDTO(teams)
	respondJSON(w, http.StatusOK, response.AllTeamsResponse{
		Teams: teamDTOs,
		Count: len(teamDTOs),
	})
}

// RenameTeam godoc
// @Summary Rename a team (Admin only)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Team name"
// @Param request body request.RenameTeamRequest true "New name"
// @Success 200 {object} dto.APIResponse{body=response.TeamResponse} "Team renamed"
// @Failure 404 {object} dto.APIResponse "Team not found"
// @Failure 409 {object} dto.APIResponse "New name already in use"
// @Router /api/teams/{name} [put]
func (h *TeamHandler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	name := chi.URLParam(r, "name")

	var req request.RenameTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.Rename(r.Context(), caller, name, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// RetireTeam godoc
// @Summary Retire a team (Admin only)
// @Description Soft-deletes the team; it disappears from all active lookups
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param name path string true "Team name"
// @Success 200 {object} dto.APIResponse "Team retired"
// @Failure 404 {object} dto.APIResponse "Team not found"
// @Router /api/teams/{name} [delete]
func (h *TeamHandler) RetireTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	name := chi.URLParam(r, "name")

	if err := h.service.Retire(r.Context(), caller, name); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// AddTeamMember godoc
// @Summary Add a user to a team (admin or existing member)
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Team name"
// @Param request body request.AddTeamMemberRequest true "User to add"
// @Success 200 {object} dto.APIResponse{body=response.TeamResponse} "Member added"
// @Failure 404 {object} dto.APIResponse "Team or user not found"
// @Router /api/teams/{name}/members [post]
func (h *TeamHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	name := chi.URLParam(r, "name")

	var req request.AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.AddMember(r.Context(), caller, name, req.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// RemoveTeamMember godoc
// @Summary Remove a user from a team (admin or existing member)
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param name path string true "Team name"
// @Param id path int true "User id"
// @Success 200 {object} dto.APIResponse{body=response.TeamResponse} "Member removed"
// @Failure 404 {object} dto.APIResponse "Team not found or user not a member"
// @Router /api/teams/{name}/members/{id} [delete]
func (h *TeamHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	name := chi.URLParam(r, "name")

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid user id")
		return
	}

	team, err := h.service.RemoveMember(r.Context(), caller, name, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}
