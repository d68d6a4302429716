package handler

import (
	"context"
	"encoding/json"
	"net/http"

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

type RoleService interface {
	Create(ctx context.Context, caller domain.Principal, role *domain.Role) (*domain.Role, error)
	GetByCode(ctx context.Context, code string) (*domain.Role, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, caller domain.Principal, code string, changes service.RoleChanges) (*domain.Role, error)
	Retire(ctx context.Context, caller domain.Principal, code string) error
}

type RoleHandler struct {
	service   RoleService
	validator *validator.Validate
}

func NewRoleHandler(service RoleService, validator *validator.Validate) *RoleHandler {
	return &RoleHandler{
		service:   service,
		validator: validator,
	}
}

// CreateRole godoc
// @Summary Create a new role (Admin only)
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateRoleRequest true "Role creation request"
// @Success 201 {object} dto.APIResponse{body=response.RoleResponse} "Role created"
// @Failure 409 {object} dto.APIResponse "Role code already in use"
// @Router /api/roles [post]
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	var req request.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	role, err := h.service.Create(r.Context(), caller, &domain.Role{
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.RoleResponse{
		Role: mapper.MapDomainRoleToDTO(role),
	})
}

// GetRole godoc
// @Summary Get a role by code
// @Tags Roles
// @Produce json
// @Security BearerAuth
// @Param code path string true "Role code"
// @Success 200 {object} dto.APIResponse{body=response.RoleResponse} "Role retrieved"
// @Failure 404 {object} dto.APIResponse "Role not found"
// @Router /api/roles/{code} [get]
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	role, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.RoleResponse{
		Role: mapper.MapDomainRoleToDTO(role),
	})
}

// ListRoles godoc
// @Summary List all active roles
// @Tags Roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{body=response.AllRolesResponse} "Roles retrieved"
// @Router /api/roles [get]
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	roleDTOs := mapper.MapDomainRolesToDTO(roles)
	respondJSON(w, http.StatusOK, response.AllRolesResponse{
		Roles: roleDTOs,
		Count: len(roleDTOs),
	})
}

// UpdateRole godoc
// @Summary Update a role (Admin only)
// @Tags Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Role code"
// @Param request body request.UpdateRoleRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{body=response.RoleResponse} "Role updated"
// @Failure 404 {object} dto.APIResponse "Role not found"
// @Failure 409 {object} dto.APIResponse "New code already in use"
// @Router /api/roles/{code} [put]
func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	code := chi.URLParam(r, "code")

	var req request.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, "validation error: "+err.Error())
		return
	}

	role, err := h.service.Update(r.Context(), caller, code, service.RoleChanges{
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.RoleResponse{
		Role: mapper.MapDomainRoleToDTO(role),
	})
}

// RetireRole godoc
// @Summary Retire a role (Admin only)
// @Description Soft-deletes the role; it disappears from all active lookups
// @Tags Roles
// @Produce json
// @Security BearerAuth
// @Param code path string true "Role code"
// @Success 200 {object} dto.APIResponse "Role retired"
// @Failure 404 {object} dto.APIResponse "Role not found"
// @Router /api/roles/{code} [delete]
func (h *RoleHandler) RetireRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "missing caller identity")
		return
	}

	code := chi.URLParam(r, "code")

	if err := h.service.Retire(r.Context(), caller, code); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}
