package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `
        INSERT INTO roles (code, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query, role.Code, role.Description).Scan(
		&role.ID,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return my_errors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	query := `
        SELECT id, code, description, retired, created_at, updated_at
        FROM roles
        WHERE code = $1 AND NOT retired
    `
	var role domain.Role
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&role.ID,
		&role.Code,
		&role.Description,
		&role.Retired,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) ExistsActiveByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM roles WHERE code = $1 AND NOT retired)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}
	return exists, nil
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]domain.Role, error) {
	query := `
        SELECT id, code, description, retired, created_at, updated_at
        FROM roles
        WHERE NOT retired
        ORDER BY code
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(
			&role.ID,
			&role.Code,
			&role.Description,
			&role.Retired,
			&role.CreatedAt,
			&role.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	query := `
        UPDATE roles
        SET code = $1, description = $2, retired = $3, updated_at = NOW()
        WHERE id = $4
    `
	result, err := r.pool.Exec(ctx, query, role.Code, role.Description, role.Retired, role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return my_errors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("failed to update role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return my_errors.ErrRoleNotFound
	}
	return nil
}
