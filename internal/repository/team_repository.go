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

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Create inserts the team together with its initial member so a team is
// never observable without at least one member.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team, creatorID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO teams (name)
        VALUES ($1)
        RETURNING id, created_at, updated_at
    `
	err = tx.QueryRow(ctx, query, team.Name).Scan(
		&team.ID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return my_errors.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`,
		team.ID, creatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to add initial member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
        SELECT id, name, retired, created_at, updated_at
        FROM teams
        WHERE name = $1 AND NOT retired
    `
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&team.ID,
		&team.Name,
		&team.Retired,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := r.getMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return &team, nil
}

func (r *TeamRepository) getMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	query := `
        SELECT u.id, u.username, u.retired
        FROM users u
        JOIN team_members tm ON tm.user_id = u.id
        WHERE tm.team_id = $1
        ORDER BY u.username
    `
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.UserID, &member.Username, &member.Retired); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *TeamRepository) ExistsActiveByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1 AND NOT retired)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	query := `
        SELECT id, name, retired, created_at, updated_at
        FROM teams
        WHERE NOT retired
        ORDER BY name
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Retired,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	for i := range teams {
		members, err := r.getMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
        UPDATE teams
        SET name = $1, retired = $2, updated_at = NOW()
        WHERE id = $3
    `
	result, err := r.pool.Exec(ctx, query, team.Name, team.Retired, team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return my_errors.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to update team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return my_errors.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID int64) error {
	query := `
        INSERT INTO team_members (team_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `
	_, err := r.pool.Exec(ctx, query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) error {
	query := `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return my_errors.ErrNotATeamMember
	}
	return nil
}

// FindTeamsForUser returns the page of active teams the user belongs to.
func (r *TeamRepository) FindTeamsForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Team, error) {
	query := `
        SELECT t.id, t.name, t.retired, t.created_at, t.updated_at
        FROM teams t
        JOIN team_members tm ON tm.team_id = t.id
        WHERE tm.user_id = $1 AND NOT t.retired
        ORDER BY t.name
        LIMIT $2 OFFSET $3
    `
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams for user: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Retired,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	for i := range teams {
		members, err := r.getMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}
