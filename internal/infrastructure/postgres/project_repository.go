package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implements ProjectRepository (usable with pool or tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository builds the adapter. Pass a pool or tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persists the project.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, description, status, start_date, end_date, budget, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.UserID, project.Name, nullIfEmpty(project.Description),
		project.Status, project.StartDate, project.EndDate, project.Budget,
		nullIfEmpty(project.ClientID),
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID returns a project by ID, or nil when not found.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := projectSelect + ` WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListByUser returns the user's projects, newest first.
func (r *ProjectRepo) ListByUser(userID string, limit, offset int) ([]*entity.Project, error) {
	query := projectSelect + ` WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByUser returns the number of projects the user has.
func (r *ProjectRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM projects WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// Update overwrites the project's fields.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, status = $4, start_date = $5,
		    end_date = $6, budget = $7, client_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, nullIfEmpty(project.Description), project.Status,
		project.StartDate, project.EndDate, project.Budget,
		nullIfEmpty(project.ClientID), project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes the project. Invoices referencing it keep existing with the
// reference set to NULL.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

const projectSelect = `
	SELECT id, user_id, name, description, status, start_date, end_date, budget, client_id, created_at, updated_at
	FROM projects`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	var description, clientID *string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &description, &p.Status,
		&p.StartDate, &p.EndDate, &p.Budget, &clientID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Description = derefStr(description)
	p.ClientID = derefStr(clientID)
	return &p, nil
}
