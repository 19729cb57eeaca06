package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      string
	StartDate   time.Time
	EndDate     time.Time
}

type ProjectSkill struct {
	SkillID             uuid.UUID
	SkillName           string
	Category            string
	RequiredProficiency int
	Priority            string
}

type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Project, error)
	FindRequiredSkills(ctx context.Context, projectID uuid.UUID) ([]ProjectSkill, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(status, ''), start_date, end_date
		 FROM projects
		 WHERE id = $1`,
		id,
	)

	var p Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) FindRequiredSkills(ctx context.Context, projectID uuid.UUID) ([]ProjectSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.skill_id, s.name, COALESCE(s.category, ''), ps.required_proficiency, ps.priority
		 FROM project_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.project_id = $1
		 ORDER BY s.name ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProjectSkill, 0)
	for rows.Next() {
		var it ProjectSkill
		if err := rows.Scan(&it.SkillID, &it.SkillName, &it.Category, &it.RequiredProficiency, &it.Priority); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
