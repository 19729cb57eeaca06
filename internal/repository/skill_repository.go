package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
}

// SkillHolder is a person holding a skill at some proficiency.
type SkillHolder struct {
	PersonnelID      uuid.UUID
	Name             string
	Role             string
	ProficiencyLevel int
}

type SkillRepository interface {
	ListSkills(ctx context.Context, category string) ([]Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (Skill, error)
	ListHolders(ctx context.Context, skillID uuid.UUID) ([]SkillHolder, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// ListSkills orders by category then name. An empty category lists all.
func (r *PostgresSkillRepository) ListSkills(ctx context.Context, category string) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, description
		 FROM skills
		 WHERE $1 = '' OR category = $1
		 ORDER BY category ASC, name ASC`,
		strings.TrimSpace(category),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	var s Skill
	err := r.db.QueryRow(ctx,
		`SELECT id, name, category, description FROM skills WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Category, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ListHolders(ctx context.Context, skillID uuid.UUID) ([]SkillHolder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.role, ps.proficiency_level
		 FROM personnel p
		 JOIN personnel_skills ps ON ps.personnel_id = p.id
		 WHERE ps.skill_id = $1
		 ORDER BY ps.proficiency_level DESC, p.name ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillHolder, 0)
	for rows.Next() {
		var h SkillHolder
		if err := rows.Scan(&h.PersonnelID, &h.Name, &h.Role, &h.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
