package repository

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
)

type PersonnelSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
}

type Personnel struct {
	ID              uuid.UUID
	Name            string
	Role            string
	ExperienceLevel string
	Email           string
	Skills          []PersonnelSkill
}

type PersonnelRepository interface {
	ListWithSkills(ctx context.Context) ([]Personnel, error)
}

type PostgresPersonnelRepository struct {
	db database.DB
}

func NewPostgresPersonnelRepository(db database.DB) *PostgresPersonnelRepository {
	return &PostgresPersonnelRepository{db: db}
}

// ListWithSkills loads the whole roster and attaches skills with a second
// query instead of one query per person.
func (r *PostgresPersonnelRepository) ListWithSkills(ctx context.Context) ([]Personnel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(role, ''), experience_level, COALESCE(email, '')
		 FROM personnel
		 ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Personnel, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var p Personnel
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.ExperienceLevel, &p.Email); err != nil {
			return nil, err
		}
		p.Skills = make([]PersonnelSkill, 0)
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT ps.personnel_id, ps.skill_id, s.name, ps.proficiency_level
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 ORDER BY ps.personnel_id, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var personnelID uuid.UUID
		var s PersonnelSkill
		if err := skillRows.Scan(&personnelID, &s.SkillID, &s.SkillName, &s.ProficiencyLevel); err != nil {
			return nil, err
		}
		i, ok := index[personnelID]
		if !ok {
			continue
		}
		out[i].Skills = append(out[i].Skills, s)
	}
	if err := skillRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
