package seeder

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"
)

type PersonnelSeeder struct{}

func (PersonnelSeeder) Name() string { return "personnel" }

type seedSkill struct {
	Skill string
	Level int
}

var roster = []struct {
	Name            string
	Email           string
	Role            string
	ExperienceLevel string
	Skills          []seedSkill
}{
	{
		Name: "Amaya Perera", Email: "amaya.perera@example.com", Role: "Backend Engineer", ExperienceLevel: "Senior",
		Skills: []seedSkill{{"Go", 5}, {"PostgreSQL", 4}, {"Docker", 4}, {"Kubernetes", 3}},
	},
	{
		Name: "Kasun Silva", Email: "kasun.silva@example.com", Role: "Full Stack Developer", ExperienceLevel: "Mid",
		Skills: []seedSkill{{"JavaScript", 4}, {"TypeScript", 4}, {"React", 4}, {"Node.js", 3}, {"PostgreSQL", 3}},
	},
	{
		Name: "Nethmi Fernando", Email: "nethmi.fernando@example.com", Role: "Frontend Developer", ExperienceLevel: "Junior",
		Skills: []seedSkill{{"JavaScript", 3}, {"React", 3}, {"Figma", 2}},
	},
	{
		Name: "Ruwan Jayasinghe", Email: "ruwan.jayasinghe@example.com", Role: "DevOps Engineer", ExperienceLevel: "Senior",
		Skills: []seedSkill{{"Docker", 5}, {"Kubernetes", 5}, {"AWS", 4}, {"Go", 3}},
	},
	{
		Name: "Dilini Wickramasinghe", Email: "dilini.w@example.com", Role: "Data Engineer", ExperienceLevel: "Mid",
		Skills: []seedSkill{{"Python", 4}, {"PostgreSQL", 4}, {"AWS", 3}, {"Redis", 2}},
	},
}

func (PersonnelSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "personnel", "id", "name", "email", "role", "experience_level"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "personnel_skills", "personnel_id", "skill_id", "proficiency_level"); err != nil {
		return err
	}

	return inTx(ctx, db, func(tx database.Tx) error {
		for _, p := range roster {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO personnel (id, name, email, role, experience_level) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
				seedID("personnel", p.Email),
				p.Name,
				p.Email,
				p.Role,
				p.ExperienceLevel,
			)
			if err != nil {
				return err
			}

			for _, s := range p.Skills {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO personnel_skills (personnel_id, skill_id, proficiency_level)
					 SELECT p.id, s.id, $3 FROM personnel p, skills s WHERE p.email = $1 AND s.name = $2
					 ON CONFLICT DO NOTHING`,
					p.Email,
					s.Skill,
					s.Level,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
