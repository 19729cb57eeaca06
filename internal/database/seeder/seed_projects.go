package seeder

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

type seedRequirement struct {
	Skill    string
	Level    int
	Priority string
}

var projects = []struct {
	Name        string
	Description string
	Start       string
	End         string
	Status      string
	Skills      []seedRequirement
}{
	{
		Name: "Payments Platform", Description: "Settlement and ledger services", Start: "2026-09-01", End: "2027-02-26", Status: "Active",
		Skills: []seedRequirement{{"Go", 4, "Must Have"}, {"PostgreSQL", 3, "Must Have"}, {"Kubernetes", 3, "Nice to Have"}},
	},
	{
		Name: "Customer Portal", Description: "Self-service web portal", Start: "2026-11-02", End: "2027-03-31", Status: "Planning",
		Skills: []seedRequirement{{"React", 4, "Must Have"}, {"TypeScript", 3, "Must Have"}, {"Node.js", 3, "Nice to Have"}},
	},
	{
		Name: "Cloud Migration", Description: "Move on-prem workloads to AWS", Start: "2027-01-04", End: "2027-06-30", Status: "Planning",
		Skills: []seedRequirement{{"AWS", 4, "Must Have"}, {"Docker", 4, "Must Have"}, {"Kubernetes", 4, "Must Have"}},
	},
}

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "description", "start_date", "end_date", "status"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "project_skills", "project_id", "skill_id", "required_proficiency", "priority"); err != nil {
		return err
	}

	return inTx(ctx, db, func(tx database.Tx) error {
		for _, p := range projects {
			id := seedID("project", p.Name)
			_, err := tx.Exec(
				ctx,
				`INSERT INTO projects (id, name, description, start_date, end_date, status)
				 VALUES ($1, $2, $3, $4::date, $5::date, $6) ON CONFLICT DO NOTHING`,
				id,
				p.Name,
				p.Description,
				p.Start,
				p.End,
				p.Status,
			)
			if err != nil {
				return err
			}

			for _, s := range p.Skills {
				_, err := tx.Exec(
					ctx,
					`INSERT INTO project_skills (project_id, skill_id, required_proficiency, priority)
					 SELECT $1, s.id, $3, $4 FROM skills s WHERE s.name = $2
					 ON CONFLICT DO NOTHING`,
					id,
					s.Skill,
					s.Level,
					s.Priority,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
