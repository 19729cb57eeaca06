package seeder

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

var catalog = []struct {
	Name        string
	Category    string
	Description string
}{
	{Name: "Go", Category: "Programming Language", Description: "Backend services and tooling"},
	{Name: "JavaScript", Category: "Programming Language"},
	{Name: "TypeScript", Category: "Programming Language"},
	{Name: "Python", Category: "Programming Language"},
	{Name: "React", Category: "Frontend", Description: "Component-based web UIs"},
	{Name: "Node.js", Category: "Backend"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "Redis", Category: "Database"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "Kubernetes", Category: "DevOps"},
	{Name: "AWS", Category: "Cloud"},
	{Name: "Figma", Category: "Design"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "description", "created_at"); err != nil {
		return err
	}

	return inTx(ctx, db, func(tx database.Tx) error {
		for _, it := range catalog {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category, description) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
				seedID("skill", it.Name),
				it.Name,
				it.Category,
				it.Description,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
