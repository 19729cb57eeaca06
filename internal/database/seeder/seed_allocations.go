package seeder

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"
)

type AllocationsSeeder struct{}

func (AllocationsSeeder) Name() string { return "allocations" }

var allocations = []struct {
	Email      string
	Project    string
	Start      string
	End        string
	Percentage int
	Status     string
}{
	{Email: "amaya.perera@example.com", Project: "Payments Platform", Start: "2026-09-01", End: "2027-02-26", Percentage: 60, Status: "Confirmed"},
	{Email: "ruwan.jayasinghe@example.com", Project: "Payments Platform", Start: "2026-09-01", End: "2026-12-31", Percentage: 50, Status: "Confirmed"},
	{Email: "kasun.silva@example.com", Project: "Customer Portal", Start: "2026-11-02", End: "2027-03-31", Percentage: 100, Status: "Proposed"},
	{Email: "nethmi.fernando@example.com", Project: "Customer Portal", Start: "2026-11-02", End: "2027-01-29", Percentage: 40, Status: "Proposed"},
}

func (AllocationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "allocations", "id", "personnel_id", "project_id", "allocation_start", "allocation_end", "allocation_percentage", "status"); err != nil {
		return err
	}

	return inTx(ctx, db, func(tx database.Tx) error {
		for _, a := range allocations {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO allocations (id, personnel_id, project_id, allocation_start, allocation_end, allocation_percentage, status)
				 SELECT $1, p.id, $3, $4::date, $5::date, $6, $7 FROM personnel p WHERE p.email = $2
				 ON CONFLICT DO NOTHING`,
				seedID("allocation", a.Email+"/"+a.Project),
				a.Email,
				seedID("project", a.Project),
				a.Start,
				a.End,
				a.Percentage,
				a.Status,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
