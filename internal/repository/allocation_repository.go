package repository

import (
	"context"
	"time"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
)

type Allocation struct {
	PersonnelID          uuid.UUID
	ProjectName          string
	Start                time.Time
	End                  time.Time
	AllocationPercentage int
	Status               string
}

type AllocationRepository interface {
	FindActiveByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID, asOf time.Time) (map[uuid.UUID][]Allocation, error)
}

type PostgresAllocationRepository struct {
	db database.DB
}

func NewPostgresAllocationRepository(db database.DB) *PostgresAllocationRepository {
	return &PostgresAllocationRepository{db: db}
}

// FindActiveByPersonnelIDs returns proposed or confirmed allocations that have
// not ended before asOf, keyed by person.
func (r *PostgresAllocationRepository) FindActiveByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID, asOf time.Time) (map[uuid.UUID][]Allocation, error) {
	out := make(map[uuid.UUID][]Allocation, len(personnelIDs))
	if len(personnelIDs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(personnelIDs))
	for _, id := range personnelIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.personnel_id, pr.name, a.allocation_start, a.allocation_end, a.allocation_percentage, a.status
		 FROM allocations a
		 JOIN projects pr ON pr.id = a.project_id
		 WHERE a.personnel_id = ANY($1::uuid[])
		   AND a.allocation_end >= $2
		   AND a.status IN ('Proposed', 'Confirmed')
		 ORDER BY a.allocation_start ASC`,
		ids, asOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a Allocation
		if err := rows.Scan(&a.PersonnelID, &a.ProjectName, &a.Start, &a.End, &a.AllocationPercentage, &a.Status); err != nil {
			return nil, err
		}
		out[a.PersonnelID] = append(out[a.PersonnelID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
