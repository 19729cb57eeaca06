package repository

import (
	"context"
	"time"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
)

type GrowthPeriod string

const (
	GrowthDaily   GrowthPeriod = "daily"
	GrowthMonthly GrowthPeriod = "monthly"
)

type PersonnelUtilization struct {
	PersonnelID     uuid.UUID
	Name            string
	Role            string
	ActiveProjects  int
	TotalAllocation int
}

type GrowthPoint struct {
	Bucket     string
	Count      int
	Cumulative int
}

type AnalyticsRepository interface {
	Utilization(ctx context.Context, asOf time.Time) ([]PersonnelUtilization, error)
	PersonnelGrowth(ctx context.Context, period GrowthPeriod) ([]GrowthPoint, error)
}

const (
	dailyGrowthQuery = `SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS bucket,
		        COUNT(*)::int AS count,
		        (SUM(COUNT(*)) OVER (ORDER BY date_trunc('day', created_at)))::int AS cumulative
		 FROM personnel
		 GROUP BY date_trunc('day', created_at)
		 ORDER BY date_trunc('day', created_at)`

	monthlyGrowthQuery = `SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS bucket,
		        COUNT(*)::int AS count,
		        (SUM(COUNT(*)) OVER (ORDER BY date_trunc('month', created_at)))::int AS cumulative
		 FROM personnel
		 GROUP BY date_trunc('month', created_at)
		 ORDER BY date_trunc('month', created_at)`
)

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

// Utilization counts every person, including those with no allocation. Only
// proposed or confirmed allocations that have not ended before asOf count,
// the same set project matching scores against.
func (r *PostgresAnalyticsRepository) Utilization(ctx context.Context, asOf time.Time) ([]PersonnelUtilization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.role,
		        COUNT(a.id)::int AS active_projects,
		        COALESCE(SUM(a.allocation_percentage), 0)::int AS total_allocation
		 FROM personnel p
		 LEFT JOIN allocations a ON a.personnel_id = p.id
		   AND a.allocation_end >= $1
		   AND a.status IN ('Proposed', 'Confirmed')
		 GROUP BY p.id, p.name, p.role
		 ORDER BY total_allocation DESC, p.name ASC`,
		asOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PersonnelUtilization, 0)
	for rows.Next() {
		var u PersonnelUtilization
		if err := rows.Scan(&u.PersonnelID, &u.Name, &u.Role, &u.ActiveProjects, &u.TotalAllocation); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PersonnelGrowth buckets personnel by creation day or month with a running
// total. Unknown periods fall back to monthly.
func (r *PostgresAnalyticsRepository) PersonnelGrowth(ctx context.Context, period GrowthPeriod) ([]GrowthPoint, error) {
	query := monthlyGrowthQuery
	if period == GrowthDaily {
		query = dailyGrowthQuery
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GrowthPoint, 0)
	for rows.Next() {
		var g GrowthPoint
		if err := rows.Scan(&g.Bucket, &g.Count, &g.Cumulative); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
