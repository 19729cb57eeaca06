package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waruna834/skills-project-manager/internal/repository"

	"github.com/google/uuid"
)

var ErrAnalyticsUnavailable = errors.New("analytics unavailable")

type UtilizationItem struct {
	PersonnelID     uuid.UUID
	Name            string
	Role            string
	ActiveProjects  int
	TotalAllocation int
	Available       bool
}

type GrowthItem struct {
	Period     string
	Count      int
	Cumulative int
}

type AnalyticsUsecase interface {
	Utilization(ctx context.Context) ([]UtilizationItem, error)
	PersonnelGrowth(ctx context.Context, period string) ([]GrowthItem, error)
}

type Analytics struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsUsecase accepts a nil repo; every call then reports
// ErrAnalyticsUnavailable. A nil now uses the wall clock.
func NewAnalyticsUsecase(repo repository.AnalyticsRepository, now func() time.Time) *Analytics {
	if now == nil {
		now = time.Now
	}
	return &Analytics{repo: repo, now: now}
}

// Utilization reports each person's allocations still running today. A
// person is available while the total stays under 100.
func (u *Analytics) Utilization(ctx context.Context) ([]UtilizationItem, error) {
	if u.repo == nil {
		return nil, ErrAnalyticsUnavailable
	}
	today := u.now().UTC().Truncate(24 * time.Hour)

	rows, err := u.repo.Utilization(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%w: utilization: %v", ErrInternal, err)
	}

	out := make([]UtilizationItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, UtilizationItem{
			PersonnelID:     r.PersonnelID,
			Name:            r.Name,
			Role:            r.Role,
			ActiveProjects:  r.ActiveProjects,
			TotalAllocation: r.TotalAllocation,
			Available:       r.TotalAllocation < 100,
		})
	}
	return out, nil
}

// PersonnelGrowth accepts "daily"; anything else is monthly.
func (u *Analytics) PersonnelGrowth(ctx context.Context, period string) ([]GrowthItem, error) {
	if u.repo == nil {
		return nil, ErrAnalyticsUnavailable
	}

	p := repository.GrowthMonthly
	if strings.EqualFold(strings.TrimSpace(period), string(repository.GrowthDaily)) {
		p = repository.GrowthDaily
	}

	rows, err := u.repo.PersonnelGrowth(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: personnel growth: %v", ErrInternal, err)
	}

	out := make([]GrowthItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, GrowthItem{Period: r.Bucket, Count: r.Count, Cumulative: r.Cumulative})
	}
	return out, nil
}
