package matching

import (
	"math"
	"time"
)

const unknownProjectName = "Unknown Project"

type Conflict struct {
	ProjectName          string
	Start                time.Time
	End                  time.Time
	AllocationPercentage int
}

type Availability struct {
	Available             bool
	UtilizationPercentage int
	ConflictingProjects   []Conflict
}

// CheckAvailability weights every allocation overlapping [start, end] by its
// allocation percentage and expresses the total as a share of the project
// window. Exactly 100% utilization is unavailable.
func CheckAvailability(allocs []Allocation, start, end time.Time) Availability {
	if len(allocs) == 0 {
		return Availability{Available: true, ConflictingProjects: make([]Conflict, 0)}
	}

	projectDays := ProjectDurationDays(start, end)
	conflicts := make([]Conflict, 0)
	var totalOverlap float64

	for _, a := range allocs {
		overlapStart := a.Start
		if start.After(overlapStart) {
			overlapStart = start
		}
		overlapEnd := a.End
		if end.Before(overlapEnd) {
			overlapEnd = end
		}
		if !overlapStart.Before(overlapEnd) {
			continue
		}

		overlapDays := ceilDays(overlapEnd.Sub(overlapStart))
		totalOverlap += float64(overlapDays) * (float64(a.AllocationPercentage) / 100)

		name := a.ProjectName
		if name == "" {
			name = unknownProjectName
		}
		conflicts = append(conflicts, Conflict{
			ProjectName:          name,
			Start:                a.Start,
			End:                  a.End,
			AllocationPercentage: a.AllocationPercentage,
		})
	}

	utilization := 0
	if projectDays > 0 {
		utilization = roundHalfUp(totalOverlap / float64(projectDays) * 100)
	}

	return Availability{
		Available:             utilization < 100,
		UtilizationPercentage: utilization,
		ConflictingProjects:   conflicts,
	}
}

// ProjectDurationDays is the window length in calendar days, partial days
// rounded up. A reversed window yields a non-positive value.
func ProjectDurationDays(start, end time.Time) int {
	return ceilDays(end.Sub(start))
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(24*time.Hour)))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
