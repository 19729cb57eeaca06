package matching

import (
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type SortStrategy string

const (
	SortBestFit         SortStrategy = "bestFit"
	SortAvailability    SortStrategy = "availability"
	SortMatchPercentage SortStrategy = "matchPercentage"
)

const unavailableMultiplier = 0.3

// ParseSortStrategy falls back to bestFit for empty or unknown values.
func ParseSortStrategy(s string) SortStrategy {
	switch SortStrategy(strings.TrimSpace(s)) {
	case SortAvailability:
		return SortAvailability
	case SortMatchPercentage:
		return SortMatchPercentage
	default:
		return SortBestFit
	}
}

type Input struct {
	Candidates     []Candidate
	RequiredSkills []SkillRequirement
	ProjectStart   time.Time
	ProjectEnd     time.Time
	SortBy         SortStrategy
}

type Result struct {
	PersonnelID     ID
	Name            string
	Role            string
	ExperienceLevel ExperienceLevel
	ExperienceBonus int

	SkillScore
	Availability

	BaseScore      int
	OverallScore   int
	Recommendation string
}

type TopCandidate struct {
	Name            string
	Score           int
	MatchPercentage int
}

type Summary struct {
	TotalCandidates    int
	PerfectMatches     int
	FullyQualified     int
	PartiallyQualified int
	Available          int
	TopCandidate       *TopCandidate
}

type Output struct {
	Matches []Result
	Summary Summary
}

type Engine struct {
	workers int
}

// NewEngine bounds per-candidate fan-out to workers goroutines; workers <= 0
// uses GOMAXPROCS.
func NewEngine(workers int) *Engine {
	return &Engine{workers: workers}
}

// Match scores every candidate independently, then ranks the full set once.
func Match(in Input) Output {
	return NewEngine(0).Match(in)
}

func (e *Engine) Match(in Input) Output {
	results := make([]Result, len(in.Candidates))

	var g errgroup.Group
	g.SetLimit(e.limit())
	for i := range in.Candidates {
		g.Go(func() error {
			results[i] = Evaluate(in.Candidates[i], in.RequiredSkills, in.ProjectStart, in.ProjectEnd)
			return nil
		})
	}
	_ = g.Wait()

	summary := summarize(results)

	ranked := make([]Result, len(results))
	copy(ranked, results)
	Rank(ranked, in.SortBy)

	if len(ranked) > 0 {
		summary.TopCandidate = &TopCandidate{
			Name:            ranked[0].Name,
			Score:           ranked[0].OverallScore,
			MatchPercentage: ranked[0].MatchPercentage,
		}
	}

	return Output{Matches: ranked, Summary: summary}
}

func (e *Engine) limit() int {
	if e == nil || e.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return e.workers
}

// Evaluate produces the full result for one candidate.
func Evaluate(c Candidate, reqs []SkillRequirement, start, end time.Time) Result {
	skill := ScoreSkills(c.Skills, reqs)
	avail := CheckAvailability(c.Allocations, start, end)
	bonus := ExperienceBonus(c.ExperienceLevel)

	base := skill.TotalScore + bonus
	multiplier := 1.0
	if !avail.Available {
		multiplier = unavailableMultiplier
	}

	return Result{
		PersonnelID:     c.ID,
		Name:            c.Name,
		Role:            c.Role,
		ExperienceLevel: c.ExperienceLevel,
		ExperienceBonus: bonus,
		SkillScore:      skill,
		Availability:    avail,
		BaseScore:       base,
		OverallScore:    roundHalfUp(float64(base) * multiplier),
		Recommendation:  Recommend(skill.MatchPercentage, avail.Available),
	}
}

// Rank sorts in place. Ties keep their input order.
func Rank(results []Result, by SortStrategy) {
	var less func(i, j int) bool
	switch by {
	case SortAvailability:
		less = func(i, j int) bool { return results[i].UtilizationPercentage < results[j].UtilizationPercentage }
	case SortMatchPercentage:
		less = func(i, j int) bool { return results[i].MatchPercentage > results[j].MatchPercentage }
	default:
		less = func(i, j int) bool { return results[i].OverallScore > results[j].OverallScore }
	}
	sort.SliceStable(results, less)
}

func summarize(results []Result) Summary {
	s := Summary{TotalCandidates: len(results)}
	for _, r := range results {
		if r.MatchPercentage == 100 {
			s.FullyQualified++
			if r.Available {
				s.PerfectMatches++
			}
		}
		if r.MatchPercentage >= 50 && r.MatchPercentage < 100 {
			s.PartiallyQualified++
		}
		if r.Available {
			s.Available++
		}
	}
	return s
}
