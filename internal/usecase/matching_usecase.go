package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waruna834/skills-project-manager/internal/domain/matching"
	"github.com/waruna834/skills-project-manager/internal/logger"
	"github.com/waruna834/skills-project-manager/internal/repository"
	"github.com/waruna834/skills-project-manager/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AllocationInput struct {
	ProjectName          string `json:"project_name"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

type CandidateInput struct {
	ID              matching.ID               `json:"id"`
	Name            string                    `json:"name"`
	Role            string                    `json:"role"`
	ExperienceLevel string                    `json:"experience_level"`
	Email           string                    `json:"email"`
	Skills          []matching.CandidateSkill `json:"skills"`
	Allocations     []AllocationInput         `json:"allocations"`
}

// MatchInput is a transport-agnostic match request with dates still in
// their wire form.
type MatchInput struct {
	Personnel      []CandidateInput
	RequiredSkills []matching.SkillRequirement
	ProjectStart   string
	ProjectEnd     string
	SortBy         string
}

type MatchingCriteria struct {
	RequiredSkills  int
	ProjectDuration int
	SortedBy        matching.SortStrategy
}

type MatchOutput struct {
	Matches  []matching.Result
	Summary  matching.Summary
	Criteria MatchingCriteria
}

type ProjectMatchOutput struct {
	Project repository.Project
	MatchOutput
}

type MatchingUsecase interface {
	Match(ctx context.Context, in MatchInput) (MatchOutput, error)
	MatchProject(ctx context.Context, projectID uuid.UUID, sortBy string) (ProjectMatchOutput, error)
}

type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type MatchNotifier interface {
	NotifyMatchCompleted(evt ws.MatchCompletedEvent)
}

// MatchingDeps are optional collaborators. Without repositories only
// request-driven matching works; without a cache every request is scored.
type MatchingDeps struct {
	Projects    repository.ProjectRepository
	Personnel   repository.PersonnelRepository
	Allocations repository.AllocationRepository
	Cache       ResultCache
	CacheTTL    time.Duration
	Notifier    MatchNotifier
	Logger      *zap.Logger
	Now         func() time.Time
}

type Matching struct {
	engine      *matching.Engine
	projects    repository.ProjectRepository
	personnel   repository.PersonnelRepository
	allocations repository.AllocationRepository
	cache       ResultCache
	cacheTTL    time.Duration
	notifier    MatchNotifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewMatchingUsecase(engine *matching.Engine, deps MatchingDeps) *Matching {
	if engine == nil {
		engine = matching.NewEngine(0)
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Matching{
		engine:      engine,
		projects:    deps.Projects,
		personnel:   deps.Personnel,
		allocations: deps.Allocations,
		cache:       deps.Cache,
		cacheTTL:    deps.CacheTTL,
		notifier:    deps.Notifier,
		logger:      logger.OrNop(deps.Logger),
		now:         now,
	}
}

func (u *Matching) Match(ctx context.Context, in MatchInput) (MatchOutput, error) {
	if in.Personnel == nil || in.RequiredSkills == nil {
		return MatchOutput{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ProjectStart) == "" || strings.TrimSpace(in.ProjectEnd) == "" {
		return MatchOutput{}, ErrInvalidInput
	}

	key := MatchCacheKey(in)
	if u.cache != nil {
		var cached MatchOutput
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("match cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			u.logger.Debug("match cache hit", zap.String("key", key))
			u.notify(uuid.Nil, "", cached)
			return cached, nil
		}
	}

	start, err := ParseDate(in.ProjectStart)
	if err != nil {
		return MatchOutput{}, fmt.Errorf("project start: %w", err)
	}
	end, err := ParseDate(in.ProjectEnd)
	if err != nil {
		return MatchOutput{}, fmt.Errorf("project end: %w", err)
	}

	candidates, err := candidatesFromInput(in.Personnel)
	if err != nil {
		return MatchOutput{}, err
	}

	out := u.run(candidates, in.RequiredSkills, start, end, matching.ParseSortStrategy(in.SortBy))

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
			u.logger.Warn("match cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	u.notify(uuid.Nil, "", out)
	return out, nil
}

func (u *Matching) MatchProject(ctx context.Context, projectID uuid.UUID, sortBy string) (ProjectMatchOutput, error) {
	if u.projects == nil || u.personnel == nil || u.allocations == nil {
		return ProjectMatchOutput{}, ErrProjectMatchingUnavailable
	}
	if projectID == uuid.Nil {
		return ProjectMatchOutput{}, ErrProjectNotFound
	}

	project, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ProjectMatchOutput{}, ErrProjectNotFound
		}
		return ProjectMatchOutput{}, fmt.Errorf("%w: find project: %v", ErrInternal, err)
	}

	skills, err := u.projects.FindRequiredSkills(ctx, projectID)
	if err != nil {
		return ProjectMatchOutput{}, fmt.Errorf("%w: find required skills: %v", ErrInternal, err)
	}
	if len(skills) == 0 {
		return ProjectMatchOutput{}, ErrProjectHasNoSkills
	}

	people, err := u.personnel.ListWithSkills(ctx)
	if err != nil {
		return ProjectMatchOutput{}, fmt.Errorf("%w: list personnel: %v", ErrInternal, err)
	}

	ids := make([]uuid.UUID, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	today := u.now().UTC().Truncate(24 * time.Hour)
	allocs, err := u.allocations.FindActiveByPersonnelIDs(ctx, ids, today)
	if err != nil {
		return ProjectMatchOutput{}, fmt.Errorf("%w: find allocations: %v", ErrInternal, err)
	}

	out := u.run(
		candidatesFromRepository(people, allocs),
		requirementsFromRepository(skills),
		project.StartDate,
		project.EndDate,
		matching.ParseSortStrategy(sortBy),
	)
	u.notify(project.ID, project.Name, out)

	return ProjectMatchOutput{Project: project, MatchOutput: out}, nil
}

func (u *Matching) run(candidates []matching.Candidate, reqs []matching.SkillRequirement, start, end time.Time, sortBy matching.SortStrategy) MatchOutput {
	u.logger.Info("matching started",
		zap.Int("candidates", len(candidates)),
		zap.Int("required_skills", len(reqs)),
		zap.String("sort_by", string(sortBy)),
	)

	res := u.engine.Match(matching.Input{
		Candidates:     candidates,
		RequiredSkills: reqs,
		ProjectStart:   start,
		ProjectEnd:     end,
		SortBy:         sortBy,
	})

	u.logger.Info("matching complete",
		zap.Int("perfect_matches", res.Summary.PerfectMatches),
		zap.Int("available", res.Summary.Available),
	)

	return MatchOutput{
		Matches: res.Matches,
		Summary: res.Summary,
		Criteria: MatchingCriteria{
			RequiredSkills:  len(reqs),
			ProjectDuration: matching.ProjectDurationDays(start, end),
			SortedBy:        sortBy,
		},
	}
}

func (u *Matching) notify(projectID uuid.UUID, projectName string, out MatchOutput) {
	if u.notifier == nil {
		return
	}
	evt := ws.MatchCompletedEvent{
		ProjectName:     projectName,
		TotalCandidates: out.Summary.TotalCandidates,
		PerfectMatches:  out.Summary.PerfectMatches,
		SortedBy:        string(out.Criteria.SortedBy),
	}
	if projectID != uuid.Nil {
		evt.ProjectID = projectID.String()
	}
	if top := out.Summary.TopCandidate; top != nil {
		evt.TopCandidate = &ws.TopResult{Name: top.Name, Score: top.Score, MatchPercentage: top.MatchPercentage}
	}
	u.notifier.NotifyMatchCompleted(evt)
}

func candidatesFromInput(in []CandidateInput) ([]matching.Candidate, error) {
	out := make([]matching.Candidate, 0, len(in))
	for _, p := range in {
		allocs := make([]matching.Allocation, 0, len(p.Allocations))
		for _, a := range p.Allocations {
			start, err := ParseDate(a.Start)
			if err != nil {
				return nil, fmt.Errorf("allocation start for %s: %w", p.Name, err)
			}
			end, err := ParseDate(a.End)
			if err != nil {
				return nil, fmt.Errorf("allocation end for %s: %w", p.Name, err)
			}
			allocs = append(allocs, matching.Allocation{
				ProjectName:          a.ProjectName,
				Start:                start,
				End:                  end,
				AllocationPercentage: a.AllocationPercentage,
			})
		}
		out = append(out, matching.Candidate{
			ID:              p.ID,
			Name:            p.Name,
			Role:            p.Role,
			ExperienceLevel: matching.ExperienceLevel(strings.TrimSpace(p.ExperienceLevel)),
			Email:           p.Email,
			Skills:          p.Skills,
			Allocations:     allocs,
		})
	}
	return out, nil
}

func candidatesFromRepository(people []repository.Personnel, allocs map[uuid.UUID][]repository.Allocation) []matching.Candidate {
	out := make([]matching.Candidate, 0, len(people))
	for _, p := range people {
		skills := make([]matching.CandidateSkill, 0, len(p.Skills))
		for _, s := range p.Skills {
			skills = append(skills, matching.CandidateSkill{
				SkillID:          matching.ID(s.SkillID.String()),
				SkillName:        s.SkillName,
				ProficiencyLevel: s.ProficiencyLevel,
			})
		}
		mine := allocs[p.ID]
		as := make([]matching.Allocation, 0, len(mine))
		for _, a := range mine {
			as = append(as, matching.Allocation{
				ProjectName:          a.ProjectName,
				Start:                a.Start,
				End:                  a.End,
				AllocationPercentage: a.AllocationPercentage,
			})
		}
		out = append(out, matching.Candidate{
			ID:              matching.ID(p.ID.String()),
			Name:            p.Name,
			Role:            p.Role,
			ExperienceLevel: matching.ExperienceLevel(strings.TrimSpace(p.ExperienceLevel)),
			Email:           p.Email,
			Skills:          skills,
			Allocations:     as,
		})
	}
	return out
}

func requirementsFromRepository(skills []repository.ProjectSkill) []matching.SkillRequirement {
	out := make([]matching.SkillRequirement, 0, len(skills))
	for _, s := range skills {
		out = append(out, matching.SkillRequirement{
			SkillID:             matching.ID(s.SkillID.String()),
			SkillName:           s.SkillName,
			Category:            s.Category,
			RequiredProficiency: s.RequiredProficiency,
			Priority:            matching.ParsePriority(s.Priority),
		})
	}
	return out
}
