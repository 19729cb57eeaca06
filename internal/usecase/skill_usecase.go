package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/repository"
	"github.com/waruna834/skills-project-manager/internal/search"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillCatalogUnavailable = errors.New("skill catalog unavailable")
)

type SkillItem struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
}

type SkillHolderItem struct {
	PersonnelID      uuid.UUID
	Name             string
	Role             string
	ProficiencyLevel int
}

type SkillDetailItem struct {
	SkillItem
	Personnel []SkillHolderItem
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string) ([]SkillItem, error)
	SearchSkills(ctx context.Context, query, category string) ([]SkillItem, error)
	GetSkill(ctx context.Context, id uuid.UUID) (SkillDetailItem, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context, category string) ([]SkillItem, error) {
	if u.repo == nil {
		return nil, ErrSkillCatalogUnavailable
	}
	items, err := u.repo.ListSkills(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: list skills: %v", ErrInternal, err)
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, skillItem(it))
	}
	return out, nil
}

// SearchSkills ranks catalog skills by how well their name matches query,
// accepting common aliases such as "golang" or "k8s".
func (u *Skill) SearchSkills(ctx context.Context, query, category string) ([]SkillItem, error) {
	items, err := u.ListSkills(ctx, category)
	if err != nil {
		return nil, err
	}

	candidates := make([]search.Candidate, 0, len(items))
	for i, it := range items {
		candidates = append(candidates, search.Candidate{OriginalIndex: i, Name: it.Name, Category: it.Category})
	}

	ranked := search.Rank(candidates, query)
	out := make([]SkillItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, items[r.OriginalIndex])
	}
	return out, nil
}

func (u *Skill) GetSkill(ctx context.Context, id uuid.UUID) (SkillDetailItem, error) {
	if u.repo == nil {
		return SkillDetailItem{}, ErrSkillCatalogUnavailable
	}
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillDetailItem{}, ErrSkillNotFound
		}
		return SkillDetailItem{}, fmt.Errorf("%w: find skill: %v", ErrInternal, err)
	}

	holders, err := u.repo.ListHolders(ctx, id)
	if err != nil {
		return SkillDetailItem{}, fmt.Errorf("%w: list holders: %v", ErrInternal, err)
	}

	out := SkillDetailItem{SkillItem: skillItem(s), Personnel: make([]SkillHolderItem, 0, len(holders))}
	for _, h := range holders {
		out.Personnel = append(out.Personnel, SkillHolderItem{
			PersonnelID:      h.PersonnelID,
			Name:             h.Name,
			Role:             h.Role,
			ProficiencyLevel: h.ProficiencyLevel,
		})
	}
	return out, nil
}

func skillItem(s repository.Skill) SkillItem {
	return SkillItem{ID: s.ID, Name: s.Name, Category: s.Category, Description: s.Description}
}
