package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/waruna834/skills-project-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSkillRepo struct {
	skills   []repository.Skill
	holders  []repository.SkillHolder
	category string
	err      error
}

func (m *mockSkillRepo) ListSkills(_ context.Context, category string) ([]repository.Skill, error) {
	m.category = category
	return m.skills, m.err
}

func (m *mockSkillRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	for _, s := range m.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillRepo) ListHolders(context.Context, uuid.UUID) ([]repository.SkillHolder, error) {
	return m.holders, nil
}

func TestSkillUsecase_ListSkills(t *testing.T) {
	repo := &mockSkillRepo{skills: []repository.Skill{{ID: goSkill, Name: "Go", Category: "Programming Language"}}}

	items, err := NewSkillUsecase(repo).ListSkills(context.Background(), "Programming Language")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0].Name)
	assert.Equal(t, "Programming Language", repo.category)
}

func TestSkillUsecase_ListSkills_RepoError(t *testing.T) {
	_, err := NewSkillUsecase(&mockSkillRepo{err: errors.New("down")}).ListSkills(context.Background(), "")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSkillUsecase_SearchSkills(t *testing.T) {
	repo := &mockSkillRepo{skills: []repository.Skill{
		{ID: uuid.New(), Name: "Docker", Category: "DevOps"},
		{ID: uuid.New(), Name: "Kubernetes", Category: "DevOps"},
		{ID: pgSkill, Name: "PostgreSQL", Category: "Database"},
	}}
	uc := NewSkillUsecase(repo)

	items, err := uc.SearchSkills(context.Background(), "k8s", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kubernetes", items[0].Name)

	items, err = uc.SearchSkills(context.Background(), "Postgres", "Database")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, pgSkill, items[0].ID)
	assert.Equal(t, "Database", repo.category)

	items, err = uc.SearchSkills(context.Background(), "cobol", "")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = NewSkillUsecase(nil).SearchSkills(context.Background(), "go", "")
	assert.ErrorIs(t, err, ErrSkillCatalogUnavailable)
}

func TestSkillUsecase_GetSkill(t *testing.T) {
	holder := uuid.New()
	repo := &mockSkillRepo{
		skills:  []repository.Skill{{ID: goSkill, Name: "Go"}},
		holders: []repository.SkillHolder{{PersonnelID: holder, Name: "Ana", ProficiencyLevel: 5}},
	}

	got, err := NewSkillUsecase(repo).GetSkill(context.Background(), goSkill)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)
	require.Len(t, got.Personnel, 1)
	assert.Equal(t, holder, got.Personnel[0].PersonnelID)

	_, err = NewSkillUsecase(repo).GetSkill(context.Background(), pgSkill)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSkillUsecase_NoRepository(t *testing.T) {
	_, err := NewSkillUsecase(nil).ListSkills(context.Background(), "")
	assert.ErrorIs(t, err, ErrSkillCatalogUnavailable)
}
