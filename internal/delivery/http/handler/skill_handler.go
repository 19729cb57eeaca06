package handler

import (
	"errors"
	"net/url"
	"strings"

	"github.com/waruna834/skills-project-manager/internal/delivery/http/middleware"
	"github.com/waruna834/skills-project-manager/internal/pkg/response"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type skillHolderResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	ProficiencyLevel int       `json:"proficiency_level"`
}

type skillDetailResponse struct {
	skillResponse
	Personnel []skillHolderResponse `json:"personnel"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/category/:category", h.ListByCategory)
	grp.Get("/:skill_id", h.Get)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	return h.list(c, "")
}

func (h *SkillHandler) ListByCategory(c fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid category", nil, err)
	}
	return h.list(c, category)
}

func (h *SkillHandler) list(c fiber.Ctx, category string) error {
	var (
		items []usecase.SkillItem
		err   error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		items, err = h.uc.SearchSkills(c.Context(), q, category)
	} else {
		items, err = h.uc.ListSkills(c.Context(), category)
	}
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := make([]skillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	item, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := skillDetailResponse{
		skillResponse: toSkillResponse(item.SkillItem),
		Personnel:     make([]skillHolderResponse, 0, len(item.Personnel)),
	}
	for _, p := range item.Personnel {
		res.Personnel = append(res.Personnel, skillHolderResponse{
			ID:               p.PersonnelID,
			Name:             p.Name,
			Role:             p.Role,
			ProficiencyLevel: p.ProficiencyLevel,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func toSkillResponse(it usecase.SkillItem) skillResponse {
	return skillResponse{ID: it.ID, Name: it.Name, Category: it.Category, Description: it.Description}
}

func mapSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSkillCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
