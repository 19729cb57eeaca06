package handler

import (
	"errors"

	"github.com/waruna834/skills-project-manager/internal/delivery/http/middleware"
	"github.com/waruna834/skills-project-manager/internal/pkg/response"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

type utilizationResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	ActiveProjects  int       `json:"active_projects"`
	TotalAllocation int       `json:"total_allocation"`
	Available       bool      `json:"available"`
}

type growthResponse struct {
	Period     string `json:"period"`
	Count      int    `json:"count"`
	Cumulative int    `json:"cumulative"`
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analytics")
	grp.Get("/utilization", h.Utilization)
	grp.Get("/personnel-growth", h.PersonnelGrowth)
}

func (h *AnalyticsHandler) Utilization(c fiber.Ctx) error {
	items, err := h.uc.Utilization(c.Context())
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}

	res := make([]utilizationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, utilizationResponse{
			ID:              it.PersonnelID,
			Name:            it.Name,
			Role:            it.Role,
			ActiveProjects:  it.ActiveProjects,
			TotalAllocation: it.TotalAllocation,
			Available:       it.Available,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AnalyticsHandler) PersonnelGrowth(c fiber.Ctx) error {
	items, err := h.uc.PersonnelGrowth(c.Context(), c.Query("period"))
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}

	res := make([]growthResponse, 0, len(items))
	for _, it := range items {
		res = append(res, growthResponse{Period: it.Period, Count: it.Count, Cumulative: it.Cumulative})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapAnalyticsUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrAnalyticsUnavailable) {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
