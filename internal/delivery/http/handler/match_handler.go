package handler

import (
	"errors"

	"github.com/waruna834/skills-project-manager/internal/delivery/http/dto"
	"github.com/waruna834/skills-project-manager/internal/delivery/http/middleware"
	"github.com/waruna834/skills-project-manager/internal/pkg/response"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
	r.Get("/projects/:project_id/matches", h.MatchProject)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	if err := req.Validate(); err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), verr, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	out, err := h.uc.Match(c.Context(), req.ToInput())
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(out))
}

func (h *MatchHandler) MatchProject(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	out, err := h.uc.MatchProject(c.Context(), projectID, c.Query("sortBy"))
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProjectMatchResponse{
		Project: dto.ProjectResponse{
			ID:        out.Project.ID,
			Name:      out.Project.Name,
			StartDate: usecase.FormatDate(out.Project.StartDate),
			EndDate:   usecase.FormatDate(out.Project.EndDate),
		},
		MatchResponse: dto.NewMatchResponse(out.MatchOutput),
	})
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrProjectHasNoSkills):
		return middleware.NewAppError(fiber.StatusBadRequest, "Project has no required skills defined", nil, err)
	case errors.Is(err, usecase.ErrProjectMatchingUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewComputationError(response.MessageMatchingFailed, err)
	}
}
