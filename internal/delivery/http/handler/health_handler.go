package handler

import (
	"github.com/waruna834/skills-project-manager/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	healthStatusOK = "OK"
	serviceVersion = "1.0.0"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	if service == "" {
		service = "Matching Service"
	}
	return &HealthHandler{service: service}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type serviceInfoResponse struct {
	Service     string            `json:"service"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Endpoints   map[string]string `json:"endpoints"`
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
	r.Get("/", h.Info)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, healthResponse{
		Status:  healthStatusOK,
		Service: h.service,
		Version: serviceVersion,
	})
}

func (h *HealthHandler) Info(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, serviceInfoResponse{
		Service:     h.service,
		Description: "Personnel-to-project matching based on skills, proficiency and availability",
		Version:     serviceVersion,
		Endpoints: map[string]string{
			"POST /api/v1/match":                       "Match personnel to project requirements",
			"GET /api/v1/projects/:project_id/matches": "Match stored personnel to a stored project",
			"GET /api/v1/skills":                       "Skill catalog",
			"GET /api/v1/analytics/utilization":        "Current allocation per person",
			"GET /api/v1/analytics/personnel-growth":   "Personnel added per day or month",
			"GET /ws/matches":                          "Stream of completed matches",
			"GET /health":                              "Service health check",
			"GET /":                                    "Service information",
		},
	})
}
