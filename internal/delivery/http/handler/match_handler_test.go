package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/waruna834/skills-project-manager/internal/delivery/http/middleware"
	"github.com/waruna834/skills-project-manager/internal/repository"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(uc usecase.MatchingUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewMatchHandler(uc).RegisterRoutes(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

const validBody = `{
	"personnel": [
		{
			"id": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
			"name": "Ana",
			"role": "Engineer",
			"experience_level": "Senior",
			"skills": [{"skill_id": "11111111-1111-1111-1111-111111111111", "skill_name": "Go", "proficiency_level": 3}],
			"allocations": []
		},
		{
			"id": "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
			"name": "Ben",
			"role": "Engineer",
			"experience_level": "Mid",
			"skills": [{"skill_id": "11111111-1111-1111-1111-111111111111", "skill_name": "Go", "proficiency_level": 3}],
			"allocations": [{"project_name": "Ledger", "allocation_start": "2024-01-01", "allocation_end": "2024-12-31", "allocation_percentage": 100}]
		}
	],
	"requiredSkills": [
		{"skill_id": "11111111-1111-1111-1111-111111111111", "skill_name": "Go", "category": "Programming Language", "required_proficiency": 3, "priority": "Must Have"}
	],
	"projectStart": "2024-03-01",
	"projectEnd": "2024-03-31",
	"sortBy": "matchPercentage"
}`

type matchData struct {
	Matches []struct {
		PersonnelID           string `json:"personnel_id"`
		Name                  string `json:"name"`
		OverallScore          int    `json:"overallScore"`
		MatchPercentage       int    `json:"matchPercentage"`
		UtilizationPercentage int    `json:"utilizationPercentage"`
		Recommendation        string `json:"recommendation"`
		ConflictingProjects   []struct {
			ProjectName string `json:"project_name"`
			Start       string `json:"start"`
		} `json:"conflictingProjects"`
		MissingSkills []json.RawMessage `json:"missingSkills"`
	} `json:"matches"`
	Summary struct {
		TotalCandidates int `json:"totalCandidates"`
		PerfectMatches  int `json:"perfectMatches"`
		TopCandidate    *struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		} `json:"topCandidate"`
	} `json:"summary"`
	MatchingCriteria struct {
		RequiredSkills  int    `json:"requiredSkills"`
		ProjectDuration int    `json:"projectDuration"`
		SortedBy        string `json:"sortedBy"`
	} `json:"matchingCriteria"`
}

func TestMatchHandler_Match_IntegerAndNameIDs(t *testing.T) {
	body := `{
		"personnel": [
			{"id": 1, "name": "Ana", "experience_level": "Senior",
			 "skills": [{"skill_id": 7, "skill_name": "Go", "proficiency_level": 3}], "allocations": []},
			{"id": "ben", "name": "Ben", "experience_level": "Mid",
			 "skills": [{"skill_id": "go", "skill_name": "Go", "proficiency_level": 5}]}
		],
		"requiredSkills": [
			{"skill_id": 7, "skill_name": "Go", "required_proficiency": 3, "priority": "Must Have"},
			{"skill_id": "go", "skill_name": "Go (alias)", "required_proficiency": 4, "priority": "Nice to Have"}
		],
		"projectStart": "2024-03-01",
		"projectEnd": "2024-03-31"
	}`

	resp, env := do(t, newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{})), http.MethodPost, "/api/v1/match", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	var data matchData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Matches, 2)

	// Ben: 0 + 120 (go 5 vs 4) + 15 mid bonus; Ana: 100 + 0 + 30 senior bonus.
	assert.Equal(t, "ben", data.Matches[0].PersonnelID)
	assert.Equal(t, 135, data.Matches[0].OverallScore)
	assert.Equal(t, "1", data.Matches[1].PersonnelID)
	assert.Equal(t, 130, data.Matches[1].OverallScore)
	assert.Equal(t, 50, data.Matches[1].MatchPercentage)
}

func TestMatchHandler_Match_RejectsNonScalarID(t *testing.T) {
	body := strings.Replace(validBody, `"id": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"`, `"id": {"n": 1}`, 1)

	resp, env := do(t, newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{})), http.MethodPost, "/api/v1/match", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestMatchHandler_Match(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	resp, env := do(t, app, http.MethodPost, "/api/v1/match", validBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data matchData
	require.NoError(t, json.Unmarshal(env.Data, &data))

	require.Len(t, data.Matches, 2)
	assert.Equal(t, "Ana", data.Matches[0].Name)
	assert.Equal(t, 130, data.Matches[0].OverallScore)
	assert.Equal(t, "Excellent Match - Highly Recommended", data.Matches[0].Recommendation)
	assert.NotNil(t, data.Matches[0].MissingSkills)

	ben := data.Matches[1]
	assert.Equal(t, 100, ben.UtilizationPercentage)
	assert.Equal(t, 35, ben.OverallScore)
	require.Len(t, ben.ConflictingProjects, 1)
	assert.Equal(t, "Ledger", ben.ConflictingProjects[0].ProjectName)
	assert.Equal(t, "2024-01-01", ben.ConflictingProjects[0].Start)

	assert.Equal(t, 2, data.Summary.TotalCandidates)
	assert.Equal(t, 1, data.Summary.PerfectMatches)
	require.NotNil(t, data.Summary.TopCandidate)
	assert.Equal(t, "Ana", data.Summary.TopCandidate.Name)

	assert.Equal(t, 1, data.MatchingCriteria.RequiredSkills)
	assert.Equal(t, 30, data.MatchingCriteria.ProjectDuration)
	assert.Equal(t, "matchPercentage", data.MatchingCriteria.SortedBy)
}

func TestMatchHandler_MissingFields(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	resp, env := do(t, app, http.MethodPost, "/api/v1/match", `{"requiredSkills": [], "projectEnd": "2024-01-01"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields: personnel, projectStart", env.Message)

	var data struct {
		MissingFields []string `json:"missing_fields"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"personnel", "projectStart"}, data.MissingFields)
}

func TestMatchHandler_EmptyListsAreValid(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	body := `{"personnel": [], "requiredSkills": [], "projectStart": "2024-01-01", "projectEnd": "2024-01-01"}`
	resp, env := do(t, app, http.MethodPost, "/api/v1/match", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data matchData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Matches)
	assert.Nil(t, data.Summary.TopCandidate)
	assert.Equal(t, "bestFit", data.MatchingCriteria.SortedBy)
	assert.Equal(t, 0, data.MatchingCriteria.ProjectDuration)
}

func TestMatchHandler_InvalidProficiency(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	body := strings.Replace(validBody, `"proficiency_level": 3`, `"proficiency_level": 9`, 1)
	resp, env := do(t, app, http.MethodPost, "/api/v1/match", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var data struct {
		InvalidFields []string `json:"invalid_fields"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"personnel[0].skills[0].proficiency_level"}, data.InvalidFields)
}

func TestMatchHandler_UnparseableDateIsComputationFault(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	body := strings.Replace(validBody, `"projectEnd": "2024-03-31"`, `"projectEnd": "end of march"`, 1)
	resp, env := do(t, app, http.MethodPost, "/api/v1/match", body)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Matching failed", env.Message)

	var data struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.Error, "invalid date")
}

func TestMatchHandler_MalformedBody(t *testing.T) {
	app := newTestApp(usecase.NewMatchingUsecase(nil, usecase.MatchingDeps{}))

	resp, env := do(t, app, http.MethodPost, "/api/v1/match", `{"personnel": [`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)
}

type stubMatching struct {
	out usecase.ProjectMatchOutput
	err error
}

func (s stubMatching) Match(context.Context, usecase.MatchInput) (usecase.MatchOutput, error) {
	return s.out.MatchOutput, s.err
}

func (s stubMatching) MatchProject(context.Context, uuid.UUID, string) (usecase.ProjectMatchOutput, error) {
	return s.out, s.err
}

func TestMatchHandler_MatchProject_Errors(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		err     error
		status  int
		message string
	}{
		{"bad id", "/api/v1/projects/not-a-uuid/matches", nil, http.StatusBadRequest, "Invalid project id"},
		{"not found", "/api/v1/projects/" + uuid.NewString() + "/matches", usecase.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{"no skills", "/api/v1/projects/" + uuid.NewString() + "/matches", usecase.ErrProjectHasNoSkills, http.StatusBadRequest, "Project has no required skills defined"},
		{"no database", "/api/v1/projects/" + uuid.NewString() + "/matches", usecase.ErrProjectMatchingUnavailable, http.StatusServiceUnavailable, "service unavailable"},
		{"internal", "/api/v1/projects/" + uuid.NewString() + "/matches", usecase.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(stubMatching{err: tc.err})
			resp, env := do(t, app, http.MethodGet, tc.target, "")
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestMatchHandler_MatchProject(t *testing.T) {
	id := uuid.New()
	out := usecase.MatchOutput{}
	stub := stubMatching{out: usecase.ProjectMatchOutput{
		Project:     repository.Project{ID: id, Name: "Payments"},
		MatchOutput: out,
	}}

	resp, env := do(t, newTestApp(stub), http.MethodGet, "/api/v1/projects/"+id.String()+"/matches?sortBy=availability", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Project struct {
			ID   uuid.UUID `json:"id"`
			Name string    `json:"name"`
		} `json:"project"`
		Matches []json.RawMessage `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, id, data.Project.ID)
	assert.Equal(t, "Payments", data.Project.Name)
	assert.NotNil(t, data.Matches)
}
