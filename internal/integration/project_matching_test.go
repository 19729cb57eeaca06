package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/waruna834/skills-project-manager/internal/app"
	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/database"
	"github.com/waruna834/skills-project-manager/internal/database/migration"
	dbpostgres "github.com/waruna834/skills-project-manager/internal/database/postgres"
	"github.com/waruna834/skills-project-manager/internal/database/seeder"
	"github.com/waruna834/skills-project-manager/internal/domain/matching"
	"github.com/waruna834/skills-project-manager/internal/repository"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type projectMatches struct {
	Project struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		StartDate string    `json:"start_date"`
	} `json:"project"`
	Matches []struct {
		Name                  string `json:"name"`
		OverallScore          int    `json:"overallScore"`
		UtilizationPercentage int    `json:"utilizationPercentage"`
		ConflictingProjects   []struct {
			ProjectName string `json:"project_name"`
		} `json:"conflictingProjects"`
	} `json:"matches"`
	Summary struct {
		TotalCandidates int `json:"totalCandidates"`
	} `json:"summary"`
	MatchingCriteria struct {
		RequiredSkills  int    `json:"requiredSkills"`
		ProjectDuration int    `json:"projectDuration"`
		SortedBy        string `json:"sortedBy"`
	} `json:"matchingCriteria"`
}

func TestIntegration_MigrateSeedAndMatchProject(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runner := migration.NewRunner("", nil)
	_, err := runner.Run(ctx, db.SQLDB())
	require.NoError(t, err)
	again, err := runner.Run(ctx, db.SQLDB())
	require.NoError(t, err)
	assert.Empty(t, again)

	seeds := seeder.Runner{Seeders: seeder.Defaults()}
	require.NoError(t, seeds.Run(ctx, db))
	require.NoError(t, seeds.Run(ctx, db))

	projectID := findProjectID(t, ctx, db, "Payments Platform")

	uc := usecase.NewMatchingUsecase(matching.NewEngine(4), usecase.MatchingDeps{
		Projects:    repository.NewPostgresProjectRepository(db),
		Personnel:   repository.NewPostgresPersonnelRepository(db),
		Allocations: repository.NewPostgresAllocationRepository(db),
		Now:         func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) },
	})
	srv := app.New(config.Config{App: config.AppConfig{AppName: "integration"}}, app.Deps{
		Matching: uc,
		Skills:   usecase.NewSkillUsecase(repository.NewPostgresSkillRepository(db)),
		Analytics: usecase.NewAnalyticsUsecase(repository.NewPostgresAnalyticsRepository(db),
			func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }),
	})

	resp, err := srv.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/matches", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var got projectMatches
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, projectID, got.Project.ID)
	assert.Equal(t, "2026-09-01", got.Project.StartDate)
	assert.Equal(t, 3, got.MatchingCriteria.RequiredSkills)
	assert.Equal(t, 178, got.MatchingCriteria.ProjectDuration)
	assert.Equal(t, "bestFit", got.MatchingCriteria.SortedBy)
	assert.GreaterOrEqual(t, got.Summary.TotalCandidates, 5)

	for i := 1; i < len(got.Matches); i++ {
		assert.GreaterOrEqual(t, got.Matches[i-1].OverallScore, got.Matches[i].OverallScore)
	}

	var found bool
	for _, m := range got.Matches {
		if m.Name != "Amaya Perera" {
			continue
		}
		found = true
		// Go 5/4 + PostgreSQL 4/3 + Kubernetes 3/3 + senior bonus.
		assert.Equal(t, 370, m.OverallScore)
		assert.Equal(t, 60, m.UtilizationPercentage)
		require.Len(t, m.ConflictingProjects, 1)
		assert.Equal(t, "Payments Platform", m.ConflictingProjects[0].ProjectName)
	}
	assert.True(t, found, "seeded candidate missing from matches")

	resp, err = srv.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+uuid.NewString()+"/matches", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = srv.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/skills/category/DevOps", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/analytics/utilization", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var utilEnv semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&utilEnv))
	var util []struct {
		Name            string `json:"name"`
		ActiveProjects  int    `json:"active_projects"`
		TotalAllocation int    `json:"total_allocation"`
		Available       bool   `json:"available"`
	}
	require.NoError(t, json.Unmarshal(utilEnv.Data, &util))

	byName := make(map[string]int, len(util))
	for i, u := range util {
		byName[u.Name] = i
		if i > 0 {
			assert.GreaterOrEqual(t, util[i-1].TotalAllocation, u.TotalAllocation)
		}
	}
	// Kasun's 100% Customer Portal allocation makes him the only unavailable seed.
	require.Contains(t, byName, "Kasun Silva")
	kasun := util[byName["Kasun Silva"]]
	assert.Equal(t, 1, kasun.ActiveProjects)
	assert.Equal(t, 100, kasun.TotalAllocation)
	assert.False(t, kasun.Available)

	require.Contains(t, byName, "Dilini Wickramasinghe")
	dilini := util[byName["Dilini Wickramasinghe"]]
	assert.Equal(t, 0, dilini.ActiveProjects)
	assert.True(t, dilini.Available)
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	dbcfg := config.DatabaseConfig{
		DBHost:     envOr("MATCH_TEST_DB_HOST", "DB_HOST"),
		DBPort:     envOr("MATCH_TEST_DB_PORT", "DB_PORT"),
		DBName:     envOr("MATCH_TEST_DB_NAME", "DB_NAME"),
		DBUser:     envOr("MATCH_TEST_DB_USER", "DB_USER"),
		DBPassword: envOr("MATCH_TEST_DB_PASSWORD", "DB_PASSWORD"),
		DBSSLMode:  envOr("MATCH_TEST_DB_SSL_MODE", "DB_SSL_MODE"),
	}
	if dbcfg.DBHost == "" || dbcfg.DBPort == "" || dbcfg.DBName == "" || dbcfg.DBUser == "" {
		t.Skip("missing test DB env vars: set MATCH_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	db, err := dbpostgres.Connect(ctx, dbcfg, nil)
	require.NoError(t, err, "connect db")
	return db
}

func findProjectID(t *testing.T, ctx context.Context, db database.DB, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM projects WHERE name = $1 ORDER BY created_at ASC LIMIT 1`, name).Scan(&id)
	require.NoError(t, err, "find project %s", name)
	return id
}

func envOr(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}
