package app

import (
	"context"
	"errors"
	"time"

	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/database"
	dbpostgres "github.com/waruna834/skills-project-manager/internal/database/postgres"
	"github.com/waruna834/skills-project-manager/internal/domain/matching"
	"github.com/waruna834/skills-project-manager/internal/infrastructure/cache"
	"github.com/waruna834/skills-project-manager/internal/logger"
	"github.com/waruna834/skills-project-manager/internal/repository"
	"github.com/waruna834/skills-project-manager/internal/usecase"
	"github.com/waruna834/skills-project-manager/internal/ws"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Container owns every long-lived dependency of the server. DB is nil when no
// database is configured.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Matching  *usecase.Matching
	Skills    *usecase.Skill
	Analytics *usecase.Analytics
}

func NewContainer(ctx context.Context, cfg config.Config, l *zap.Logger) (*Container, error) {
	l = logger.OrNop(l)
	c := &Container{Config: cfg, Logger: l}

	if cfg.Database.Enabled() {
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		db, err := dbpostgres.Connect(cctx, cfg.Database, l)
		cancel()
		if err != nil {
			return nil, err
		}
		c.DB = db
	} else {
		l.Info("database disabled, project matching unavailable", zap.String("reason", "DB_HOST not set"))
	}

	c.Cache = cache.NewRedis(cfg.Redis, cfg.Match.CacheTTL, l)
	c.Hub = ws.NewHub(l)

	deps := usecase.MatchingDeps{
		Cache:    c.Cache,
		CacheTTL: cfg.Match.CacheTTL,
		Notifier: c.Hub,
		Logger:   l,
	}
	var (
		skills    repository.SkillRepository
		analytics repository.AnalyticsRepository
	)
	if c.DB != nil {
		deps.Projects = repository.NewPostgresProjectRepository(c.DB)
		deps.Personnel = repository.NewPostgresPersonnelRepository(c.DB)
		deps.Allocations = repository.NewPostgresAllocationRepository(c.DB)
		skills = repository.NewPostgresSkillRepository(c.DB)
		analytics = repository.NewPostgresAnalyticsRepository(c.DB)
	}

	c.Matching = usecase.NewMatchingUsecase(matching.NewEngine(cfg.Match.Workers), deps)
	c.Skills = usecase.NewSkillUsecase(skills)
	c.Analytics = usecase.NewAnalyticsUsecase(analytics, nil)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
