package seeder

import (
	"context"
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/database"
	"github.com/waruna834/skills-project-manager/internal/logger"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	log := logger.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder finished", zap.String("seeder", s.Name()))
	}
	return nil
}
