package seeder

import (
	"context"

	"github.com/waruna834/skills-project-manager/internal/database"

	"github.com/google/uuid"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

var seedNamespace = uuid.MustParse("5b0c2f6e-7a51-4d8e-9f0b-3c8e4a7d1e22")

// seedID derives a stable id so reruns hit ON CONFLICT instead of
// duplicating rows.
func seedID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key))
}
