package main

import (
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/database/migration"
	dbpostgres "github.com/waruna834/skills-project-manager/internal/database/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runMigrate,
}

var migrateDir string

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Read migrations from this directory instead of the embedded set")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	l, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	db, err := dbpostgres.Connect(cmd.Context(), cfg, l)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer db.Close()

	dir := migrateDir
	if dir == "" {
		dir = cfg.MigrationsDir
	}
	applied, err := migration.NewRunner(dir, l).Run(cmd.Context(), db.SQLDB())
	if err != nil {
		return err
	}
	l.Info("migrations complete", zap.Int("applied", len(applied)))
	return nil
}
