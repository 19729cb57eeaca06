package main

import (
	"fmt"

	"github.com/waruna834/skills-project-manager/internal/config"
	dbpostgres "github.com/waruna834/skills-project-manager/internal/database/postgres"
	"github.com/waruna834/skills-project-manager/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the skill catalog and a demo roster",
	Long:  "Inserts skills, personnel, projects and allocations. Existing rows are left untouched, so the command can be rerun.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
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

	return seeder.Runner{Seeders: seeder.Defaults(), Logger: l}.Run(cmd.Context(), db)
}
