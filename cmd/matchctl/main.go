// Command matchctl runs matching offline and maintains the database.
package main

import (
	"fmt"
	"os"

	"github.com/waruna834/skills-project-manager/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logJSON  bool
	logDebug bool
)

var rootCmd = &cobra.Command{
	Use:           "matchctl",
	Short:         "Personnel-to-project matching tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")
}

func newLogger() (*zap.Logger, error) {
	return logger.New(logJSON, logDebug, logger.WithOutput("stderr"))
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
