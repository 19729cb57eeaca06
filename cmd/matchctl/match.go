package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/waruna834/skills-project-manager/internal/delivery/http/dto"
	"github.com/waruna834/skills-project-manager/internal/domain/matching"
	"github.com/waruna834/skills-project-manager/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank personnel from a match request document",
	Long:  "Reads a match request (personnel, requiredSkills, projectStart, projectEnd) and prints the ranked result without a server.",
	RunE:  runMatch,
}

var (
	matchFile    string
	matchSort    string
	matchOutput  string
	matchWorkers int
)

func init() {
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "Path to request JSON, - for stdin (required)")
	matchCmd.Flags().StringVarP(&matchSort, "sort", "s", "", "bestFit, availability or matchPercentage; overrides the document")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "json", "Output format: json or yaml")
	matchCmd.Flags().IntVarP(&matchWorkers, "workers", "w", 0, "Parallel candidate evaluations, 0 for GOMAXPROCS")

	if err := matchCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matchOutput != "json" && matchOutput != "yaml" {
		return fmt.Errorf("unsupported output format %q", matchOutput)
	}

	raw, err := readInput(cmd.InOrStdin(), matchFile)
	if err != nil {
		return err
	}

	var req dto.MatchRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("failed to parse request JSON: %w", err)
	}
	if matchSort != "" {
		req.SortBy = matchSort
	}
	if err := req.Validate(); err != nil {
		return err
	}

	l, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	uc := usecase.NewMatchingUsecase(matching.NewEngine(matchWorkers), usecase.MatchingDeps{Logger: l})
	out, err := uc.Match(cmd.Context(), req.ToInput())
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), dto.NewMatchResponse(out), matchOutput)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}
	return b, nil
}

// writeResult keeps the JSON field names in YAML output by converting through
// a generic document.
func writeResult(w io.Writer, res dto.MatchResponse, format string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
