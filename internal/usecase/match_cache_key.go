package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/waruna834/skills-project-manager/internal/domain/matching"
)

const matchCacheKeyPrefix = "match:result:"

type matchCacheKeyInput struct {
	Personnel      []CandidateInput            `json:"personnel"`
	RequiredSkills []matching.SkillRequirement `json:"required_skills"`
	ProjectStart   string                      `json:"project_start"`
	ProjectEnd     string                      `json:"project_end"`
	SortBy         matching.SortStrategy       `json:"sort_by"`
}

// MatchCacheKey is stable for identical requests. The sort strategy is
// resolved first so "" and "bestFit" share an entry.
func MatchCacheKey(in MatchInput) string {
	k := matchCacheKeyInput{
		Personnel:      in.Personnel,
		RequiredSkills: in.RequiredSkills,
		ProjectStart:   strings.TrimSpace(in.ProjectStart),
		ProjectEnd:     strings.TrimSpace(in.ProjectEnd),
		SortBy:         matching.ParseSortStrategy(in.SortBy),
	}

	b, _ := json.Marshal(k)
	sum := sha256.Sum256(b)
	return matchCacheKeyPrefix + hex.EncodeToString(sum[:])
}
