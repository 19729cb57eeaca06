package dto

import "github.com/google/uuid"

type SkillDetailResponse struct {
	SkillName string `json:"skill_name"`
	Priority  string `json:"priority"`
	Required  int    `json:"required"`
	Actual    int    `json:"actual"`
	Status    string `json:"status"`
	Score     int    `json:"score"`
}

type MissingSkillResponse struct {
	SkillName           string `json:"skill_name"`
	RequiredProficiency int    `json:"required_proficiency"`
	Priority            string `json:"priority"`
}

type ConflictResponse struct {
	ProjectName          string `json:"project_name"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

type MatchResultResponse struct {
	PersonnelID     string `json:"personnel_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	ExperienceLevel string `json:"experience_level"`
	ExperienceBonus int    `json:"experienceBonus"`

	TotalScore      int                    `json:"totalScore"`
	MatchedSkills   int                    `json:"matchedSkills"`
	TotalRequired   int                    `json:"totalRequired"`
	MatchPercentage int                    `json:"matchPercentage"`
	MissingSkills   []MissingSkillResponse `json:"missingSkills"`
	SkillDetails    []SkillDetailResponse  `json:"skillDetails"`

	Available             bool               `json:"available"`
	UtilizationPercentage int                `json:"utilizationPercentage"`
	ConflictingProjects   []ConflictResponse `json:"conflictingProjects"`

	BaseScore      int    `json:"baseScore"`
	OverallScore   int    `json:"overallScore"`
	Recommendation string `json:"recommendation"`
}

type TopCandidateResponse struct {
	Name            string `json:"name"`
	Score           int    `json:"score"`
	MatchPercentage int    `json:"matchPercentage"`
}

type MatchSummaryResponse struct {
	TotalCandidates    int                   `json:"totalCandidates"`
	PerfectMatches     int                   `json:"perfectMatches"`
	FullyQualified     int                   `json:"fullyQualified"`
	PartiallyQualified int                   `json:"partiallyQualified"`
	Available          int                   `json:"available"`
	TopCandidate       *TopCandidateResponse `json:"topCandidate"`
}

type MatchingCriteriaResponse struct {
	RequiredSkills  int    `json:"requiredSkills"`
	ProjectDuration int    `json:"projectDuration"`
	SortedBy        string `json:"sortedBy"`
}

type MatchResponse struct {
	Matches          []MatchResultResponse    `json:"matches"`
	Summary          MatchSummaryResponse     `json:"summary"`
	MatchingCriteria MatchingCriteriaResponse `json:"matchingCriteria"`
}

type ProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type ProjectMatchResponse struct {
	Project ProjectResponse `json:"project"`
	MatchResponse
}
