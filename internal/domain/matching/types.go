package matching

import (
	"strings"
	"time"
)

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
)

type Priority string

const (
	PriorityMustHave   Priority = "Must Have"
	PriorityNiceToHave Priority = "Nice to Have"
)

// ParsePriority accepts both the spaced ("Must Have") and compact ("MustHave")
// spellings. Anything else is treated as a hard requirement.
func ParsePriority(s string) Priority {
	compact := strings.ToLower(strings.Join(strings.Fields(s), ""))
	if compact == "nicetohave" {
		return PriorityNiceToHave
	}
	return PriorityMustHave
}

type SkillRequirement struct {
	SkillID             ID
	SkillName           string
	Category            string
	RequiredProficiency int
	Priority            Priority
}

type CandidateSkill struct {
	SkillID          ID
	SkillName        string
	ProficiencyLevel int
}

type Allocation struct {
	ProjectName          string
	Start                time.Time
	End                  time.Time
	AllocationPercentage int
}

type Candidate struct {
	ID              ID
	Name            string
	Role            string
	ExperienceLevel ExperienceLevel
	Email           string
	Skills          []CandidateSkill
	Allocations     []Allocation
}
