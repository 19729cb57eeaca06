package matching

type SkillStatus string

const (
	StatusExceeds SkillStatus = "Exceeds"
	StatusMeets   SkillStatus = "Meets"
	StatusBelow   SkillStatus = "Below"
	StatusMissing SkillStatus = "Missing"
)

const (
	baseMatchScore    = 100
	exceedBonusPerLvl = 20
	baseBelowScore    = 50
	belowPenaltyLvl   = 15
)

type SkillDetail struct {
	SkillID   ID
	SkillName string
	Priority  Priority
	Required  int
	Actual    int
	Status    SkillStatus
	Score     int
}

type MissingSkill struct {
	SkillID             ID
	SkillName           string
	RequiredProficiency int
	Priority            Priority
}

type SkillScore struct {
	TotalScore      int
	MatchedSkills   int
	TotalRequired   int
	MatchPercentage int
	MissingSkills   []MissingSkill
	SkillDetails    []SkillDetail
}

// ScoreSkills grades a candidate's skills against every required skill.
// Below-level skills score 50 minus 15 per missing level and are not floored,
// so a four level deficit contributes -10.
func ScoreSkills(skills []CandidateSkill, reqs []SkillRequirement) SkillScore {
	bySkillID := make(map[ID]CandidateSkill, len(skills))
	for _, s := range skills {
		if _, dup := bySkillID[s.SkillID]; dup {
			continue
		}
		bySkillID[s.SkillID] = s
	}

	out := SkillScore{
		TotalRequired: len(reqs),
		MissingSkills: make([]MissingSkill, 0),
		SkillDetails:  make([]SkillDetail, 0, len(reqs)),
	}

	for _, r := range reqs {
		cs, ok := bySkillID[r.SkillID]
		if !ok {
			out.MissingSkills = append(out.MissingSkills, MissingSkill{
				SkillID:             r.SkillID,
				SkillName:           r.SkillName,
				RequiredProficiency: r.RequiredProficiency,
				Priority:            r.Priority,
			})
			out.SkillDetails = append(out.SkillDetails, SkillDetail{
				SkillID:   r.SkillID,
				SkillName: r.SkillName,
				Priority:  r.Priority,
				Required:  r.RequiredProficiency,
				Actual:    0,
				Status:    StatusMissing,
				Score:     0,
			})
			continue
		}

		diff := cs.ProficiencyLevel - r.RequiredProficiency
		var score int
		var status SkillStatus
		if diff >= 0 {
			score = baseMatchScore + diff*exceedBonusPerLvl
			status = StatusMeets
			if diff > 0 {
				status = StatusExceeds
			}
			out.MatchedSkills++
		} else {
			score = baseBelowScore + diff*belowPenaltyLvl
			status = StatusBelow
		}

		out.TotalScore += score
		out.SkillDetails = append(out.SkillDetails, SkillDetail{
			SkillID:   r.SkillID,
			SkillName: r.SkillName,
			Priority:  r.Priority,
			Required:  r.RequiredProficiency,
			Actual:    cs.ProficiencyLevel,
			Status:    status,
			Score:     score,
		})
	}

	if out.TotalRequired > 0 {
		out.MatchPercentage = roundHalfUp(float64(out.MatchedSkills) / float64(out.TotalRequired) * 100)
	}
	return out
}
