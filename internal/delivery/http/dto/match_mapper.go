package dto

import (
	"github.com/waruna834/skills-project-manager/internal/domain/matching"
	"github.com/waruna834/skills-project-manager/internal/usecase"
)

// ToInput converts a validated request into usecase input.
func (req *MatchRequest) ToInput() usecase.MatchInput {
	in := usecase.MatchInput{
		Personnel:      make([]usecase.CandidateInput, 0, len(req.Personnel)),
		RequiredSkills: make([]matching.SkillRequirement, 0, len(req.RequiredSkills)),
		ProjectStart:   req.ProjectStart,
		ProjectEnd:     req.ProjectEnd,
		SortBy:         req.SortBy,
	}

	for _, p := range req.Personnel {
		c := usecase.CandidateInput{
			ID:              p.ID,
			Name:            p.Name,
			Role:            p.Role,
			ExperienceLevel: p.ExperienceLevel,
			Email:           p.Email,
			Skills:          make([]matching.CandidateSkill, 0, len(p.Skills)),
			Allocations:     make([]usecase.AllocationInput, 0, len(p.Allocations)),
		}
		for _, s := range p.Skills {
			c.Skills = append(c.Skills, matching.CandidateSkill{
				SkillID:          s.SkillID,
				SkillName:        s.SkillName,
				ProficiencyLevel: s.ProficiencyLevel,
			})
		}
		for _, a := range p.Allocations {
			c.Allocations = append(c.Allocations, usecase.AllocationInput{
				ProjectName:          a.ProjectName,
				Start:                a.AllocationStart,
				End:                  a.AllocationEnd,
				AllocationPercentage: a.AllocationPercentage,
			})
		}
		in.Personnel = append(in.Personnel, c)
	}

	for _, s := range req.RequiredSkills {
		in.RequiredSkills = append(in.RequiredSkills, matching.SkillRequirement{
			SkillID:             s.SkillID,
			SkillName:           s.SkillName,
			Category:            s.Category,
			RequiredProficiency: s.RequiredProficiency,
			Priority:            matching.ParsePriority(s.Priority),
		})
	}
	return in
}

func NewMatchResponse(out usecase.MatchOutput) MatchResponse {
	res := MatchResponse{
		Matches: make([]MatchResultResponse, 0, len(out.Matches)),
		Summary: MatchSummaryResponse{
			TotalCandidates:    out.Summary.TotalCandidates,
			PerfectMatches:     out.Summary.PerfectMatches,
			FullyQualified:     out.Summary.FullyQualified,
			PartiallyQualified: out.Summary.PartiallyQualified,
			Available:          out.Summary.Available,
		},
		MatchingCriteria: MatchingCriteriaResponse{
			RequiredSkills:  out.Criteria.RequiredSkills,
			ProjectDuration: out.Criteria.ProjectDuration,
			SortedBy:        string(out.Criteria.SortedBy),
		},
	}
	if top := out.Summary.TopCandidate; top != nil {
		res.Summary.TopCandidate = &TopCandidateResponse{
			Name:            top.Name,
			Score:           top.Score,
			MatchPercentage: top.MatchPercentage,
		}
	}

	for _, m := range out.Matches {
		r := MatchResultResponse{
			PersonnelID:           m.PersonnelID.String(),
			Name:                  m.Name,
			Role:                  m.Role,
			ExperienceLevel:       string(m.ExperienceLevel),
			ExperienceBonus:       m.ExperienceBonus,
			TotalScore:            m.TotalScore,
			MatchedSkills:         m.MatchedSkills,
			TotalRequired:         m.TotalRequired,
			MatchPercentage:       m.MatchPercentage,
			MissingSkills:         make([]MissingSkillResponse, 0, len(m.MissingSkills)),
			SkillDetails:          make([]SkillDetailResponse, 0, len(m.SkillDetails)),
			Available:             m.Available,
			UtilizationPercentage: m.UtilizationPercentage,
			ConflictingProjects:   make([]ConflictResponse, 0, len(m.ConflictingProjects)),
			BaseScore:             m.BaseScore,
			OverallScore:          m.OverallScore,
			Recommendation:        m.Recommendation,
		}
		for _, ms := range m.MissingSkills {
			r.MissingSkills = append(r.MissingSkills, MissingSkillResponse{
				SkillName:           ms.SkillName,
				RequiredProficiency: ms.RequiredProficiency,
				Priority:            string(ms.Priority),
			})
		}
		for _, sd := range m.SkillDetails {
			r.SkillDetails = append(r.SkillDetails, SkillDetailResponse{
				SkillName: sd.SkillName,
				Priority:  string(sd.Priority),
				Required:  sd.Required,
				Actual:    sd.Actual,
				Status:    string(sd.Status),
				Score:     sd.Score,
			})
		}
		for _, cp := range m.ConflictingProjects {
			r.ConflictingProjects = append(r.ConflictingProjects, ConflictResponse{
				ProjectName:          cp.ProjectName,
				Start:                usecase.FormatDate(cp.Start),
				End:                  usecase.FormatDate(cp.End),
				AllocationPercentage: cp.AllocationPercentage,
			})
		}
		res.Matches = append(res.Matches, r)
	}
	return res
}
