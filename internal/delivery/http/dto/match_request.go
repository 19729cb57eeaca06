package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/waruna834/skills-project-manager/internal/domain/matching"

	"github.com/go-playground/validator/v10"
)

type MatchRequest struct {
	Personnel      []PersonnelRequest     `json:"personnel" validate:"required,dive"`
	RequiredSkills []RequiredSkillRequest `json:"requiredSkills" validate:"required,dive"`
	ProjectStart   string                 `json:"projectStart" validate:"required"`
	ProjectEnd     string                 `json:"projectEnd" validate:"required"`
	SortBy         string                 `json:"sortBy"`
}

type PersonnelRequest struct {
	ID              matching.ID             `json:"id"`
	Name            string                  `json:"name"`
	Role            string                  `json:"role"`
	ExperienceLevel string                  `json:"experience_level"`
	Email           string                  `json:"email"`
	Skills          []PersonnelSkillRequest `json:"skills" validate:"dive"`
	Allocations     []AllocationRequest     `json:"allocations" validate:"dive"`
}

type PersonnelSkillRequest struct {
	SkillID          matching.ID `json:"skill_id"`
	SkillName        string      `json:"skill_name"`
	ProficiencyLevel int         `json:"proficiency_level" validate:"min=1,max=5"`
}

type AllocationRequest struct {
	ProjectName          string `json:"project_name"`
	AllocationStart      string `json:"allocation_start" validate:"required"`
	AllocationEnd        string `json:"allocation_end" validate:"required"`
	AllocationPercentage int    `json:"allocation_percentage" validate:"min=0,max=100"`
}

type RequiredSkillRequest struct {
	SkillID             matching.ID `json:"skill_id"`
	SkillName           string      `json:"skill_name"`
	Category            string      `json:"category"`
	RequiredProficiency int         `json:"required_proficiency" validate:"min=1,max=5"`
	Priority            string      `json:"priority"`
}

// ValidationError lists offending fields by their JSON path.
type ValidationError struct {
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "Missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return "Invalid fields: " + strings.Join(e.InvalidFields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate returns a *ValidationError, or nil when req is usable. Top-level
// fields that are absent are reported as missing; everything else as invalid.
func (req *MatchRequest) Validate() error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if fe.Tag() == "required" && !strings.ContainsAny(path, ".[") {
			out.MissingFields = append(out.MissingFields, path)
			continue
		}
		out.InvalidFields = append(out.InvalidFields, path)
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
