package usecase

import "errors"

var (
	ErrInvalidInput               = errors.New("invalid input")
	ErrInvalidDate                = errors.New("invalid date")
	ErrProjectNotFound            = errors.New("project not found")
	ErrProjectHasNoSkills         = errors.New("project has no required skills defined")
	ErrProjectMatchingUnavailable = errors.New("project matching unavailable")
	ErrInternal                   = errors.New("internal error")
)
