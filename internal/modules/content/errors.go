package content

import "errors"

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrTabNotFound      = errors.New("service tab not found")
	ErrSectionTypeTaken = errors.New("section_type already in use")
	ErrTabIDTaken       = errors.New("tab_id already in use for this section")
	ErrLastSection      = errors.New("cannot delete the last remaining section")
	ErrInvalidDirection = errors.New("direction must be up or down")
)
