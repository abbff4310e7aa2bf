package team

import "errors"

var (
	ErrMemberNotFound = errors.New("team member not found")
	ErrSlugTaken      = errors.New("slug already in use")
	ErrBioRequired    = errors.New("at least one biography paragraph is required")
)
