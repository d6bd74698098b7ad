package domain

import "errors"

// Common domain errors
var (
	ErrInvalidKind             = errors.New("invalid record kind")
	ErrDuplicateID             = errors.New("record id already exists")
	ErrInvalidExperienceRange  = errors.New("invalid experience range")
	ErrNoExportFields          = errors.New("no export fields selected")
	ErrUnknownExportField      = errors.New("unknown export field")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrTooManySearches         = errors.New("too many active searches")
)
