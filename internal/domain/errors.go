package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrEntryExists         = errors.New("entry for this date already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("authentication required")
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
	ErrReportUnavailable   = errors.New("report generation failed")
	ErrNotConfigured       = errors.New("server not configured")
)
