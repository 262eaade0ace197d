package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrRange      = errors.New("range error")
	ErrStorage    = errors.New("storage error")
)

var (
	ErrTaskEmpty        = fmt.Errorf("%w: task cannot be empty", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date must be a valid YYYY-MM-DD string", ErrValidation)
	ErrInvalidRoutine   = fmt.Errorf("%w: routine mapping is malformed", ErrValidation)
	ErrInvalidUserID    = fmt.Errorf("%w: invalid user id", ErrValidation)
	ErrInvalidMonth     = fmt.Errorf("%w: month must be between 1 and 12", ErrRange)
	ErrInvalidYear      = fmt.Errorf("%w: year must be between 1 and 9999", ErrRange)
	ErrInvalidLocation  = fmt.Errorf("%w: latitude must be within [-90, 90] and longitude within [-180, 180]", ErrRange)
	ErrDuplicateTask    = errors.New("task already exists for this day")
	ErrTaskNotFound     = errors.New("task not found")
	ErrRoutineNotFound  = errors.New("routine not found for this date")
	ErrEmptyJournalText = errors.New("journal entry cannot be empty")
)

var (
	ErrStatsRangeOrder = fmt.Errorf("%w: start_date cannot be after end_date", ErrRange)
	ErrStatsRangeSize  = fmt.Errorf("%w: date range too large, max 366 days allowed", ErrRange)
)
