package goal

import (
	"time"

	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// dateLayout is the calendar-date format used for goal dates (no time component).
const dateLayout = "2006-01-02"

// parseDateRange parses start and target dates and enforces that the
// target does not precede the start.
func parseDateRange(start, target string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"start date must be formatted as yyyy-MM-dd",
			err,
		)
	}

	targetDate, err := time.Parse(dateLayout, target)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"target date must be formatted as yyyy-MM-dd",
			err,
		)
	}

	if targetDate.Before(startDate) {
		return time.Time{}, time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDateRange,
			"target date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return startDate, targetDate, nil
}
