package week

import (
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

// DateLayout is the wire and storage layout for game dates.
const DateLayout = "2006-01-02"

// Week is one game day for a division in a season.
type Week struct {
	ID          int64
	DivisionID  int64
	SeasonID    int64
	Date        time.Time
	IsCancelled bool
}

func (w Week) Validate() error {
	var errs validation.Errors
	if w.DivisionID <= 0 {
		errs.Add("division", "division is required")
	}
	if w.SeasonID <= 0 {
		errs.Add("season", "season is required")
	}
	if w.Date.IsZero() {
		errs.Add("date", "date is required")
	}
	return errs.Err()
}

// DateKey formats the week date for grouping.
func (w Week) DateKey() string {
	return w.Date.Format(DateLayout)
}

// Day returns the calendar date of t, in t's location, as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, raw)
}
