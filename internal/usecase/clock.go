package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
)

const DefaultLeagueTimezone = "America/New_York"

// Clock answers "what day is it" in the league's timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(timezone string) (*Clock, error) {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = DefaultLeagueTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load league timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixedClock pins Now to t. Used by tests and the CLI's --today flag.
func NewFixedClock(t time.Time, loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc, now: func() time.Time { return t }}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the league-local calendar date as UTC midnight, comparable with week dates.
func (c *Clock) Today() time.Time {
	return week.Day(c.Now())
}
