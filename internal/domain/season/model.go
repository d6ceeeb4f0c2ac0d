package season

import (
	"fmt"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

type Type int

const (
	TypeSpring Type = 1
	TypeSummer Type = 2
	TypeFall   Type = 3
	TypeWinter Type = 4
)

func (t Type) String() string {
	switch t {
	case TypeSpring:
		return "Spring"
	case TypeSummer:
		return "Summer"
	case TypeFall:
		return "Fall"
	case TypeWinter:
		return "Winter"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) Valid() bool {
	return t >= TypeSpring && t <= TypeWinter
}

// Season is one league season. IsCurrent is nil until explicitly set.
type Season struct {
	ID        int64
	Year      int
	Type      Type
	IsCurrent *bool
}

func (s Season) Current() bool {
	return s.IsCurrent != nil && *s.IsCurrent
}

func (s Season) Label() string {
	return fmt.Sprintf("%d %s", s.Year, s.Type)
}

func (s Season) Validate() error {
	var errs validation.Errors
	if s.Year < 1900 || s.Year > 9999 {
		errs.Add("year", "year must be a four digit year")
	}
	if !s.Type.Valid() {
		errs.Add("season_type", "season type must be between 1 and 4")
	}
	return errs.Err()
}

// Newer reports whether a sorts after b by (year, season type).
func Newer(a, b Season) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return a.Type > b.Type
}
