package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

type Gender string

const (
	GenderFemale    Gender = "F"
	GenderMale      Gender = "M"
	GenderNonBinary Gender = "NB"
	GenderNotGiven  Gender = "NA"
)

const maxNameLength = 30

var AllGenders = map[Gender]struct{}{
	GenderFemale:    {},
	GenderMale:      {},
	GenderNonBinary: {},
	GenderNotGiven:  {},
}

// Player is a person who has appeared on at least one roster, or may.
type Player struct {
	ID                          int64
	FirstName                   string
	LastName                    string
	Email                       string
	Gender                      Gender
	IsActive                    bool
	ExcludeFromAutoDeactivation bool
	PhotoURL                    string
	CreatedAt                   time.Time
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SortName is the "Last, First" form used in lists and dropdowns.
func (p Player) SortName() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

func (p Player) Validate() error {
	var errs validation.Errors
	if strings.TrimSpace(p.FirstName) == "" {
		errs.Add("first_name", "first name is required")
	} else if len(p.FirstName) > maxNameLength {
		errs.Add("first_name", fmt.Sprintf("first name is longer than %d characters", maxNameLength))
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs.Add("last_name", "last name is required")
	} else if len(p.LastName) > maxNameLength {
		errs.Add("last_name", fmt.Sprintf("last name is longer than %d characters", maxNameLength))
	}
	if p.Gender != "" {
		if _, ok := AllGenders[p.Gender]; !ok {
			errs.Add("gender", fmt.Sprintf("unknown gender %q", p.Gender))
		}
	}
	return errs.Err()
}
