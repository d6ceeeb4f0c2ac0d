package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

const maxNameLength = 55

// Team is a season-scoped team. The same club gets a new row every season.
type Team struct {
	ID         int64
	Name       string
	Color      string
	IsActive   bool
	IsChampion bool
	DivisionID *int64
	SeasonID   *int64
	// AccessCode is the secret in the captain self-service URL.
	AccessCode string
	PhotoURL   string
}

func (t Team) Validate() error {
	var errs validation.Errors
	name := strings.TrimSpace(t.Name)
	if name == "" {
		errs.Add("team_name", "team name is required")
	} else if len(name) > maxNameLength {
		errs.Add("team_name", fmt.Sprintf("team name is longer than %d characters", maxNameLength))
	}
	return errs.Err()
}

// InSeason reports whether the team belongs to seasonID.
func (t Team) InSeason(seasonID int64) bool {
	return t.SeasonID != nil && *t.SeasonID == seasonID
}
