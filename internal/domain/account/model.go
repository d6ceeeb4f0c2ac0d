package account

import (
	"slices"
	"strings"
	"time"
)

// Permission names a staff capability.
type Permission string

const (
	PermViewMatchup   Permission = "leagues.view_matchup"
	PermChangeMatchup Permission = "leagues.change_matchup"
	PermViewTeam      Permission = "leagues.view_team"
	PermChangeTeam    Permission = "leagues.change_team"
	PermViewPlayer    Permission = "leagues.view_player"
	PermChangePlayer  Permission = "leagues.change_player"
	PermChangeSeason  Permission = "leagues.change_season"
	PermChangeWeek    Permission = "leagues.change_week"
	PermChangeStat    Permission = "leagues.change_stat"
	PermQuickCancel   Permission = "leagues.can_quick_cancel_games"
)

// Built-in group names.
const (
	GroupGoalieManagers       = "Goalie Managers"
	GroupQuickCancelOperators = "Quick Cancel Operators"
)

// Group is a named permission set.
type Group struct {
	ID          int64
	Name        string
	Permissions []Permission
}

// BuiltinGroups returns the groups the maintenance commands provision.
func BuiltinGroups() map[string][]Permission {
	return map[string][]Permission{
		GroupGoalieManagers: {
			PermViewMatchup, PermChangeMatchup, PermViewTeam, PermViewPlayer,
		},
		GroupQuickCancelOperators: {
			PermQuickCancel,
		},
	}
}

// User is a staff account for the admin API.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	Groups       []string
	CreatedAt    time.Time
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID      int64
	Username    string
	IsSuperuser bool
	Permissions []Permission
}

// Can reports whether the principal holds perm. Superusers hold everything.
func (p Principal) Can(perm Permission) bool {
	if p.IsSuperuser {
		return true
	}
	return slices.Contains(p.Permissions, perm)
}

// Session is an issued staff login token, stored by hash.
type Session struct {
	TokenHash string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
