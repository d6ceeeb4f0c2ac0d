package httpapi

import (
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/player"
	"github.com/riskibarqy/street-hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/standing"
	"github.com/riskibarqy/street-hockey-league/internal/domain/stat"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type seasonDTO struct {
	ID             int64  `json:"id"`
	Year           int    `json:"year"`
	SeasonType     int    `json:"season_type"`
	SeasonTypeName string `json:"season_type_name"`
	Label          string `json:"label"`
	IsCurrent      *bool  `json:"is_current_season"`
}

type divisionDTO struct {
	ID        int64  `json:"id"`
	Number    int    `json:"division"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type teamDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"team_name"`
	Color      string `json:"team_color,omitempty"`
	IsActive   bool   `json:"is_active"`
	IsChampion bool   `json:"is_champ"`
	DivisionID *int64 `json:"division_id"`
	SeasonID   *int64 `json:"season_id"`
	PhotoURL   string `json:"team_photo_url,omitempty"`
}

// adminTeamDTO exposes the captain access code, so only staff routes use it.
type adminTeamDTO struct {
	teamDTO
	AccessCode string `json:"captain_access_code"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Gender      string `json:"gender,omitempty"`
	IsActive    bool   `json:"is_active"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

type adminPlayerDTO struct {
	playerDTO
	Email                       string `json:"email,omitempty"`
	ExcludeFromAutoDeactivation bool   `json:"exclude_from_auto_deactivation"`
}

type weekDTO struct {
	ID          int64  `json:"id"`
	DivisionID  int64  `json:"division_id"`
	SeasonID    int64  `json:"season_id"`
	Date        string `json:"date"`
	IsCancelled bool   `json:"is_cancelled"`
}

type matchupDTO struct {
	ID               int64  `json:"id"`
	WeekID           int64  `json:"week_id"`
	Time             string `json:"time"`
	AwayTeamID       int64  `json:"awayteam_id"`
	HomeTeamID       int64  `json:"hometeam_id"`
	Ref1ID           *int64 `json:"ref1_id"`
	Ref2ID           *int64 `json:"ref2_id"`
	IsPostseason     bool   `json:"is_postseason"`
	WentToOvertime   bool   `json:"went_to_overtime"`
	Notes            string `json:"notes,omitempty"`
	AwayGoalieID     *int64 `json:"away_goalie_id"`
	HomeGoalieID     *int64 `json:"home_goalie_id"`
	AwayGoalieStatus int    `json:"away_goalie_status"`
	HomeGoalieStatus int    `json:"home_goalie_status"`
}

type gameDTO struct {
	Matchup   matchupDTO `json:"matchup"`
	Date      string     `json:"date"`
	Cancelled bool       `json:"is_cancelled"`
	AwayTeam  string     `json:"away_team"`
	HomeTeam  string     `json:"home_team"`
	Refs      []string   `json:"refs"`
	Played    bool       `json:"played"`
	AwayGoals *int       `json:"away_goals"`
	HomeGoals *int       `json:"home_goals"`
}

type scheduleWeekDTO struct {
	Week         weekDTO   `json:"week"`
	DivisionName string    `json:"division_name"`
	Games        []gameDTO `json:"games"`
}

type boxScoreLineDTO struct {
	PlayerID     int64  `json:"player_id"`
	PlayerName   string `json:"player_name"`
	TeamID       int64  `json:"team_id"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Points       int    `json:"points"`
	GoalsAgainst int    `json:"goals_against"`
	EmptyNet     int    `json:"empty_net"`
}

type boxScoreDTO struct {
	Game gameDTO           `json:"game"`
	Away []boxScoreLineDTO `json:"away"`
	Home []boxScoreLineDTO `json:"home"`
}

type rosterEntryDTO struct {
	ID              int64  `json:"id"`
	PlayerID        int64  `json:"player_id"`
	TeamID          int64  `json:"team_id"`
	Position1       string `json:"position1"`
	Position2       string `json:"position2,omitempty"`
	PlayerNumber    *int   `json:"player_number"`
	IsCaptain       bool   `json:"is_captain"`
	IsSubstitute    bool   `json:"is_substitute"`
	IsPrimaryGoalie bool   `json:"is_primary_goalie"`
}

type rosterLineDTO struct {
	rosterEntryDTO
	Player playerDTO `json:"player"`
}

type standingRowDTO struct {
	Rank             int    `json:"rank"`
	TeamID           int64  `json:"team_id"`
	TeamName         string `json:"team_name"`
	DivisionID       int64  `json:"division_id"`
	GamesPlayed      int    `json:"games_played"`
	Win              int    `json:"win"`
	OTW              int    `json:"otw"`
	OTL              int    `json:"otl"`
	Loss             int    `json:"loss"`
	Tie              int    `json:"tie"`
	TotalPoints      int    `json:"total_points"`
	RegulationWins   int    `json:"regulation_wins"`
	TotalWins        int    `json:"total_wins"`
	GoalsFor         int    `json:"goals_for"`
	GoalsAgainst     int    `json:"goals_against"`
	GoalDifferential int    `json:"goal_differential"`
}

type divisionStandingsDTO struct {
	Division divisionDTO      `json:"division"`
	Rows     []standingRowDTO `json:"rows"`
}

type teamDetailDTO struct {
	Team         teamDTO         `json:"team"`
	DivisionName string          `json:"division_name"`
	Season       *seasonDTO      `json:"season"`
	Roster       []rosterLineDTO `json:"roster"`
	Games        []gameDTO       `json:"games"`
	Standing     *standingRowDTO `json:"standing"`
}

type statLineDTO struct {
	PlayerID     int64   `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	TeamID       int64   `json:"team_id"`
	TeamName     string  `json:"team_name"`
	DivisionID   *int64  `json:"division_id"`
	Position1    string  `json:"position1"`
	Position2    string  `json:"position2,omitempty"`
	IsCaptain    bool    `json:"is_captain"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	Points       int     `json:"points"`
	GoalsAgainst int     `json:"goals_against"`
	GamesPlayed  int     `json:"games_played"`
	GAA          float64 `json:"gaa"`
}

type divisionPlayerStatsDTO struct {
	DivisionID   *int64        `json:"division_id"`
	DivisionName string        `json:"division_name"`
	Lines        []statLineDTO `json:"lines"`
}

type divisionLeadersDTO struct {
	DivisionID   *int64        `json:"division_id"`
	DivisionName string        `json:"division_name"`
	Offense      []statLineDTO `json:"offense"`
	Goalies      []statLineDTO `json:"goalies"`
}

type seasonLineDTO struct {
	SeasonID     int64   `json:"season_id"`
	Label        string  `json:"label"`
	TeamID       int64   `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	Points       int     `json:"points"`
	GoalsAgainst int     `json:"goals_against"`
	GamesPlayed  int     `json:"games_played"`
	GAA          float64 `json:"gaa"`
}

type totalsDTO struct {
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	Points       int     `json:"points"`
	GoalsAgainst int     `json:"goals_against"`
	GamesPlayed  int     `json:"games_played"`
	GAA          float64 `json:"gaa"`
}

type averagesDTO struct {
	SeasonsPlayed    int     `json:"seasons_played"`
	GoalsPerSeason   float64 `json:"goals_per_season"`
	AssistsPerSeason float64 `json:"assists_per_season"`
}

type playerProfileDTO struct {
	Player   playerDTO            `json:"player"`
	Scope    string               `json:"scope"`
	Seasons  []seasonLineDTO      `json:"seasons"`
	Trend    []usecase.TrendPoint `json:"trend"`
	Career   totalsDTO            `json:"career"`
	Averages averagesDTO          `json:"averages"`
}

type careerLineDTO struct {
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Points        int    `json:"points"`
	GamesPlayed   int    `json:"games_played"`
	SeasonsPlayed int    `json:"seasons_played"`
}

type championDTO struct {
	Team   teamDTO   `json:"team"`
	Season seasonDTO `json:"season"`
}

type hallOfFameDTO struct {
	Scope     string          `json:"scope"`
	Goals     []careerLineDTO `json:"goals"`
	Assists   []careerLineDTO `json:"assists"`
	Points    []careerLineDTO `json:"points"`
	Champions []championDTO   `json:"champions"`
}

type cancelledDateDTO struct {
	Date      string   `json:"date"`
	Label     string   `json:"label"`
	Divisions []string `json:"divisions"`
}

type homeDTO struct {
	LogoURL        string                   `json:"logo_url"`
	CancelledGames []cancelledDateDTO       `json:"cancelled_games"`
	NextGameDate   string                   `json:"next_game_date,omitempty"`
	NextGames      []gameDTO                `json:"next_games"`
	Forecast       []usecase.ForecastPeriod `json:"forecast"`
}

type goalieInfoDTO struct {
	GoalieID       *int64 `json:"goalie_id"`
	GoalieName     string `json:"goalie_name"`
	Status         int    `json:"status"`
	StatusDisplay  string `json:"status_display"`
	IsSub          bool   `json:"is_sub"`
	IsRosterGoalie bool   `json:"is_roster_goalie"`
}

type boardGameDTO struct {
	MatchupID int64         `json:"matchup_id"`
	Time      string        `json:"time"`
	AwayTeam  teamDTO       `json:"away_team"`
	HomeTeam  teamDTO       `json:"home_team"`
	Away      goalieInfoDTO `json:"away"`
	Home      goalieInfoDTO `json:"home"`
}

type boardWeekDTO struct {
	Week         weekDTO        `json:"week"`
	Season       seasonDTO      `json:"season"`
	DivisionName string         `json:"division_name"`
	Games        []boardGameDTO `json:"games"`
}

type statusChoiceDTO struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type goalieBoardDTO struct {
	Weeks          []boardWeekDTO    `json:"weeks"`
	SubNeededCount int               `json:"sub_needed_count"`
	StatusChoices  []statusChoiceDTO `json:"status_choices"`
}

type captainMatchupDTO struct {
	MatchupID            int64      `json:"matchup_id"`
	Date                 string     `json:"date"`
	Time                 string     `json:"time"`
	IsHome               bool       `json:"is_home"`
	Opponent             teamDTO    `json:"opponent"`
	CurrentGoalie        *playerDTO `json:"current_goalie"`
	CurrentStatus        int        `json:"current_status"`
	CurrentStatusDisplay string     `json:"current_status_display"`
	RosterGoalie         *playerDTO `json:"roster_goalie"`
}

type captainPageDTO struct {
	Team          teamDTO             `json:"team"`
	RosterGoalie  *playerDTO          `json:"roster_goalie"`
	Matchups      []captainMatchupDTO `json:"matchups"`
	Goalies       []playerDTO         `json:"goalies"`
	StatusChoices []statusChoiceDTO   `json:"status_choices"`
}

type quickCancelWeekDTO struct {
	Week         weekDTO `json:"week"`
	DivisionName string  `json:"division_name"`
}

type quickCancelDateDTO struct {
	Date         string               `json:"date"`
	Label        string               `json:"label"`
	AllCancelled bool                 `json:"all_cancelled"`
	AnyCancelled bool                 `json:"any_cancelled"`
	Weeks        []quickCancelWeekDTO `json:"weeks"`
}

type quickCancelWidgetDTO struct {
	Today string               `json:"today"`
	Dates []quickCancelDateDTO `json:"dates"`
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:             s.ID,
		Year:           s.Year,
		SeasonType:     int(s.Type),
		SeasonTypeName: s.Type.String(),
		Label:          s.Label(),
		IsCurrent:      s.IsCurrent,
	}
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, s := range items {
		out = append(out, seasonToDTO(s))
	}
	return out
}

func divisionToDTO(d division.Division) divisionDTO {
	return divisionDTO{
		ID:        d.ID,
		Number:    d.Number,
		Name:      d.DisplayName(),
		ShortName: d.ShortName(),
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:         t.ID,
		Name:       t.Name,
		Color:      t.Color,
		IsActive:   t.IsActive,
		IsChampion: t.IsChampion,
		DivisionID: t.DivisionID,
		SeasonID:   t.SeasonID,
		PhotoURL:   t.PhotoURL,
	}
}

func teamsToAdminDTO(items []team.Team) []adminTeamDTO {
	out := make([]adminTeamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, adminTeamDTO{teamDTO: teamToDTO(t), AccessCode: t.AccessCode})
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.SortName(),
		Gender:      string(p.Gender),
		IsActive:    p.IsActive,
		PhotoURL:    p.PhotoURL,
	}
}

func optionalPlayerToDTO(p *player.Player) *playerDTO {
	if p == nil {
		return nil
	}
	out := playerToDTO(*p)
	return &out
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func playerToAdminDTO(p player.Player) adminPlayerDTO {
	return adminPlayerDTO{
		playerDTO:                   playerToDTO(p),
		Email:                       p.Email,
		ExcludeFromAutoDeactivation: p.ExcludeFromAutoDeactivation,
	}
}

func weekToDTO(w week.Week) weekDTO {
	return weekDTO{
		ID:          w.ID,
		DivisionID:  w.DivisionID,
		SeasonID:    w.SeasonID,
		Date:        formatDate(w.Date),
		IsCancelled: w.IsCancelled,
	}
}

func weeksToDTO(items []week.Week) []weekDTO {
	out := make([]weekDTO, 0, len(items))
	for _, w := range items {
		out = append(out, weekToDTO(w))
	}
	return out
}

func matchupToDTO(m matchup.MatchUp) matchupDTO {
	return matchupDTO{
		ID:               m.ID,
		WeekID:           m.WeekID,
		Time:             matchup.FormatTime(m.Time),
		AwayTeamID:       m.AwayTeamID,
		HomeTeamID:       m.HomeTeamID,
		Ref1ID:           m.Ref1ID,
		Ref2ID:           m.Ref2ID,
		IsPostseason:     m.IsPostseason,
		WentToOvertime:   m.WentToOvertime,
		Notes:            m.Notes,
		AwayGoalieID:     m.AwayGoalieID,
		HomeGoalieID:     m.HomeGoalieID,
		AwayGoalieStatus: int(m.AwayGoalieStatus),
		HomeGoalieStatus: int(m.HomeGoalieStatus),
	}
}

func matchupsToDTO(items []matchup.MatchUp) []matchupDTO {
	out := make([]matchupDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchupToDTO(m))
	}
	return out
}

func gameToDTO(g usecase.Game) gameDTO {
	out := gameDTO{
		Matchup:   matchupToDTO(g.MatchUp),
		Date:      formatDate(g.Week.Date),
		Cancelled: g.Week.IsCancelled,
		AwayTeam:  g.AwayTeam,
		HomeTeam:  g.HomeTeam,
		Refs:      g.Refs,
		Played:    g.Played,
	}
	if out.Refs == nil {
		out.Refs = []string{}
	}
	if g.Played {
		away, home := g.AwayGoals, g.HomeGoals
		out.AwayGoals, out.HomeGoals = &away, &home
	}
	return out
}

func gamesToDTO(items []usecase.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, g := range items {
		out = append(out, gameToDTO(g))
	}
	return out
}

func boxScoreLinesToDTO(lines []usecase.BoxScoreLine) []boxScoreLineDTO {
	out := make([]boxScoreLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, boxScoreLineDTO{
			PlayerID:     l.Stat.PlayerID,
			PlayerName:   l.Player.SortName(),
			TeamID:       l.Stat.TeamID,
			Goals:        l.Stat.Goals,
			Assists:      l.Stat.Assists,
			Points:       l.Stat.Points(),
			GoalsAgainst: l.Stat.GoalsAgainst,
			EmptyNet:     l.Stat.EmptyNet,
		})
	}
	return out
}

func statsToDTO(lines []stat.Stat) []boxScoreLineDTO {
	out := make([]boxScoreLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, boxScoreLineDTO{
			PlayerID:     l.PlayerID,
			TeamID:       l.TeamID,
			Goals:        l.Goals,
			Assists:      l.Assists,
			Points:       l.Points(),
			GoalsAgainst: l.GoalsAgainst,
			EmptyNet:     l.EmptyNet,
		})
	}
	return out
}

func rosterEntryToDTO(e roster.Entry) rosterEntryDTO {
	out := rosterEntryDTO{
		ID:              e.ID,
		PlayerID:        e.PlayerID,
		TeamID:          e.TeamID,
		Position1:       e.Position1.String(),
		PlayerNumber:    e.PlayerNumber,
		IsCaptain:       e.IsCaptain,
		IsSubstitute:    e.IsSubstitute,
		IsPrimaryGoalie: e.IsPrimaryGoalie,
	}
	if e.Position2 != nil {
		out.Position2 = e.Position2.String()
	}
	return out
}

func standingRowToDTO(r standing.Row) standingRowDTO {
	rec := r.Record
	return standingRowDTO{
		Rank:             r.Rank,
		TeamID:           r.TeamID,
		TeamName:         r.TeamName,
		DivisionID:       r.DivisionID,
		GamesPlayed:      rec.GamesPlayed(),
		Win:              rec.Win,
		OTW:              rec.OTW,
		OTL:              rec.OTL,
		Loss:             rec.Loss,
		Tie:              rec.Tie,
		TotalPoints:      rec.Points(),
		RegulationWins:   rec.RegulationWins(),
		TotalWins:        rec.TotalWins(),
		GoalsFor:         rec.GoalsFor,
		GoalsAgainst:     rec.GoalsAgainst,
		GoalDifferential: rec.GoalDifferential(),
	}
}

func standingRowsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, standingRowToDTO(r))
	}
	return out
}

func statLineToDTO(l playerstats.Line) statLineDTO {
	out := statLineDTO{
		PlayerID:     l.PlayerID,
		PlayerName:   l.LastName + ", " + l.FirstName,
		TeamID:       l.TeamID,
		TeamName:     l.TeamName,
		DivisionID:   l.DivisionID,
		Position1:    l.Position1.String(),
		IsCaptain:    l.IsCaptain,
		Goals:        l.Goals,
		Assists:      l.Assists,
		Points:       l.Points(),
		GoalsAgainst: l.GoalsAgainst,
		GamesPlayed:  l.GamesPlayed,
		GAA:          l.GAA(),
	}
	if l.Position2 != nil {
		out.Position2 = l.Position2.String()
	}
	return out
}

func statLinesToDTO(lines []playerstats.Line) []statLineDTO {
	out := make([]statLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, statLineToDTO(l))
	}
	return out
}

func seasonLineToDTO(l playerstats.SeasonLine) seasonLineDTO {
	s := season.Season{Year: l.Year, Type: season.Type(l.SeasonType)}
	return seasonLineDTO{
		SeasonID:     l.SeasonID,
		Label:        s.Label(),
		TeamID:       l.TeamID,
		TeamName:     l.TeamName,
		Goals:        l.Goals,
		Assists:      l.Assists,
		Points:       l.Points(),
		GoalsAgainst: l.GoalsAgainst,
		GamesPlayed:  l.GamesPlayed,
		GAA:          l.GAA(),
	}
}

func playerProfileToDTO(p usecase.PlayerProfile) playerProfileDTO {
	seasons := make([]seasonLineDTO, 0, len(p.Seasons))
	for _, l := range p.Seasons {
		seasons = append(seasons, seasonLineToDTO(l))
	}
	trend := p.Trend
	if trend == nil {
		trend = []usecase.TrendPoint{}
	}
	return playerProfileDTO{
		Player:  playerToDTO(p.Player),
		Scope:   string(p.Scope),
		Seasons: seasons,
		Trend:   trend,
		Career: totalsDTO{
			Goals:        p.Career.Goals,
			Assists:      p.Career.Assists,
			Points:       p.Career.Goals + p.Career.Assists,
			GoalsAgainst: p.Career.GoalsAgainst,
			GamesPlayed:  p.Career.GamesPlayed,
			GAA:          playerstats.GoalsAgainstAverage(p.Career.GoalsAgainst, p.Career.GamesPlayed),
		},
		Averages: averagesDTO{
			SeasonsPlayed:    p.Averages.SeasonsPlayed,
			GoalsPerSeason:   p.Averages.GoalsPerSeason,
			AssistsPerSeason: p.Averages.AssistsPerSeason,
		},
	}
}

func careerLinesToDTO(lines []playerstats.CareerLine) []careerLineDTO {
	out := make([]careerLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, careerLineDTO{
			PlayerID:      l.PlayerID,
			PlayerName:    l.LastName + ", " + l.FirstName,
			Goals:         l.Goals,
			Assists:       l.Assists,
			Points:        l.Points(),
			GamesPlayed:   l.GamesPlayed,
			SeasonsPlayed: l.SeasonsPlayed,
		})
	}
	return out
}

func hallOfFameToDTO(h usecase.HallOfFame) hallOfFameDTO {
	champions := make([]championDTO, 0, len(h.Champions))
	for _, c := range h.Champions {
		champions = append(champions, championDTO{Team: teamToDTO(c.Team), Season: seasonToDTO(c.Season)})
	}
	return hallOfFameDTO{
		Scope:     string(h.Scope),
		Goals:     careerLinesToDTO(h.Goals),
		Assists:   careerLinesToDTO(h.Assists),
		Points:    careerLinesToDTO(h.Points),
		Champions: champions,
	}
}

func cancelledDatesToDTO(items []usecase.CancelledDate) []cancelledDateDTO {
	out := make([]cancelledDateDTO, 0, len(items))
	for _, c := range items {
		out = append(out, cancelledDateDTO{Date: formatDate(c.Date), Label: c.Label, Divisions: c.Divisions})
	}
	return out
}

func homeToDTO(p usecase.HomePage) homeDTO {
	out := homeDTO{
		LogoURL:        p.LogoURL,
		CancelledGames: cancelledDatesToDTO(p.CancelledGames),
		NextGames:      gamesToDTO(p.NextGames),
		Forecast:       p.Forecast,
	}
	if !p.NextGameDate.IsZero() {
		out.NextGameDate = formatDate(p.NextGameDate)
	}
	if out.Forecast == nil {
		out.Forecast = []usecase.ForecastPeriod{}
	}
	return out
}

func statusChoicesToDTO(items []matchup.StatusChoice) []statusChoiceDTO {
	out := make([]statusChoiceDTO, 0, len(items))
	for _, c := range items {
		out = append(out, statusChoiceDTO{Value: int(c.Value), Label: c.Label})
	}
	return out
}

func goalieInfoToDTO(g usecase.GoalieInfo) goalieInfoDTO {
	out := goalieInfoDTO{
		GoalieName:     g.GoalieName,
		Status:         int(g.Status),
		StatusDisplay:  g.StatusDisplay,
		IsSub:          g.IsSub,
		IsRosterGoalie: g.IsRosterGoalie,
	}
	if g.Goalie != nil {
		id := g.Goalie.ID
		out.GoalieID = &id
	}
	return out
}

func goalieBoardToDTO(b usecase.GoalieBoard) goalieBoardDTO {
	weeks := make([]boardWeekDTO, 0, len(b.Weeks))
	for _, w := range b.Weeks {
		games := make([]boardGameDTO, 0, len(w.Games))
		for _, g := range w.Games {
			games = append(games, boardGameDTO{
				MatchupID: g.MatchUp.ID,
				Time:      matchup.FormatTime(g.MatchUp.Time),
				AwayTeam:  teamToDTO(g.AwayTeam),
				HomeTeam:  teamToDTO(g.HomeTeam),
				Away:      goalieInfoToDTO(g.Away),
				Home:      goalieInfoToDTO(g.Home),
			})
		}
		weeks = append(weeks, boardWeekDTO{
			Week:         weekToDTO(w.Week),
			Season:       seasonToDTO(w.Season),
			DivisionName: w.DivisionName,
			Games:        games,
		})
	}
	return goalieBoardDTO{
		Weeks:          weeks,
		SubNeededCount: b.SubNeededCount,
		StatusChoices:  statusChoicesToDTO(b.StatusChoices),
	}
}

func captainPageToDTO(p usecase.CaptainPage) captainPageDTO {
	matchups := make([]captainMatchupDTO, 0, len(p.Matchups))
	for _, m := range p.Matchups {
		matchups = append(matchups, captainMatchupDTO{
			MatchupID:            m.MatchUp.ID,
			Date:                 formatDate(m.Date),
			Time:                 matchup.FormatTime(m.MatchUp.Time),
			IsHome:               m.IsHome,
			Opponent:             teamToDTO(m.Opponent),
			CurrentGoalie:        optionalPlayerToDTO(m.CurrentGoalie),
			CurrentStatus:        int(m.CurrentStatus),
			CurrentStatusDisplay: m.CurrentStatus.String(),
			RosterGoalie:         optionalPlayerToDTO(m.RosterGoalie),
		})
	}
	return captainPageDTO{
		Team:          teamToDTO(p.Team),
		RosterGoalie:  optionalPlayerToDTO(p.RosterGoalie),
		Matchups:      matchups,
		Goalies:       playersToDTO(p.Goalies),
		StatusChoices: statusChoicesToDTO(p.StatusChoices),
	}
}

func quickCancelWidgetToDTO(v usecase.QuickCancelWidget) quickCancelWidgetDTO {
	dates := make([]quickCancelDateDTO, 0, len(v.Dates))
	for _, d := range v.Dates {
		weeks := make([]quickCancelWeekDTO, 0, len(d.Weeks))
		for _, w := range d.Weeks {
			weeks = append(weeks, quickCancelWeekDTO{Week: weekToDTO(w.Week), DivisionName: w.DivisionName})
		}
		dates = append(dates, quickCancelDateDTO{
			Date:         formatDate(d.Date),
			Label:        d.Date.Format("Mon, January 2"),
			AllCancelled: d.AllCancelled,
			AnyCancelled: d.AnyCancelled,
			Weeks:        weeks,
		})
	}
	return quickCancelWidgetDTO{Today: formatDate(v.Today), Dates: dates}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(week.DateLayout)
}
