package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

var (
	deactivateYears             int
	deactivateDryRun            bool
	deactivateIncludeNonGoalies bool
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate-inactive-players",
	Short: "Deactivate players who have not been rostered recently",
	Long: `Marks players inactive when they have not appeared on a roster within
the last --years seasons. Players on a current-season roster and players
flagged exclude_from_auto_deactivation are never touched.

By default only players who have ever rostered as goalie are considered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := services(cmd.Context())
		if err != nil {
			return err
		}
		report, err := s.Maintenance.DeactivateInactivePlayers(cmd.Context(), usecase.DeactivationInput{
			Years:             deactivateYears,
			DryRun:            deactivateDryRun,
			IncludeNonGoalies: deactivateIncludeNonGoalies,
		})
		if err != nil {
			return err
		}
		renderDeactivation(cmd.OutOrStdout(), report)
		return nil
	},
}

var (
	captainBaseURL string
	captainAll     bool
)

var captainURLsCmd = &cobra.Command{
	Use:   "list-captain-urls",
	Short: "Print each team's captain goalie-status link",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := services(cmd.Context())
		if err != nil {
			return err
		}
		base := captainBaseURL
		if base == "" {
			base = cfg.SiteBaseURL
		}
		groups, err := s.Maintenance.CaptainURLs(cmd.Context(), base, captainAll)
		if err != nil {
			return err
		}
		renderCaptainURLs(cmd.OutOrStdout(), groups, captainAll)
		return nil
	},
}

var (
	duplicatesLastName    string
	duplicatesShowRosters bool
)

var duplicatesCmd = &cobra.Command{
	Use:   "find-duplicate-players",
	Short: "Report players that look like the same person",
	Long: `Groups players sharing a last name whose first names match exactly or
through a common nickname (Mike/Michael, Bill/William). Nothing is merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := services(cmd.Context())
		if err != nil {
			return err
		}
		groups, err := s.Maintenance.FindDuplicatePlayers(cmd.Context(), duplicatesLastName, duplicatesShowRosters)
		if err != nil {
			return err
		}
		renderDuplicates(cmd.OutOrStdout(), groups)
		return nil
	},
}

func init() {
	deactivateCmd.Flags().IntVar(&deactivateYears, "years", usecase.DefaultDeactivationYears, "years without a roster spot before deactivation")
	deactivateCmd.Flags().BoolVar(&deactivateDryRun, "dry-run", false, "report what would change without writing")
	deactivateCmd.Flags().BoolVar(&deactivateIncludeNonGoalies, "include-non-goalies", false, "consider skaters as well as goalies")

	captainURLsCmd.Flags().StringVar(&captainBaseURL, "base-url", "", "site root for links (default SITE_BASE_URL)")
	captainURLsCmd.Flags().BoolVar(&captainAll, "all", false, "include active teams from every season")

	duplicatesCmd.Flags().StringVar(&duplicatesLastName, "last-name", "", "only check this last name")
	duplicatesCmd.Flags().BoolVar(&duplicatesShowRosters, "show-rosters", false, "list recent roster seasons for each player")
}

func renderDeactivation(w io.Writer, r usecase.DeactivationReport) {
	fmt.Fprintf(w, "Looking for players inactive since %d (%d years)...\n", r.CutoffYear, r.Years)
	if r.DryRun {
		fmt.Fprintln(w, "DRY RUN - no changes will be made")
	}
	fmt.Fprintf(w, "Found %d players on current season rosters (protected)\n", r.Protected)

	action := "Deactivated"
	if r.DryRun {
		action = "Would deactivate"
	}
	for _, a := range r.Actions {
		fmt.Fprintf(w, "  %s: %s (%s)\n", action, a.Player.FullName(), a.Reason)
	}
	fmt.Fprintf(w, "\n%s %d players. Skipped %d active players.\n", action, len(r.Actions), r.Skipped)

	if r.ExcludedTotal == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d players are protected from auto-deactivation:\n", r.ExcludedTotal)
	for _, p := range r.Excluded {
		fmt.Fprintf(w, "  - %s\n", p.FullName())
	}
	if more := r.ExcludedTotal - len(r.Excluded); more > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", more)
	}
}

func renderCaptainURLs(w io.Writer, groups []usecase.CaptainURLGroup, all bool) {
	if all {
		fmt.Fprintln(w, "All Active Teams:")
	} else {
		fmt.Fprintln(w, "Current Season Teams:")
	}

	total := 0
	for _, g := range groups {
		fmt.Fprintf(w, "\n--- %s ---\n", g.Division)
		for _, t := range g.Teams {
			fmt.Fprintf(w, "%s: %s\n", t.TeamName, t.URL)
			total++
		}
	}
	fmt.Fprintf(w, "\nTotal: %d teams\n", total)
}

func renderDuplicates(w io.Writer, groups []usecase.DuplicateGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No potential duplicates found!")
		return
	}

	fmt.Fprintf(w, "\nFound %d potential duplicate groups:\n", len(groups))
	for _, g := range groups {
		fmt.Fprintf(w, "\n[%s] %s:\n", g.MatchType, titleCase(g.LastName))
		for _, p := range g.Players {
			status := "inactive"
			if p.Player.IsActive {
				status = "ACTIVE"
			}
			fmt.Fprintf(w, "  • ID %d: %s (%d roster entries, %s)\n", p.Player.ID, p.Player.FullName(), p.RosterCount, status)
			for _, s := range p.Seasons {
				fmt.Fprintf(w, "      - %d %s: %s\n", s.SeasonYear, season.Type(s.SeasonType), s.TeamName)
			}
			if p.MoreSeasons > 0 {
				fmt.Fprintf(w, "      ... and %d more\n", p.MoreSeasons)
			}
		}
	}
	fmt.Fprintln(w, "\n\nTo merge duplicates, update Roster/Stat records to point to the correct player ID, then delete the duplicate Player record.")
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
