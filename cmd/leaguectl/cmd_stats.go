package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

var recalcSeasonID int64

var recalcCmd = &cobra.Command{
	Use:   "recalculate-team-stats",
	Short: "Rebuild team standings rows from played matchups",
	Long: `Recomputes wins, losses, ties and goal totals for every team in the
season from regular-season results. Defaults to the current season.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := services(cmd.Context())
		if err != nil {
			return err
		}

		var result usecase.TeamStatRecalcResult
		if recalcSeasonID > 0 {
			result, err = s.TeamStats.RecalculateSeason(cmd.Context(), recalcSeasonID)
		} else {
			result, err = s.TeamStats.RecalculateCurrent(cmd.Context())
		}
		if err != nil {
			return err
		}
		renderRecalc(cmd.OutOrStdout(), result)
		if result.FailedCount > 0 {
			return fmt.Errorf("%d divisions failed", result.FailedCount)
		}
		return nil
	},
}

func init() {
	recalcCmd.Flags().Int64Var(&recalcSeasonID, "season", 0, "season id (default current season)")
}

func renderRecalc(w io.Writer, r usecase.TeamStatRecalcResult) {
	fmt.Fprintf(w, "Season %d:\n", r.SeasonID)
	for _, d := range r.Divisions {
		line := fmt.Sprintf("  division %d: %s (%d teams, %d games, %dms)", d.DivisionID, d.Status, d.Teams, d.Games, d.DurationMs)
		if d.Message != "" {
			line += " - " + d.Message
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%d succeeded, %d failed\n", r.SuccessCount, r.FailedCount)
}
