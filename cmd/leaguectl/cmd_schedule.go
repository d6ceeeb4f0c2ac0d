package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/street-hockey-league/internal/domain/matchup"
	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

var importDryRun bool

var importScheduleCmd = &cobra.Command{
	Use:   "import-schedule FILE",
	Short: "Create weeks and matchups from a YAML schedule",
	Long: `Reads a schedule file and creates its game days and matchups for one
division. Game days already on the calendar are reused.

  season_id: 30
  division_id: 2
  weeks:
    - date: 2025-06-01
      games:
        - {time: "10:00 AM", away: 11, home: 12}
        - {time: "11:15 AM", away: 13, home: 14, notes: "rink 2"}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		input, err := parseScheduleFile(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		input.DryRun = importDryRun

		s, _, err := services(cmd.Context())
		if err != nil {
			return err
		}
		result, err := s.Admin.ImportSchedule(cmd.Context(), input)
		if err != nil {
			return err
		}
		renderImport(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	importScheduleCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate and count without writing")
}

type scheduleFile struct {
	SeasonID   int64              `yaml:"season_id" validate:"gt=0"`
	DivisionID int64              `yaml:"division_id" validate:"gt=0"`
	Weeks      []scheduleFileWeek `yaml:"weeks" validate:"required,min=1,dive"`
}

type scheduleFileWeek struct {
	Date  string             `yaml:"date" validate:"required,datetime=2006-01-02"`
	Games []scheduleFileGame `yaml:"games" validate:"dive"`
}

type scheduleFileGame struct {
	Time       string `yaml:"time" validate:"required"`
	Away       int64  `yaml:"away" validate:"gt=0,nefield=Home"`
	Home       int64  `yaml:"home" validate:"gt=0"`
	Postseason bool   `yaml:"postseason"`
	Notes      string `yaml:"notes" validate:"max=500"`
}

var scheduleValidator = newScheduleValidator()

func newScheduleValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

func parseScheduleFile(r io.Reader) (usecase.ScheduleImport, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file scheduleFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return usecase.ScheduleImport{}, errors.New("schedule file is empty")
		}
		return usecase.ScheduleImport{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := scheduleValidator.Struct(file); err != nil {
		return usecase.ScheduleImport{}, describeValidation(err)
	}

	out := usecase.ScheduleImport{
		SeasonID:   file.SeasonID,
		DivisionID: file.DivisionID,
		Weeks:      make([]usecase.ScheduleImportWeek, 0, len(file.Weeks)),
	}
	for i, w := range file.Weeks {
		date, err := time.Parse(week.DateLayout, w.Date)
		if err != nil {
			return usecase.ScheduleImport{}, fmt.Errorf("weeks[%d].date: %w", i, err)
		}
		iw := usecase.ScheduleImportWeek{Date: date}
		for j, g := range w.Games {
			at, err := matchup.ParseTime(g.Time)
			if err != nil {
				return usecase.ScheduleImport{}, fmt.Errorf("weeks[%d].games[%d].time: %w", i, j, err)
			}
			iw.Matchups = append(iw.Matchups, usecase.ScheduleImportMatchup{
				Time:         at,
				AwayTeamID:   g.Away,
				HomeTeamID:   g.Home,
				IsPostseason: g.Postseason,
				Notes:        strings.TrimSpace(g.Notes),
			})
		}
		out.Weeks = append(out.Weeks, iw)
	}
	return out, nil
}

func describeValidation(err error) error {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	msgs := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		field := strings.TrimPrefix(fe.Namespace(), "scheduleFile.")
		switch fe.Tag() {
		case "nefield":
			msgs = append(msgs, field+": a team cannot play itself")
		case "datetime":
			msgs = append(msgs, field+": expected YYYY-MM-DD")
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid schedule: %s", strings.Join(msgs, "; "))
}

func renderImport(w io.Writer, r usecase.ScheduleImportResult) {
	if r.DryRun {
		fmt.Fprintln(w, "DRY RUN - no changes were made")
	}
	fmt.Fprintf(w, "Weeks created: %d, reused: %d\n", r.WeeksCreated, r.WeeksReused)
	fmt.Fprintf(w, "Matchups created: %d\n", r.MatchupsCreated)
}
