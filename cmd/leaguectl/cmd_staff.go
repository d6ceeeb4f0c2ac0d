package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

// passwordEnv is read when --password is not given; stdin is the last resort.
const passwordEnv = "LEAGUECTL_PASSWORD"

type staffFlags struct {
	username string
	email    string
	password string
	noUser   bool
}

var (
	goalieGroupFlags      staffFlags
	quickCancelGroupFlags staffFlags
	superuserFlags        staffFlags
)

var goalieGroupCmd = newGroupCmd(
	"create-goalie-group",
	account.GroupGoalieManagers,
	"Create the Goalie Managers group and optionally a staff user in it",
	&goalieGroupFlags,
)

var quickCancelGroupCmd = newGroupCmd(
	"create-quick-cancel-group",
	account.GroupQuickCancelOperators,
	"Create the Quick Cancel Operators group and optionally a staff user in it",
	&quickCancelGroupFlags,
)

var superuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create a staff superuser",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := superuserFlags
		if strings.TrimSpace(f.username) == "" {
			return errors.New("--username is required")
		}
		password, err := resolvePassword(f.password, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		s, _, err := services(cmd.Context())
		if err != nil {
			return err
		}
		user, err := s.Staff.CreateSuperuser(cmd.Context(), f.username, f.email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Superuser '%s' created.\n", user.Username)
		return nil
	},
}

func newGroupCmd(use, group, short string, f *staffFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`Creates the %q group with its built-in permissions, or resets the
permissions if it already exists. Unless --no-user is set, the named user
is created (or updated), marked staff, and placed in that group only.

The password comes from --password, then $%s, then one line of stdin.`, group, passwordEnv),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.EnsureGroupUserInput{
				Group:    group,
				Username: f.username,
				Email:    f.email,
				NoUser:   f.noUser,
			}
			if !f.noUser {
				if strings.TrimSpace(f.username) == "" {
					return errors.New("--username is required unless --no-user is set")
				}
				password, err := resolvePassword(f.password, cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				input.Password = password
			}

			s, _, err := services(cmd.Context())
			if err != nil {
				return err
			}
			result, err := s.Staff.EnsureGroupUser(cmd.Context(), input)
			if err != nil {
				return err
			}
			renderGroupResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.username, "username", "", "staff username to create or update")
	cmd.Flags().StringVar(&f.email, "email", "", "email for the staff user")
	cmd.Flags().StringVar(&f.password, "password", "", "password for the staff user")
	cmd.Flags().BoolVar(&f.noUser, "no-user", false, "only create or update the group and permissions")
	return cmd
}

func init() {
	superuserCmd.Flags().StringVar(&superuserFlags.username, "username", "", "superuser username")
	superuserCmd.Flags().StringVar(&superuserFlags.email, "email", "", "superuser email")
	superuserCmd.Flags().StringVar(&superuserFlags.password, "password", "", "superuser password")
}

func resolvePassword(flag string, in io.Reader, prompt io.Writer) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}

	fmt.Fprint(prompt, "Password for user: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

func renderGroupResult(w io.Writer, r usecase.EnsureGroupUserResult) {
	fmt.Fprintf(w, "Group ready: %s (%d permissions)\n", r.Group.Name, len(r.Group.Permissions))
	if r.User == nil {
		return
	}
	verb := "updated"
	if r.UserCreated {
		verb = "created"
	}
	fmt.Fprintf(w, "User '%s' %s; staff and in %s group.\n", r.User.Username, verb, r.Group.Name)
}
