// Package register handles the user registration command
package register

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long: `Register a new user with the credentials given by --user and --password
(or FINTRACK_USER and FINTRACK_PASSWORD). Usernames must be unique and must not
contain '|' or line breaks.`,
	Args: cobra.NoArgs,
	RunE: registerFunc,
}

func registerFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}
	user, password := root.Credentials()
	return runRegister(cmd.OutOrStdout(), c.GetTracker(), user, password)
}

func runRegister(w io.Writer, tr *tracker.Tracker, user, password string) error {
	if user == "" || password == "" {
		return fmt.Errorf("--user and --password are required to register")
	}
	profile, err := tr.Register(user, password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Registration successful! Logged in as %s\n", profile.Username)
	return err
}
