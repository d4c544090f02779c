package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			if _, err := fmt.Scanln(&email); err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		if err := validate.Login(email, password); err != nil {
			return err
		}

		user, err := gate.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("logged in as %s (%s)", user.Email, user.Role))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gate.Logout(); err != nil {
			return err
		}
		printSuccess("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		user, err := gate.User(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
}
