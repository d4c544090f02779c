package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage portal accounts (admin)",
}

var (
	registerEmail string
	registerName  string
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		users, err := client.Users(cmd.Context())
		if err != nil {
			return err
		}
		table := ui.NewTable("Users", []string{"ID", "Name", "Email", "Role"})
		for _, u := range users {
			table.AddRow(u.ID, u.Name, u.Email, u.Role)
		}
		fmt.Print(table.View(cliStyles))
		return nil
	},
}

var usersRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		password, err := readPassword("Password for new account: ")
		if err != nil {
			return err
		}
		in := api.RegisterInput{
			Email:    registerEmail,
			Name:     registerName,
			Password: password,
		}
		if err := validate.Register(in); err != nil {
			return err
		}
		user, err := client.Register(cmd.Context(), in)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("account %s created with role %s", user.Email, user.Role))
		return nil
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role [user-id] [role]",
	Short: "Change an account's role",
	Long:  "Role must be one of: public, admin, policy_working_group.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if err := validate.Role(args[1]); err != nil {
			return err
		}
		user, err := client.SetUserRole(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("%s is now %s", user.Email, user.Role))
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete [user-id]",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete account %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess("account deleted")
		return nil
	},
}

func init() {
	usersRegisterCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email (@ualberta.ca)")
	usersRegisterCmd.Flags().StringVarP(&registerName, "name", "n", "", "display name")
	_ = usersRegisterCmd.MarkFlagRequired("email")
	_ = usersRegisterCmd.MarkFlagRequired("name")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersRegisterCmd)
	usersCmd.AddCommand(usersSetRoleCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
