package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
)

var (
	suggestEmail  string
	suggestPolicy string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [feedback]",
	Short: "Submit feedback, optionally about one policy",
	Long: `Submits free-text feedback. Requires an @ualberta.ca email; the
address is checked before anything is sent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := api.SubmitSuggestionInput{
			Email:    suggestEmail,
			Content:  args[0],
			PolicyID: suggestPolicy,
		}
		if err := validate.Suggestion(in); err != nil {
			return err
		}
		if _, err := client.SubmitSuggestion(cmd.Context(), in); err != nil {
			return err
		}
		printSuccess("suggestion submitted, thank you")
		return nil
	},
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Review submitted feedback (authenticated)",
}

var suggestionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submitted feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		records, err := client.Suggestions(cmd.Context())
		if err != nil {
			return err
		}
		table := ui.NewTable("Suggestions", []string{"ID", "Email", "Policy", "Status", "Feedback"})
		for _, rec := range records {
			table.AddRow(rec.ID, rec.Email, rec.PolicyID, rec.Status, rec.Content)
		}
		fmt.Print(table.View(cliStyles))
		return nil
	},
}

var suggestionsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one piece of feedback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete suggestion %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		if err := client.DeleteSuggestion(cmd.Context(), args[0]); err != nil {
			if api.IsNotFound(err) {
				printSuccess("suggestion already deleted")
				return nil
			}
			return err
		}
		printSuccess("suggestion deleted")
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestEmail, "email", "e", "", "your @ualberta.ca email (required)")
	suggestCmd.Flags().StringVarP(&suggestPolicy, "policy", "p", "", "dotted policy identifier this is about")
	_ = suggestCmd.MarkFlagRequired("email")

	suggestionsCmd.AddCommand(suggestionsListCmd)
	suggestionsCmd.AddCommand(suggestionsDeleteCmd)
}
