package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Record and inspect policy review stances",
	Long: `Each reviewer records one stance per policy: confirmed or
needs_work. The server aggregates stances into counts and reviewer lists.`,
}

var reviewsShowCmd = &cobra.Command{
	Use:   "show [policy-id]",
	Short: "Show the aggregated stances for one policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		summary, err := client.PolicyReviews(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(cliStyles.Title.Render("Reviews for " + args[0]))
		fmt.Printf("%s %d  (%s)\n",
			cliStyles.Success.Render("confirmed:"),
			summary.ConfirmedCount,
			strings.Join(summary.ConfirmedEmails, ", "))
		fmt.Printf("%s %d  (%s)\n",
			cliStyles.Warning.Render("needs work:"),
			summary.NeedsWorkCount,
			strings.Join(summary.NeedsWorkEmails, ", "))
		return nil
	},
}

var reviewsSubmitCmd = &cobra.Command{
	Use:   "submit [policy-id] [confirmed|needs_work]",
	Short: "Record your stance on one policy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if err := validate.ReviewStatus(args[1]); err != nil {
			return err
		}
		if err := client.SubmitReview(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("recorded %s for %s", args[1], args[0]))
		return nil
	},
}

var reviewsResetCmd = &cobra.Command{
	Use:   "reset-all",
	Short: "Wipe every recorded stance (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if !confirm("Reset ALL review stances across every policy?") {
			fmt.Println("aborted")
			return nil
		}
		if err := client.ResetAllReviews(cmd.Context()); err != nil {
			return err
		}
		printSuccess("all reviews reset")
		return nil
	},
}

func init() {
	reviewsCmd.AddCommand(reviewsShowCmd)
	reviewsCmd.AddCommand(reviewsSubmitCmd)
	reviewsCmd.AddCommand(reviewsResetCmd)
}
