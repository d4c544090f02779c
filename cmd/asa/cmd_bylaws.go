package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

var bylawsCmd = &cobra.Command{
	Use:   "bylaws",
	Short: "List and manage bylaws",
	Long: `Bylaws mirror the policy workflow but are keyed by UUID on every
endpoint; the sequential bylaw number is display-only.`,
}

var (
	bylawsApproved bool
	bylawNumber    int
	bylawTitle     string
	bylawFile      string
)

var bylawsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bylaws",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			records []api.BylawRecord
			err     error
		)
		if bylawsApproved {
			records, err = client.ApprovedBylaws(cmd.Context())
		} else {
			if err := requireAuth(); err != nil {
				return err
			}
			records, err = client.AllBylaws(cmd.Context())
		}
		if err != nil {
			return err
		}

		docs := view.MapBylaws(records)
		view.SortDocuments(docs)

		table := ui.NewTable("Bylaws", []string{"No.", "Title", "Status", "UUID"})
		for _, doc := range docs {
			table.AddRow(doc.DisplayID, doc.Title, doc.Status, doc.UUID)
		}
		fmt.Print(table.View(cliStyles))
		return nil
	},
}

var bylawsShowCmd = &cobra.Command{
	Use:   "show [uuid]",
	Short: "Show one bylaw by UUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := client.Bylaw(cmd.Context(), args[0])
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Printf("Bylaw %s not found.\n", args[0])
				return nil
			}
			return err
		}
		doc := view.MapBylaw(record)

		renderer := ui.NewContentRenderer(100, cliStyles.Theme.IsDark)
		fmt.Println(cliStyles.Title.Render("Bylaw " + doc.DisplayID + "  " + doc.Title))
		fmt.Println(cliStyles.Subtitle.Render(doc.Status + " • updated " + doc.UpdatedAt))
		fmt.Println(renderer.Render(doc.Content))
		return nil
	},
}

var bylawsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new draft bylaw",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		content, err := readBody(bylawFile)
		if err != nil {
			return err
		}
		in := api.CreateBylawInput{
			BylawNumber:  bylawNumber,
			BylawTitle:   bylawTitle,
			BylawContent: content,
		}
		if err := validate.BylawCreate(in); err != nil {
			return err
		}
		record, err := client.CreateBylaw(cmd.Context(), in)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("draft bylaw %d created (%s)", record.BylawNumber, record.ID))
		return nil
	},
}

var bylawsEditCmd = &cobra.Command{
	Use:   "edit [uuid]",
	Short: "Replace a bylaw's number, title and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		current, err := client.Bylaw(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		in := api.UpdateBylawInput{
			BylawNumber:  current.BylawNumber,
			BylawTitle:   current.BylawTitle,
			BylawContent: current.BylawContent,
		}
		if bylawNumber != 0 {
			in.BylawNumber = bylawNumber
		}
		if bylawTitle != "" {
			in.BylawTitle = bylawTitle
		}
		if bylawFile != "" {
			content, err := readBody(bylawFile)
			if err != nil {
				return err
			}
			in.BylawContent = content
		}
		if err := validate.BylawUpdate(in); err != nil {
			return err
		}
		if _, err := client.UpdateBylaw(cmd.Context(), args[0], in); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("bylaw %s updated", args[0]))
		return nil
	},
}

var bylawsApproveCmd = &cobra.Command{
	Use:   "approve [uuid]",
	Short: "Approve a draft bylaw (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		record, err := client.ApproveBylaw(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("bylaw %d approved", record.BylawNumber))
		return nil
	},
}

var bylawsDeleteCmd = &cobra.Command{
	Use:   "delete [uuid]",
	Short: "Delete a bylaw (admin); deleting a draft is disapproval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Permanently delete bylaw %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		if err := client.DeleteBylaw(cmd.Context(), args[0]); err != nil {
			if api.IsNotFound(err) {
				printSuccess(fmt.Sprintf("bylaw %s already deleted", args[0]))
				return nil
			}
			return err
		}
		printSuccess(fmt.Sprintf("bylaw %s deleted", args[0]))
		return nil
	},
}

func init() {
	bylawsListCmd.Flags().BoolVar(&bylawsApproved, "approved", true, "list approved bylaws only")

	for _, c := range []*cobra.Command{bylawsCreateCmd, bylawsEditCmd} {
		c.Flags().IntVarP(&bylawNumber, "number", "n", 0, "bylaw number")
		c.Flags().StringVarP(&bylawTitle, "title", "t", "", "bylaw title")
		c.Flags().StringVarP(&bylawFile, "file", "f", "", "read content from file")
	}

	bylawsCmd.AddCommand(bylawsListCmd)
	bylawsCmd.AddCommand(bylawsShowCmd)
	bylawsCmd.AddCommand(bylawsCreateCmd)
	bylawsCmd.AddCommand(bylawsEditCmd)
	bylawsCmd.AddCommand(bylawsApproveCmd)
	bylawsCmd.AddCommand(bylawsDeleteCmd)
}
