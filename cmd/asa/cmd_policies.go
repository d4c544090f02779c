package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/validate"
	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List and manage policies",
}

var (
	policiesSection  string
	policiesApproved bool
	policyName       string
	policySection    string
	policyFile       string
	exportDir        string
)

var policiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List policies",
	Long: `Lists approved policies, optionally limited to one section.
With --approved=false (authenticated) drafts are included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			records []api.PolicyRecord
			err     error
		)
		if policiesApproved {
			records, err = client.ApprovedPolicies(cmd.Context(), policiesSection)
		} else {
			if err := requireAuth(); err != nil {
				return err
			}
			records, err = client.AllPolicies(cmd.Context())
		}
		if err != nil {
			return err
		}

		docs := view.MapPolicies(records)
		view.SortDocuments(docs)

		table := ui.NewTable("Policies", []string{"ID", "Title", "Section", "Status"})
		for _, doc := range docs {
			table.AddRow(doc.DisplayID, doc.Title, doc.Section, doc.Status)
		}
		fmt.Print(table.View(cliStyles))
		return nil
	},
}

var policiesShowCmd = &cobra.Command{
	Use:   "show [policy-id]",
	Short: "Show one policy by its dotted identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := client.Policy(cmd.Context(), args[0])
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Printf("Policy %s not found.\n", args[0])
				return nil
			}
			return err
		}
		doc := view.MapPolicy(record)

		renderer := ui.NewContentRenderer(100, cliStyles.Theme.IsDark)
		fmt.Println(cliStyles.Title.Render(doc.DisplayID + "  " + doc.Title))
		fmt.Println(cliStyles.Subtitle.Render("section " + doc.Section + " • " + doc.Status + " • updated " + doc.UpdatedAt))
		fmt.Println(renderer.Render(doc.Content))
		return nil
	},
}

var policiesCreateCmd = &cobra.Command{
	Use:   "create [policy-id]",
	Short: "Submit a new draft policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		content, err := readBody(policyFile)
		if err != nil {
			return err
		}
		in := api.CreatePolicyInput{
			PolicyID:      args[0],
			PolicyName:    policyName,
			Section:       policySection,
			PolicyContent: content,
		}
		if err := validate.PolicyCreate(in); err != nil {
			return err
		}
		record, err := client.CreatePolicy(cmd.Context(), in)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("draft %s created", record.PolicyID))
		return nil
	},
}

var policiesEditCmd = &cobra.Command{
	Use:   "edit [policy-id]",
	Short: "Replace a policy's name, section and content",
	Long: `Replaces the policy's name, section and content. The dotted
identifier itself cannot change once assigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		current, err := client.Policy(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		in := api.UpdatePolicyInput{
			PolicyName:    current.PolicyName,
			Section:       current.Section,
			PolicyContent: current.PolicyContent,
		}
		if policyName != "" {
			in.PolicyName = policyName
		}
		if policySection != "" {
			in.Section = policySection
		}
		if policyFile != "" {
			content, err := readBody(policyFile)
			if err != nil {
				return err
			}
			in.PolicyContent = content
		}
		if err := validate.PolicyUpdate(in); err != nil {
			return err
		}
		if _, err := client.UpdatePolicy(cmd.Context(), args[0], in); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("policy %s updated", args[0]))
		return nil
	},
}

var policiesApproveCmd = &cobra.Command{
	Use:   "approve [policy-id]",
	Short: "Approve a draft policy (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		record, err := client.ApprovePolicy(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("policy %s approved", record.PolicyID))
		return nil
	},
}

var policiesDeleteCmd = &cobra.Command{
	Use:   "delete [policy-id]",
	Short: "Delete a policy (admin); deleting a draft is disapproval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Permanently delete policy %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		if err := client.DeletePolicy(cmd.Context(), args[0]); err != nil {
			if api.IsNotFound(err) {
				// Already gone; treat as done.
				printSuccess(fmt.Sprintf("policy %s already deleted", args[0]))
				return nil
			}
			return err
		}
		printSuccess(fmt.Sprintf("policy %s deleted", args[0]))
		return nil
	},
}

var policiesExportCmd = &cobra.Command{
	Use:   "export [policy-id]",
	Short: "Export approved policies as markdown files",
	Long: `Writes one markdown file per approved policy into --dir. With a
policy-id argument only that policy is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []api.PolicyRecord
		if len(args) == 1 {
			record, err := client.Policy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			records = []api.PolicyRecord{record}
		} else {
			var err error
			records, err = client.ApprovedPolicies(cmd.Context(), "")
			if err != nil {
				return err
			}
		}

		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}

		renderer := ui.NewContentRenderer(0, false)
		docs := view.MapPolicies(records)
		view.SortDocuments(docs)
		for _, doc := range docs {
			name := strings.ReplaceAll(doc.DisplayID, ".", "-") + ".md"
			body := fmt.Sprintf("# %s %s\n\n%s\n", doc.DisplayID, doc.Title, renderer.ToMarkdown(doc.Content))
			if err := os.WriteFile(filepath.Join(exportDir, name), []byte(body), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
		}
		printSuccess(fmt.Sprintf("exported %d policies to %s", len(docs), exportDir))
		return nil
	},
}

func init() {
	policiesListCmd.Flags().BoolVar(&policiesApproved, "approved", true, "list approved policies only")
	policiesListCmd.Flags().StringVarP(&policiesSection, "section", "s", "", "limit to one section (1-3)")

	for _, c := range []*cobra.Command{policiesCreateCmd, policiesEditCmd} {
		c.Flags().StringVarP(&policyName, "name", "n", "", "policy name")
		c.Flags().StringVarP(&policySection, "section", "s", "", "section (1-3)")
		c.Flags().StringVarP(&policyFile, "file", "f", "", "read content from file")
	}

	policiesExportCmd.Flags().StringVarP(&exportDir, "dir", "d", "policies-export", "output directory")

	policiesCmd.AddCommand(policiesListCmd)
	policiesCmd.AddCommand(policiesShowCmd)
	policiesCmd.AddCommand(policiesCreateCmd)
	policiesCmd.AddCommand(policiesEditCmd)
	policiesCmd.AddCommand(policiesApproveCmd)
	policiesCmd.AddCommand(policiesDeleteCmd)
	policiesCmd.AddCommand(policiesExportCmd)
}
