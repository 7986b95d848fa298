package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/missionhud/missionhud/client"
)

func newListEmailsCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list-emails",
		Short: "List outreach emails (read-only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			emails, err := c.ListEmails(ctx, client.EmailFilter{Status: status, Limit: limit})
			if err != nil {
				return err
			}
			return printJSON(emails)
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (draft|scheduled|sent|failed|all)")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum number of emails")
	return cmd
}
