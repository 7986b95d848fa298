package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/missionhud/missionhud/client"
	"github.com/missionhud/missionhud/controller"
)

func newListJobsCmd() *cobra.Command {
	var status, source, appType, search string
	var perPage int

	cmd := &cobra.Command{
		Use:   "list-jobs",
		Short: "List jobs matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			start := time.Now()
			jobs, err := c.ListJobs(ctx, client.JobFilter{
				Status:  status,
				Source:  source,
				Type:    appType,
				Search:  search,
				PerPage: perPage,
			})
			if err != nil {
				return err
			}
			log.Debug().Int("count", len(jobs)).Dur("elapsed", time.Since(start)).Msg("jobs listed")
			return printJSON(jobs)
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (new|in_progress|applied|needs_review|failed|all)")
	cmd.Flags().StringVar(&source, "source", "all", "Filter by source (linkedin, jobright, manual, ...)")
	cmd.Flags().StringVar(&appType, "type", "all", "Filter by application system (workday, greenhouse, ...)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search, forwarded to the service")
	cmd.Flags().IntVar(&perPage, "per-page", 50, "Page size")
	return cmd
}

func newApplyCmd() *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Trigger the automated apply flow for a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--id is required")
			}
			ctrl, ctx, cancel, err := newController(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = ctrl.Close() }()

			if err := ctrl.Apply(ctx, jobID); err != nil {
				return err
			}
			log.Info().Str("job_id", jobID).Msg("apply triggered; outcome decided remotely")
			return printJSON(ctrl.Snapshot().Jobs)
		},
	}
	cmd.Flags().StringVar(&jobID, "id", "", "Job identifier")
	return cmd
}

func newMarkAppliedCmd() *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "mark-applied",
		Short: "Mark a job as applied (manual confirmation path)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, jobID, false)
		},
	}
	cmd.Flags().StringVar(&jobID, "id", "", "Job identifier")
	return cmd
}

func newUndoCmd() *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last mark-applied, returning the job to new",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, jobID, true)
		},
	}
	cmd.Flags().StringVar(&jobID, "id", "", "Job identifier")
	return cmd
}

func newDeleteJobCmd() *cobra.Command {
	var jobID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-job",
		Short: "Delete a job remotely (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				return fmt.Errorf("--id is required")
			}
			if !yes {
				return fmt.Errorf("deletion is irreversible; re-run with --yes to confirm")
			}
			ctrl, ctx, cancel, err := newController(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = ctrl.Close() }()

			if err := ctrl.Delete(ctx, jobID); err != nil {
				return err
			}
			log.Info().Str("job_id", jobID).Msg("job deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&jobID, "id", "", "Job identifier")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

// newController builds a lifecycle controller for one-shot CLI use. The
// animation window is a UI concern, so the CLI runs with it set to
// zero: commands commit immediately.
func newController(cmd *cobra.Command) (*controller.Controller, context.Context, context.CancelFunc, error) {
	cfg, err := controller.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg.AnimationWindow = 0

	ctrl := controller.New(client.New(serviceURL), cfg)
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	return ctrl, ctx, cancel, nil
}

func runTransition(cmd *cobra.Command, jobID string, undo bool) error {
	if jobID == "" {
		return fmt.Errorf("--id is required")
	}
	ctrl, ctx, cancel, err := newController(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = ctrl.Close() }()

	var tr *controller.Transition
	if undo {
		tr, err = ctrl.Undo(ctx, jobID)
	} else {
		tr, err = ctrl.MarkApplied(ctx, jobID)
	}
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tr.Done():
	}
	if err := tr.Err(); err != nil {
		return err
	}
	log.Info().Str("job_id", jobID).Bool("undo", undo).Msg("transition committed and reconciled")
	return printJSON(ctrl.Snapshot().Jobs)
}
