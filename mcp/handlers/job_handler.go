package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/missionhud/missionhud/client"
	"github.com/missionhud/missionhud/controller"
)

// JobHandler exposes lifecycle tools over MCP. All mutations run
// through the lifecycle controller so agents get the same transition
// protocol as the dashboard.
type JobHandler struct {
	ctrl *controller.Controller
}

func NewJobHandler(ctrl *controller.Controller) *JobHandler {
	return &JobHandler{ctrl: ctrl}
}

// RegisterTools registers all job lifecycle tools with the MCP server.
func (jh *JobHandler) RegisterTools(s *server.MCPServer) error {
	listJobs := mcp.NewTool("list_jobs",
		mcp.WithDescription("List tracked jobs. Filters are forwarded verbatim to the job service; use \"all\" or omit a filter to match everything."),
		mcp.WithString("status", mcp.Description("Job status: new|in_progress|applied|needs_review|failed|all")),
		mcp.WithString("source", mcp.Description("Discovery source, e.g. linkedin, jobright, manual")),
		mcp.WithString("type", mcp.Description("Application system, e.g. workday, greenhouse")),
		mcp.WithString("search", mcp.Description("Free-text search")),
	)
	s.AddTool(listJobs, jh.handleListJobs)

	markApplied := mcp.NewTool("mark_job_applied",
		mcp.WithDescription("Mark a job as applied (manual confirmation path). Commits immediately and reconciles against the service."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job identifier")),
	)
	s.AddTool(markApplied, jh.handleMarkApplied)

	undo := mcp.NewTool("undo_job_application",
		mcp.WithDescription("Undo the last mark-applied, returning the job to the new state."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job identifier")),
	)
	s.AddTool(undo, jh.handleUndo)

	apply := mcp.NewTool("trigger_apply",
		mcp.WithDescription("Trigger the automated apply flow for a job. The service decides whether the job lands in applied or failed."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job identifier")),
	)
	s.AddTool(apply, jh.handleApply)

	deleteJob := mcp.NewTool("delete_job",
		mcp.WithDescription("CAUTION: Deletes a job irreversibly. Use ONLY after the human has explicitly confirmed the deletion."),
		mcp.WithString("job_id", mcp.Required(), mcp.Description("The job identifier")),
	)
	s.AddTool(deleteJob, jh.handleDelete)

	return nil
}

func (jh *JobHandler) handleListJobs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	f := client.JobFilter{}
	if v, ok := args["status"].(string); ok {
		f.Status = v
	}
	if v, ok := args["source"].(string); ok {
		f.Source = v
	}
	if v, ok := args["type"].(string); ok {
		f.Type = v
	}
	if v, ok := args["search"].(string); ok {
		f.Search = v
	}

	if err := jh.ctrl.SetFilter(ctx, f); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list jobs failed: %v", err)), nil
	}
	return jsonResult(jh.ctrl.Snapshot().Jobs)
}

func (jh *JobHandler) handleMarkApplied(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jh.runTransition(ctx, req, false)
}

func (jh *JobHandler) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jh.runTransition(ctx, req, true)
}

func (jh *JobHandler) runTransition(ctx context.Context, req mcp.CallToolRequest, undo bool) (*mcp.CallToolResult, error) {
	jobID, err := req.RequireString("job_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug().Str("job_id", jobID).Bool("undo", undo).Msg("handling transition request")

	start := time.Now()
	var tr *controller.Transition
	if undo {
		tr, err = jh.ctrl.Undo(ctx, jobID)
	} else {
		tr, err = jh.ctrl.MarkApplied(ctx, jobID)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("transition rejected: %v", err)), nil
	}

	select {
	case <-ctx.Done():
		return mcp.NewToolResultError(ctx.Err().Error()), nil
	case <-tr.Done():
	}
	if err := tr.Err(); err != nil {
		log.Error().Err(err).Str("job_id", jobID).Dur("elapsed", time.Since(start)).Msg("transition failed")
		return mcp.NewToolResultError(fmt.Sprintf("transition failed: %v", err)), nil
	}
	return jsonResult(jh.ctrl.Snapshot().Jobs)
}

func (jh *JobHandler) handleApply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobID, err := req.RequireString("job_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := jh.ctrl.Apply(ctx, jobID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("apply failed: %v", err)), nil
	}
	return jsonResult(jh.ctrl.Snapshot().Jobs)
}

func (jh *JobHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobID, err := req.RequireString("job_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := jh.ctrl.Delete(ctx, jobID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("job %s deleted", jobID)), nil
}
