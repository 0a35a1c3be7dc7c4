package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marketping/marketping/internal/store"
	domain "github.com/marketping/marketping/pkg/types"
)

const defaultJobHistoryLimit = 20

// JobsHandler exposes scheduler job run history.
type JobsHandler struct {
	store store.Store
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s store.Store) *JobsHandler {
	return &JobsHandler{store: s}
}

// History handles GET /api/v1/jobs/:job_name.
//
// @Summary Get scheduler job history
// @Description Returns the run history for a scheduled job, newest first.
// @Tags scheduler
// @Produce json
// @Param job_name path string true "Scheduled job name (e.g. reconcile)"
// @Param limit query int false "Maximum number of runs to return"
// @Success 200 {array} domain.JobRun
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/jobs/{job_name} [get]
func (h *JobsHandler) History(c echo.Context) error {
	jobName := c.Param("job_name")

	limit := defaultJobHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "limit must be a positive integer",
			})
		}
		limit = v
	}

	runs, err := h.store.ListJobRuns(c.Request().Context(), jobName, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching job history: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}
