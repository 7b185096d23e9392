// README: Job-posting summary handler (Gemini extraction).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/ai"
)

type JobHandler struct {
	jobs ai.JobExtractor
}

func NewJobHandler(jobs ai.JobExtractor) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Search handles GET /job-search?job_url=.
func (h *JobHandler) Search(c *gin.Context) {
	if h.jobs == nil {
		writeError(c, http.StatusServiceUnavailable, "job extraction not configured")
		return
	}
	jobURL := c.Query("job_url")
	if jobURL == "" {
		writeError(c, http.StatusBadRequest, "missing job_url")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), jobExtractionTimeout)
	defer cancel()

	record, err := h.jobs.AnalyzeJobPosting(ctx, jobURL)
	if err != nil {
		writeError(c, http.StatusBadGateway, "job extraction failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"job_summary": buildJobSummary(record)})
}

// buildJobSummary flattens an extracted record into the response block.
// Missing fields render as "NA" rather than being omitted, so clients can
// bind a fixed shape.
func buildJobSummary(r *ai.JobRecord) gin.H {
	summary := gin.H{
		"job_title":       "NA",
		"location":        "NA",
		"start":           "NA",
		"end":             "NA",
		"duration_months": "NA",
	}
	if r == nil {
		return summary
	}
	if r.JobTitle != nil {
		summary["job_title"] = *r.JobTitle
	}
	if r.Location != nil {
		summary["location"] = *r.Location
	}
	if r.StartMonth != nil && r.StartYear != nil {
		summary["start"] = monthYear(*r.StartMonth, *r.StartYear)
	}
	if r.EndMonth != nil && r.EndYear != nil {
		summary["end"] = monthYear(*r.EndMonth, *r.EndYear)
	}
	if r.StartMonth != nil && r.StartYear != nil && r.EndMonth != nil && r.EndYear != nil {
		months := (*r.EndYear-*r.StartYear)*12 + (*r.EndMonth - *r.StartMonth) + 1
		if months >= 1 {
			summary["duration_months"] = months
		}
	}
	return summary
}

func monthYear(month, year int) string {
	if month < 1 || month > 12 {
		return "NA"
	}
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}
