// README: Move-plan handlers for estimate/toggle/totals.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/ai"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/codec"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

const jobExtractionTimeout = 10 * time.Second

type PlanHandler struct {
	plans *plan.Service
	jobs  ai.JobExtractor
}

// NewPlanHandler wires the plan service and an optional job extractor. jobs
// may be nil; job summaries are then skipped.
func NewPlanHandler(planSvc *plan.Service, jobs ai.JobExtractor) *PlanHandler {
	return &PlanHandler{plans: planSvc, jobs: jobs}
}

// Estimate handles
// GET /whatsthemove/:from_city/:to_city/:start_month/:end_month/:flags/:transport/:max_cost.
// The seven path segments are the fixed-width encoded move query. An
// optional job_url query attaches an extracted job summary to the response.
func (h *PlanHandler) Estimate(c *gin.Context) {
	q, err := codec.DecodeParts(
		c.Param("from_city"),
		c.Param("to_city"),
		c.Param("start_month"),
		c.Param("end_month"),
		c.Param("flags"),
		c.Param("transport"),
		c.Param("max_cost"),
		time.Now().Year(),
	)
	if err != nil {
		writePlanError(c, err)
		return
	}

	eng, err := h.plans.Derive(c.Request.Context(), q)
	if err != nil {
		writePlanError(c, err)
		return
	}

	resp := gin.H{
		"plan":   eng.Plan(),
		"totals": eng.Totals(),
	}
	if jobURL := c.Query("job_url"); jobURL != "" && h.jobs != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), jobExtractionTimeout)
		defer cancel()
		record, err := h.jobs.AnalyzeJobPosting(ctx, jobURL)
		if err != nil {
			// Summaries are decoration; the estimate still stands.
			log.Printf("job extraction for %q failed: %v", jobURL, err)
		} else {
			resp["job_summary"] = buildJobSummary(record)
		}
	}
	writeJSON(c, http.StatusOK, resp)
}

type toggleReq struct {
	OptionID string `json:"option_id"`
}

// Toggle handles POST /whatsthemove/plans/:id/toggle.
func (h *PlanHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OptionID == "" {
		writeError(c, http.StatusBadRequest, "missing option_id")
		return
	}

	eng, err := h.plans.Get(types.ID(id))
	if err != nil {
		writePlanError(c, err)
		return
	}
	totals, err := eng.Toggle(req.OptionID)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"plan_id":    id,
		"selections": eng.Selections(),
		"totals":     totals,
	})
}

// Totals handles GET /whatsthemove/plans/:id/totals.
func (h *PlanHandler) Totals(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}
	eng, err := h.plans.Get(types.ID(id))
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"plan_id":    id,
		"selections": eng.Selections(),
		"totals":     eng.Totals(),
	})
}
