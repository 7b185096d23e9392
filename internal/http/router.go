// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/ai"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/http/handlers"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/http/middleware"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
)

// NewRouter wires the gin engine. jobs may be nil when no Gemini key is
// configured; the job-search route then answers 503.
func NewRouter(planSvc *plan.Service, jobs ai.JobExtractor) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(planSvc, jobs)
	r.GET("/whatsthemove/:from_city/:to_city/:start_month/:end_month/:flags/:transport/:max_cost", planHandler.Estimate)
	r.POST("/whatsthemove/plans/:id/toggle", planHandler.Toggle)
	r.GET("/whatsthemove/plans/:id/totals", planHandler.Totals)

	jobHandler := handlers.NewJobHandler(jobs)
	r.GET("/job-search", jobHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
