// README: Handler tests for the move-plan routes.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/http/handlers"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/distance"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/housing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/movers"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
)

// stubResolver is a test double for plan.DistanceResolver.
type stubResolver struct {
	result distance.Result
}

func (s *stubResolver) Resolve(_ context.Context, _, _ string, _ distance.Class) (distance.Result, error) {
	return s.result, nil
}

// stubListings is a test double for plan.ListingSource.
type stubListings struct {
	listings []housing.Listing
}

func (s *stubListings) ListByCity(_ context.Context, _ string, _ int64, _ int) ([]housing.Listing, error) {
	return s.listings, nil
}

// buildTestRouter wires a minimal gin engine with the plan handler over
// stubbed collaborators.
func buildTestRouter(resolver plan.DistanceResolver, listings plan.ListingSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bands := []pricing.FlightBand{
		{MinMiles: 1500, MaxMiles: 1999, Carrier: "Frontier Airlines", Multiplier: 0.1519},
		{MinMiles: 1500, MaxMiles: 1999, Carrier: "Delta Air Lines", Multiplier: 0.2103},
	}
	svc := plan.NewService(
		resolver,
		pricing.NewService(bands),
		housing.NewService(),
		listings,
		movers.NewService(movers.DefaultProviders),
		plan.NewStore(time.Hour),
	)
	r := gin.New()
	h := handlers.NewPlanHandler(svc, nil)
	r.GET("/whatsthemove/:from_city/:to_city/:start_month/:end_month/:flags/:transport/:max_cost", h.Estimate)
	r.POST("/whatsthemove/plans/:id/toggle", h.Toggle)
	r.GET("/whatsthemove/plans/:id/totals", h.Totals)
	return r
}

func miles(v float64) *float64 { return &v }

func planeResolver() *stubResolver {
	return &stubResolver{result: distance.Result{StraightLineMiles: miles(1650)}}
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

func TestEstimate_PlaneQuery(t *testing.T) {
	r := buildTestRouter(planeResolver(), &stubListings{listings: []housing.Listing{
		{Price: 1200}, {Price: 1400}, {Price: 1000},
	}})

	w := doRequest(r, http.MethodGet, "/whatsthemove/madisonwi/seattlewa/june/august/00/000001/1400", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	p, ok := body["plan"].(map[string]any)
	if !ok {
		t.Fatalf("missing plan block: %v", body)
	}
	if p["plan_id"] == "" {
		t.Errorf("plan_id missing")
	}
	totals := body["totals"].(map[string]any)
	total := totals["total"].(map[string]any)
	// 3 months at avg 1200 plus cheapest carrier 251.
	if got := total["amount"].(float64); got != 3851 {
		t.Errorf("total = %v, want 3851", got)
	}
}

func TestEstimate_MalformedSegments(t *testing.T) {
	r := buildTestRouter(planeResolver(), &stubListings{})
	tests := []struct {
		name string
		path string
	}{
		{"bad flags width", "/whatsthemove/a/b/june/august/011/000001/1400"},
		{"two transport bits", "/whatsthemove/a/b/june/august/00/010010/1400"},
		{"bad month", "/whatsthemove/a/b/smarch/august/00/000001/1400"},
		{"zero budget", "/whatsthemove/a/b/june/august/00/000001/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doRequest(r, http.MethodGet, tt.path, nil); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestToggle_Flow(t *testing.T) {
	r := buildTestRouter(planeResolver(), &stubListings{})

	w := doRequest(r, http.MethodGet, "/whatsthemove/madisonwi/seattlewa/june/august/00/000001/1400", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("estimate failed: %d", w.Code)
	}
	planID := decodeBody(t, w)["plan"].(map[string]any)["plan_id"].(string)

	w = doRequest(r, http.MethodPost, "/whatsthemove/plans/"+planID+"/toggle", map[string]any{
		"option_id": "travel:plane:delta-air-lines",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("toggle failed: %d: %s", w.Code, w.Body.String())
	}
	totals := decodeBody(t, w)["totals"].(map[string]any)
	travel := totals["travel"].(map[string]any)
	if got := travel["amount"].(float64); got != 347 {
		t.Errorf("selected travel = %v, want 347", got)
	}

	// The totals route reflects the selection.
	w = doRequest(r, http.MethodGet, "/whatsthemove/plans/"+planID+"/totals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("totals failed: %d", w.Code)
	}
	sels := decodeBody(t, w)["selections"].(map[string]any)
	if len(sels) != 1 {
		t.Errorf("selections = %v, want one entry", sels)
	}
}

func TestToggle_Errors(t *testing.T) {
	r := buildTestRouter(planeResolver(), &stubListings{})

	w := doRequest(r, http.MethodGet, "/whatsthemove/madisonwi/seattlewa/june/august/00/000001/1400", nil)
	planID := decodeBody(t, w)["plan"].(map[string]any)["plan_id"].(string)

	tests := []struct {
		name string
		id   string
		body any
		want int
	}{
		{"malformed id", "not-hex!", map[string]any{"option_id": "x"}, http.StatusBadRequest},
		{"unknown plan", "00000000000000000000000000000000", map[string]any{"option_id": "x"}, http.StatusNotFound},
		{"unknown option", planID, map[string]any{"option_id": "travel:plane:no-such-carrier"}, http.StatusBadRequest},
		{"missing option", planID, map[string]any{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/whatsthemove/plans/"+tt.id+"/toggle", tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
