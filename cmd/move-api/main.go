// README: Entry point; loads config, wires services, starts HTTP server and background janitor.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/ai"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/config"
	httptransport "github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/http"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/infra"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/maps"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/distance"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/housing"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/movers"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bands, err := pricing.LoadBands(cfg.Pricing.FlightBandsPath)
	if err != nil {
		log.Fatalf("flight bands: %v", err)
	}
	pricingSvc := pricing.NewService(bands)

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var geo distance.Geocoder
	var router distance.Router
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geo, router = routeSvc, routeSvc
	} else {
		log.Printf("GOOGLE_MAPS_API_KEY not set; distances unavailable, estimates use flat fallbacks")
	}
	distanceSvc := distance.NewService(geo, router, distance.NewStore(redisClient))

	listingStore := housing.NewStore(dbPool)
	housingSvc := housing.NewService()
	moversSvc := movers.NewService(movers.DefaultProviders)

	planStore := plan.NewStore(cfg.Plans.TTL)
	planSvc := plan.NewService(distanceSvc, pricingSvc, housingSvc, listingStore, moversSvc, planStore)

	var jobs ai.JobExtractor
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		jobs = provider
	} else {
		log.Printf("GEMINI_API_KEY not set; job summaries disabled")
	}

	go planStore.RunJanitor(ctx)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(planSvc, jobs)}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
