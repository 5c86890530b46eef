package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"scenic-route-service/internal/adapters/cache"
	"scenic-route-service/internal/adapters/geocode"
	"scenic-route-service/internal/adapters/poi"
	"scenic-route-service/internal/adapters/repositories"
	"scenic-route-service/internal/adapters/routing"
	"scenic-route-service/internal/api"
	"scenic-route-service/internal/api/handlers"
	"scenic-route-service/internal/config"
	"scenic-route-service/internal/platform/db"
	"scenic-route-service/internal/ports"
	"scenic-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, OSRM, Overpass, Nominatim)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmURL := config.Get("OSRM_BASE_URL", "")
	overpassURL := config.Get("OVERPASS_URL", "")
	nominatimURL := config.Get("NOMINATIM_URL", "")
	scoringMode := config.Get("SCORING_MODE", "")
	searchRadius := 3000

	// Without DATABASE_URL trips live in memory only; fine for local runs.
	var repo ports.TripRepository = repositories.NewMemoryTripRepository()
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := repositories.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresTripRepository(pg)
	}

	var source ports.POISource = poi.NewOverpassSource(overpassURL)
	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		poiCache, err := cache.NewRedisPOICache(redisAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer poiCache.Close()

		source = poi.NewCachedSource(source, poiCache)
	}

	routes := routing.NewOSRMRouteProvider(osrmURL)
	planner := services.NewPlanner(
		routes,
		services.NewDiscoveryService(source, searchRadius),
		services.ScorerForMode(scoringMode),
	)

	geocoder := geocode.NewNominatimGeocoder(nominatimURL, nil)

	tripHandler := &handlers.TripHandler{
		Repo:      repo,
		Geocoder:  geocoder,
		Estimator: services.HaversineEstimator{},
		Routes:    routes,
	}
	planHandler := &handlers.PlanHandler{
		Planner:  planner,
		Geocoder: geocoder,
	}

	router := api.NewRouter(tripHandler, planHandler)

	// Timeouts are tuned for cold-cache planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
