// Package main provides the vehicle TCO API server. It exposes the
// cost analysis and location endpoints behind a chi router.
package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vehicle-tco/internal/geo"
	"vehicle-tco/internal/tco"
	"vehicle-tco/pkg/api"
)

var (
	version   = "0.1.0"
	startTime = time.Now()
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	engine := tco.NewEngine(log.Logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health endpoints (for ALB/NLB)
	r.Get("/health", handleHealth)
	r.Get("/health/live", handleLiveness)
	r.Get("/health/ready", handleReadiness)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/tco", handleTCO(engine))
		r.Post("/location", handleLocation)
	})

	// Metadata
	r.Get("/version", handleVersion)

	log.Info().
		Str("port", port).
		Str("version", version).
		Msg("Starting vehicle TCO API server")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// Health check handlers for load balancer
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "healthy",
		"service": "vehicle-tco",
		"version": version,
		"uptime":  time.Since(startTime).String(),
	})
}

func handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadiness(w http.ResponseWriter, r *http.Request) {
	// All lookup tables are compiled in; ready as soon as we serve.
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"version": version,
		"service": "vehicle-tco",
	})
}

func handleTCO(engine *tco.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		report, err := engine.ComputeTCO(req)
		if err != nil {
			if errors.Is(err, tco.ErrInvalidAnalysisYears) || errors.Is(err, tco.ErrNegativeMileage) || errors.Is(err, tco.ErrInvalidLeaseTerm) {
				respondError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

type locationResponse struct {
	geo.Location
	NearbyMetros []geo.Location `json:"nearby_metros,omitempty"`
}

func handleLocation(w http.ResponseWriter, r *http.Request) {
	var req api.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := locationResponse{Location: geo.LookupLocation(req.ZIPCode)}
	if resp.Valid && resp.MetroArea == "" {
		// State-level fallback: suggest the closest metro areas by ZIP
		// proximity.
		resp.NearbyMetros = geo.NearbyMetros(req.ZIPCode, 500)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}
