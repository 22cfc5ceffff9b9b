package handlers

import (
	"context"
	"net/http"
	"time"

	"ulascansenturk/weather-proxy/internal/service"
)

const (
	statusRunning = "Server is running!"
	apiName       = "WeatherVibe Backend API"

	// toISOString layout: UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	environment    string
	now            func() time.Time
}

func NewWeatherHandler(weatherService service.WeatherService, environment string) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		environment:    environment,
		now:            time.Now,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/weather":
		h.GetWeather(w, r)
	case "/health":
		h.GetHealth(w, r)
	case "/":
		h.GetIndex(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "Not found")
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		respondWithError(w, http.StatusBadRequest, service.MessageLocationRequired)
		return
	}

	// the outbound call is not aborted when the caller goes away
	ctx := context.WithoutCancel(r.Context())

	body, err := h.weatherService.GetWeather(ctx, service.WeatherQuery{Location: location})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithRawJSON(w, http.StatusOK, body)
}

func (h *WeatherHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:      statusRunning,
		Timestamp:   h.now().UTC().Format(timestampLayout),
		Environment: h.environment,
	})
}

func (h *WeatherHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}

	respondWithJSON(w, http.StatusOK, IndexResponse{
		Message: apiName,
		Endpoints: Endpoints{
			Weather: "/api/weather?location=cityname",
			Health:  "/health",
		},
	})
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}

	w.Header().Set("Allow", "GET, HEAD")
	respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}
