package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-proxy/internal/db/weatherquery"
	"ulascansenturk/weather-proxy/internal/providers"
)

var validate = validator.New()

type WeatherQuery struct {
	Location string `validate:"required"`
}

type WeatherService interface {
	GetWeather(ctx context.Context, query WeatherQuery) ([]byte, error)
}

type weatherService struct {
	weatherAPI       providers.WeatherAPIService
	weatherQueryRepo weatherquery.Repository
}

// NewWeatherService wires the provider client and an optional query log. A nil repository
// disables the query log.
func NewWeatherService(weatherAPI providers.WeatherAPIService, weatherQueryRepo weatherquery.Repository) WeatherService {
	return &weatherService{
		weatherAPI:       weatherAPI,
		weatherQueryRepo: weatherQueryRepo,
	}
}

// GetWeather returns the provider payload unmodified. Every error it returns is an *Error.
func (s *weatherService) GetWeather(ctx context.Context, query WeatherQuery) ([]byte, error) {
	if err := validate.Struct(query); err != nil {
		return nil, &Error{
			Kind:    KindValidation,
			Status:  http.StatusBadRequest,
			Message: MessageLocationRequired,
			Cause:   err,
		}
	}

	log.Info().Str("location", query.Location).Msg("fetching weather")

	body, err := s.weatherAPI.GetCurrentWeather(ctx, query.Location)
	if err != nil {
		classified := ClassifyError(err)

		log.Error().
			Err(err).
			Str("location", query.Location).
			Int("status", classified.Status).
			Str("kind", classified.Kind.String()).
			Msg("weather API error")

		s.logQuery(query.Location, classified.Status, err.Error())

		return nil, classified
	}

	log.Info().
		Str("location", query.Location).
		Str("resolved_name", resolvedName(body)).
		Msg("weather data fetched")

	s.logQuery(query.Location, http.StatusOK, "")

	return body, nil
}

func (s *weatherService) logQuery(location string, statusCode int, upstreamMessage string) {
	if s.weatherQueryRepo == nil {
		return
	}

	go func() {
		if err := s.weatherQueryRepo.LogWeatherQuery(location, statusCode, upstreamMessage); err != nil {
			log.Error().Err(err).Str("location", location).Msg("failed to log weather query")
		}
	}()
}

// resolvedName reads location.name from the payload for logging; the payload schema is
// not validated, so anything unexpected yields "".
func resolvedName(body []byte) string {
	var payload struct {
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Location.Name
}
