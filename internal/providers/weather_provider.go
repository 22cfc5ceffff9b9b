package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const missingAPIKeyMessage = "Weather API key not configured"

type WeatherAPIService interface {
	GetCurrentWeather(ctx context.Context, location string) ([]byte, error)
	GetHTTPClient() *http.Client
}

// ProviderError carries the message the provider reported, or a synthesized one when it
// reported nothing usable. StatusCode is zero when no request was made.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type weatherAPIService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherAPIService builds a weatherapi.com client. A zero timeout leaves the
// http.Client default in place.
func NewWeatherAPIService(baseURL, apiKey string, timeout time.Duration) WeatherAPIService {
	return &weatherAPIService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *weatherAPIService) GetCurrentWeather(ctx context.Context, location string) ([]byte, error) {
	requestURL := s.currentURL(location)

	if s.apiKey == "" {
		return nil, &ProviderError{Message: missingAPIKeyMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather API request: %w", redactURL(err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather API request failed: %w", redactURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		// an unparseable error body is treated like one without a message
		_ = json.Unmarshal(body, &apiErr)

		message := apiErr.Error.Message
		if message == "" {
			message = fmt.Sprintf("HTTP %d: Weather data not found", resp.StatusCode)
		}

		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: message}
	}

	if !json.Valid(body) {
		return nil, errors.New("weather API returned malformed JSON")
	}

	return body, nil
}

func (s *weatherAPIService) currentURL(location string) string {
	return fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=yes",
		s.baseURL, url.QueryEscape(s.apiKey), encodeQueryComponent(location))
}

func (s *weatherAPIService) GetHTTPClient() *http.Client {
	return s.client
}

// encodeQueryComponent escapes spaces as %20 rather than '+'.
func encodeQueryComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// redactURL drops the request URL from transport errors; it carries the API key.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
