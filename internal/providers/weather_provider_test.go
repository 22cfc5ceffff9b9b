package providers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/weather-proxy/internal/providers"

	"github.com/stretchr/testify/suite"
)

const parisBody = `{"location":{"name":"Paris","country":"France"},"current":{"temp_c":18.2,"air_quality":{"pm2_5":7.4}}}`

type WeatherAPIServiceTestSuite struct {
	suite.Suite
	apiServer *httptest.Server
	lastQuery string
	service   providers.WeatherAPIService
}

func (s *WeatherAPIServiceTestSuite) SetupTest() {
	s.lastQuery = ""
	s.apiServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastQuery = r.URL.RawQuery

		if r.URL.Path != "/current.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.URL.Query().Get("q") {
		case "Paris":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(parisBody))
		case "Nowhere":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
		case "BadKey":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
		case "HTMLError":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{}`))
		}
	}))

	s.service = providers.NewWeatherAPIService(s.apiServer.URL+"/", "test_api_key", 0)
}

func (s *WeatherAPIServiceTestSuite) TearDownTest() {
	s.apiServer.Close()
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_Success() {
	body, err := s.service.GetCurrentWeather(context.Background(), "Paris")
	s.NoError(err)
	s.Equal(parisBody, string(body))
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_RequestsAirQualityWithKey() {
	_, err := s.service.GetCurrentWeather(context.Background(), "Paris")
	s.Require().NoError(err)
	s.Equal("key=test_api_key&q=Paris&aqi=yes", s.lastQuery)
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_PercentEncodesLocation() {
	_, _ = s.service.GetCurrentWeather(context.Background(), "São Paulo & co")
	s.Equal("key=test_api_key&q=S%C3%A3o%20Paulo%20%26%20co&aqi=yes", s.lastQuery)
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_UpstreamMessage() {
	_, err := s.service.GetCurrentWeather(context.Background(), "Nowhere")
	s.Require().Error(err)

	var providerErr *providers.ProviderError
	s.Require().True(errors.As(err, &providerErr))
	s.Equal(http.StatusBadRequest, providerErr.StatusCode)
	s.Equal("No matching location found.", providerErr.Message)
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_InvalidKeyMessage() {
	_, err := s.service.GetCurrentWeather(context.Background(), "BadKey")
	s.Require().Error(err)
	s.Contains(err.Error(), "API key")
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_UnparseableErrorBody() {
	_, err := s.service.GetCurrentWeather(context.Background(), "HTMLError")
	s.Require().Error(err)
	s.Equal("HTTP 502: Weather data not found", err.Error())
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_ErrorBodyWithoutMessage() {
	_, err := s.service.GetCurrentWeather(context.Background(), "ServerError")
	s.Require().Error(err)
	s.Equal("HTTP 500: Weather data not found", err.Error())
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_MalformedJSON() {
	_, err := s.service.GetCurrentWeather(context.Background(), "MalformedJSON")
	s.Require().Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_MissingAPIKey() {
	service := providers.NewWeatherAPIService(s.apiServer.URL, "", 0)

	_, err := service.GetCurrentWeather(context.Background(), "Paris")
	s.Require().Error(err)
	s.Equal("Weather API key not configured", err.Error())
	s.Empty(s.lastQuery)
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_TransportErrorHidesKey() {
	s.service.GetHTTPClient().Transport = failingTransport{}

	_, err := s.service.GetCurrentWeather(context.Background(), "Paris")
	s.Require().Error(err)
	s.Contains(err.Error(), "weather API request failed")
	s.Contains(err.Error(), "connection refused")
	s.NotContains(err.Error(), "test_api_key")
}

func (s *WeatherAPIServiceTestSuite) TestGetCurrentWeather_Timeout() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(parisBody))
	}))
	defer slow.Close()

	service := providers.NewWeatherAPIService(slow.URL, "test_api_key", 50*time.Millisecond)

	_, err := service.GetCurrentWeather(context.Background(), "Paris")
	s.Require().Error(err)
	s.NotContains(err.Error(), "test_api_key")
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
}

func TestWeatherAPIServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherAPIServiceTestSuite))
}
