// Package geo implements the Geocoder port against the Yandex geocoder HTTP API.
//
// Resolution is best-effort: any failure, whether a transport error, a non-2xx
// response, a malformed payload or simply an address the service does not know,
// yields an unresolved (nil, nil) result. Callers treat an absent location as a
// normal state, so the adapter never propagates upstream errors.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart/internal/core/domain/model/kernel"
)

// DefaultBaseURL is the public Yandex geocoder endpoint.
const DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

// DefaultTimeout bounds a single geocoding request.
const DefaultTimeout = 5 * time.Second

// YandexGeocoder resolves free-text addresses to coordinates via the Yandex
// geocoder HTTP API.
type YandexGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewYandexGeocoder creates a geocoder client.
//
// Parameters:
//   - baseURL: geocoder endpoint; empty selects DefaultBaseURL
//   - apiKey: Yandex API key sent with every request
//   - timeout: per-request bound; non-positive selects DefaultTimeout
//   - logger: structured logger for degraded lookups; nil selects slog.Default
func NewYandexGeocoder(baseURL string, apiKey string, timeout time.Duration, logger *slog.Logger) *YandexGeocoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &YandexGeocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// geocodeResponse mirrors the subset of the Yandex payload the adapter reads.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Resolve looks up coordinates for a free-text address.
// The first (most relevant) match wins. An unresolved address returns
// (nil, nil); the caller decides what an absent location means.
func (g *YandexGeocoder) Resolve(ctx context.Context, address string) (*kernel.Location, error) {
	if address == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		g.logger.Warn("geocoder request build failed", "address", address, "error", err)
		return nil, nil
	}

	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")
	req.URL.RawQuery = params.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocoder request failed", "address", address, "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		g.logger.Warn("geocoder returned non-2xx status", "address", address, "status", resp.StatusCode)
		return nil, nil
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		g.logger.Warn("geocoder payload decode failed", "address", address, "error", err)
		return nil, nil
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return nil, nil
	}

	location, err := parsePoint(members[0].GeoObject.Point.Pos)
	if err != nil {
		g.logger.Warn("geocoder returned malformed point", "address", address, "error", err)
		return nil, nil
	}

	return location, nil
}

// parsePoint converts the API's "longitude latitude" pair into a Location.
func parsePoint(pos string) (*kernel.Location, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"lon lat\" pair, got %q", pos)
	}

	longitude, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q: %w", parts[0], err)
	}
	latitude, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q: %w", parts[1], err)
	}

	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return nil, err
	}

	return &location, nil
}
