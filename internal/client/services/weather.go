package services

import (
	"context"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

// Coordinates is an optional lat/lon pair; both are sent or neither.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Place identifies where to fetch weather for: a location name, coordinates,
// or both.
type Place struct {
	Location string
	Coords   *Coordinates
}

func (p Place) apply(q *api.Query) *api.Query {
	q.String("location", p.Location)
	if p.Coords != nil {
		q.FloatPtr("lat", &p.Coords.Lat).FloatPtr("lon", &p.Coords.Lon)
	}
	return q
}

type WeatherService interface {
	Current(ctx context.Context, place Place) (*models.WeatherData, error)
	Forecast(ctx context.Context, place Place, days int) (*models.ForecastData, error)
	Alerts(ctx context.Context, location string) (*models.WeatherAlerts, error)
	Advisories(ctx context.Context, crop string, place Place) ([]models.WeatherAdvisory, error)
}

type weatherService struct {
	api Requester
}

func NewWeatherService(r Requester) WeatherService {
	return &weatherService{api: r}
}

func (w *weatherService) Current(ctx context.Context, place Place) (*models.WeatherData, error) {
	q := place.apply(api.NewQuery())

	var resp models.WeatherData
	if err := w.api.Get(ctx, q.Path("/weather/current"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (w *weatherService) Forecast(ctx context.Context, place Place, days int) (*models.ForecastData, error) {
	q := place.apply(api.NewQuery()).Int("days", days)

	var resp models.ForecastData
	if err := w.api.Get(ctx, q.Path("/weather/forecast"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (w *weatherService) Alerts(ctx context.Context, location string) (*models.WeatherAlerts, error) {
	q := api.NewQuery().Add("location", location)

	var resp models.WeatherAlerts
	if err := w.api.Get(ctx, q.Path("/weather/alerts"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (w *weatherService) Advisories(ctx context.Context, crop string, place Place) ([]models.WeatherAdvisory, error) {
	q := place.apply(api.NewQuery().Add("crop", crop))

	var resp []models.WeatherAdvisory
	if err := w.api.Get(ctx, q.Path("/weather/advisories"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
