package services

import (
	"context"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

// Period values accepted by PriceTrends and PriceForecasts. Forecasts do not
// accept PeriodYear.
const (
	PeriodWeek       = "week"
	PeriodMonth      = "month"
	PeriodThreeMonth = "3month"
	PeriodYear       = "year"
)

type RecommendationQuery struct {
	State    string
	District string
	SoilType string
	FarmSize float64
	Limit    int
}

type MarketService interface {
	MarketsByLocation(ctx context.Context, state, district string) ([]models.MarketLocation, error)
	CropPrices(ctx context.Context, crop, state string, marketID int64) ([]models.CropPrice, error)
	PriceTrends(ctx context.Context, crops []string, period string) ([]models.CropPriceTrend, error)
	PriceForecasts(ctx context.Context, crops []string, window string) ([]models.MarketForecast, error)
	CropRecommendations(ctx context.Context, q RecommendationQuery) ([]models.CropRecommendation, error)
}

type marketService struct {
	api Requester
}

func NewMarketService(r Requester) MarketService {
	return &marketService{api: r}
}

func (m *marketService) MarketsByLocation(ctx context.Context, state, district string) ([]models.MarketLocation, error) {
	q := api.NewQuery().String("state", state).String("district", district)

	var resp []models.MarketLocation
	if err := m.api.Get(ctx, q.Path("/market/locations"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *marketService) CropPrices(ctx context.Context, crop, state string, marketID int64) ([]models.CropPrice, error) {
	q := api.NewQuery().Add("crop", crop).String("state", state).Int64("market_id", marketID)

	var resp []models.CropPrice
	if err := m.api.Get(ctx, q.Path("/market/prices"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *marketService) PriceTrends(ctx context.Context, crops []string, period string) ([]models.CropPriceTrend, error) {
	if period == "" {
		period = PeriodMonth
	}
	q := api.NewQuery().List("crops", crops).Add("period", period)

	var resp []models.CropPriceTrend
	if err := m.api.Get(ctx, q.Path("/market/trends"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *marketService) PriceForecasts(ctx context.Context, crops []string, window string) ([]models.MarketForecast, error) {
	if window == "" {
		window = PeriodMonth
	}
	q := api.NewQuery().List("crops", crops).Add("window", window)

	var resp []models.MarketForecast
	if err := m.api.Get(ctx, q.Path("/market/forecasts"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *marketService) CropRecommendations(ctx context.Context, rq RecommendationQuery) ([]models.CropRecommendation, error) {
	q := api.NewQuery().
		Add("state", rq.State).
		String("district", rq.District).
		String("soil_type", rq.SoilType).
		Float("farm_size", rq.FarmSize).
		Int("limit", rq.Limit)

	var resp []models.CropRecommendation
	if err := m.api.Get(ctx, q.Path("/market/recommendations"), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
