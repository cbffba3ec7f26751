package models

type MarketLocation struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	District     string `json:"district"`
	State        string `json:"state"`
	LocationType string `json:"location_type"`
}

type CropPrice struct {
	ID         int64          `json:"id"`
	Crop       string         `json:"crop"`
	Variety    string         `json:"variety,omitempty"`
	MinPrice   float64        `json:"min_price"`
	MaxPrice   float64        `json:"max_price"`
	ModalPrice float64        `json:"modal_price"`
	PriceUnit  string         `json:"price_unit"`
	Market     MarketLocation `json:"market"`
	Date       string         `json:"date"`
}

// Trend direction reported by /market/trends: up, down or stable.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type CropPriceTrend struct {
	Crop             string  `json:"crop"`
	Trend            Trend   `json:"trend"`
	PercentChange    float64 `json:"percent_change"`
	CurrentPrice     float64 `json:"current_price"`
	PriceUnit        string  `json:"price_unit"`
	PredictionWindow string  `json:"prediction_window"`
}

type MarketForecast struct {
	Crop            string  `json:"crop"`
	ForecastedPrice float64 `json:"forecasted_price"`
	PriceUnit       string  `json:"price_unit"`
	Confidence      float64 `json:"confidence"`
	ForecastDate    string  `json:"forecast_date"`
	Notes           string  `json:"notes,omitempty"`
}

type CropRecommendation struct {
	Crop             string  `json:"crop"`
	SuitabilityScore float64 `json:"suitability_score"`
	ExpectedYield    float64 `json:"expected_yield"`
	YieldUnit        string  `json:"yield_unit"`
	ExpectedPrice    float64 `json:"expected_price"`
	PriceUnit        string  `json:"price_unit"`
	EstimatedROI     float64 `json:"estimated_roi"`
	PlantingSeason   string  `json:"planting_season"`
	HarvestWindow    string  `json:"harvest_window"`
}
